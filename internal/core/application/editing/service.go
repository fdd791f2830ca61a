package editing

import (
	"context"
	"log/slog"
	"time"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/metrics"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Handlers the service drives. The concrete command and query handlers satisfy them.
type (
	CatalogLoader interface {
		Handle(ctx context.Context, query queries.GetProductsQuery) (*catalog.Catalog, error)
	}

	OrderLoader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}

	OrderCreator interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}

	OrderUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateOrderCommand) (*order.Order, error)
	}
)

// Service opens, submits and discards editing sessions.
type Service struct {
	registry *Registry
	catalog  CatalogLoader
	orders   OrderLoader
	creator  OrderCreator
	updater  OrderUpdater
	clock    ports.Clock
	logger   *slog.Logger
}

func NewService(
	registry *Registry,
	catalogLoader CatalogLoader,
	orderLoader OrderLoader,
	creator OrderCreator,
	updater OrderUpdater,
	clock ports.Clock,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry: registry,
		catalog:  catalogLoader,
		orders:   orderLoader,
		creator:  creator,
		updater:  updater,
		clock:    clock,
		logger:   logger.With("component", "editing_service"),
	}
}

// StartCreate opens a session for a new order. The order number and date are
// fixed here and never regenerated for the life of the session.
func (s *Service) StartCreate(ctx context.Context) (*Session, error) {
	c, err := s.catalog.Handle(ctx, queries.NewGetProductsQuery())
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	draft, err := order.NewDraft(order.GenerateNumber(now), order.DateFromTime(now))
	if err != nil {
		return nil, err
	}

	session := newSession(ModeCreate, c, draft)
	s.registry.Add(session)
	s.logger.InfoContext(ctx, "editing session opened",
		"session_id", session.ID(), "mode", ModeCreate, "order_number", draft.OrderNumber().String())

	return session, nil
}

// StartEdit opens a session over an existing order. The catalog and the order
// are fetched concurrently; if either fails no session is opened.
func (s *Service) StartEdit(ctx context.Context, orderID kernel.ID) (*Session, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}

	var (
		c        *catalog.Catalog
		existing *order.Order
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var loadErr error
		c, loadErr = s.catalog.Handle(gctx, queries.NewGetProductsQuery())
		return loadErr
	})
	g.Go(func() error {
		var loadErr error
		existing, loadErr = s.orders.Handle(gctx, query)
		return loadErr
	})
	if err = g.Wait(); err != nil {
		s.logger.WarnContext(ctx, "edit session could not load", "order_id", orderID, "error", err)
		return nil, err
	}

	draft, err := existing.Edit()
	if err != nil {
		return nil, err
	}

	session := newSession(ModeEdit, c, draft)
	s.registry.Add(session)
	s.logger.InfoContext(ctx, "editing session opened",
		"session_id", session.ID(), "mode", ModeEdit, "order_id", orderID)

	return session, nil
}

// Session looks up an open session.
func (s *Service) Session(id uuid.UUID) (*Session, error) {
	return s.registry.Get(id)
}

// Submit sends the session's draft as a create or an update. On success the
// session is closed and the stored order returned. The order is nil when the
// backend acknowledged the write without echoing it back.
func (s *Service) Submit(ctx context.Context, id uuid.UUID) (*order.Order, error) {
	session, err := s.registry.Get(id)
	if err != nil {
		return nil, err
	}

	draft, err := session.beginSubmit()
	if err != nil {
		return nil, err
	}

	stored, err := s.send(ctx, session.Mode(), draft)
	session.endSubmit(err == nil)

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	metrics.OrderSubmissions.WithLabelValues(string(session.Mode()), outcome).Inc()

	if err != nil {
		s.logger.ErrorContext(ctx, "order submission failed",
			"session_id", id, "order_number", draft.OrderNumber().String(), "error", err)
		return nil, err
	}

	s.registry.Remove(id)
	s.logger.InfoContext(ctx, "order submitted",
		"session_id", id, "order_number", draft.OrderNumber().String())

	return stored, nil
}

// Discard closes a session without submitting it.
func (s *Service) Discard(ctx context.Context, id uuid.UUID) error {
	if err := s.registry.Discard(id, DiscardReasonUser); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "editing session discarded", "session_id", id)
	return nil
}

// DiscardIdle closes every session idle for longer than ttl.
func (s *Service) DiscardIdle(ctx context.Context, ttl time.Duration) int {
	dropped := s.registry.DiscardIdle(ttl)
	for _, id := range dropped {
		s.logger.InfoContext(ctx, "idle editing session discarded", "session_id", id)
	}
	return len(dropped)
}

func (s *Service) send(ctx context.Context, mode Mode, draft *order.Draft) (*order.Order, error) {
	if mode == ModeCreate {
		cmd, err := commands.NewCreateOrderCommand(draft)
		if err != nil {
			return nil, err
		}
		return s.creator.Handle(ctx, cmd)
	}

	cmd, err := commands.NewUpdateOrderCommand(draft)
	if err != nil {
		return nil, err
	}
	return s.updater.Handle(ctx, cmd)
}
