package editing

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"

	"github.com/google/uuid"
)

var (
	ErrSessionBusy   = errors.New("editing session is submitting")
	ErrSessionClosed = errors.New("editing session is closed")
)

// Mode tells whether a session creates a new order or edits an existing one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Session is one open create or edit screen.
type Session struct {
	id      uuid.UUID
	mode    Mode
	catalog *catalog.Catalog
	builder services.LineItemBuilder

	mu     sync.Mutex
	draft  *order.Draft
	busy   bool
	closed bool
}

func newSession(mode Mode, c *catalog.Catalog, d *order.Draft) *Session {
	return &Session{
		id:      uuid.New(),
		mode:    mode,
		catalog: c,
		builder: services.NewLineItemBuilder(c),
		draft:   d,
	}
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Mode() Mode {
	return s.mode
}

// Catalog is the product list offered by the session's product picker.
func (s *Session) Catalog() *catalog.Catalog {
	return s.catalog
}

// AddProduct builds a line from the picker input and appends it to the draft.
func (s *Session) AddProduct(productID kernel.ID, quantityInput string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkWritable(); err != nil {
		return err
	}

	li, err := s.builder.Build(productID, quantityInput)
	if err != nil {
		return err
	}
	return s.draft.AddLineItem(li)
}

// EditProduct changes the quantity of the line at index.
func (s *Session) EditProduct(index int, quantityInput string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkWritable(); err != nil {
		return err
	}

	current, err := s.draft.LineItem(index)
	if err != nil {
		return err
	}
	rebuilt, err := s.builder.Rebuild(current, quantityInput)
	if err != nil {
		return err
	}
	return s.draft.ReplaceLineItem(index, rebuilt)
}

// RemoveProduct asks confirmer before removing the line at index. It reports
// whether the line was removed.
func (s *Session) RemoveProduct(ctx context.Context, index int, confirmer ports.Confirmer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkWritable(); err != nil {
		return false, err
	}

	li, err := s.draft.LineItem(index)
	if err != nil {
		return false, err
	}

	ok, err := confirmer.Confirm(ctx, ports.Confirmation{
		Kind:    ports.ConfirmRemoveLineItem,
		Message: fmt.Sprintf("Remove %s from the order?", li.ProductName()),
	})
	if err != nil || !ok {
		return false, err
	}

	if _, err = s.draft.RemoveLineItem(index); err != nil {
		return false, err
	}
	return true, nil
}

// IsBusy reports whether a submission is in flight.
func (s *Session) IsBusy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// View returns a snapshot of the draft for display.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.draft.LineItems()
	lines := make([]LineView, 0, len(items))
	for i, li := range items {
		lines = append(lines, LineView{
			Index:       i,
			ProductID:   li.ProductID(),
			ProductName: li.ProductName(),
			UnitPrice:   li.UnitPrice(),
			Quantity:    li.Quantity(),
			TotalPrice:  li.TotalPrice(),
		})
	}

	return View{
		ID:            s.id,
		Mode:          s.mode,
		OrderID:       s.draft.OrderID(),
		OrderNumber:   s.draft.OrderNumber().String(),
		OrderDate:     s.draft.OrderDate().String(),
		Lines:         lines,
		TotalQuantity: s.draft.TotalQuantity(),
		FinalPrice:    s.draft.FinalPrice(),
		Busy:          s.busy,
	}
}

// beginSubmit validates the draft and marks the session busy. The returned
// draft may be read without the lock until endSubmit: no mutation can run
// while busy is set.
func (s *Session) beginSubmit() (*order.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkWritable(); err != nil {
		return nil, err
	}
	if err := s.draft.ValidateForSubmission(); err != nil {
		return nil, err
	}

	s.busy = true
	return s.draft, nil
}

func (s *Session) endSubmit(succeeded bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.busy = false
	if succeeded {
		s.closed = true
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Session) checkWritable() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.busy {
		return ErrSessionBusy
	}
	return nil
}

// LineView is one row of the draft table.
type LineView struct {
	Index       int
	ProductID   kernel.ID
	ProductName string
	UnitPrice   kernel.Money
	Quantity    int
	TotalPrice  kernel.Money
}

// View is a point-in-time copy of a session.
type View struct {
	ID            uuid.UUID
	Mode          Mode
	OrderID       kernel.ID
	OrderNumber   string
	OrderDate     string
	Lines         []LineView
	TotalQuantity int
	FinalPrice    kernel.Money
	Busy          bool
}
