package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/core/application/editing"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
	"ordermanagement/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var errBackendDown = errors.New("connection refused")

// memoryBackend is an in-memory stand-in for the remote order service.
type memoryBackend struct {
	mu       sync.Mutex
	products map[kernel.ID]catalog.Product
	orders   map[kernel.ID]storedOrder
	nextID   kernel.ID
	down     bool

	statusChanges []order.Status
	created       []ports.OrderRequest
	updated       []ports.OrderRequest
}

type storedOrder struct {
	number string
	date   order.Date
	status order.Status
	lines  []ports.OrderRequestLine
}

func newMemoryBackend(t *testing.T) *memoryBackend {
	t.Helper()

	b := &memoryBackend{
		products: map[kernel.ID]catalog.Product{},
		orders:   map[kernel.ID]storedOrder{},
		nextID:   100,
	}
	for _, p := range []struct {
		id    kernel.ID
		name  string
		price string
	}{
		{1, "Widget", "9.99"},
		{2, "Gadget", "10.00"},
		{3, "Gizmo", "0.10"},
	} {
		product, err := catalog.NewProduct(p.id, p.name, kernel.MustMoney(p.price))
		require.NoError(t, err)
		b.products[p.id] = product
	}

	date, err := order.ParseDate("2023-12-31")
	require.NoError(t, err)
	b.orders[7] = storedOrder{
		number: "ORD000777",
		date:   date,
		status: order.Pending,
		lines:  []ports.OrderRequestLine{{ProductID: 1, Quantity: 2}},
	}

	return b
}

func (b *memoryBackend) setDown(down bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.down = down
}

func (b *memoryBackend) restore(id kernel.ID, o storedOrder) (*order.Order, error) {
	items := make([]order.LineItem, 0, len(o.lines))
	total := kernel.ZeroMoney()
	count := 0
	for _, l := range o.lines {
		p := b.products[l.ProductID]
		li, err := order.RestoreLineItem(p.ID(), p.Name(), p.UnitPrice(), l.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, li)
		total = total.Add(li.TotalPrice())
		count += l.Quantity
	}

	number, err := order.NumberFromString(o.number)
	if err != nil {
		return nil, err
	}
	return order.RestoreOrder(id, number, o.date, o.status, count, total, items)
}

func (b *memoryBackend) ListOrders(context.Context) ([]*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}

	ids := make([]kernel.ID, 0, len(b.orders))
	for id := range b.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]*order.Order, 0, len(ids))
	for _, id := range ids {
		o, err := b.restore(id, b.orders[id])
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (b *memoryBackend) GetOrder(_ context.Context, id kernel.ID) (*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}

	o, ok := b.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return b.restore(id, o)
}

func (b *memoryBackend) CreateOrder(_ context.Context, req ports.OrderRequest) (*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}

	b.created = append(b.created, req)
	b.nextID++
	date, _ := order.ParseDate("2023-11-14")
	stored := storedOrder{number: req.OrderNumber, date: date, lines: req.Products}
	b.orders[b.nextID] = stored
	return b.restore(b.nextID, stored)
}

func (b *memoryBackend) UpdateOrder(_ context.Context, id kernel.ID, req ports.OrderRequest) (*order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}

	b.updated = append(b.updated, req)
	stored, ok := b.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	stored.lines = req.Products
	b.orders[id] = stored
	return nil, nil
}

func (b *memoryBackend) DeleteOrder(_ context.Context, id kernel.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return errBackendDown
	}
	if _, ok := b.orders[id]; !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	delete(b.orders, id)
	return nil
}

func (b *memoryBackend) ChangeStatus(_ context.Context, id kernel.ID, status order.Status) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return errBackendDown
	}

	stored, ok := b.orders[id]
	if !ok {
		return errs.NewObjectNotFoundError("order", id)
	}
	b.statusChanges = append(b.statusChanges, status)
	stored.status = status
	b.orders[id] = stored
	return nil
}

func (b *memoryBackend) ListProducts(context.Context) ([]catalog.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.down {
		return nil, errBackendDown
	}

	out := make([]catalog.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (b *memoryBackend) GetProduct(_ context.Context, id kernel.ID) (catalog.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p, ok := b.products[id]
	if !ok {
		return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	return p, nil
}

func (b *memoryBackend) CreateProduct(_ context.Context, req ports.ProductRequest) (catalog.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	p, err := catalog.NewProduct(b.nextID, req.Name, req.UnitPrice)
	if err != nil {
		return catalog.Product{}, err
	}
	b.products[p.ID()] = p
	return p, nil
}

func (b *memoryBackend) UpdateProduct(_ context.Context, id kernel.ID, req ports.ProductRequest) (catalog.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.products[id]; !ok {
		return catalog.Product{}, errs.NewObjectNotFoundError("product", id)
	}
	p, err := catalog.NewProduct(id, req.Name, req.UnitPrice)
	if err != nil {
		return catalog.Product{}, err
	}
	b.products[id] = p
	return p, nil
}

func (b *memoryBackend) DeleteProduct(_ context.Context, id kernel.ID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.products[id]; !ok {
		return errs.NewObjectNotFoundError("product", id)
	}
	delete(b.products, id)
	return nil
}

// api is the server under test wired to a memoryBackend.
type api struct {
	t       *testing.T
	echo    *echo.Echo
	backend *memoryBackend
}

func newAPI(t *testing.T) *api {
	t.Helper()

	backend := newMemoryBackend(t)
	clock := ports.ClockFunc(func() time.Time { return time.UnixMilli(1700000123456).UTC() })
	log := logger.Discard()

	service := editing.NewService(
		editing.NewRegistry(clock),
		queries.NewGetProductsQueryHandler(backend),
		queries.NewGetOrderQueryHandler(backend),
		commands.NewCreateOrderCommandHandler(backend),
		commands.NewUpdateOrderCommandHandler(backend),
		clock,
		log,
	)

	server := httpin.NewServer(httpin.Handlers{
		ChangeOrderStatus: commands.NewChangeOrderStatusCommandHandler(backend),
		DeleteOrder:       commands.NewDeleteOrderCommandHandler(backend),
		SaveProduct:       commands.NewSaveProductCommandHandler(backend),
		DeleteProduct:     commands.NewDeleteProductCommandHandler(backend),
		GetOrders:         queries.NewGetOrdersQueryHandler(backend),
		GetOrder:          queries.NewGetOrderQueryHandler(backend),
		GetProducts:       queries.NewGetProductsQueryHandler(backend),
		GetProduct:        queries.NewGetProductQueryHandler(backend),
	}, service, log)

	return &api{t: t, echo: httpin.NewEcho(server), backend: backend}
}

func (a *api) do(method, path, body string) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a *api) openCreateSession() httpin.Session {
	a.t.Helper()

	rec := a.do(http.MethodPost, "/api/v1/sessions", "")
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.Session](a.t, rec)
}
