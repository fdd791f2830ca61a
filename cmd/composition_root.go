package cmd

import (
	"log/slog"

	httpin "ordermanagement/internal/adapters/in/http"
	"ordermanagement/internal/adapters/out/backend"
	"ordermanagement/internal/core/application/editing"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/jobs"

	"github.com/labstack/echo/v4"
)

type CompositionRoot struct {
	config   Config
	logger   *slog.Logger
	clock    ports.Clock
	orders   ports.OrderGateway
	products ports.ProductGateway

	editingService *editing.Service
}

func NewCompositionRoot(config Config, logger *slog.Logger) *CompositionRoot {
	client := backend.NewClient(backend.Config{
		BaseURL: config.BackendURL,
		Timeout: config.BackendTimeout,
		Breaker: backend.DefaultBreakerSettings(),
	}, logger)

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		clock:    ports.SystemClock{},
		orders:   backend.NewOrderGateway(client),
		products: backend.NewProductGateway(client),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateSaveProductCommandHandler() commands.SaveProductCommandHandler {
	return commands.NewSaveProductCommandHandler(c.products)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return commands.NewDeleteProductCommandHandler(c.products)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetProductsQueryHandler() queries.GetProductsQueryHandler {
	return queries.NewGetProductsQueryHandler(c.products)
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return queries.NewGetProductQueryHandler(c.products)
}

// EditingService is created once; the HTTP server and the reaper share its
// session registry.
func (c *CompositionRoot) EditingService() *editing.Service {
	if c.editingService == nil {
		c.editingService = editing.NewService(
			editing.NewRegistry(c.clock),
			c.CreateGetProductsQueryHandler(),
			c.CreateGetOrderQueryHandler(),
			c.CreateCreateOrderCommandHandler(),
			c.CreateUpdateOrderCommandHandler(),
			c.clock,
			c.logger,
		)
	}
	return c.editingService
}

func (c *CompositionRoot) CreateEcho() *echo.Echo {
	server := httpin.NewServer(httpin.Handlers{
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		DeleteOrder:       c.CreateDeleteOrderCommandHandler(),
		SaveProduct:       c.CreateSaveProductCommandHandler(),
		DeleteProduct:     c.CreateDeleteProductCommandHandler(),
		GetOrders:         c.CreateGetOrdersQueryHandler(),
		GetOrder:          c.CreateGetOrderQueryHandler(),
		GetProducts:       c.CreateGetProductsQueryHandler(),
		GetProduct:        c.CreateGetProductQueryHandler(),
	}, c.EditingService(), c.logger)

	return httpin.NewEcho(server)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	reaper := jobs.NewSessionReaperJob(
		c.EditingService(),
		c.config.SessionIdleTTL,
		c.config.SessionReaperSchedule,
		c.logger,
	)
	return jobs.NewJobManager(reaper)
}
