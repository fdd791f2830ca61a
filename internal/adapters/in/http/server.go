// Package http exposes the order management API over echo. Handlers translate
// requests into commands and queries and map domain errors to status codes;
// no business rule lives here.
package http

import (
	"log/slog"
	"net/http"

	"ordermanagement/internal/core/application/editing"
	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	// Command handlers
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler
	DeleteOrder       commands.DeleteOrderCommandHandler
	SaveProduct       commands.SaveProductCommandHandler
	DeleteProduct     commands.DeleteProductCommandHandler

	// Query handlers
	GetOrders   queries.GetOrdersQueryHandler
	GetOrder    queries.GetOrderQueryHandler
	GetProducts queries.GetProductsQueryHandler
	GetProduct  queries.GetProductQueryHandler
}

type Server struct {
	handlers Handlers
	editing  *editing.Service
	logger   *slog.Logger
}

func NewServer(handlers Handlers, editingService *editing.Service, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		editing:  editingService,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds an echo instance with the API mounted.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	s.Register(e)
	return e
}

// Register mounts the routes and the error handler on e.
func (s *Server) Register(e *echo.Echo) {
	e.HTTPErrorHandler = s.handleError
	e.Use(metrics.EchoMiddleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", metrics.Handler())

	v1 := e.Group("/api/v1")

	v1.GET("/orders", s.ListOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.POST("/orders/:id/status", s.ChangeOrderStatus)
	v1.POST("/orders/:id/sessions", s.StartEditSession)

	v1.POST("/sessions", s.StartCreateSession)
	v1.GET("/sessions/:sid", s.GetSession)
	v1.DELETE("/sessions/:sid", s.DiscardSession)
	v1.POST("/sessions/:sid/items", s.AddLineItem)
	v1.PUT("/sessions/:sid/items/:index", s.EditLineItem)
	v1.DELETE("/sessions/:sid/items/:index", s.RemoveLineItem)
	v1.POST("/sessions/:sid/submit", s.SubmitSession)

	v1.GET("/products", s.ListProducts)
	v1.POST("/products", s.CreateProduct)
	v1.GET("/products/:id", s.GetProduct)
	v1.PUT("/products/:id", s.UpdateProduct)
	v1.DELETE("/products/:id", s.DeleteProduct)
}
