package http

import (
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders.
func (s *Server) ListOrders(c echo.Context) error {
	rows, err := s.handlers.GetOrders.Handle(c.Request().Context(), queries.NewGetOrdersQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderSummaries(rows))
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderDetail(o))
}

// DeleteOrder handles DELETE /api/v1/orders/:id?confirm=true and answers with
// the reloaded order list.
func (s *Server) DeleteOrder(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteOrderCommand(id, c.QueryParam("number"))
	if err != nil {
		return err
	}

	confirmer := confirmerFrom(c)
	deleted, err := s.handlers.DeleteOrder.Handle(c.Request().Context(), cmd, confirmer)
	if err != nil {
		return err
	}
	if !deleted {
		return confirmer.declined(c)
	}

	return s.ListOrders(c)
}

// ChangeOrderStatus handles POST /api/v1/orders/:id/status?confirm=true and
// answers with the reloaded order list.
func (s *Server) ChangeOrderStatus(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req ChangeStatusRequest
	if err = c.Bind(&req); err != nil {
		return badRequest("invalid request body")
	}
	if req.Status == nil {
		return badRequest("status is required")
	}

	status, err := order.ParseStatus(*req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, status)
	if err != nil {
		return err
	}

	confirmer := confirmerFrom(c)
	changed, err := s.handlers.ChangeOrderStatus.Handle(c.Request().Context(), cmd, confirmer)
	if err != nil {
		return err
	}
	if !changed {
		return confirmer.declined(c)
	}

	return s.ListOrders(c)
}
