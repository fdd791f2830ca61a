package http

import (
	"net/http"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// ListProducts handles GET /api/v1/products.
func (s *Server) ListProducts(c echo.Context) error {
	products, err := s.handlers.GetProducts.Handle(c.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProducts(products))
}

// GetProduct handles GET /api/v1/products/:id.
func (s *Server) GetProduct(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	p, err := s.handlers.GetProduct.Handle(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProduct(p))
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(c echo.Context) error {
	name, price, err := bindProduct(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateProductCommand(name, price)
	if err != nil {
		return err
	}

	p, err := s.handlers.SaveProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProduct(p))
}

// UpdateProduct handles PUT /api/v1/products/:id.
func (s *Server) UpdateProduct(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}
	name, price, err := bindProduct(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewUpdateProductCommand(id, name, price)
	if err != nil {
		return err
	}

	p, err := s.handlers.SaveProduct.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProduct(p))
}

// DeleteProduct handles DELETE /api/v1/products/:id. Products are removed
// without confirmation.
func (s *Server) DeleteProduct(c echo.Context) error {
	id, err := kernel.ParseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err = s.handlers.DeleteProduct.Handle(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func bindProduct(c echo.Context) (string, kernel.Money, error) {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return "", kernel.Money{}, badRequest("invalid request body")
	}
	if req.UnitPrice == nil {
		return "", kernel.Money{}, badRequest("unitPrice is required")
	}

	price, err := kernel.NewMoney(*req.UnitPrice)
	if err != nil {
		return "", kernel.Money{}, err
	}
	return req.Name, price, nil
}
