package backend

import (
	"encoding/json"
	"fmt"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"

	"github.com/shopspring/decimal"
)

// Response shapes use the backend's camelCase names.

type OrderDTO struct {
	ID             int64           `json:"id"`
	OrderNumber    string          `json:"orderNumber"`
	OrderDate      string          `json:"orderDate"`
	Status         int             `json:"status"`
	NumberProducts int             `json:"numberProducts"`
	FinalPrice     decimal.Decimal `json:"finalPrice"`
	Products       []OrderLineDTO  `json:"products,omitempty"`
}

type OrderLineDTO struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Quantity    int             `json:"quantity"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
}

type ProductDTO struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Request shapes. The order endpoints bind PascalCase names.

type OrderRequestDTO struct {
	OrderNumber string                `json:"OrderNumber"`
	Products    []OrderRequestLineDTO `json:"Products"`
}

type OrderRequestLineDTO struct {
	ProductID int64 `json:"ProductId"`
	Quantity  int   `json:"Quantity"`
}

type ProductRequestDTO struct {
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unitPrice"`
}

func toOrderRequestDTO(req ports.OrderRequest) OrderRequestDTO {
	dto := OrderRequestDTO{
		OrderNumber: req.OrderNumber,
		Products:    make([]OrderRequestLineDTO, 0, len(req.Products)),
	}
	for _, p := range req.Products {
		dto.Products = append(dto.Products, OrderRequestLineDTO{
			ProductID: p.ProductID.Int64(),
			Quantity:  p.Quantity,
		})
	}
	return dto
}

func toProductRequestDTO(req ports.ProductRequest) ProductRequestDTO {
	return ProductRequestDTO{
		Name:      req.Name,
		UnitPrice: json.Number(req.UnitPrice.Decimal().String()),
	}
}

func (dto OrderDTO) toDomain() (*order.Order, error) {
	number, err := order.NumberFromString(dto.OrderNumber)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	var date order.Date
	if dto.OrderDate != "" {
		if date, err = order.ParseDate(dto.OrderDate); err != nil {
			return nil, fmt.Errorf("order %d: %w", dto.ID, err)
		}
	}

	finalPrice, err := kernel.NewMoney(dto.FinalPrice)
	if err != nil {
		return nil, fmt.Errorf("order %d: %w", dto.ID, err)
	}

	lines := make([]order.LineItem, 0, len(dto.Products))
	for _, p := range dto.Products {
		li, lineErr := p.toDomain()
		if lineErr != nil {
			return nil, fmt.Errorf("order %d: %w", dto.ID, lineErr)
		}
		lines = append(lines, li)
	}

	return order.RestoreOrder(
		kernel.ID(dto.ID),
		number,
		date,
		order.Status(dto.Status),
		dto.NumberProducts,
		finalPrice,
		lines,
	)
}

// toDomain keeps the stored snapshot; totalPrice is recomputed, not trusted.
func (dto OrderLineDTO) toDomain() (order.LineItem, error) {
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.LineItem{}, err
	}
	return order.RestoreLineItem(kernel.ID(dto.ProductID), dto.ProductName, price, dto.Quantity)
}

func (dto ProductDTO) toDomain() (catalog.Product, error) {
	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return catalog.Product{}, err
	}
	return catalog.NewProduct(kernel.ID(dto.ID), dto.Name, price)
}
