package http

import (
	"encoding/json"
	"fmt"
	"strings"

	"ordermanagement/internal/core/application/editing"
	"ordermanagement/internal/core/application/usecases/queries"
	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// Money is rendered as a fixed two-decimal string to keep exact values on the wire.

type OrderSummary struct {
	ID             int64  `json:"id"`
	OrderNumber    string `json:"orderNumber"`
	OrderDate      string `json:"orderDate"`
	Status         int    `json:"status"`
	StatusName     string `json:"statusName"`
	NumberProducts int    `json:"numberProducts"`
	FinalPrice     string `json:"finalPrice"`
}

type OrderDetail struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	OrderDate   string      `json:"orderDate"`
	Status      int         `json:"status"`
	StatusName  string      `json:"statusName"`
	Products    []OrderLine `json:"products"`
	FinalPrice  string      `json:"finalPrice"`
}

type OrderLine struct {
	Index       int    `json:"index"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
	TotalPrice  string `json:"totalPrice"`
}

type Product struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
}

type Session struct {
	ID            string      `json:"id"`
	Mode          string      `json:"mode"`
	OrderID       int64       `json:"orderId,omitempty"`
	OrderNumber   string      `json:"orderNumber"`
	OrderDate     string      `json:"orderDate"`
	Products      []OrderLine `json:"products"`
	TotalQuantity int         `json:"totalQuantity"`
	FinalPrice    string      `json:"finalPrice"`
	Busy          bool        `json:"busy"`
	Catalog       []Product   `json:"catalog"`
}

type SubmitResult struct {
	OrderNumber string       `json:"orderNumber"`
	Order       *OrderDetail `json:"order,omitempty"`
}

// Requests.

type ChangeStatusRequest struct {
	Status *int `json:"status"`
}

type AddLineItemRequest struct {
	ProductID int64         `json:"productId"`
	Quantity  QuantityInput `json:"quantity"`
}

type EditLineItemRequest struct {
	Quantity QuantityInput `json:"quantity"`
}

type ProductRequest struct {
	Name      string           `json:"name"`
	UnitPrice *decimal.Decimal `json:"unitPrice"`
}

// QuantityInput is the raw quantity text as typed by the user. JSON numbers are
// taken verbatim so that "3", 3 and 3.5 reach the builder unchanged.
type QuantityInput string

func (q *QuantityInput) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	switch {
	case raw == "null":
		*q = ""
	case strings.HasPrefix(raw, `"`):
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*q = QuantityInput(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("quantity: %w", err)
		}
		*q = QuantityInput(n.String())
	}
	return nil
}

func toOrderSummaries(rows []queries.GetOrdersQueryResponse) []OrderSummary {
	out := make([]OrderSummary, 0, len(rows))
	for _, r := range rows {
		out = append(out, OrderSummary{
			ID:             r.ID.Int64(),
			OrderNumber:    r.OrderNumber,
			OrderDate:      r.OrderDate,
			Status:         r.Status.Code(),
			StatusName:     r.Status.String(),
			NumberProducts: r.NumberProducts,
			FinalPrice:     r.FinalPrice.String(),
		})
	}
	return out
}

// toOrderDetail shows the line totals recomputed from the snapshots; the final
// price is their sum unless the order carries no lines.
func toOrderDetail(o *order.Order) *OrderDetail {
	items := o.LineItems()
	lines := make([]OrderLine, 0, len(items))
	for i, li := range items {
		lines = append(lines, OrderLine{
			Index:       i,
			ProductID:   li.ProductID().Int64(),
			ProductName: li.ProductName(),
			UnitPrice:   li.UnitPrice().String(),
			Quantity:    li.Quantity(),
			TotalPrice:  li.TotalPrice().String(),
		})
	}

	finalPrice := o.FinalPrice()
	if len(items) > 0 {
		finalPrice = kernel.ZeroMoney()
		for _, li := range items {
			finalPrice = finalPrice.Add(li.TotalPrice())
		}
	}

	return &OrderDetail{
		ID:          o.ID().Int64(),
		OrderNumber: o.Number().String(),
		OrderDate:   o.Date().String(),
		Status:      o.Status().Code(),
		StatusName:  o.Status().String(),
		Products:    lines,
		FinalPrice:  finalPrice.String(),
	}
}

func toProduct(p catalog.Product) Product {
	return Product{
		ID:        p.ID().Int64(),
		Name:      p.Name(),
		UnitPrice: p.UnitPrice().String(),
	}
}

func toProducts(c *catalog.Catalog) []Product {
	products := c.Products()
	out := make([]Product, 0, len(products))
	for _, p := range products {
		out = append(out, toProduct(p))
	}
	return out
}

func toSession(v editing.View, c *catalog.Catalog) Session {
	lines := make([]OrderLine, 0, len(v.Lines))
	for _, l := range v.Lines {
		lines = append(lines, OrderLine{
			Index:       l.Index,
			ProductID:   l.ProductID.Int64(),
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice.String(),
			Quantity:    l.Quantity,
			TotalPrice:  l.TotalPrice.String(),
		})
	}

	return Session{
		ID:            v.ID.String(),
		Mode:          string(v.Mode),
		OrderID:       v.OrderID.Int64(),
		OrderNumber:   v.OrderNumber,
		OrderDate:     v.OrderDate,
		Products:      lines,
		TotalQuantity: v.TotalQuantity,
		FinalPrice:    v.FinalPrice.String(),
		Busy:          v.Busy,
		Catalog:       toProducts(c),
	}
}
