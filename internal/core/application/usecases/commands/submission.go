package commands

import (
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"
)

// ToOrderRequest maps a draft onto the create/update contract. Only product ids
// and quantities are sent, in display order.
func ToOrderRequest(d *order.Draft) ports.OrderRequest {
	items := d.LineItems()
	req := ports.OrderRequest{
		OrderNumber: d.OrderNumber().String(),
		Products:    make([]ports.OrderRequestLine, 0, len(items)),
	}
	for _, li := range items {
		req.Products = append(req.Products, ports.OrderRequestLine{
			ProductID: li.ProductID(),
			Quantity:  li.Quantity(),
		})
	}
	return req
}

func orderResource(d *order.Draft) string {
	return "order " + d.OrderNumber().String()
}
