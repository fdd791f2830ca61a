package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"
	"ordermanagement/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

var _ ports.OrderGateway = &OrderGateway{}

type OrderGateway struct {
	client *Client
}

func NewOrderGateway(client *Client) *OrderGateway {
	return &OrderGateway{client: client}
}

func (g *OrderGateway) ListOrders(ctx context.Context) ([]*order.Order, error) {
	resp, err := g.client.do(ctx, "list_orders", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/orders/list")
	})
	if err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err := decode(resp, &dtos); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// GetOrder reads the detail shape. The backend may omit the id there, so the
// requested one is used.
func (g *OrderGateway) GetOrder(ctx context.Context, id kernel.ID) (*order.Order, error) {
	resp, err := g.client.do(ctx, "get_order", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/orders/list/" + id.String())
	})
	if err != nil {
		return nil, notFoundAs(err, "order", id)
	}

	var dto OrderDTO
	if err := decode(resp, &dto); err != nil {
		return nil, err
	}
	if dto.ID == 0 {
		dto.ID = id.Int64()
	}
	return dto.toDomain()
}

func (g *OrderGateway) CreateOrder(ctx context.Context, r ports.OrderRequest) (*order.Order, error) {
	resp, err := g.client.do(ctx, "create_order", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(toOrderRequestDTO(r)).Post("/orders/create")
	})
	if err != nil {
		return nil, err
	}
	return decodeOptionalOrder(resp, 0)
}

func (g *OrderGateway) UpdateOrder(ctx context.Context, id kernel.ID, r ports.OrderRequest) (*order.Order, error) {
	resp, err := g.client.do(ctx, "update_order", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(toOrderRequestDTO(r)).Put("/orders/update/" + id.String())
	})
	if err != nil {
		return nil, notFoundAs(err, "order", id)
	}
	return decodeOptionalOrder(resp, id)
}

func (g *OrderGateway) DeleteOrder(ctx context.Context, id kernel.ID) error {
	_, err := g.client.do(ctx, "delete_order", func(req *resty.Request) (*resty.Response, error) {
		return req.Delete("/orders/delete/" + id.String())
	})
	return notFoundAs(err, "order", id)
}

// ChangeStatus posts the bare integer code as the JSON body.
func (g *OrderGateway) ChangeStatus(ctx context.Context, id kernel.ID, status order.Status) error {
	_, err := g.client.do(ctx, "change_status", func(req *resty.Request) (*resty.Response, error) {
		return req.
			SetHeader("Content-Type", "application/json").
			SetBody([]byte(strconv.Itoa(status.Code()))).
			Post("/orders/changestatus/" + id.String())
	})
	return notFoundAs(err, "order", id)
}

func decodeOptionalOrder(resp *resty.Response, fallbackID kernel.ID) (*order.Order, error) {
	if len(resp.Body()) == 0 {
		return nil, nil
	}

	var dto OrderDTO
	if err := decode(resp, &dto); err != nil {
		return nil, err
	}
	if dto.ID == 0 {
		dto.ID = fallbackID.Int64()
	}
	return dto.toDomain()
}

func decode(resp *resty.Response, v any) error {
	if err := json.Unmarshal(resp.Body(), v); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", resp.Request.Method, resp.Request.URL, err)
	}
	return nil
}
