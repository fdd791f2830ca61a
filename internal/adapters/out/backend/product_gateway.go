package backend

import (
	"context"

	"ordermanagement/internal/core/domain/model/catalog"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

var _ ports.ProductGateway = &ProductGateway{}

type ProductGateway struct {
	client *Client
}

func NewProductGateway(client *Client) *ProductGateway {
	return &ProductGateway{client: client}
}

func (g *ProductGateway) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	resp, err := g.client.do(ctx, "list_products", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/products/list")
	})
	if err != nil {
		return nil, err
	}

	var dtos []ProductDTO
	if err := decode(resp, &dtos); err != nil {
		return nil, err
	}

	products := make([]catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (g *ProductGateway) GetProduct(ctx context.Context, id kernel.ID) (catalog.Product, error) {
	resp, err := g.client.do(ctx, "get_product", func(req *resty.Request) (*resty.Response, error) {
		return req.Get("/products/list/" + id.String())
	})
	if err != nil {
		return catalog.Product{}, notFoundAs(err, "product", id)
	}
	return decodeProduct(resp, id)
}

func (g *ProductGateway) CreateProduct(ctx context.Context, r ports.ProductRequest) (catalog.Product, error) {
	resp, err := g.client.do(ctx, "create_product", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(toProductRequestDTO(r)).Post("/products/create")
	})
	if err != nil {
		return catalog.Product{}, err
	}
	return decodeProduct(resp, 0)
}

func (g *ProductGateway) UpdateProduct(ctx context.Context, id kernel.ID, r ports.ProductRequest) (catalog.Product, error) {
	resp, err := g.client.do(ctx, "update_product", func(req *resty.Request) (*resty.Response, error) {
		return req.SetBody(toProductRequestDTO(r)).Put("/products/update/" + id.String())
	})
	if err != nil {
		return catalog.Product{}, notFoundAs(err, "product", id)
	}
	if len(resp.Body()) == 0 {
		return catalog.NewProduct(id, r.Name, r.UnitPrice)
	}
	return decodeProduct(resp, id)
}

func (g *ProductGateway) DeleteProduct(ctx context.Context, id kernel.ID) error {
	_, err := g.client.do(ctx, "delete_product", func(req *resty.Request) (*resty.Response, error) {
		return req.Delete("/products/delete/" + id.String())
	})
	return notFoundAs(err, "product", id)
}

func decodeProduct(resp *resty.Response, fallbackID kernel.ID) (catalog.Product, error) {
	var dto ProductDTO
	if err := decode(resp, &dto); err != nil {
		return catalog.Product{}, err
	}
	if dto.ID == 0 {
		dto.ID = fallbackID.Int64()
	}
	return dto.toDomain()
}
