package http_test

import (
	"net/http"
	"testing"

	httpin "ordermanagement/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_Health(t *testing.T) {
	t.Run("should report healthy", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/health", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Healthy", rec.Body.String())
	})

	t.Run("should expose prometheus metrics", func(t *testing.T) {
		a := newAPI(t)
		a.do(http.MethodGet, "/api/v1/orders", "")

		rec := a.do(http.MethodGet, "/metrics", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ordermanagement_http_requests_total")
	})
}

func TestServer_Orders(t *testing.T) {
	t.Run("should list orders with backend figures", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decode[[]httpin.OrderSummary](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, httpin.OrderSummary{
			ID:             7,
			OrderNumber:    "ORD000777",
			OrderDate:      "2023-12-31",
			Status:         0,
			StatusName:     "Pending",
			NumberProducts: 2,
			FinalPrice:     "19.98",
		}, orders[0])
	})

	t.Run("should return 502 when the backend is down", func(t *testing.T) {
		a := newAPI(t)
		a.backend.setDown(true)

		rec := a.do(http.MethodGet, "/api/v1/orders", "")

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		body := decode[httpin.Error](t, rec)
		assert.Equal(t, http.StatusBadGateway, body.Code)
		assert.Contains(t, body.Message, "load failed")
	})

	t.Run("should return order detail", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/api/v1/orders/7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		detail := decode[httpin.OrderDetail](t, rec)
		assert.Equal(t, "ORD000777", detail.OrderNumber)
		require.Len(t, detail.Products, 1)
		assert.Equal(t, "Widget", detail.Products[0].ProductName)
		assert.Equal(t, "19.98", detail.Products[0].TotalPrice)
		assert.Equal(t, "19.98", detail.FinalPrice)
	})

	t.Run("should return 404 for an unknown order", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/api/v1/orders/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should return 400 for a malformed id", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/api/v1/orders/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServer_DeleteOrder(t *testing.T) {
	t.Run("should ask for confirmation", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodDelete, "/api/v1/orders/7?number=ORD000777", "")

		require.Equal(t, http.StatusPreconditionRequired, rec.Code)
		body := decode[httpin.ConfirmationRequired](t, rec)
		assert.Equal(t, "delete_order", body.Kind)
		assert.Equal(t, "Order ORD000777 will be deleted", body.Message)

		rec = a.do(http.MethodGet, "/api/v1/orders", "")
		assert.Len(t, decode[[]httpin.OrderSummary](t, rec), 1)
	})

	t.Run("should delete and return the reloaded list", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodDelete, "/api/v1/orders/7?confirm=true", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]httpin.OrderSummary](t, rec))
	})

	t.Run("should return 404 when the backend does not know the order", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodDelete, "/api/v1/orders/8?confirm=true", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_ChangeOrderStatus(t *testing.T) {
	t.Run("should reject a status outside the workflow", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/orders/7/status?confirm=true", `{"status":5}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, a.backend.statusChanges)
	})

	t.Run("should require a status", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/orders/7/status?confirm=true", `{}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should ask for confirmation", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/orders/7/status", `{"status":2}`)

		require.Equal(t, http.StatusPreconditionRequired, rec.Code)
		assert.Equal(t, "change_status", decode[httpin.ConfirmationRequired](t, rec).Kind)
		assert.Empty(t, a.backend.statusChanges)
	})

	t.Run("should change status and return the reloaded list", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/orders/7/status?confirm=true", `{"status":2}`)

		require.Equal(t, http.StatusOK, rec.Code)
		orders := decode[[]httpin.OrderSummary](t, rec)
		require.Len(t, orders, 1)
		assert.Equal(t, 2, orders[0].Status)
		assert.Equal(t, "Completed", orders[0].StatusName)
	})
}

func TestServer_Products(t *testing.T) {
	t.Run("should list the catalog", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodGet, "/api/v1/products", "")

		require.Equal(t, http.StatusOK, rec.Code)
		products := decode[[]httpin.Product](t, rec)
		require.Len(t, products, 3)
		assert.Equal(t, httpin.Product{ID: 3, Name: "Gizmo", UnitPrice: "0.10"}, products[2])
	})

	t.Run("should create, update and delete a product", func(t *testing.T) {
		a := newAPI(t)

		rec := a.do(http.MethodPost, "/api/v1/products", `{"name":" Doohickey ","unitPrice":"4.5"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decode[httpin.Product](t, rec)
		assert.Equal(t, "Doohickey", created.Name)
		assert.Equal(t, "4.50", created.UnitPrice)

		rec = a.do(http.MethodPut, "/api/v1/products/101", `{"name":"Doohickey","unitPrice":5}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "5.00", decode[httpin.Product](t, rec).UnitPrice)

		rec = a.do(http.MethodDelete, "/api/v1/products/101", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = a.do(http.MethodGet, "/api/v1/products/101", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should reject invalid product input", func(t *testing.T) {
		a := newAPI(t)

		for _, body := range []string{
			`{"name":"Doohickey"}`,
			`{"name":"","unitPrice":"1.00"}`,
			`{"name":"Doohickey","unitPrice":"-1"}`,
		} {
			rec := a.do(http.MethodPost, "/api/v1/products", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})
}
