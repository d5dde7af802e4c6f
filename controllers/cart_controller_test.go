package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/models"
)

type cartEnvelope struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    models.CartSummary `json:"data"`
}

func getCart(t *testing.T, router http.Handler, clientID string) cartEnvelope {
	t.Helper()
	rec := doRequest(t, router, http.MethodGet, "/cart", nil, map[string]string{"X-Client-ID": clientID})
	require.Equal(t, http.StatusOK, rec.Code)

	var body cartEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{"X-Client-ID": "shopper-1"}

	t.Run("starts empty", func(t *testing.T) {
		body := getCart(t, router, "shopper-1")
		assert.Zero(t, body.Data.Count)
		assert.Empty(t, body.Data.Items)
	})

	t.Run("add item resolves product and normalized price", func(t *testing.T) {
		payload := `{"product_id": 1, "quantity": 2}`
		rec := doRequest(t, router, http.MethodPost, "/cart/items", &payload, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body cartEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, "Backpack", body.Data.Items[0].Title)
		assert.Equal(t, 2, body.Data.Items[0].Quantity)
		assert.InDelta(t, 179.98, body.Data.Subtotal, 1e-9)
	})

	t.Run("duplicate add leaves entry unchanged", func(t *testing.T) {
		payload := `{"product_id": 1, "quantity": 5}`
		rec := doRequest(t, router, http.MethodPost, "/cart/items", &payload, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body cartEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, 2, body.Data.Items[0].Quantity)
	})

	t.Run("unknown product returns 404", func(t *testing.T) {
		payload := `{"product_id": 999, "quantity": 1}`
		rec := doRequest(t, router, http.MethodPost, "/cart/items", &payload, headers)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("update quantity clamps to minimum of one", func(t *testing.T) {
		payload := `{"quantity": -3}`
		rec := doRequest(t, router, http.MethodPatch, "/cart/items/1", &payload, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body cartEnvelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Data.Items, 1)
		assert.Equal(t, 1, body.Data.Items[0].Quantity)
	})

	t.Run("carts are isolated per client", func(t *testing.T) {
		body := getCart(t, router, "shopper-2")
		assert.Empty(t, body.Data.Items)
	})

	t.Run("remove item empties the cart", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodDelete, "/cart/items/1", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		body := getCart(t, router, "shopper-1")
		assert.Empty(t, body.Data.Items)
	})
}

func TestCheckout(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{"X-Client-ID": "buyer-1"}

	t.Run("empty cart is rejected", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/cart/checkout", nil, headers)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("totals include flat shipping and tax, then cart is cleared", func(t *testing.T) {
		payload := `{"product_id": 3, "quantity": 2}`
		rec := doRequest(t, router, http.MethodPost, "/cart/items", &payload, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, router, http.MethodPost, "/cart/checkout", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data models.OrderSummary `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Data.OrderID)
		require.Len(t, body.Data.Items, 1)

		subtotal := 59.99 * 2
		assert.InDelta(t, subtotal, body.Data.Subtotal, 1e-9)
		assert.InDelta(t, 10.0, body.Data.Shipping, 1e-9)
		assert.InDelta(t, subtotal*0.08, body.Data.Tax, 1e-9)
		assert.InDelta(t, subtotal+10.0+subtotal*0.08, body.Data.Total, 1e-9)

		after := getCart(t, router, "buyer-1")
		assert.Empty(t, after.Data.Items)
	})
}

func TestWishlistFlow(t *testing.T) {
	router := newTestRouter(t)
	headers := map[string]string{"X-Client-ID": "wisher-1"}

	t.Run("add and contains", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/wishlist/2", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/wishlist/2", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				ProductID  int  `json:"product_id"`
				InWishlist bool `json:"in_wishlist"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 2, body.Data.ProductID)
		assert.True(t, body.Data.InWishlist)
	})

	t.Run("add is idempotent", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodPost, "/wishlist/2", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/wishlist", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data []models.Product `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body.Data, 1)
	})

	t.Run("remove", func(t *testing.T) {
		rec := doRequest(t, router, http.MethodDelete, "/wishlist/2", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doRequest(t, router, http.MethodGet, "/wishlist/2", nil, headers)
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				InWishlist bool `json:"in_wishlist"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Data.InWishlist)
	})
}
