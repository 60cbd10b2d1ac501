package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

type cartResponse struct {
	Items    []domcart.LineItem `json:"items"`
	Count    int64              `json:"count"`
	Subtotal float64            `json:"subtotal"`
	Tax      float64            `json:"tax"`
	Total    float64            `json:"total"`
}

func TestCart_RequiresDeviceToken(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/me/cart", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/v1/me/cart", "forged", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCart_EmptyForNewDevice(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.startSession(t)

	rec := srv.do(t, http.MethodGet, "/api/v1/me/cart", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[cartResponse](t, rec)
	require.NotNil(t, cart.Items)
	require.Empty(t, cart.Items)
	require.Zero(t, cart.Total)
}

func TestCart_AddMergesAndTotals(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.startSession(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 3})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 3, "quantity": 2})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 2, "quantity": 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	cart := decode[cartResponse](t, rec)
	require.Len(t, cart.Items, 2)
	require.Equal(t, int64(3), cart.Items[0].ID)
	require.Equal(t, int64(3), cart.Items[0].Quantity)
	require.Equal(t, "Organic Coffee Beans", cart.Items[0].Name)
	require.Equal(t, int64(4), cart.Count)
	require.Equal(t, 154.96, cart.Subtotal)
	require.Equal(t, 15.50, cart.Tax)
	require.Equal(t, 170.46, cart.Total)
}

func TestCart_AddValidation(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.startSession(t)

	rec := srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 1, "quantity": 0})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"quantity": 1})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 999})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCart_SetQuantityAndRemove(t *testing.T) {
	srv := newTestServer(t)
	_, token := srv.startSession(t)
	srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 1})
	srv.do(t, http.MethodPost, "/api/v1/me/cart/items", token, map[string]any{"product_id": 6})

	rec := srv.do(t, http.MethodPut, "/api/v1/me/cart/items/1", token, map[string]any{"quantity": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[cartResponse](t, rec)
	require.Equal(t, int64(4), cart.Items[0].Quantity)

	rec = srv.do(t, http.MethodPut, "/api/v1/me/cart/items/1", token, map[string]any{"quantity": 0})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[cartResponse](t, rec)
	require.Len(t, cart.Items, 1)
	require.Equal(t, int64(6), cart.Items[0].ID)

	rec = srv.do(t, http.MethodPut, "/api/v1/me/cart/items/6", token, map[string]any{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/v1/me/cart/items/6", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[cartResponse](t, rec).Items)
}

func TestCart_ClearAndDeviceIsolation(t *testing.T) {
	srv := newTestServer(t)
	deviceA, tokenA := srv.startSession(t)
	_, tokenB := srv.startSession(t)

	srv.do(t, http.MethodPost, "/api/v1/me/cart/items", tokenA, map[string]any{"product_id": 1})

	rec := srv.do(t, http.MethodGet, "/api/v1/me/cart", tokenB, nil)
	require.Empty(t, decode[cartResponse](t, rec).Items)

	raw, err := srv.kv.Get(context.Background(), localstore.Key(deviceA, localstore.KeyCart))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"quantity":1`)

	rec = srv.do(t, http.MethodDelete, "/api/v1/me/cart", tokenA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[cartResponse](t, rec).Items)
}

func TestCart_CorruptedStateIsEmpty(t *testing.T) {
	srv := newTestServer(t)
	device, token := srv.startSession(t)
	require.NoError(t, srv.kv.Put(context.Background(), localstore.Key(device, localstore.KeyCart), []byte("{oops")))

	rec := srv.do(t, http.MethodGet, "/api/v1/me/cart", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[cartResponse](t, rec).Items)
}
