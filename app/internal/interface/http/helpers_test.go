package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
	"example.com/vibe-storefront/app/internal/infra/persistence/memory"
	"example.com/vibe-storefront/app/internal/infra/security"
	cartuc "example.com/vibe-storefront/app/internal/usecase/cart"
	favoriteuc "example.com/vibe-storefront/app/internal/usecase/favorite"
	prefuc "example.com/vibe-storefront/app/internal/usecase/preference"
	productuc "example.com/vibe-storefront/app/internal/usecase/product"
	sessionuc "example.com/vibe-storefront/app/internal/usecase/session"
)

type testServer struct {
	router chi.Router
	kv     *memory.KV
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	kv := memory.NewKV()
	store := localstore.New(kv, nil)
	productSvc := productuc.NewService(memory.NewSampleProductRepository())
	api := NewAPI(Dependencies{
		ProductService:  productSvc,
		CartService:     cartuc.NewService(store),
		FavoriteService: favoriteuc.NewService(store, favoriteuc.ProductFinderFunc(productSvc.GetByID), nil),
		ThemeService:    prefuc.NewService(store),
		SessionService:  sessionuc.NewService(security.NewJWTService("test-secret", time.Hour)),
		AllowedOrigins:  []string{"http://localhost:5173"},
	})
	return &testServer{router: api.Router(), kv: kv}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) doWithHeaders(t *testing.T, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) startSession(t *testing.T) (string, string) {
	t.Helper()

	rec := s.do(t, http.MethodPost, "/api/v1/sessions", "", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		DeviceID string `json:"device_id"`
		Token    string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.DeviceID)
	require.NotEmpty(t, resp.Token)
	return resp.DeviceID, resp.Token
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}
