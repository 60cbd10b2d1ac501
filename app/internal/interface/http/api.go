package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	dompref "example.com/vibe-storefront/app/internal/domain/preference"
	domproduct "example.com/vibe-storefront/app/internal/domain/product"
	cartuc "example.com/vibe-storefront/app/internal/usecase/cart"
	favoriteuc "example.com/vibe-storefront/app/internal/usecase/favorite"
	prefuc "example.com/vibe-storefront/app/internal/usecase/preference"
	productuc "example.com/vibe-storefront/app/internal/usecase/product"
	sessionuc "example.com/vibe-storefront/app/internal/usecase/session"
)

type API struct {
	productSvc     *productuc.Service
	cartSvc        *cartuc.Service
	favoriteSvc    *favoriteuc.Service
	themeSvc       *prefuc.Service
	sessionSvc     *sessionuc.Service
	validator      *validator.Validate
	logger         *zap.Logger
	allowedOrigins []string
	healthChecks   map[string]HealthCheck
}

// HealthCheck probes one backing service, e.g. a database ping.
type HealthCheck func(ctx context.Context) error

type Dependencies struct {
	ProductService  *productuc.Service
	CartService     *cartuc.Service
	FavoriteService *favoriteuc.Service
	ThemeService    *prefuc.Service
	SessionService  *sessionuc.Service
	Logger          *zap.Logger
	AllowedOrigins  []string
	// HealthChecks are served under /health/{name}.
	HealthChecks map[string]HealthCheck
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &API{
		productSvc:     deps.ProductService,
		cartSvc:        deps.CartService,
		favoriteSvc:    deps.FavoriteService,
		themeSvc:       deps.ThemeService,
		sessionSvc:     deps.SessionService,
		validator:      validator.New(),
		logger:         logger,
		allowedOrigins: deps.AllowedOrigins,
		healthChecks:   deps.HealthChecks,
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   a.allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/health/{name}", a.handleHealthCheck)
	r.Get("/", a.handleIndex)

	r.Route("/api", func(r chi.Router) {
		r.Get("/items", a.handleListItems)
		r.Get("/items/{id}", a.handleGetItem)
		r.Get("/items/{id}/related", a.handleRelatedItems)
		r.Get("/categories", a.handleListCategories)

		r.Route("/v1", func(r chi.Router) {
			r.Post("/sessions", a.handleStartSession)

			r.Group(func(dr chi.Router) {
				dr.Use(a.deviceMiddleware)

				dr.Get("/me/cart", a.handleGetCart)
				dr.Delete("/me/cart", a.handleClearCart)
				dr.Post("/me/cart/items", a.handleAddCartItem)
				dr.Put("/me/cart/items/{id}", a.handleSetCartQuantity)
				dr.Delete("/me/cart/items/{id}", a.handleRemoveCartItem)

				dr.Get("/me/favorites", a.handleListFavorites)
				dr.Post("/me/favorites", a.handleAddFavorite)
				dr.Delete("/me/favorites/{id}", a.handleRemoveFavorite)
				dr.Post("/me/favorites/{id}/toggle", a.handleToggleFavorite)

				dr.Get("/me/theme", a.handleGetTheme)
				dr.Put("/me/theme", a.handleSetTheme)
				dr.Post("/me/theme/toggle", a.handleToggleTheme)
			})
		})
	})

	return r
}

func (a *API) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Welcome to the storefront catalog API",
		"endpoints": map[string]string{
			"search":        "/api/items?q=search_term&sort_by=name&categories=Electronics,Furniture",
			"item_detail":   "/api/items/{item_id}",
			"related_items": "/api/items/{item_id}/related?limit=3",
			"categories":    "/api/categories",
			"sessions":      "/api/v1/sessions",
		},
	})
}

func (a *API) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	check, ok := a.healthChecks[name]
	if !ok {
		respondError(w, http.StatusNotFound, errors.New("unknown health check"))
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := check(ctx); err != nil {
		a.logger.Warn("health check failed", zap.String("check", name), zap.Error(err))
		respondError(w, http.StatusServiceUnavailable, errors.New(name+" unavailable"))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "check": name})
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// respondValidation reports failed validator rules per field.
func respondValidation(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Details: details})
}

func parseIDParam(r *http.Request, key string) (int64, error) {
	idStr := chi.URLParam(r, key)
	return strconv.ParseInt(idStr, 10, 64)
}

func mapCart(summary *cartuc.Summary) map[string]any {
	items := summary.Items
	if items == nil {
		items = []domcart.LineItem{}
	}
	return map[string]any{
		"items":    items,
		"count":    summary.Count,
		"subtotal": summary.Totals.Subtotal,
		"tax":      summary.Totals.Tax,
		"total":    summary.Totals.Total,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, sessionuc.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, err)
	case errors.Is(err, domcart.ErrInvalidQuantity),
		errors.Is(err, domproduct.ErrInvalidSortKey),
		errors.Is(err, dompref.ErrInvalidTheme):
		respondError(w, http.StatusUnprocessableEntity, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
