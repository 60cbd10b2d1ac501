package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
	"example.com/vibe-storefront/app/internal/infra/security"
	httpapi "example.com/vibe-storefront/app/internal/interface/http"
	cartuc "example.com/vibe-storefront/app/internal/usecase/cart"
	favoriteuc "example.com/vibe-storefront/app/internal/usecase/favorite"
	prefuc "example.com/vibe-storefront/app/internal/usecase/preference"
	productuc "example.com/vibe-storefront/app/internal/usecase/product"
	sessionuc "example.com/vibe-storefront/app/internal/usecase/session"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the catalog API and the device state API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, err := openProductRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer products.close()

	state, err := openStateKV(ctx, cfg)
	if err != nil {
		return err
	}
	defer state.close()

	checks := map[string]httpapi.HealthCheck{}
	if products.ping != nil {
		checks[products.name] = products.ping
	}
	if state.ping != nil {
		checks[state.name] = state.ping
	}

	store := localstore.New(state.value, logger.Named("localstore"))
	productSvc := productuc.NewService(products.value)

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService:  productSvc,
		CartService:     cartuc.NewService(store),
		FavoriteService: favoriteuc.NewService(store, favoriteuc.ProductFinderFunc(productSvc.GetByID), logger.Named("favorites")),
		ThemeService:    prefuc.NewService(store),
		SessionService:  sessionuc.NewService(security.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)),
		Logger:          logger.Named("http"),
		AllowedOrigins:  cfg.AllowedOrigins,
		HealthChecks:    checks,
	})

	addr := cfg.HTTPAddr
	if serveAddr != "" {
		addr = serveAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", addr),
			zap.String("catalog_backend", cfg.CatalogBackend),
			zap.String("state_backend", cfg.StateBackend),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
