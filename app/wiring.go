package main

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"example.com/vibe-storefront/app/internal/config"
	domproduct "example.com/vibe-storefront/app/internal/domain/product"
	"example.com/vibe-storefront/app/internal/infra/catalog"
	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
	"example.com/vibe-storefront/app/internal/infra/persistence/memory"
	mysqlstore "example.com/vibe-storefront/app/internal/infra/persistence/mysql"
	"example.com/vibe-storefront/app/internal/infra/persistence/postgres"
	"example.com/vibe-storefront/app/internal/infra/persistence/sqlite"
	cartuc "example.com/vibe-storefront/app/internal/usecase/cart"
	detailuc "example.com/vibe-storefront/app/internal/usecase/detail"
	favoriteuc "example.com/vibe-storefront/app/internal/usecase/favorite"
	prefuc "example.com/vibe-storefront/app/internal/usecase/preference"
)

// backend is an opened storage backend with its readiness probe.
type backend[T any] struct {
	name  string
	value T
	ping  func(ctx context.Context) error
	close func()
}

func openStateKV(ctx context.Context, cfg config.Config) (*backend[localstore.KV], error) {
	switch cfg.StateBackend {
	case "memory":
		return &backend[localstore.KV]{name: "memory", value: memory.NewKV(), close: func() {}}, nil
	case "sqlite":
		kv, err := sqlite.Open(ctx, cfg.StatePath)
		if err != nil {
			return nil, err
		}
		return &backend[localstore.KV]{name: "sqlite", value: kv, ping: kv.Ping, close: func() { _ = kv.Close() }}, nil
	case "mysql":
		db, err := mysqlstore.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return &backend[localstore.KV]{name: "mysql", value: mysqlstore.NewKVRepository(db), ping: db.PingContext, close: func() { _ = db.Close() }}, nil
	case "postgres":
		kv, err := postgres.Connect(ctx, cfg.PGDSN)
		if err != nil {
			return nil, err
		}
		return &backend[localstore.KV]{name: "pg", value: kv, ping: kv.Ping, close: kv.Close}, nil
	}
	return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
}

func openProductRepository(ctx context.Context, cfg config.Config) (*backend[domproduct.Repository], error) {
	switch cfg.CatalogBackend {
	case "memory":
		return &backend[domproduct.Repository]{name: "memory", value: memory.NewSampleProductRepository(), close: func() {}}, nil
	case "mysql":
		db, err := mysqlstore.Open(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		return &backend[domproduct.Repository]{name: "mysql", value: mysqlstore.NewProductRepository(db), ping: db.PingContext, close: func() { _ = db.Close() }}, nil
	}
	return nil, fmt.Errorf("unknown catalog backend %q", cfg.CatalogBackend)
}

// client holds the client-side services. The CLI acts for the local user, so
// every call uses the empty owner.
type client struct {
	catalog   *catalog.Client
	cart      *cartuc.Service
	favorites *favoriteuc.Service
	theme     *prefuc.Service
	detail    *detailuc.Service
	close     func()
}

const localOwner = ""

func openClient(ctx context.Context, cfg config.Config, logger *zap.Logger) (*client, error) {
	state, err := openStateKV(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cat := newCatalogClient(cfg)
	store := localstore.New(state.value, logger.Named("localstore"))
	favorites := favoriteuc.NewService(store, cat, logger.Named("favorites"))
	return &client{
		catalog:   cat,
		cart:      cartuc.NewService(store),
		favorites: favorites,
		theme:     prefuc.NewService(store),
		detail:    detailuc.NewService(cat, favorites, logger.Named("detail")),
		close:     state.close,
	}, nil
}

func newCatalogClient(cfg config.Config) *catalog.Client {
	return catalog.New(cfg.CatalogURL, catalog.WithHTTPClient(&http.Client{Timeout: cfg.CatalogTimeout}))
}
