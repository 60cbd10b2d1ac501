// Package localstore keeps the cart, favorites and theme of a device in a
// string-keyed key-value backend, encoded the same way a browser keeps them in
// local storage.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	domfavorite "example.com/vibe-storefront/app/internal/domain/favorite"
	dompref "example.com/vibe-storefront/app/internal/domain/preference"
)

const (
	KeyCart      = "cart"
	KeyFavorites = "favorites"
	KeyTheme     = "theme"
)

var ErrKeyNotFound = errors.New("key not found")

// KV is a byte-oriented key-value backend. Get returns ErrKeyNotFound for
// absent keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

type Store struct {
	kv     KV
	logger *zap.Logger
}

func New(kv KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger}
}

// Key scopes name to owner. The unscoped keys are used as-is.
func Key(owner, name string) string {
	if owner == "" {
		return name
	}
	return "device:" + owner + ":" + name
}

func (s *Store) LoadCart(ctx context.Context, owner string) ([]domcart.LineItem, error) {
	items, err := loadJSON[[]domcart.LineItem](ctx, s, Key(owner, KeyCart))
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domcart.LineItem{}
	}
	return items, nil
}

func (s *Store) SaveCart(ctx context.Context, owner string, items []domcart.LineItem) error {
	if items == nil {
		items = []domcart.LineItem{}
	}
	return s.saveJSON(ctx, Key(owner, KeyCart), items)
}

func (s *Store) LoadFavorites(ctx context.Context, owner string) (domfavorite.Set, error) {
	ids, err := loadJSON[[]int64](ctx, s, Key(owner, KeyFavorites))
	if err != nil {
		return nil, err
	}
	return domfavorite.Set(ids).Dedup(), nil
}

func (s *Store) SaveFavorites(ctx context.Context, owner string, ids domfavorite.Set) error {
	if ids == nil {
		ids = domfavorite.Set{}
	}
	return s.saveJSON(ctx, Key(owner, KeyFavorites), []int64(ids))
}

// LoadTheme falls back to the light theme when nothing valid is stored.
func (s *Store) LoadTheme(ctx context.Context, owner string) (dompref.Theme, error) {
	raw, err := s.kv.Get(ctx, Key(owner, KeyTheme))
	if errors.Is(err, ErrKeyNotFound) {
		return dompref.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}
	theme, err := dompref.ParseTheme(string(raw))
	if err != nil {
		s.logger.Warn("ignoring stored theme", zap.String("value", string(raw)))
		return dompref.ThemeLight, nil
	}
	return theme, nil
}

func (s *Store) SaveTheme(ctx context.Context, owner string, theme dompref.Theme) error {
	if err := s.kv.Put(ctx, Key(owner, KeyTheme), []byte(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// loadJSON yields the zero value when the key is absent or its value does not
// decode. Only backend failures are returned.
func loadJSON[T any](ctx context.Context, s *Store, key string) (T, error) {
	var zero T
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("load %s: %w", key, err)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.logger.Warn("discarding malformed collection", zap.String("key", key), zap.Error(err))
		return zero, nil
	}
	return v, nil
}

func (s *Store) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
