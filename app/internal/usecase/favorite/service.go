package favorite

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domfavorite "example.com/vibe-storefront/app/internal/domain/favorite"
	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type FavoriteRepository interface {
	domfavorite.Repository
}

type ProductFinder interface {
	GetItem(ctx context.Context, id int64) (*domproduct.Product, error)
}

// ProductFinderFunc adapts a lookup function to ProductFinder.
type ProductFinderFunc func(ctx context.Context, id int64) (*domproduct.Product, error)

func (f ProductFinderFunc) GetItem(ctx context.Context, id int64) (*domproduct.Product, error) {
	return f(ctx, id)
}

// maxLookups bounds concurrent catalog requests when resolving favorites.
const maxLookups = 4

type Service struct {
	mu       sync.Mutex
	favRepo  FavoriteRepository
	products ProductFinder
	logger   *zap.Logger
}

func NewService(favRepo FavoriteRepository, products ProductFinder, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		favRepo:  favRepo,
		products: products,
		logger:   logger,
	}
}

func (s *Service) List(ctx context.Context, owner string) (domfavorite.Set, error) {
	return s.favRepo.LoadFavorites(ctx, owner)
}

func (s *Service) IsFavorite(ctx context.Context, owner string, id int64) (bool, error) {
	ids, err := s.favRepo.LoadFavorites(ctx, owner)
	if err != nil {
		return false, err
	}
	return ids.Contains(id), nil
}

// AddFavorite is idempotent: an id already present is not appended again.
func (s *Service) AddFavorite(ctx context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.favRepo.LoadFavorites(ctx, owner)
	if err != nil {
		return err
	}
	if ids.Contains(id) {
		return nil
	}
	return s.favRepo.SaveFavorites(ctx, owner, ids.Add(id))
}

func (s *Service) RemoveFavorite(ctx context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.favRepo.LoadFavorites(ctx, owner)
	if err != nil {
		return err
	}
	return s.favRepo.SaveFavorites(ctx, owner, ids.Remove(id))
}

// ToggleFavorite flips membership of id and reports whether it is now a favorite.
func (s *Service) ToggleFavorite(ctx context.Context, owner string, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.favRepo.LoadFavorites(ctx, owner)
	if err != nil {
		return false, err
	}
	if ids.Contains(id) {
		return false, s.favRepo.SaveFavorites(ctx, owner, ids.Remove(id))
	}
	return true, s.favRepo.SaveFavorites(ctx, owner, ids.Add(id))
}

// Products resolves the favorites through the catalog. Ids that cannot be
// fetched are skipped; the order of the favorites list is kept.
func (s *Service) Products(ctx context.Context, owner string) ([]domproduct.Product, error) {
	ids, err := s.favRepo.LoadFavorites(ctx, owner)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domproduct.Product{}, nil
	}

	found := make([]*domproduct.Product, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxLookups)
	for i, id := range ids {
		g.Go(func() error {
			p, err := s.products.GetItem(gctx, id)
			if err != nil {
				if !errors.Is(err, domproduct.ErrProductNotFound) {
					s.logger.Warn("favorite lookup failed", zap.Int64("product_id", id), zap.Error(err))
				}
				return nil
			}
			found[i] = p
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domproduct.Product, 0, len(ids))
	for _, p := range found {
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}
