package product

import (
	"context"

	dom "example.com/vibe-storefront/app/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, q dom.Query) ([]dom.Product, error) {
	return s.repo.List(ctx, q.Normalized())
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Related clamps limit to 1..MaxRelatedLimit, defaulting to DefaultRelatedLimit.
func (s *Service) Related(ctx context.Context, id int64, limit int) ([]dom.Product, error) {
	switch {
	case limit <= 0:
		limit = dom.DefaultRelatedLimit
	case limit > dom.MaxRelatedLimit:
		limit = dom.MaxRelatedLimit
	}
	return s.repo.Related(ctx, id, limit)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}
