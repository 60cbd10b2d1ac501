package detail

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

const relatedLimit = domproduct.DefaultRelatedLimit

type Catalog interface {
	GetItem(ctx context.Context, id int64) (*domproduct.Product, error)
	GetRelated(ctx context.Context, id int64, limit int) ([]domproduct.Product, error)
}

type Favorites interface {
	IsFavorite(ctx context.Context, owner string, id int64) (bool, error)
}

type Detail struct {
	Product  domproduct.Product
	Related  []domproduct.Product
	Favorite bool
}

// Service assembles the product detail view: the product itself, a few items of
// the same category and whether the product is a favorite.
type Service struct {
	catalog   Catalog
	favorites Favorites
	logger    *zap.Logger
}

func NewService(catalog Catalog, favorites Favorites, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{catalog: catalog, favorites: favorites, logger: logger}
}

// Load fails when the product itself cannot be fetched. A failed related lookup
// leaves Related empty.
func (s *Service) Load(ctx context.Context, owner string, id int64) (*Detail, error) {
	var (
		product *domproduct.Product
		related []domproduct.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.catalog.GetItem(gctx, id)
		if err != nil {
			return err
		}
		product = p
		return nil
	})
	g.Go(func() error {
		items, err := s.catalog.GetRelated(gctx, id, relatedLimit)
		if err != nil {
			s.logger.Debug("related lookup failed", zap.Int64("product_id", id), zap.Error(err))
			return nil
		}
		related = items
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fav, err := s.favorites.IsFavorite(ctx, owner, id)
	if err != nil {
		return nil, err
	}

	if related == nil {
		related = []domproduct.Product{}
	}
	return &Detail{Product: *product, Related: related, Favorite: fav}, nil
}
