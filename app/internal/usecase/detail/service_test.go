package detail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type fakeCatalog struct {
	products   map[int64]domproduct.Product
	relatedErr error
	getErr     error
}

func (f *fakeCatalog) GetItem(ctx context.Context, id int64) (*domproduct.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, domproduct.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeCatalog) GetRelated(ctx context.Context, id int64, limit int) ([]domproduct.Product, error) {
	if f.relatedErr != nil {
		return nil, f.relatedErr
	}
	all := make([]domproduct.Product, 0, len(f.products))
	for i := int64(1); i <= int64(len(f.products)); i++ {
		all = append(all, f.products[i])
	}
	return domproduct.Related(all, id, limit)
}

type fakeFavorites struct {
	ids map[int64]bool
	err error
}

func (f *fakeFavorites) IsFavorite(ctx context.Context, owner string, id int64) (bool, error) {
	return f.ids[id], f.err
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{products: map[int64]domproduct.Product{
		1: {ID: 1, Name: "Wireless Headphones", Category: "Electronics"},
		2: {ID: 2, Name: "Minimalist Desk Lamp", Category: "Furniture"},
		3: {ID: 3, Name: "Mechanical Keyboard", Category: "Electronics"},
		4: {ID: 4, Name: "Portable Bluetooth Speaker", Category: "Electronics"},
		5: {ID: 5, Name: "Smart Watch", Category: "Electronics"},
		6: {ID: 6, Name: "Tablet", Category: "Electronics"},
	}}
}

func TestLoad_ProductRelatedAndFavorite(t *testing.T) {
	svc := NewService(newCatalog(), &fakeFavorites{ids: map[int64]bool{1: true}}, nil)

	d, err := svc.Load(context.Background(), "", 1)

	require.NoError(t, err)
	require.Equal(t, "Wireless Headphones", d.Product.Name)
	require.True(t, d.Favorite)
	require.Len(t, d.Related, 3)
	for _, r := range d.Related {
		require.NotEqual(t, int64(1), r.ID)
		require.Equal(t, "Electronics", r.Category)
	}
}

func TestLoad_NotFound(t *testing.T) {
	svc := NewService(newCatalog(), &fakeFavorites{}, nil)

	_, err := svc.Load(context.Background(), "", 77)

	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestLoad_RelatedFailureDegrades(t *testing.T) {
	catalog := newCatalog()
	catalog.relatedErr = errors.New("timeout")
	svc := NewService(catalog, &fakeFavorites{}, nil)

	d, err := svc.Load(context.Background(), "", 2)

	require.NoError(t, err)
	require.NotNil(t, d.Related)
	require.Empty(t, d.Related)
	require.False(t, d.Favorite)
}

func TestLoad_FavoritesError(t *testing.T) {
	svc := NewService(newCatalog(), &fakeFavorites{err: errors.New("storage down")}, nil)

	_, err := svc.Load(context.Background(), "", 2)

	require.EqualError(t, err, "storage down")
}
