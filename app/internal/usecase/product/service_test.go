package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type mockProductRepository struct {
	items     []domproduct.Product
	lastQuery domproduct.Query
	lastLimit int
	listErr   error
}

func (m *mockProductRepository) List(ctx context.Context, q domproduct.Query) ([]domproduct.Product, error) {
	m.lastQuery = q
	if m.listErr != nil {
		return nil, m.listErr
	}
	return domproduct.Apply(m.items, q), nil
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	for _, p := range m.items {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (m *mockProductRepository) Related(ctx context.Context, id int64, limit int) ([]domproduct.Product, error) {
	m.lastLimit = limit
	return domproduct.Related(m.items, id, limit)
}

func (m *mockProductRepository) Categories(ctx context.Context) ([]string, error) {
	return domproduct.Categories(m.items), nil
}

func newRepo() *mockProductRepository {
	return &mockProductRepository{items: []domproduct.Product{
		{ID: 1, Name: "Wireless Headphones", Category: "Electronics", Price: 199.99},
		{ID: 2, Name: "Minimalist Desk Lamp", Category: "Furniture", Price: 79.99},
		{ID: 6, Name: "Mechanical Keyboard", Category: "Electronics", Price: 149.99},
		{ID: 8, Name: "Portable Bluetooth Speaker", Category: "Electronics", Price: 89.99},
	}}
}

func TestList_NormalizesQuery(t *testing.T) {
	repo := newRepo()
	svc := NewService(repo)

	items, err := svc.List(context.Background(), domproduct.Query{Text: "  keyboard  "})

	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "keyboard", repo.lastQuery.Text)
	require.Equal(t, domproduct.SortByName, repo.lastQuery.Sort)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newRepo()
	repo.listErr = errors.New("db down")
	svc := NewService(repo)

	_, err := svc.List(context.Background(), domproduct.Query{})

	require.EqualError(t, err, "db down")
}

func TestGetByID(t *testing.T) {
	svc := NewService(newRepo())

	p, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "Minimalist Desk Lamp", p.Name)

	_, err = svc.GetByID(context.Background(), 99)
	require.ErrorIs(t, err, domproduct.ErrProductNotFound)
}

func TestRelated_ClampsLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "default", limit: 0, want: 3},
		{name: "explicit", limit: 1, want: 1},
		{name: "over max", limit: 50, want: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			svc := NewService(repo)

			_, err := svc.Related(context.Background(), 1, tt.limit)

			require.NoError(t, err)
			require.Equal(t, tt.want, repo.lastLimit)
		})
	}
}

func TestRelated_SameCategoryExcludingItself(t *testing.T) {
	svc := NewService(newRepo())

	related, err := svc.Related(context.Background(), 6, 3)

	require.NoError(t, err)
	require.Len(t, related, 2)
	for _, p := range related {
		require.Equal(t, "Electronics", p.Category)
		require.NotEqual(t, int64(6), p.ID)
	}
}

func TestCategories(t *testing.T) {
	cats, err := NewService(newRepo()).Categories(context.Background())

	require.NoError(t, err)
	require.Equal(t, []string{"Electronics", "Furniture"}, cats)
}
