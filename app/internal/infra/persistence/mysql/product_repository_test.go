package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

func TestOrderBy(t *testing.T) {
	require.Equal(t, "name ASC, id ASC", orderBy(domproduct.SortByName))
	require.Equal(t, "price ASC, id ASC", orderBy(domproduct.SortByPriceAsc))
	require.Equal(t, "price DESC, id ASC", orderBy(domproduct.SortByPriceDesc))
	require.Equal(t, "id DESC", orderBy(domproduct.SortByNewest))
	require.Equal(t, "name ASC, id ASC", orderBy(""))
}

func TestEscapeLike(t *testing.T) {
	require.Equal(t, `100\% cotton\_set`, escapeLike("100% cotton_set"))
	require.Equal(t, `a\\b`, escapeLike(`a\b`))
}
