package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	"example.com/vibe-storefront/app/internal/infra/persistence/localstore"
)

func TestKV_GetPutOverwrite(t *testing.T) {
	ctx := context.Background()
	kv, err := Open(ctx, ":memory:")
	require.NoError(t, err)
	defer kv.Close()

	_, err = kv.Get(ctx, "favorites")
	require.ErrorIs(t, err, localstore.ErrKeyNotFound)

	require.NoError(t, kv.Put(ctx, "favorites", []byte("[1]")))
	require.NoError(t, kv.Put(ctx, "favorites", []byte("[1,2]")))

	v, err := kv.Get(ctx, "favorites")
	require.NoError(t, err)
	require.Equal(t, "[1,2]", string(v))
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	kv, err := Open(ctx, path)
	require.NoError(t, err)
	store := localstore.New(kv, nil)
	require.NoError(t, store.SaveCart(ctx, "", []domcart.LineItem{{ID: 3, Name: "Coffee", Price: 24.99, Quantity: 2}}))
	require.NoError(t, kv.Close())

	kv, err = Open(ctx, path)
	require.NoError(t, err)
	defer kv.Close()

	items, err := localstore.New(kv, nil).LoadCart(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].Quantity)
}
