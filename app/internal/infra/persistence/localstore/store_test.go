package localstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	domfavorite "example.com/vibe-storefront/app/internal/domain/favorite"
	dompref "example.com/vibe-storefront/app/internal/domain/preference"
)

type fakeKV struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string][]byte)}
}

func (f *fakeKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	v, ok := f.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Put(ctx context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.data[key] = value
	return nil
}

func TestKey(t *testing.T) {
	require.Equal(t, "cart", Key("", KeyCart))
	require.Equal(t, "device:abc:favorites", Key("abc", KeyFavorites))
}

func TestLoadCart_AbsentKeyIsEmpty(t *testing.T) {
	store := New(newFakeKV(), nil)

	items, err := store.LoadCart(context.Background(), "")

	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestLoadCart_MalformedJSONIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "garbage", raw: "{not json"},
		{name: "wrong shape", raw: `{"id":1}`},
		{name: "partially valid", raw: `[{"id":1,"quantity":2},"oops"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := newFakeKV()
			kv.data["cart"] = []byte(tt.raw)
			store := New(kv, nil)

			items, err := store.LoadCart(context.Background(), "")

			require.NoError(t, err)
			require.Empty(t, items)
		})
	}
}

func TestSaveCart_WritesJSONArray(t *testing.T) {
	kv := newFakeKV()
	store := New(kv, nil)

	err := store.SaveCart(context.Background(), "", []domcart.LineItem{
		{ID: 1, Name: "Lamp", Price: 79.99, Quantity: 2, ImageURL: "lamp.jpg"},
	})

	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1,"name":"Lamp","price":79.99,"quantity":2,"image_url":"lamp.jpg"}]`, string(kv.data["cart"]))

	require.NoError(t, store.SaveCart(context.Background(), "", nil))
	require.Equal(t, "[]", string(kv.data["cart"]))
}

func TestCart_RoundTripIsScopedByOwner(t *testing.T) {
	store := New(newFakeKV(), nil)
	ctx := context.Background()

	require.NoError(t, store.SaveCart(ctx, "dev-1", []domcart.LineItem{{ID: 7, Quantity: 1}}))

	items, err := store.LoadCart(ctx, "dev-1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	items, err = store.LoadCart(ctx, "dev-2")
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestLoadFavorites_DropsDuplicates(t *testing.T) {
	kv := newFakeKV()
	kv.data["favorites"] = []byte(`[3,1,3,2]`)
	store := New(kv, nil)

	ids, err := store.LoadFavorites(context.Background(), "")

	require.NoError(t, err)
	require.Equal(t, domfavorite.Set{3, 1, 2}, ids)
}

func TestLoadFavorites_MalformedIsEmpty(t *testing.T) {
	kv := newFakeKV()
	kv.data["favorites"] = []byte(`["a","b"]`)
	store := New(kv, nil)

	ids, err := store.LoadFavorites(context.Background(), "")

	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestSaveFavorites_WritesIntegers(t *testing.T) {
	kv := newFakeKV()
	store := New(kv, nil)

	require.NoError(t, store.SaveFavorites(context.Background(), "", domfavorite.Set{4, 2}))
	require.Equal(t, "[4,2]", string(kv.data["favorites"]))
}

func TestTheme_DefaultsAndRoundTrip(t *testing.T) {
	kv := newFakeKV()
	store := New(kv, nil)
	ctx := context.Background()

	theme, err := store.LoadTheme(ctx, "")
	require.NoError(t, err)
	require.Equal(t, dompref.ThemeLight, theme)

	require.NoError(t, store.SaveTheme(ctx, "", dompref.ThemeDark))
	require.Equal(t, "dark", string(kv.data["theme"]))

	theme, err = store.LoadTheme(ctx, "")
	require.NoError(t, err)
	require.Equal(t, dompref.ThemeDark, theme)

	kv.data["theme"] = []byte("neon")
	theme, err = store.LoadTheme(ctx, "")
	require.NoError(t, err)
	require.Equal(t, dompref.ThemeLight, theme)
}

func TestBackendErrorsAreReturned(t *testing.T) {
	boom := errors.New("disk unavailable")
	kv := newFakeKV()
	kv.getErr = boom
	kv.putErr = boom
	store := New(kv, nil)
	ctx := context.Background()

	_, err := store.LoadCart(ctx, "")
	require.ErrorIs(t, err, boom)

	_, err = store.LoadFavorites(ctx, "")
	require.ErrorIs(t, err, boom)

	_, err = store.LoadTheme(ctx, "")
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, store.SaveCart(ctx, "", nil), boom)
	require.ErrorIs(t, store.SaveFavorites(ctx, "", nil), boom)
	require.ErrorIs(t, store.SaveTheme(ctx, "", dompref.ThemeDark), boom)
}
