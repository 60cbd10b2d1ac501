package favorite

import "context"

type Repository interface {
	LoadFavorites(ctx context.Context, owner string) (Set, error)
	SaveFavorites(ctx context.Context, owner string, ids Set) error
}
