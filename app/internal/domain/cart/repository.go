package cart

import "context"

// Repository persists the whole cart of an owner. An empty owner addresses the
// local, unscoped cart.
type Repository interface {
	LoadCart(ctx context.Context, owner string) ([]LineItem, error)
	SaveCart(ctx context.Context, owner string, items []LineItem) error
}
