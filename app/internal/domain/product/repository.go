package product

import "context"

type Repository interface {
	List(ctx context.Context, q Query) ([]Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	Related(ctx context.Context, id int64, limit int) ([]Product, error)
	Categories(ctx context.Context) ([]string, error)
}
