package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = `id, name, description, category, price, image_url`

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT `+productColumns+`
        FROM products WHERE id = ?
    `, id)

	var p domproduct.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context, q domproduct.Query) ([]domproduct.Product, error) {
	q = q.Normalized()
	query := `
        SELECT ` + productColumns + `
        FROM products
    `
	var clauses []string
	var args []any

	if q.Text != "" {
		clauses = append(clauses, "(LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?)")
		like := fmt.Sprintf("%%%s%%", escapeLike(strings.ToLower(q.Text)))
		args = append(args, like, like, like)
	}
	if len(q.Categories) > 0 {
		clauses = append(clauses, "category IN (?"+strings.Repeat(",?", len(q.Categories)-1)+")")
		for _, c := range q.Categories {
			args = append(args, c)
		}
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY " + orderBy(q.Sort)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *ProductRepository) Related(ctx context.Context, id int64, limit int) ([]domproduct.Product, error) {
	main, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
        SELECT `+productColumns+`
        FROM products
        WHERE category = ? AND id <> ?
        ORDER BY id
        LIMIT ?
    `, main.Category, id, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProducts(rows)
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT category FROM products ORDER BY category`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func orderBy(key domproduct.SortKey) string {
	switch key {
	case domproduct.SortByPriceAsc:
		return "price ASC, id ASC"
	case domproduct.SortByPriceDesc:
		return "price DESC, id ASC"
	case domproduct.SortByNewest:
		return "id DESC"
	default:
		return "name ASC, id ASC"
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanProducts(rows *sql.Rows) ([]domproduct.Product, error) {
	products := []domproduct.Product{}
	for rows.Next() {
		var p domproduct.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
