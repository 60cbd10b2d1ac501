package memory

import (
	"context"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

// ProductRepository serves a fixed, read-only catalog.
type ProductRepository struct {
	items []domproduct.Product
}

func NewProductRepository(items []domproduct.Product) *ProductRepository {
	cloned := make([]domproduct.Product, len(items))
	copy(cloned, items)
	return &ProductRepository{items: cloned}
}

// NewSampleProductRepository returns the demo catalog the storefront ships with.
func NewSampleProductRepository() *ProductRepository {
	return NewProductRepository(SampleProducts())
}

func (r *ProductRepository) List(ctx context.Context, q domproduct.Query) ([]domproduct.Product, error) {
	return domproduct.Apply(r.items, q), nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	for _, p := range r.items {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (r *ProductRepository) Related(ctx context.Context, id int64, limit int) ([]domproduct.Product, error) {
	return domproduct.Related(r.items, id, limit)
}

func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	return domproduct.Categories(r.items), nil
}

const imageHost = "https://images.unsplash.com/"

func SampleProducts() []domproduct.Product {
	return []domproduct.Product{
		{ID: 1, Name: "Wireless Headphones", Description: "Premium noise-cancelling wireless headphones with 30-hour battery life", Category: "Electronics", Price: 199.99, ImageURL: imageHost + "photo-1505740420928-5e560c06d30e?w=400&h=300&fit=crop"},
		{ID: 2, Name: "Minimalist Desk Lamp", Description: "Sleek LED desk lamp with adjustable brightness and color temperature", Category: "Furniture", Price: 79.99, ImageURL: imageHost + "photo-1565636192335-14c46fa1120d?w=400&h=300&fit=crop"},
		{ID: 3, Name: "Organic Coffee Beans", Description: "Single-origin Ethiopian coffee beans with rich, complex flavor notes", Category: "Food & Beverage", Price: 24.99, ImageURL: imageHost + "photo-1559056199-641a0ac8b3f4?w=400&h=300&fit=crop"},
		{ID: 4, Name: "Yoga Mat Pro", Description: "Non-slip yoga mat with carrying strap, perfect for home or studio practice", Category: "Sports & Fitness", Price: 49.99, ImageURL: imageHost + "photo-1601925260368-ae2f83cf8b7f?w=400&h=300&fit=crop"},
		{ID: 5, Name: "Stainless Steel Water Bottle", Description: "Insulated water bottle keeps drinks cold for 24 hours or hot for 12 hours", Category: "Sports & Fitness", Price: 34.99, ImageURL: imageHost + "photo-1602143407151-7e36dd5f5a0e?w=400&h=300&fit=crop"},
		{ID: 6, Name: "Mechanical Keyboard", Description: "RGB mechanical keyboard with custom switches and programmable keys", Category: "Electronics", Price: 149.99, ImageURL: imageHost + "photo-1587829191301-4a71490d63d2?w=400&h=300&fit=crop"},
		{ID: 7, Name: "Bamboo Cutting Board Set", Description: "Three-piece bamboo cutting board set with natural antimicrobial properties", Category: "Kitchen", Price: 39.99, ImageURL: imageHost + "photo-1610701596007-11502861dcfa?w=400&h=300&fit=crop"},
		{ID: 8, Name: "Portable Bluetooth Speaker", Description: "Waterproof portable speaker with 360-degree sound and 12-hour battery", Category: "Electronics", Price: 89.99, ImageURL: imageHost + "photo-1589003077984-894e133da26d?w=400&h=300&fit=crop"},
		{ID: 9, Name: "Linen Bedding Set", Description: "Premium Egyptian linen bedding set with natural temperature regulation", Category: "Home & Decor", Price: 129.99, ImageURL: imageHost + "photo-1578500494198-246f612d03b3?w=400&h=300&fit=crop"},
		{ID: 10, Name: "Ceramic Plant Pot", Description: "Handcrafted ceramic plant pot with drainage hole and minimalist design", Category: "Home & Decor", Price: 29.99, ImageURL: imageHost + "photo-1578482326433-ad12cb7d050f?w=400&h=300&fit=crop"},
		{ID: 11, Name: "Leather Notebook", Description: "Premium leather-bound notebook with 200 pages of quality paper", Category: "Stationery", Price: 44.99, ImageURL: imageHost + "photo-1507842217343-583f20270319?w=400&h=300&fit=crop"},
		{ID: 12, Name: "Aromatic Candle", Description: "Hand-poured soy candle with natural essential oils and 40-hour burn time", Category: "Home & Decor", Price: 32.99, ImageURL: imageHost + "photo-1608571423902-eed4a5ad8108?w=400&h=300&fit=crop"},
	}
}
