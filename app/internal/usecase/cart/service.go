package cart

import (
	"context"
	"sync"

	domcart "example.com/vibe-storefront/app/internal/domain/cart"
	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type CartRepository interface {
	domcart.Repository
}

// Service owns every read-modify-write of the cart. Mutations are serialized so
// concurrent callers in one process never lose updates.
type Service struct {
	mu       sync.Mutex
	cartRepo CartRepository
}

func NewService(cartRepo CartRepository) *Service {
	return &Service{cartRepo: cartRepo}
}

type Summary struct {
	Items  []domcart.LineItem
	Totals domcart.Totals
	Count  int64
}

// AddItem increments the quantity of an existing line item for the product or
// appends a new one.
func (s *Service) AddItem(ctx context.Context, owner string, p domproduct.Product, quantity int64) error {
	if quantity < 1 {
		return domcart.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cartRepo.LoadCart(ctx, owner)
	if err != nil {
		return err
	}

	if i := domcart.Find(items, p.ID); i >= 0 {
		items[i].Quantity += quantity
	} else {
		items = append(items, domcart.LineItem{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Quantity: quantity,
			ImageURL: p.ImageURL,
		})
	}
	return s.cartRepo.SaveCart(ctx, owner, items)
}

// SetQuantity removes the line item when quantity drops below one. Unknown ids
// are ignored.
func (s *Service) SetQuantity(ctx context.Context, owner string, id int64, quantity int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity < 1 {
		return s.removeLocked(ctx, owner, id)
	}

	items, err := s.cartRepo.LoadCart(ctx, owner)
	if err != nil {
		return err
	}
	i := domcart.Find(items, id)
	if i < 0 {
		return nil
	}
	items[i].Quantity = quantity
	return s.cartRepo.SaveCart(ctx, owner, items)
}

func (s *Service) RemoveItem(ctx context.Context, owner string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeLocked(ctx, owner, id)
}

func (s *Service) removeLocked(ctx context.Context, owner string, id int64) error {
	items, err := s.cartRepo.LoadCart(ctx, owner)
	if err != nil {
		return err
	}
	kept := make([]domcart.LineItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.cartRepo.SaveCart(ctx, owner, kept)
}

func (s *Service) Clear(ctx context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartRepo.SaveCart(ctx, owner, []domcart.LineItem{})
}

func (s *Service) Items(ctx context.Context, owner string) ([]domcart.LineItem, error) {
	return s.cartRepo.LoadCart(ctx, owner)
}

func (s *Service) Summary(ctx context.Context, owner string) (*Summary, error) {
	items, err := s.cartRepo.LoadCart(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Items:  items,
		Totals: domcart.ComputeTotals(items),
		Count:  domcart.Count(items),
	}, nil
}
