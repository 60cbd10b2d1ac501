package cart

import "math"

// TaxRate is applied to the subtotal of every order.
const TaxRate = 0.10

type LineItem struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int64   `json:"quantity"`
	ImageURL string  `json:"image_url"`
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// ComputeTotals works in whole cents so that Total always equals Subtotal plus
// Tax rounded to two decimals.
func ComputeTotals(items []LineItem) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += toCents(item.Price) * item.Quantity
	}
	tax := int64(math.Round(float64(subtotal) * TaxRate))
	return Totals{
		Subtotal: fromCents(subtotal),
		Tax:      fromCents(tax),
		Total:    fromCents(subtotal + tax),
	}
}

// Count is the number of units across all line items.
func Count(items []LineItem) int64 {
	var n int64
	for _, item := range items {
		n += item.Quantity
	}
	return n
}

func Find(items []LineItem, id int64) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func toCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}
