package product

import (
	"sort"
	"strings"
)

type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByPriceAsc  SortKey = "price_asc"
	SortByPriceDesc SortKey = "price_desc"
	SortByNewest    SortKey = "newest"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortByName, SortByPriceAsc, SortByPriceDesc, SortByNewest:
		return true
	}
	return false
}

// ParseSortKey treats an empty string as the default name ordering.
func ParseSortKey(v string) (SortKey, error) {
	if v == "" {
		return SortByName, nil
	}
	k := SortKey(v)
	if !k.IsValid() {
		return "", ErrInvalidSortKey
	}
	return k, nil
}

// Query is a free-text search combined with a category selection and a sort key.
// An empty Categories slice means all categories.
type Query struct {
	Text       string
	Categories []string
	Sort       SortKey
}

func (q Query) Normalized() Query {
	out := Query{
		Text: strings.TrimSpace(q.Text),
		Sort: q.Sort,
	}
	if !out.Sort.IsValid() {
		out.Sort = SortByName
	}
	if len(q.Categories) > 0 {
		out.Categories = append([]string(nil), q.Categories...)
	}
	return out
}

func (q Query) HasCategory(name string) bool {
	for _, c := range q.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// Apply filters items and sorts the result by the query's sort key.
func Apply(items []Product, q Query) []Product {
	q = q.Normalized()
	result := Filter(items, q)
	Sort(result, q.Sort)
	return result
}

// Filter returns the items matching the query text and categories, keeping their
// relative order. The input slice is not modified.
func Filter(items []Product, q Query) []Product {
	q = q.Normalized()
	term := strings.ToLower(q.Text)

	result := make([]Product, 0, len(items))
	for _, p := range items {
		if term != "" && !matchesText(p, term) {
			continue
		}
		if len(q.Categories) > 0 && !q.HasCategory(p.Category) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func matchesText(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

func Sort(items []Product, key SortKey) {
	switch key {
	case SortByPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price < items[j].Price })
	case SortByPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Price > items[j].Price })
	case SortByNewest:
		sort.SliceStable(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	default:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}
}

const (
	DefaultRelatedLimit = 3
	MaxRelatedLimit     = 10
)

// Related returns up to limit items sharing the category of the product with the
// given id, excluding that product.
func Related(items []Product, id int64, limit int) ([]Product, error) {
	var main *Product
	for i := range items {
		if items[i].ID == id {
			main = &items[i]
			break
		}
	}
	if main == nil {
		return nil, ErrProductNotFound
	}

	related := make([]Product, 0, limit)
	for _, p := range items {
		if len(related) >= limit {
			break
		}
		if p.Category == main.Category && p.ID != id {
			related = append(related, p)
		}
	}
	return related, nil
}

func Categories(items []Product) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0)
	for _, p := range items {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}
