package http

import (
	"net/http"
	"strconv"
	"strings"

	domproduct "example.com/vibe-storefront/app/internal/domain/product"
)

type listItemsQuery struct {
	Q      string `validate:"omitempty,max=100"`
	SortBy string `validate:"omitempty,oneof=name price_asc price_desc newest"`
}

type relatedQuery struct {
	Limit int `validate:"gte=1,lte=10"`
}

func (a *API) handleListItems(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()
	in := listItemsQuery{
		Q:      params.Get("q"),
		SortBy: params.Get("sort_by"),
	}
	if err := a.validator.Struct(in); err != nil {
		respondValidation(w, err)
		return
	}

	sortKey, err := domproduct.ParseSortKey(in.SortBy)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	items, err := a.productSvc.List(r.Context(), domproduct.Query{
		Text:       in.Q,
		Categories: splitCategories(params.Get("categories")),
		Sort:       sortKey,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleGetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	p, err := a.productSvc.GetByID(r.Context(), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (a *API) handleRelatedItems(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	in := relatedQuery{Limit: domproduct.DefaultRelatedLimit}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			respondError(w, http.StatusBadRequest, err)
			return
		}
		in.Limit = limit
	}
	if err := a.validator.Struct(in); err != nil {
		respondValidation(w, err)
		return
	}

	items, err := a.productSvc.Related(r.Context(), id, in.Limit)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.productSvc.Categories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

func splitCategories(v string) []string {
	if v == "" {
		return nil
	}
	var out []string
	for _, c := range strings.Split(v, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
