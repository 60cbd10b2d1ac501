package http

import (
	"net/http"
)

type addFavoriteRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

// handleListFavorites returns the favorite ids, or the resolved products when
// called with ?expand=products.
func (a *API) handleListFavorites(w http.ResponseWriter, r *http.Request) {
	owner := deviceID(r.Context())
	if r.URL.Query().Get("expand") == "products" {
		products, err := a.favoriteSvc.Products(r.Context(), owner)
		if err != nil {
			handleDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": products})
		return
	}

	ids, err := a.favoriteSvc.List(r.Context(), owner)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"favorites": []int64(ids)})
}

func (a *API) handleAddFavorite(w http.ResponseWriter, r *http.Request) {
	var req addFavoriteRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidation(w, err)
		return
	}
	if err := a.favoriteSvc.AddFavorite(r.Context(), deviceID(r.Context()), req.ProductID); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"product_id": req.ProductID, "favorite": true})
}

func (a *API) handleRemoveFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.favoriteSvc.RemoveFavorite(r.Context(), deviceID(r.Context()), id); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product_id": id, "favorite": false})
}

func (a *API) handleToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	favorite, err := a.favoriteSvc.ToggleFavorite(r.Context(), deviceID(r.Context()), id)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"product_id": id, "favorite": favorite})
}
