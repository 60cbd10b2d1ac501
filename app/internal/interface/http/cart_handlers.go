package http

import (
	"net/http"
)

type addCartItemRequest struct {
	ProductID int64  `json:"product_id" validate:"required,gt=0"`
	Quantity  *int64 `json:"quantity" validate:"omitempty,gt=0"`
}

type setQuantityRequest struct {
	Quantity *int64 `json:"quantity" validate:"required"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := a.cartSvc.Summary(r.Context(), deviceID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(summary))
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidation(w, err)
		return
	}
	quantity := int64(1)
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	p, err := a.productSvc.GetByID(r.Context(), req.ProductID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	owner := deviceID(r.Context())
	if err := a.cartSvc.AddItem(r.Context(), owner, *p, quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondCart(w, r, http.StatusCreated)
}

func (a *API) handleSetCartQuantity(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	var req setQuantityRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidation(w, err)
		return
	}

	if err := a.cartSvc.SetQuantity(r.Context(), deviceID(r.Context()), id, *req.Quantity); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := a.cartSvc.RemoveItem(r.Context(), deviceID(r.Context()), id); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondCart(w, r, http.StatusOK)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cartSvc.Clear(r.Context(), deviceID(r.Context())); err != nil {
		handleDomainError(w, err)
		return
	}
	a.respondCart(w, r, http.StatusOK)
}

func (a *API) respondCart(w http.ResponseWriter, r *http.Request, status int) {
	summary, err := a.cartSvc.Summary(r.Context(), deviceID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, status, mapCart(summary))
}
