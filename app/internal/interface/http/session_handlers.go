package http

import (
	"net/http"

	dompref "example.com/vibe-storefront/app/internal/domain/preference"
)

type setThemeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

func (a *API) handleStartSession(w http.ResponseWriter, r *http.Request) {
	res, err := a.sessionSvc.Start(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{
		"device_id": res.DeviceID,
		"token":     res.Token,
	})
}

func (a *API) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := a.themeSvc.Theme(r.Context(), deviceID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}

func (a *API) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req setThemeRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidation(w, err)
		return
	}
	theme := dompref.Theme(req.Theme)
	if err := a.themeSvc.SetTheme(r.Context(), deviceID(r.Context()), theme); err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}

func (a *API) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := a.themeSvc.ToggleTheme(r.Context(), deviceID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"theme": string(theme)})
}
