package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CreditsResponse is the caller's balance
// swagger:model CreditsResponse
type CreditsResponse struct {
	// example: 98
	Credits int `json:"credits"`
	// Successful operations so far
	// example: 12
	TotalUsage int `json:"totalUsage"`
}

// NewCreditsHandler returns the caller's credit balance.
// @Summary Credit balance
// @Tags account
// @Produce json
// @Success 200 {object} handlers.CreditsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /credits [get]
// @Security BearerAuth
func NewCreditsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, CreditsResponse{Credits: user.Credits, TotalUsage: user.TotalUsage})
	}
}

// RegisterCreditsHandler registers the balance route
func RegisterCreditsHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/credits", h)
}
