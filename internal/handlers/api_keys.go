package handlers

//go:generate mockgen -source=api_keys.go -destination=api_keys_mock.go -package=handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/pixelift/pixelift-api/internal/models"
	"github.com/pixelift/pixelift-api/internal/services"
)

// APIKeyManager issues, lists and revokes API keys.
type APIKeyManager interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*services.CreatedAPIKey, error)
	List(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error)
	Revoke(ctx context.Context, userID, keyID uuid.UUID) error
}

// CreateAPIKeyRequest represents the JSON body for key creation
// swagger:model CreateAPIKeyRequest
type CreateAPIKeyRequest struct {
	// Label of the key
	// required: true
	// example: ci pipeline
	Name string `json:"name" validate:"required,max=100"`
}

// CreateAPIKeyResponse carries the plaintext key, shown only once
// swagger:model CreateAPIKeyResponse
type CreateAPIKeyResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Prefix string `json:"prefix"`
	// example: pk_0a1b2c3d_0123456789abcdef0123456789abcdef
	Key string `json:"key"`
}

// APIKeyResponse describes a key without its secret
// swagger:model APIKeyResponse
type APIKeyResponse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`
	RevokedAt  *time.Time `json:"revokedAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewCreateAPIKeyHandler issues a new API key.
// @Summary Create API key
// @Tags account
// @Accept json
// @Produce json
// @Param request body handlers.CreateAPIKeyRequest true "Key request"
// @Success 201 {object} handlers.CreateAPIKeyResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /keys [post]
// @Security BearerAuth
func NewCreateAPIKeyHandler(keys APIKeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var body CreateAPIKeyRequest
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(w, err)
			return
		}

		created, err := keys.Create(r.Context(), user.ID, body.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, CreateAPIKeyResponse{
			ID:     created.ID.String(),
			Name:   created.Name,
			Prefix: created.Prefix,
			Key:    created.Key,
		})
	}
}

// NewListAPIKeysHandler lists the caller's keys.
// @Summary List API keys
// @Tags account
// @Produce json
// @Success 200 {array} handlers.APIKeyResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /keys [get]
// @Security BearerAuth
func NewListAPIKeysHandler(keys APIKeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		list, err := keys.List(r.Context(), user.ID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		resp := make([]APIKeyResponse, 0, len(list))
		for _, k := range list {
			resp = append(resp, APIKeyResponse{
				ID:         k.ID.String(),
				Name:       k.Name,
				Prefix:     k.Prefix,
				LastUsedAt: k.LastUsedAt,
				RevokedAt:  k.RevokedAt,
				CreatedAt:  k.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewRevokeAPIKeyHandler revokes one of the caller's keys.
// @Summary Revoke API key
// @Tags account
// @Param id path string true "Key id"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /keys/{id} [delete]
// @Security BearerAuth
func NewRevokeAPIKeyHandler(keys APIKeyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, http.StatusNotFound, services.ErrAPIKeyNotFound.Error())
			return
		}

		err = keys.Revoke(r.Context(), user.ID, id)
		if errors.Is(err, services.ErrAPIKeyNotFound) {
			writeError(w, http.StatusNotFound, services.ErrAPIKeyNotFound.Error())
			return
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterAPIKeyHandlers registers the key management routes
func RegisterAPIKeyHandlers(r chi.Router, create, list, revoke http.HandlerFunc) {
	r.Post("/keys", create)
	r.Get("/keys", list)
	r.Delete("/keys/{id}", revoke)
}
