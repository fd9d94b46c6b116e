package handlers

//go:generate mockgen -source=webhooks.go -destination=webhooks_mock.go -package=handlers

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

const (
	msgWebhookNotFound = "Webhook not found"
	defaultLogLimit    = 50
	maxLogLimit        = 500
)

// WebhookManager is the admin surface of the webhook service.
type WebhookManager interface {
	Create(ctx context.Context, in services.WebhookInput) (*models.Webhook, error)
	Update(ctx context.Context, id uuid.UUID, in services.WebhookInput) (*models.Webhook, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]models.Webhook, error)
	Logs(ctx context.Context, id uuid.UUID, limit int) ([]models.WebhookLog, error)
}

// WebhookRequest represents the JSON body for creating or updating a webhook
// swagger:model WebhookRequest
type WebhookRequest struct {
	// Delivery URL
	// required: true
	// example: https://hooks.example.com/pixelift
	URL string `json:"url" validate:"required,http_url"`
	// Subscribed events
	// required: true
	// example: ["image.completed","credits.depleted"]
	Events []string `json:"events" validate:"required,min=1,dive,oneof=image.completed image.failed credits.depleted"`
	// Defaults to true
	Active *bool `json:"active"`
}

// WebhookResponse describes a webhook; the secret is only returned on creation
// swagger:model WebhookResponse
type WebhookResponse struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Active    bool      `json:"active"`
	Secret    string    `json:"secret,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toWebhookResponse(wh *models.Webhook) WebhookResponse {
	return WebhookResponse{
		ID:        wh.ID.String(),
		URL:       wh.URL,
		Events:    []string(wh.Events),
		Active:    wh.Active,
		CreatedAt: wh.CreatedAt,
		UpdatedAt: wh.UpdatedAt,
	}
}

func (req WebhookRequest) input() services.WebhookInput {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return services.WebhookInput{URL: req.URL, Events: req.Events, Active: active}
}

func writeWebhookError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrWebhookNotFound):
		writeError(w, http.StatusNotFound, msgWebhookNotFound)
	case errors.Is(err, services.ErrInvalidWebhookEvent):
		writeError(w, http.StatusBadRequest, "Invalid request: "+err.Error())
	default:
		writeServiceError(w, err)
	}
}

func webhookID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, msgWebhookNotFound)
		return uuid.Nil, false
	}
	return id, true
}

// NewListWebhooksHandler lists all webhooks.
// @Summary List webhooks
// @Tags admin
// @Produce json
// @Success 200 {array} handlers.WebhookResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/webhooks [get]
// @Security BearerAuth
func NewListWebhooksHandler(webhooks WebhookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := webhooks.List(r.Context())
		if err != nil {
			writeWebhookError(w, err)
			return
		}

		resp := make([]WebhookResponse, 0, len(list))
		for i := range list {
			resp = append(resp, toWebhookResponse(&list[i]))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewCreateWebhookHandler registers a webhook.
// @Summary Create webhook
// @Tags admin
// @Accept json
// @Produce json
// @Param request body handlers.WebhookRequest true "Webhook"
// @Success 201 {object} handlers.WebhookResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 403 {object} handlers.ErrorResponse
// @Router /admin/webhooks [post]
// @Security BearerAuth
func NewCreateWebhookHandler(webhooks WebhookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body WebhookRequest
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(w, err)
			return
		}

		wh, err := webhooks.Create(r.Context(), body.input())
		if err != nil {
			writeWebhookError(w, err)
			return
		}

		resp := toWebhookResponse(wh)
		resp.Secret = wh.Secret
		writeJSON(w, http.StatusCreated, resp)
	}
}

// NewUpdateWebhookHandler replaces a webhook's URL, events and state.
// @Summary Update webhook
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Webhook id"
// @Param request body handlers.WebhookRequest true "Webhook"
// @Success 200 {object} handlers.WebhookResponse
// @Failure 400 {object} handlers.ErrorResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/webhooks/{id} [put]
// @Security BearerAuth
func NewUpdateWebhookHandler(webhooks WebhookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := webhookID(w, r)
		if !ok {
			return
		}

		var body WebhookRequest
		if err := decodeJSON(w, r, &body); err != nil {
			writeServiceError(w, err)
			return
		}

		wh, err := webhooks.Update(r.Context(), id, body.input())
		if err != nil {
			writeWebhookError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWebhookResponse(wh))
	}
}

// NewDeleteWebhookHandler removes a webhook.
// @Summary Delete webhook
// @Tags admin
// @Param id path string true "Webhook id"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/webhooks/{id} [delete]
// @Security BearerAuth
func NewDeleteWebhookHandler(webhooks WebhookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := webhookID(w, r)
		if !ok {
			return
		}
		if err := webhooks.Delete(r.Context(), id); err != nil {
			writeWebhookError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewWebhookLogsHandler returns recent delivery attempts of a webhook.
// @Summary Webhook delivery log
// @Tags admin
// @Produce json
// @Param id path string true "Webhook id"
// @Param limit query int false "Entries (max 500)" default(50)
// @Success 200 {array} models.WebhookLog
// @Failure 404 {object} handlers.ErrorResponse
// @Router /admin/webhooks/{id}/logs [get]
// @Security BearerAuth
func NewWebhookLogsHandler(webhooks WebhookManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := webhookID(w, r)
		if !ok {
			return
		}

		logs, err := webhooks.Logs(r.Context(), id, queryInt(r, "limit", defaultLogLimit, 1, maxLogLimit))
		if err != nil {
			writeWebhookError(w, err)
			return
		}
		if logs == nil {
			logs = []models.WebhookLog{}
		}
		writeJSON(w, http.StatusOK, logs)
	}
}

// RegisterWebhookHandlers registers the admin webhook routes
func RegisterWebhookHandlers(r chi.Router, list, create, update, del, logs http.HandlerFunc) {
	r.Get("/admin/webhooks", list)
	r.Post("/admin/webhooks", create)
	r.Put("/admin/webhooks/{id}", update)
	r.Delete("/admin/webhooks/{id}", del)
	r.Get("/admin/webhooks/{id}/logs", logs)
}
