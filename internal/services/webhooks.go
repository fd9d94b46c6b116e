package services

//go:generate mockgen -source=webhooks.go -destination=webhooks_mock.go -package=services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

var webhookEvents = map[string]bool{
	models.EventImageCompleted:  true,
	models.EventImageFailed:     true,
	models.EventCreditsDepleted: true,
}

// WebhookStore persists webhooks and their delivery log.
type WebhookStore interface {
	Create(ctx context.Context, wh *models.Webhook) error
	Update(ctx context.Context, wh *models.Webhook) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Webhook, error)
	List(ctx context.Context) ([]models.Webhook, error)
	ListActiveByEvent(ctx context.Context, event string) ([]models.Webhook, error)
	AppendLog(ctx context.Context, entry *models.WebhookLog) error
	ListLogs(ctx context.Context, webhookID uuid.UUID, limit int) ([]models.WebhookLog, error)
}

// WebhookSender delivers one signed payload.
type WebhookSender interface {
	Send(ctx context.Context, url, event, secret string, body []byte) (int, error)
}

// WebhookInput is the editable part of a webhook.
type WebhookInput struct {
	URL    string
	Events []string
	Active bool
}

// WebhookService manages webhooks and delivers events to them.
type WebhookService struct {
	store   WebhookStore
	sender  WebhookSender
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewWebhookService(store WebhookStore, sender WebhookSender, timeout time.Duration) *WebhookService {
	return &WebhookService{store: store, sender: sender, timeout: timeout}
}

func validateEvents(events []string) error {
	for _, e := range events {
		if !webhookEvents[e] {
			return ErrInvalidWebhookEvent
		}
	}
	return nil
}

// Create registers a webhook with a freshly generated signing secret.
func (svc *WebhookService) Create(ctx context.Context, in WebhookInput) (*models.Webhook, error) {
	if err := validateEvents(in.Events); err != nil {
		return nil, err
	}

	secret, err := randomHex(24)
	if err != nil {
		return nil, err
	}

	wh := &models.Webhook{
		ID:     uuid.New(),
		URL:    in.URL,
		Events: pq.StringArray(in.Events),
		Secret: "whsec_" + secret,
		Active: in.Active,
	}
	if err := svc.store.Create(ctx, wh); err != nil {
		logger.Log.Errorw("failed to create webhook", "url", in.URL, "err", err)
		return nil, err
	}
	return wh, nil
}

// Update replaces the url, events and active flag of a webhook.
func (svc *WebhookService) Update(ctx context.Context, id uuid.UUID, in WebhookInput) (*models.Webhook, error) {
	if err := validateEvents(in.Events); err != nil {
		return nil, err
	}

	wh := &models.Webhook{ID: id, URL: in.URL, Events: pq.StringArray(in.Events), Active: in.Active}
	err := svc.store.Update(ctx, wh)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWebhookNotFound
	}
	if err != nil {
		return nil, err
	}

	updated, err := svc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrWebhookNotFound
	}
	return updated, nil
}

func (svc *WebhookService) Delete(ctx context.Context, id uuid.UUID) error {
	err := svc.store.Delete(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrWebhookNotFound
	}
	return err
}

func (svc *WebhookService) List(ctx context.Context) ([]models.Webhook, error) {
	return svc.store.List(ctx)
}

// Logs returns the latest delivery attempts of a webhook.
func (svc *WebhookService) Logs(ctx context.Context, id uuid.UUID, limit int) ([]models.WebhookLog, error) {
	wh, err := svc.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if wh == nil {
		return nil, ErrWebhookNotFound
	}
	return svc.store.ListLogs(ctx, id, limit)
}

// Dispatch delivers evt to every active subscriber in the background.
func (svc *WebhookService) Dispatch(evt models.UsageEvent) {
	svc.wg.Add(1)
	go func() {
		defer svc.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), svc.timeout)
		defer cancel()

		webhooks, err := svc.store.ListActiveByEvent(ctx, evt.Event)
		if err != nil {
			logger.Log.Errorw("failed to load webhooks", "event", evt.Event, "error", err)
			return
		}
		if len(webhooks) == 0 {
			return
		}

		body, err := json.Marshal(evt)
		if err != nil {
			logger.Log.Errorw("failed to marshal webhook payload", "event", evt.Event, "error", err)
			return
		}

		for _, wh := range webhooks {
			svc.deliver(ctx, wh, evt.Event, body)
		}
	}()
}

func (svc *WebhookService) deliver(ctx context.Context, wh models.Webhook, event string, body []byte) {
	start := time.Now()
	status, err := svc.sender.Send(ctx, wh.URL, event, wh.Secret, body)

	entry := &models.WebhookLog{
		ID:         uuid.New(),
		WebhookID:  wh.ID,
		Event:      event,
		StatusCode: status,
		Success:    err == nil,
		DurationMs: time.Since(start).Milliseconds(),
	}
	if err != nil {
		msg := err.Error()
		entry.Error = &msg
		logger.Log.Warnw("webhook delivery failed", "webhook_id", wh.ID, "event", event, "status", status, "error", err)
	}

	if err := svc.store.AppendLog(ctx, entry); err != nil {
		logger.Log.Errorw("failed to append webhook log", "webhook_id", wh.ID, "error", err)
	}
}

// Wait blocks until all dispatched deliveries have finished.
func (svc *WebhookService) Wait() {
	svc.wg.Wait()
}
