package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

const webhookColumns = `id, url, events, secret, active, created_at, updated_at`

type WebhookRepository struct {
	db *sqlx.DB
}

func NewWebhookRepository(db *sqlx.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

func (r *WebhookRepository) Create(ctx context.Context, wh *models.Webhook) error {
	query := `
		INSERT INTO webhooks (id, url, events, secret, active, created_at, updated_at)
		VALUES (:id, :url, :events, :secret, :active, NOW(), NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, wh)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wh.ID, wh.URL, wh.Events, wh.Active},
		"error", err,
	)

	return err
}

// Update returns sql.ErrNoRows when the webhook does not exist.
func (r *WebhookRepository) Update(ctx context.Context, wh *models.Webhook) error {
	query := `
		UPDATE webhooks
		SET url = :url, events = :events, active = :active, updated_at = NOW()
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, wh)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{wh.ID, wh.URL, wh.Events, wh.Active},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete returns sql.ErrNoRows when the webhook does not exist.
func (r *WebhookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM webhooks WHERE id = $1`, id)
	if err != nil {
		logger.Log.Errorw("failed to delete webhook", "id", id, "error", err)
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID returns nil, nil when the webhook does not exist.
func (r *WebhookRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Webhook, error) {
	var wh models.Webhook
	err := r.db.GetContext(ctx, &wh, `SELECT `+webhookColumns+` FROM webhooks WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &wh, nil
}

func (r *WebhookRepository) List(ctx context.Context) ([]models.Webhook, error) {
	webhooks := []models.Webhook{}
	err := r.db.SelectContext(ctx, &webhooks, `SELECT `+webhookColumns+` FROM webhooks ORDER BY created_at DESC`)
	return webhooks, err
}

// ListActiveByEvent returns active webhooks subscribed to event.
func (r *WebhookRepository) ListActiveByEvent(ctx context.Context, event string) ([]models.Webhook, error) {
	query := `SELECT ` + webhookColumns + ` FROM webhooks WHERE active AND $1 = ANY(events)`

	webhooks := []models.Webhook{}
	err := r.db.SelectContext(ctx, &webhooks, query, event)

	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{event},
		"result", len(webhooks),
		"error", err,
	)

	return webhooks, err
}

func (r *WebhookRepository) AppendLog(ctx context.Context, entry *models.WebhookLog) error {
	query := `
		INSERT INTO webhook_logs (id, webhook_id, event, status_code, success, error, duration_ms, created_at)
		VALUES (:id, :webhook_id, :event, :status_code, :success, :error, :duration_ms, NOW())
	`
	_, err := r.db.NamedExecContext(ctx, query, entry)
	return err
}

func (r *WebhookRepository) ListLogs(ctx context.Context, webhookID uuid.UUID, limit int) ([]models.WebhookLog, error) {
	query := `
		SELECT id, webhook_id, event, status_code, success, error, duration_ms, created_at
		FROM webhook_logs
		WHERE webhook_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	logs := []models.WebhookLog{}
	err := r.db.SelectContext(ctx, &logs, query, webhookID, limit)
	return logs, err
}
