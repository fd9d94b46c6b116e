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

const processedImageColumns = `id, user_id, operation, variant, model, scale, cost, status, provider_job_id,
	original_key, result_key, content_type, width, height, processing_time_ms, error, created_at, completed_at`

// ProcessedImageRepository persists processing records. Every status
// transition is guarded by status = 'processing', so terminal rows never change.
type ProcessedImageRepository struct {
	db *sqlx.DB
}

func NewProcessedImageRepository(db *sqlx.DB) *ProcessedImageRepository {
	return &ProcessedImageRepository{db: db}
}

// Create inserts a new record in processing state.
func (r *ProcessedImageRepository) Create(ctx context.Context, img *models.ProcessedImage) error {
	query := `
		INSERT INTO processed_images (id, user_id, operation, variant, model, scale, cost, status,
			provider_job_id, original_key, content_type, created_at)
		VALUES (:id, :user_id, :operation, :variant, :model, :scale, :cost, :status,
			:provider_job_id, :original_key, :content_type, NOW())
	`

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db), query, img)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{img.ID, img.UserID, img.Operation, img.Variant, img.Cost},
		"error", err,
	)

	return err
}

// AttachJob stores the provider job id of an asynchronous job.
func (r *ProcessedImageRepository) AttachJob(ctx context.Context, id uuid.UUID, jobID string) error {
	query := `
		UPDATE processed_images
		SET provider_job_id = $2
		WHERE id = $1 AND status = 'processing'
	`
	return r.exec(ctx, query, id, jobID)
}

// MarkCompleted stores the result of a successful run. Returns sql.ErrNoRows
// when the record is already terminal.
func (r *ProcessedImageRepository) MarkCompleted(ctx context.Context, img *models.ProcessedImage) error {
	query := `
		UPDATE processed_images
		SET status = 'completed',
		    result_key = $2,
		    content_type = $3,
		    width = $4,
		    height = $5,
		    processing_time_ms = $6,
		    completed_at = NOW()
		WHERE id = $1 AND status = 'processing'
	`
	return r.exec(ctx, query, img.ID, img.ResultKey, img.ContentType, img.Width, img.Height, img.ProcessingTimeMs)
}

// MarkFailed records the failure reason. Returns sql.ErrNoRows when the
// record is already terminal.
func (r *ProcessedImageRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE processed_images
		SET status = 'failed', error = $2, completed_at = NOW()
		WHERE id = $1 AND status = 'processing'
	`
	return r.exec(ctx, query, id, reason)
}

func (r *ProcessedImageRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := executor(ctx, r.db).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetByID returns nil, nil when the record does not exist.
func (r *ProcessedImageRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ProcessedImage, error) {
	query := `SELECT ` + processedImageColumns + ` FROM processed_images WHERE id = $1`

	var img models.ProcessedImage
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &img, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Log.Errorw("failed to get processed image", "id", id, "error", err)
		return nil, err
	}
	return &img, nil
}

// ListByUser returns the user's records, newest first.
func (r *ProcessedImageRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.ProcessedImage, error) {
	query := `SELECT ` + processedImageColumns + `
		FROM processed_images
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	images := []models.ProcessedImage{}
	err := r.db.SelectContext(ctx, &images, query, userID, limit, offset)

	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit, offset},
		"result", len(images),
		"error", err,
	)

	return images, err
}

// ListPendingJobs returns asynchronous jobs still waiting for the provider.
func (r *ProcessedImageRepository) ListPendingJobs(ctx context.Context) ([]models.ProcessedImage, error) {
	query := `SELECT ` + processedImageColumns + `
		FROM processed_images
		WHERE status = 'processing' AND provider_job_id IS NOT NULL
		ORDER BY created_at`

	images := []models.ProcessedImage{}
	if err := r.db.SelectContext(ctx, &images, query); err != nil {
		logger.Log.Errorw("failed to list pending jobs", "error", err)
		return nil, err
	}
	return images, nil
}
