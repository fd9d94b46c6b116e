package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ImageStatus is the lifecycle state of a processed image.
type ImageStatus string

// Processed image statuses. Completed and failed are terminal.
const (
	ImageStatusProcessing ImageStatus = "processing"
	ImageStatusCompleted  ImageStatus = "completed"
	ImageStatusFailed     ImageStatus = "failed"
)

// ProcessedImage represents a processed_images row
type ProcessedImage struct {
	ID               uuid.UUID   `json:"id" db:"id"`
	UserID           uuid.UUID   `json:"user_id" db:"user_id"`
	Operation        Operation   `json:"operation" db:"operation"`
	Variant          string      `json:"variant" db:"variant"`
	Model            string      `json:"model" db:"model"`
	Scale            int         `json:"scale" db:"scale"`
	Cost             int         `json:"cost" db:"cost"`
	Status           ImageStatus `json:"status" db:"status"`
	ProviderJobID    *string     `json:"provider_job_id,omitempty" db:"provider_job_id"`
	OriginalKey      *string     `json:"-" db:"original_key"`
	ResultKey        *string     `json:"-" db:"result_key"`
	ContentType      string      `json:"content_type" db:"content_type"`
	Width            int         `json:"width" db:"width"`
	Height           int         `json:"height" db:"height"`
	ProcessingTimeMs int64       `json:"processing_time_ms" db:"processing_time_ms"`
	Error            *string     `json:"error,omitempty" db:"error"`
	CreatedAt        time.Time   `json:"created_at" db:"created_at"`
	CompletedAt      *time.Time  `json:"completed_at,omitempty" db:"completed_at"`
}

// IsTerminal reports whether the record can no longer change.
func (p *ProcessedImage) IsTerminal() bool {
	return p.Status == ImageStatusCompleted || p.Status == ImageStatusFailed
}

// ViewURL is the public URL of the processed result.
func ViewURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/processed-images/%s/view", id)
}

// OriginalURL is the public URL of the uploaded source image.
func OriginalURL(id uuid.UUID) string {
	return fmt.Sprintf("/api/processed-images/%s/original", id)
}

// OriginalStorageKey is the object key of an uploaded source image.
func OriginalStorageKey(id uuid.UUID) string {
	return "originals/" + id.String()
}

// ResultStorageKey is the object key of a processed result.
func ResultStorageKey(id uuid.UUID) string {
	return "processed/" + id.String()
}
