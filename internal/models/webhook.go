package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Webhook event names
const (
	EventImageCompleted  = "image.completed"
	EventImageFailed     = "image.failed"
	EventCreditsDepleted = "credits.depleted"
)

// Webhook represents an admin-managed callback configuration
type Webhook struct {
	ID        uuid.UUID      `json:"id" db:"id"`
	URL       string         `json:"url" db:"url"`
	Events    pq.StringArray `json:"events" db:"events"`
	Secret    string         `json:"-" db:"secret"`
	Active    bool           `json:"active" db:"active"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt time.Time      `json:"updated_at" db:"updated_at"`
}

// WebhookLog is one delivery attempt
type WebhookLog struct {
	ID         uuid.UUID `json:"id" db:"id"`
	WebhookID  uuid.UUID `json:"webhook_id" db:"webhook_id"`
	Event      string    `json:"event" db:"event"`
	StatusCode int       `json:"status_code" db:"status_code"`
	Success    bool      `json:"success" db:"success"`
	Error      *string   `json:"error,omitempty" db:"error"`
	DurationMs int64     `json:"duration_ms" db:"duration_ms"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
