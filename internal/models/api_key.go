package models

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyPrefix starts every issued API key.
const APIKeyPrefix = "pk_"

// APIKey represents an api_keys row
type APIKey struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	UserID     uuid.UUID  `json:"user_id" db:"user_id"`
	UserEmail  string     `json:"-" db:"user_email"` // Joined from users on lookup
	Name       string     `json:"name" db:"name"`
	Prefix     string     `json:"prefix" db:"prefix"`
	KeyHash    string     `json:"-" db:"key_hash"` // bcrypt hash of the full key
	LastUsedAt *time.Time `json:"last_used_at,omitempty" db:"last_used_at"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty" db:"revoked_at"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}
