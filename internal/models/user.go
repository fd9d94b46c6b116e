package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleUser  = "user"
	RolePro   = "pro"
	RoleAdmin = "admin"
)

// User represents a user record in the database
type User struct {
	ID            uuid.UUID  `json:"id" db:"id"`                                     // Primary key
	Email         string     `json:"email" db:"email"`                               // Unique email, the identity resolved by authentication
	Name          string     `json:"name" db:"name"`                                 // Display name
	Credits       int        `json:"credits" db:"credits"`                           // Prepaid credit balance, never negative
	TotalUsage    int        `json:"total_usage" db:"total_usage"`                   // Number of successful processing operations
	FirstUploadAt *time.Time `json:"first_upload_at,omitempty" db:"first_upload_at"` // Set once, on the first successful upload
	Role          string     `json:"role" db:"role"`                                 // user, pro or admin
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`                     // Creation timestamp
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`                     // Last update timestamp
}

// IsAdmin reports whether the user may manage webhooks.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPro reports whether the user's tier unlocks pro-only tools.
func (u *User) HasPro() bool {
	return u.Role == RolePro || u.Role == RoleAdmin
}
