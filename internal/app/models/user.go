package models

import (
	"time"
)

// User defines the user model based on the 'users' table.
// Accounts are created on first registration; the identity provider owns
// authentication, this record only carries the platform role.
type User struct {
	ID          int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	Email       string    `json:"email" db:"email" example:"student@example.com"`           // User's email address (unique key)
	DisplayName string    `json:"displayName" db:"display_name" example:"John Doe"`         // User's display name from the identity provider
	PhotoURL    *string   `json:"photoUrl,omitempty" db:"photo_url"`                        // Profile photo URL (nullable)
	Role        Role      `json:"role" db:"role" example:"student"`                         // Platform role (student, moderator or admin)
	CreatedAt   time.Time `json:"created_at" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user registered
}
