package models

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetDB represents an issued password-reset token. A token must not
// be usable after expires_at or after used is set.
type PasswordResetDB struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Account the token was issued for
	ResetToken uuid.UUID `json:"reset_token" db:"reset_token"` // Random, unguessable token
	CreatedAt  time.Time `json:"created_at" db:"created_at"`   // Issuance timestamp
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`   // created_at + 2 hours
	Used       bool      `json:"used" db:"used"`               // Redemption flag
}
