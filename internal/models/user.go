package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles. Role membership is checked by exact string equality;
// there is no hierarchy between roles.
const (
	RoleSeeker = "seeker"
	RoleAgent  = "agent"
	RoleAdmin  = "admin"
)

// UserDB represents a user record in the database.
// The password hash is never serialized into responses.
type UserDB struct {
	ID           uuid.UUID `json:"id" db:"id"`                       // Primary key
	Email        string    `json:"email" db:"email"`                 // Unique email, case-sensitive as stored
	PasswordHash string    `json:"-" db:"password_hash"`             // Bcrypt hash, excluded from JSON
	FirstName    string    `json:"first_name" db:"first_name"`       // First name
	LastName     string    `json:"last_name" db:"last_name"`         // Last name
	Phone        *string   `json:"phone" db:"phone"`                 // Optional phone number
	Role         string    `json:"role" db:"role"`                   // seeker, agent or admin; immutable after creation
	CompanyName  *string   `json:"company_name" db:"company_name"`   // Optional company name (agents)
	CreatedAt    time.Time `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`       // Last update timestamp
}
