package models

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteDB links a user to a property listing. Only the owning user may
// delete a favorite. Duplicate favorites are not constrained.
type FavoriteDB struct {
	ID                uuid.UUID `json:"id" db:"id"`                                   // Primary key
	UserID            uuid.UUID `json:"user_id" db:"user_id"`                         // Owning user
	PropertyListingID uuid.UUID `json:"property_listing_id" db:"property_listing_id"` // Favorited listing
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Creation timestamp
}
