package models

import (
	"time"

	"github.com/google/uuid"
)

// ImageDB represents a property image row. Images belong exclusively to one
// listing and render in ascending display_order, ties broken by insertion order.
type ImageDB struct {
	ID                uuid.UUID `json:"id" db:"id"`                                   // Primary key
	PropertyListingID uuid.UUID `json:"property_listing_id" db:"property_listing_id"` // Owning listing
	ImageURL          string    `json:"image_url" db:"image_url"`                     // Image location
	AltText           *string   `json:"alt_text" db:"alt_text"`                       // Optional alt text
	DisplayOrder      int       `json:"display_order" db:"display_order"`             // Render sequence, defaults to 0
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Insertion timestamp
}
