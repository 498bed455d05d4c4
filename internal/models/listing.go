package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Listing statuses. "delete" is a status transition, never a row removal.
// No server-side transition reaches draft even though the vocabulary includes it.
const (
	StatusDraft       = "draft"
	StatusPublished   = "published"
	StatusDeleted     = "deleted"
	StatusDeactivated = "deactivated"
)

// StringList is an ordered list of strings stored as serialized JSON text.
type StringList []string

// Value implements driver.Valuer. A nil list is stored as SQL NULL.
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner for TEXT and NULL columns.
func (s *StringList) Scan(src any) error {
	if src == nil {
		*s = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("unsupported type for StringList")
	}
}

// ListingDB represents a property listing row in the database.
type ListingDB struct {
	ID           uuid.UUID  `json:"id" db:"id"`                       // Primary key
	AgentID      uuid.UUID  `json:"agent_id" db:"agent_id"`           // Owning agent; the only actor allowed to mutate the row
	Title        string     `json:"title" db:"title"`                 // Listing title
	Description  string     `json:"description" db:"description"`     // Listing description
	PropertyType string     `json:"property_type" db:"property_type"` // e.g. apartment, house
	Price        float64    `json:"price" db:"price"`                 // Asking price
	Address      string     `json:"address" db:"address"`             // Street address
	City         string     `json:"city" db:"city"`                   // City
	ZipCode      string     `json:"zip_code" db:"zip_code"`           // Postal code
	Amenities    StringList `json:"amenities" db:"amenities"`         // Ordered amenity list, serialized JSON
	Bedrooms     int        `json:"bedrooms" db:"bedrooms"`           // Bedroom count
	Bathrooms    int        `json:"bathrooms" db:"bathrooms"`         // Bathroom count
	Area         float64    `json:"area" db:"area"`                   // Floor area
	Latitude     *float64   `json:"latitude" db:"latitude"`           // Optional coordinate
	Longitude    *float64   `json:"longitude" db:"longitude"`         // Optional coordinate
	Status       string     `json:"status" db:"status"`               // Lifecycle status
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`       // Creation timestamp
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`       // Last update timestamp
	PublishedAt  *time.Time `json:"published_at" db:"published_at"`   // Publication timestamp
}

// ListingSummary is a search-result row: a listing plus the URL of its
// image with the lowest display_order, or null when it has no images.
type ListingSummary struct {
	ListingDB
	PrimaryImageURL *string `json:"primary_image_url" db:"primary_image_url"`
}

// ListingDetail is the denormalized read model returned by the detail
// endpoint: listing fields plus ordered images and the owning agent's
// public profile.
type ListingDetail struct {
	ListingDB
	Images []ImageDB `json:"images"`
	Agent  *UserDB   `json:"agent"`
}
