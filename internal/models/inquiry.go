package models

import (
	"time"

	"github.com/google/uuid"
)

// InquiryDB represents a message from a prospective party about a listing.
// The sender may be unauthenticated; the listing's agent owns it for reads.
type InquiryDB struct {
	ID                uuid.UUID `json:"id" db:"id"`                                   // Primary key
	PropertyListingID uuid.UUID `json:"property_listing_id" db:"property_listing_id"` // Referenced listing; existence is not enforced
	SenderName        string    `json:"sender_name" db:"sender_name"`                 // Sender display name
	SenderEmail       string    `json:"sender_email" db:"sender_email"`               // Sender contact email
	SenderPhone       *string   `json:"sender_phone" db:"sender_phone"`               // Optional phone
	Message           string    `json:"message" db:"message"`                         // Inquiry body
	IsRead            bool      `json:"is_read" db:"is_read"`                         // Defaults false; no endpoint flips it
	CreatedAt         time.Time `json:"created_at" db:"created_at"`                   // Submission timestamp
}
