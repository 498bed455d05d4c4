package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for listing mutations.
const (
	AuditActionCreated = "created"
	AuditActionUpdated = "updated"
	AuditActionDeleted = "deleted"
)

// AuditDB is an immutable append-only log entry: one row per mutating
// operation on a listing, never updated or deleted.
type AuditDB struct {
	ID                uuid.UUID `json:"id" db:"id"`                                   // Primary key
	PropertyListingID uuid.UUID `json:"property_listing_id" db:"property_listing_id"` // Mutated listing
	Action            string    `json:"action" db:"action"`                           // created, updated or deleted
	ChangeDetails     string    `json:"change_details" db:"change_details"`           // JSON naming the top-level request fields present, not a value diff
	PerformedBy       uuid.UUID `json:"performed_by" db:"performed_by"`               // Acting user
	PerformedAt       time.Time `json:"performed_at" db:"performed_at"`               // When the mutation happened
}

// AuditEvent is the message published to the moderation topic after an
// audit row is written. Publishing is fire-and-forget.
type AuditEvent struct {
	AuditID           string `json:"audit_id"`
	PropertyListingID string `json:"property_listing_id"`
	Action            string `json:"action"`
	ChangeDetails     string `json:"change_details"`
	PerformedBy       string `json:"performed_by"`
	Timestamp         int64  `json:"timestamp"`
}
