package repositories

import (
	"context"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// InquiryWriteRepository handles inquiry writes.
type InquiryWriteRepository struct {
	db *sqlx.DB
}

func NewInquiryWriteRepository(db *sqlx.DB) *InquiryWriteRepository {
	return &InquiryWriteRepository{db: db}
}

// Save inserts an inquiry and returns the persisted row. The referenced
// listing id is not checked for existence.
func (r *InquiryWriteRepository) Save(ctx context.Context, inquiry models.InquiryDB) (*models.InquiryDB, error) {
	query := `
		INSERT INTO inquiries (id, property_listing_id, sender_name, sender_email, sender_phone, message, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW())
		RETURNING id, property_listing_id, sender_name, sender_email, sender_phone, message, is_read, created_at
	`
	args := []any{inquiry.ID, inquiry.PropertyListingID, inquiry.SenderName, inquiry.SenderEmail, inquiry.SenderPhone, inquiry.Message}

	var saved models.InquiryDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// InquiryReadRepository handles inquiry reads.
type InquiryReadRepository struct {
	db *sqlx.DB
}

func NewInquiryReadRepository(db *sqlx.DB) *InquiryReadRepository {
	return &InquiryReadRepository{db: db}
}

// ListByAgentID returns all inquiries whose listing belongs to the given
// agent, newest first. No pagination.
func (r *InquiryReadRepository) ListByAgentID(ctx context.Context, agentID uuid.UUID) ([]models.InquiryDB, error) {
	const query = `
		SELECT i.id, i.property_listing_id, i.sender_name, i.sender_email, i.sender_phone, i.message, i.is_read, i.created_at
		FROM inquiries i
		INNER JOIN property_listings pl ON i.property_listing_id = pl.id
		WHERE pl.agent_id = $1
		ORDER BY i.created_at DESC
	`

	inquiries := []models.InquiryDB{}
	err := r.db.SelectContext(ctx, &inquiries, query, agentID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{agentID},
		"result_count", len(inquiries),
		"error", err,
	)

	return inquiries, err
}
