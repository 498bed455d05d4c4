package services

import (
	"context"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
)

// InquiryWriter defines inquiry write operations.
type InquiryWriter interface {
	Save(ctx context.Context, inquiry models.InquiryDB) (*models.InquiryDB, error)
}

// InquiryReader defines inquiry read operations.
type InquiryReader interface {
	ListByAgentID(ctx context.Context, agentID uuid.UUID) ([]models.InquiryDB, error)
}

// CreateInquiryInput carries the inquiry submission fields.
type CreateInquiryInput struct {
	PropertyListingID uuid.UUID
	SenderName        string
	SenderEmail       string
	SenderPhone       *string
	Message           string
}

// InquiryService handles inquiry submission and agent-scoped listing.
type InquiryService struct {
	writer InquiryWriter
	reader InquiryReader
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(writer InquiryWriter, reader InquiryReader) *InquiryService {
	return &InquiryService{writer: writer, reader: reader}
}

// Create stores an inquiry from a possibly unauthenticated sender. The
// referenced listing is not checked for existence.
func (s *InquiryService) Create(ctx context.Context, input CreateInquiryInput) (*models.InquiryDB, error) {
	if input.PropertyListingID == uuid.Nil || input.SenderName == "" || input.SenderEmail == "" || input.Message == "" {
		return nil, ErrMissingFields
	}

	inquiry := models.InquiryDB{
		ID:                uuid.New(),
		PropertyListingID: input.PropertyListingID,
		SenderName:        input.SenderName,
		SenderEmail:       input.SenderEmail,
		SenderPhone:       input.SenderPhone,
		Message:           input.Message,
	}

	saved, err := s.writer.Save(ctx, inquiry)
	if err != nil {
		logger.Log.Errorw("failed to save inquiry", "listing_id", input.PropertyListingID, "error", err)
		return nil, err
	}

	return saved, nil
}

// ListForAgent returns all inquiries about the agent's listings, newest first.
func (s *InquiryService) ListForAgent(ctx context.Context, agentID uuid.UUID) ([]models.InquiryDB, error) {
	inquiries, err := s.reader.ListByAgentID(ctx, agentID)
	if err != nil {
		logger.Log.Errorw("failed to list agent inquiries", "agent_id", agentID, "error", err)
		return nil, err
	}
	return inquiries, nil
}
