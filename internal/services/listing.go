package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/repositories"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// ListingReader defines listing read operations.
type ListingReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error)
	Search(ctx context.Context, filter models.ListingFilter) ([]models.ListingSummary, error)
}

// ListingWriter defines listing write operations.
type ListingWriter interface {
	Save(ctx context.Context, listing models.ListingDB) error
	Update(ctx context.Context, listing models.ListingDB) error
	SetStatus(ctx context.Context, id uuid.UUID, status string) error
}

// ImageReader defines property image read operations.
type ImageReader interface {
	ListByListingID(ctx context.Context, listingID uuid.UUID) ([]models.ImageDB, error)
}

// ImageWriter defines property image write operations.
type ImageWriter interface {
	Save(ctx context.Context, image models.ImageDB) error
	DeleteByListingID(ctx context.Context, listingID uuid.UUID) error
}

// AuditWriter appends listing audit entries.
type AuditWriter interface {
	Save(ctx context.Context, audit models.AuditDB) error
}

// AgentReader reads agent public profiles.
type AgentReader interface {
	GetPublicByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error)
}

// SearchCache caches search result pages by normalized filter key.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]models.ListingSummary, error)
	Set(ctx context.Context, key string, rows []models.ListingSummary) error
	Invalidate(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ImageInput is one image in a create or update request.
type ImageInput struct {
	ImageURL     string  `json:"image_url"`
	AltText      *string `json:"alt_text"`
	DisplayOrder int     `json:"display_order"`
}

// CreateListingInput carries the listing creation request fields.
// ProvidedFields lists the top-level body keys present in the request,
// recorded verbatim in the audit trail.
type CreateListingInput struct {
	Title          string
	Description    string
	PropertyType   string
	Price          float64
	Address        string
	City           string
	ZipCode        string
	Amenities      []string
	Bedrooms       int
	Bathrooms      int
	Area           float64
	Latitude       float64
	Longitude      float64
	Images         []ImageInput
	ProvidedFields []string
}

// UpdateListingInput carries the listing update request fields. A zero value
// means "not provided": the stored value is kept. This matches the clients'
// expectations, so numeric fields cannot be set to 0 through this path.
// Images is nil when absent; a non-nil slice, even empty, replaces the
// image set wholesale.
type UpdateListingInput struct {
	Title          string
	Description    string
	PropertyType   string
	Price          float64
	Address        string
	City           string
	ZipCode        string
	Amenities      []string
	Bedrooms       int
	Bathrooms      int
	Area           float64
	Latitude       float64
	Longitude      float64
	Images         *[]ImageInput
	ProvidedFields []string
}

// ListingService implements search, the detail read model, and the mutating
// operations with ownership checks and an audit trail.
type ListingService struct {
	reader      ListingReader
	writer      ListingWriter
	imageReader ImageReader
	imageWriter ImageWriter
	auditWriter AuditWriter
	agentReader AgentReader
	cache       SearchCache
	kafkaWriter KafkaWriter
}

// NewListingService creates a new ListingService.
func NewListingService(
	reader ListingReader,
	writer ListingWriter,
	imageReader ImageReader,
	imageWriter ImageWriter,
	auditWriter AuditWriter,
	agentReader AgentReader,
	cache SearchCache,
	kafkaWriter KafkaWriter,
) *ListingService {
	return &ListingService{
		reader:      reader,
		writer:      writer,
		imageReader: imageReader,
		imageWriter: imageWriter,
		auditWriter: auditWriter,
		agentReader: agentReader,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// Search returns one page of published listings matching the filter,
// serving from the cache when a page for the same filter combination is
// still fresh.
func (s *ListingService) Search(ctx context.Context, filter models.ListingFilter) ([]models.ListingSummary, error) {
	key := filter.CacheKey()

	if s.cache != nil {
		rows, err := s.cache.Get(ctx, key)
		if err == nil {
			return rows, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Errorw("search cache read failed", "key", key, "error", err)
		}
	}

	rows, err := s.reader.Search(ctx, filter)
	if err != nil {
		logger.Log.Errorw("listing search failed", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rows); err != nil {
			logger.Log.Errorw("search cache write failed", "key", key, "error", err)
		}
	}

	return rows, nil
}

// GetDetail composes the denormalized read model for one listing: the row
// itself, its images in render order, and the owning agent's public profile.
// The status is deliberately not checked: a soft-deleted listing stays
// readable by id.
func (s *ListingService) GetDetail(ctx context.Context, id uuid.UUID) (*models.ListingDetail, error) {
	listing, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load listing", "id", id, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}

	images, err := s.imageReader.ListByListingID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load listing images", "id", id, "error", err)
		return nil, err
	}

	agent, err := s.agentReader.GetPublicByID(ctx, listing.AgentID)
	if err != nil {
		logger.Log.Errorw("failed to load listing agent", "agent_id", listing.AgentID, "error", err)
		return nil, err
	}

	return &models.ListingDetail{
		ListingDB: *listing,
		Images:    images,
		Agent:     agent,
	}, nil
}

// Create persists a new listing for the acting agent. Status is forced to
// published and published_at to the creation time regardless of any
// client-supplied draft intent. Images are inserted after the listing and an
// audit entry records which request fields were present.
func (s *ListingService) Create(ctx context.Context, agentID uuid.UUID, input CreateListingInput) (*models.ListingDB, error) {
	if input.Title == "" || input.Description == "" || input.PropertyType == "" || input.Price == 0 ||
		input.Address == "" || input.City == "" || input.ZipCode == "" ||
		input.Bedrooms == 0 || input.Bathrooms == 0 || input.Area == 0 {
		return nil, ErrMissingFields
	}

	listing := models.ListingDB{
		ID:           uuid.New(),
		AgentID:      agentID,
		Title:        input.Title,
		Description:  input.Description,
		PropertyType: input.PropertyType,
		Price:        input.Price,
		Address:      input.Address,
		City:         input.City,
		ZipCode:      input.ZipCode,
		Amenities:    models.StringList(input.Amenities),
		Bedrooms:     input.Bedrooms,
		Bathrooms:    input.Bathrooms,
		Area:         input.Area,
		Latitude:     optionalCoord(input.Latitude),
		Longitude:    optionalCoord(input.Longitude),
		Status:       models.StatusPublished,
	}

	if err := s.writer.Save(ctx, listing); err != nil {
		logger.Log.Errorw("failed to save listing", "id", listing.ID, "error", err)
		return nil, err
	}

	for _, img := range input.Images {
		image := models.ImageDB{
			ID:                uuid.New(),
			PropertyListingID: listing.ID,
			ImageURL:          img.ImageURL,
			AltText:           img.AltText,
			DisplayOrder:      img.DisplayOrder,
		}
		if err := s.imageWriter.Save(ctx, image); err != nil {
			logger.Log.Errorw("failed to save listing image", "listing_id", listing.ID, "error", err)
			return nil, err
		}
	}

	if err := s.appendAudit(ctx, listing.ID, models.AuditActionCreated, input.ProvidedFields, agentID); err != nil {
		return nil, err
	}

	s.invalidateSearchCache(ctx)

	return s.reader.GetByID(ctx, listing.ID)
}

// Update merges the provided fields into the stored listing after the
// ownership check. A present images array replaces all existing images.
func (s *ListingService) Update(ctx context.Context, agentID, listingID uuid.UUID, input UpdateListingInput) (*models.ListingDB, error) {
	listing, err := s.reader.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to load listing", "id", listingID, "error", err)
		return nil, err
	}
	if listing == nil {
		return nil, ErrNotFound
	}
	if listing.AgentID != agentID {
		return nil, ErrForbidden
	}

	merged := *listing
	if input.Title != "" {
		merged.Title = input.Title
	}
	if input.Description != "" {
		merged.Description = input.Description
	}
	if input.PropertyType != "" {
		merged.PropertyType = input.PropertyType
	}
	if input.Price != 0 {
		merged.Price = input.Price
	}
	if input.Address != "" {
		merged.Address = input.Address
	}
	if input.City != "" {
		merged.City = input.City
	}
	if input.ZipCode != "" {
		merged.ZipCode = input.ZipCode
	}
	if input.Amenities != nil {
		merged.Amenities = models.StringList(input.Amenities)
	}
	if input.Bedrooms != 0 {
		merged.Bedrooms = input.Bedrooms
	}
	if input.Bathrooms != 0 {
		merged.Bathrooms = input.Bathrooms
	}
	if input.Area != 0 {
		merged.Area = input.Area
	}
	if input.Latitude != 0 {
		merged.Latitude = &input.Latitude
	}
	if input.Longitude != 0 {
		merged.Longitude = &input.Longitude
	}

	if err := s.writer.Update(ctx, merged); err != nil {
		logger.Log.Errorw("failed to update listing", "id", listingID, "error", err)
		return nil, err
	}

	if input.Images != nil {
		if err := s.imageWriter.DeleteByListingID(ctx, listingID); err != nil {
			logger.Log.Errorw("failed to delete listing images", "listing_id", listingID, "error", err)
			return nil, err
		}
		for _, img := range *input.Images {
			image := models.ImageDB{
				ID:                uuid.New(),
				PropertyListingID: listingID,
				ImageURL:          img.ImageURL,
				AltText:           img.AltText,
				DisplayOrder:      img.DisplayOrder,
			}
			if err := s.imageWriter.Save(ctx, image); err != nil {
				logger.Log.Errorw("failed to save listing image", "listing_id", listingID, "error", err)
				return nil, err
			}
		}
	}

	if err := s.appendAudit(ctx, listingID, models.AuditActionUpdated, input.ProvidedFields, agentID); err != nil {
		return nil, err
	}

	s.invalidateSearchCache(ctx)

	return s.reader.GetByID(ctx, listingID)
}

// Delete soft-deletes a listing after the ownership check: a status flip to
// deleted, never a row removal. Images, favorites and inquiries referencing
// the listing are left in place.
func (s *ListingService) Delete(ctx context.Context, agentID, listingID uuid.UUID) error {
	listing, err := s.reader.GetByID(ctx, listingID)
	if err != nil {
		logger.Log.Errorw("failed to load listing", "id", listingID, "error", err)
		return err
	}
	if listing == nil {
		return ErrNotFound
	}
	if listing.AgentID != agentID {
		return ErrForbidden
	}

	if err := s.writer.SetStatus(ctx, listingID, models.StatusDeleted); err != nil {
		logger.Log.Errorw("failed to soft-delete listing", "id", listingID, "error", err)
		return err
	}

	if err := s.appendAudit(ctx, listingID, models.AuditActionDeleted, nil, agentID); err != nil {
		return err
	}

	s.invalidateSearchCache(ctx)
	return nil
}

// invalidateSearchCache drops every cached search page after a mutation so
// the change is visible to the next search immediately, not after the TTL.
// Failures are logged and never surfaced: the database already holds the
// truth and stale pages age out on their own.
func (s *ListingService) invalidateSearchCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		logger.Log.Errorw("search cache invalidation failed", "error", err)
	}
}

// appendAudit writes the audit row and publishes the matching event.
// change_details names the request fields present, not a value diff.
func (s *ListingService) appendAudit(ctx context.Context, listingID uuid.UUID, action string, providedFields []string, performedBy uuid.UUID) error {
	details := "{}"
	if providedFields != nil {
		data, err := json.Marshal(struct {
			FieldsChanged []string `json:"fields_changed"`
		}{FieldsChanged: providedFields})
		if err != nil {
			return err
		}
		details = string(data)
	}

	audit := models.AuditDB{
		ID:                uuid.New(),
		PropertyListingID: listingID,
		Action:            action,
		ChangeDetails:     details,
		PerformedBy:       performedBy,
	}

	if err := s.auditWriter.Save(ctx, audit); err != nil {
		logger.Log.Errorw("failed to append audit entry", "listing_id", listingID, "action", action, "error", err)
		return err
	}

	s.publishAuditEvent(ctx, audit)
	return nil
}

// publishAuditEvent publishes an audit event to the moderation topic.
// Publishing is fire-and-forget: failures are logged and never surfaced.
func (s *ListingService) publishAuditEvent(ctx context.Context, audit models.AuditDB) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "audit_id", audit.ID)
		return
	}

	event := models.AuditEvent{
		AuditID:           audit.ID.String(),
		PropertyListingID: audit.PropertyListingID.String(),
		Action:            audit.Action,
		ChangeDetails:     audit.ChangeDetails,
		PerformedBy:       audit.PerformedBy.String(),
		Timestamp:         time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "audit_id", audit.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.PropertyListingID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "audit_id", audit.ID, "error", err)
	} else {
		logger.Log.Infow("audit event published", "audit_id", audit.ID, "action", audit.Action)
	}
}

// optionalCoord maps the zero coordinate to NULL, as the clients send 0 for
// "no coordinate".
func optionalCoord(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}
