package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/dkenzhebek/estatefinder/internal/repositories"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validCreateInput() CreateListingInput {
	return CreateListingInput{
		Title:          "Bright loft",
		Description:    "Top floor with a view",
		PropertyType:   "apartment",
		Price:          350000,
		Address:        "1 Main St",
		City:           "Springfield",
		ZipCode:        "12345",
		Amenities:      []string{"elevator"},
		Bedrooms:       2,
		Bathrooms:      1,
		Area:           85.5,
		ProvidedFields: []string{"title", "description", "price"},
	}
}

func TestListingService_Search_CacheMiss(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	cache := NewMockSearchCache(ctrl)

	filter := models.ListingFilter{Sort: models.SortNewest, Page: 1, Limit: 10}
	rows := []models.ListingSummary{{ListingDB: models.ListingDB{ID: uuid.New()}}}

	cache.EXPECT().Get(ctx, filter.CacheKey()).Return(nil, repositories.ErrCacheMiss)
	reader.EXPECT().Search(ctx, filter).Return(rows, nil)
	cache.EXPECT().Set(ctx, filter.CacheKey(), rows).Return(nil)

	svc := NewListingService(reader, nil, nil, nil, nil, nil, cache, nil)
	got, err := svc.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestListingService_Search_CacheHit(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	cache := NewMockSearchCache(ctrl)

	filter := models.ListingFilter{Sort: models.SortPriceAsc, Page: 1, Limit: 10}
	rows := []models.ListingSummary{{ListingDB: models.ListingDB{ID: uuid.New()}}}

	// The repository must not be touched on a hit.
	cache.EXPECT().Get(ctx, filter.CacheKey()).Return(rows, nil)

	svc := NewListingService(reader, nil, nil, nil, nil, nil, cache, nil)
	got, err := svc.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestListingService_Search_CacheWriteFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	cache := NewMockSearchCache(ctrl)

	filter := models.ListingFilter{Sort: models.SortNewest, Page: 1, Limit: 10}
	rows := []models.ListingSummary{}

	cache.EXPECT().Get(ctx, filter.CacheKey()).Return(nil, repositories.ErrCacheMiss)
	reader.EXPECT().Search(ctx, filter).Return(rows, nil)
	cache.EXPECT().Set(ctx, filter.CacheKey(), rows).Return(errors.New("redis down"))

	svc := NewListingService(reader, nil, nil, nil, nil, nil, cache, nil)
	got, err := svc.Search(ctx, filter)

	assert.NoError(t, err)
	assert.Equal(t, rows, got)
}

func TestListingService_GetDetail(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()
	agentID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	imageReader := NewMockImageReader(ctrl)
	agentReader := NewMockAgentReader(ctrl)

	listing := &models.ListingDB{ID: listingID, AgentID: agentID, Title: "Bright loft"}
	images := []models.ImageDB{{ID: uuid.New(), PropertyListingID: listingID, DisplayOrder: 0}}
	agent := &models.UserDB{ID: agentID, Email: "agent@example.com", Role: models.RoleAgent}

	reader.EXPECT().GetByID(ctx, listingID).Return(listing, nil)
	imageReader.EXPECT().ListByListingID(ctx, listingID).Return(images, nil)
	agentReader.EXPECT().GetPublicByID(ctx, agentID).Return(agent, nil)

	svc := NewListingService(reader, nil, imageReader, nil, nil, agentReader, nil, nil)
	detail, err := svc.GetDetail(ctx, listingID)

	assert.NoError(t, err)
	assert.Equal(t, *listing, detail.ListingDB)
	assert.Equal(t, images, detail.Images)
	assert.Equal(t, agent, detail.Agent)
}

func TestListingService_GetDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	reader.EXPECT().GetByID(ctx, listingID).Return(nil, nil)

	svc := NewListingService(reader, nil, nil, nil, nil, nil, nil, nil)
	detail, err := svc.GetDetail(ctx, listingID)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, detail)
}

func TestListingService_Create(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	imageWriter := NewMockImageWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	input := validCreateInput()
	input.Images = []ImageInput{{ImageURL: "https://img/1.jpg", DisplayOrder: 0}}

	var createdID uuid.UUID
	writer.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, listing models.ListingDB) error {
			createdID = listing.ID
			assert.Equal(t, agentID, listing.AgentID)
			assert.Equal(t, models.StatusPublished, listing.Status)
			assert.Nil(t, listing.Latitude)
			assert.Nil(t, listing.Longitude)
			return nil
		})
	imageWriter.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, image models.ImageDB) error {
			assert.Equal(t, createdID, image.PropertyListingID)
			assert.Equal(t, "https://img/1.jpg", image.ImageURL)
			return nil
		})
	auditWriter.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, audit models.AuditDB) error {
			assert.Equal(t, models.AuditActionCreated, audit.Action)
			assert.Equal(t, agentID, audit.PerformedBy)

			var details struct {
				FieldsChanged []string `json:"fields_changed"`
			}
			assert.NoError(t, json.Unmarshal([]byte(audit.ChangeDetails), &details))
			assert.Equal(t, input.ProvidedFields, details.FieldsChanged)
			return nil
		})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	reader.EXPECT().
		GetByID(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.ListingDB, error) {
			assert.Equal(t, createdID, id)
			return &models.ListingDB{ID: id, AgentID: agentID, Status: models.StatusPublished}, nil
		})

	svc := NewListingService(reader, writer, nil, imageWriter, auditWriter, nil, nil, kafkaWriter)
	created, err := svc.Create(ctx, agentID, input)

	assert.NoError(t, err)
	assert.Equal(t, createdID, created.ID)
}

func TestListingService_Create_MissingFields(t *testing.T) {
	svc := NewListingService(nil, nil, nil, nil, nil, nil, nil, nil)

	mutations := []func(*CreateListingInput){
		func(in *CreateListingInput) { in.Title = "" },
		func(in *CreateListingInput) { in.Description = "" },
		func(in *CreateListingInput) { in.PropertyType = "" },
		func(in *CreateListingInput) { in.Price = 0 },
		func(in *CreateListingInput) { in.Address = "" },
		func(in *CreateListingInput) { in.City = "" },
		func(in *CreateListingInput) { in.ZipCode = "" },
		func(in *CreateListingInput) { in.Bedrooms = 0 },
		func(in *CreateListingInput) { in.Bathrooms = 0 },
		func(in *CreateListingInput) { in.Area = 0 },
	}

	for _, mutate := range mutations {
		input := validCreateInput()
		mutate(&input)

		_, err := svc.Create(context.Background(), uuid.New(), input)
		assert.ErrorIs(t, err, ErrMissingFields)
	}
}

func TestListingService_Update_MergesProvidedFields(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	stored := &models.ListingDB{
		ID:        listingID,
		AgentID:   agentID,
		Title:     "Old title",
		Price:     100000,
		Bedrooms:  3,
		Bathrooms: 2,
		City:      "Springfield",
	}

	// Only price is provided; bedrooms arrives as 0 and must keep the
	// stored value.
	input := UpdateListingInput{
		Price:          120000,
		ProvidedFields: []string{"price", "bedrooms"},
	}

	reader.EXPECT().GetByID(ctx, listingID).Return(stored, nil)
	writer.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, merged models.ListingDB) error {
			assert.Equal(t, "Old title", merged.Title)
			assert.Equal(t, 120000.0, merged.Price)
			assert.Equal(t, 3, merged.Bedrooms)
			assert.Equal(t, 2, merged.Bathrooms)
			assert.Equal(t, "Springfield", merged.City)
			return nil
		})
	auditWriter.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, audit models.AuditDB) error {
			assert.Equal(t, models.AuditActionUpdated, audit.Action)
			assert.JSONEq(t, `{"fields_changed":["price","bedrooms"]}`, audit.ChangeDetails)
			return nil
		})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	reader.EXPECT().GetByID(ctx, listingID).Return(stored, nil)

	svc := NewListingService(reader, writer, nil, nil, auditWriter, nil, nil, kafkaWriter)
	_, err := svc.Update(ctx, agentID, listingID, input)

	assert.NoError(t, err)
}

func TestListingService_Update_ReplacesImagesWhenProvided(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	imageWriter := NewMockImageWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	stored := &models.ListingDB{ID: listingID, AgentID: agentID, Title: "Loft"}
	images := []ImageInput{
		{ImageURL: "https://img/a.jpg", DisplayOrder: 0},
		{ImageURL: "https://img/b.jpg", DisplayOrder: 1},
	}
	input := UpdateListingInput{Images: &images, ProvidedFields: []string{"images"}}

	reader.EXPECT().GetByID(ctx, listingID).Return(stored, nil)
	writer.EXPECT().Update(ctx, gomock.Any()).Return(nil)
	imageWriter.EXPECT().DeleteByListingID(ctx, listingID).Return(nil)
	imageWriter.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(2)
	auditWriter.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
	reader.EXPECT().GetByID(ctx, listingID).Return(stored, nil)

	svc := NewListingService(reader, writer, nil, imageWriter, auditWriter, nil, nil, kafkaWriter)
	_, err := svc.Update(ctx, agentID, listingID, input)

	assert.NoError(t, err)
}

func TestListingService_Update_Errors(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("not found", func(t *testing.T) {
		reader := NewMockListingReader(ctrl)
		reader.EXPECT().GetByID(ctx, listingID).Return(nil, nil)

		svc := NewListingService(reader, nil, nil, nil, nil, nil, nil, nil)
		_, err := svc.Update(ctx, agentID, listingID, UpdateListingInput{})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("foreign listing", func(t *testing.T) {
		reader := NewMockListingReader(ctrl)
		reader.EXPECT().GetByID(ctx, listingID).
			Return(&models.ListingDB{ID: listingID, AgentID: uuid.New()}, nil)

		svc := NewListingService(reader, nil, nil, nil, nil, nil, nil, nil)
		_, err := svc.Update(ctx, agentID, listingID, UpdateListingInput{})
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestListingService_Delete(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	reader.EXPECT().GetByID(ctx, listingID).
		Return(&models.ListingDB{ID: listingID, AgentID: agentID}, nil)
	writer.EXPECT().SetStatus(ctx, listingID, models.StatusDeleted).Return(nil)
	auditWriter.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, audit models.AuditDB) error {
			assert.Equal(t, models.AuditActionDeleted, audit.Action)
			assert.Equal(t, "{}", audit.ChangeDetails)
			return nil
		})
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewListingService(reader, writer, nil, nil, auditWriter, nil, nil, kafkaWriter)
	assert.NoError(t, svc.Delete(ctx, agentID, listingID))
}

func TestListingService_Delete_InvalidatesSearchCache(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	cache := NewMockSearchCache(ctrl)

	reader.EXPECT().GetByID(ctx, listingID).
		Return(&models.ListingDB{ID: listingID, AgentID: agentID}, nil)
	writer.EXPECT().SetStatus(ctx, listingID, models.StatusDeleted).Return(nil)
	auditWriter.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	// A soft-deleted listing must stop appearing in search results right
	// away, so every cached page is dropped.
	cache.EXPECT().Invalidate(ctx).Return(nil)

	svc := NewListingService(reader, writer, nil, nil, auditWriter, nil, cache, nil)
	assert.NoError(t, svc.Delete(ctx, agentID, listingID))
}

func TestListingService_CacheInvalidationFailureIsSwallowed(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	cache := NewMockSearchCache(ctrl)

	reader.EXPECT().GetByID(ctx, listingID).
		Return(&models.ListingDB{ID: listingID, AgentID: agentID}, nil)
	writer.EXPECT().SetStatus(ctx, listingID, models.StatusDeleted).Return(nil)
	auditWriter.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	cache.EXPECT().Invalidate(ctx).Return(errors.New("redis unreachable"))

	svc := NewListingService(reader, writer, nil, nil, auditWriter, nil, cache, nil)
	assert.NoError(t, svc.Delete(ctx, agentID, listingID))
}

func TestListingService_Delete_Forbidden(t *testing.T) {
	ctx := context.Background()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	reader.EXPECT().GetByID(ctx, listingID).
		Return(&models.ListingDB{ID: listingID, AgentID: uuid.New()}, nil)

	svc := NewListingService(reader, nil, nil, nil, nil, nil, nil, nil)
	assert.ErrorIs(t, svc.Delete(ctx, uuid.New(), listingID), ErrForbidden)
}

func TestListingService_PublishFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	agentID := uuid.New()
	listingID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockListingReader(ctrl)
	writer := NewMockListingWriter(ctrl)
	auditWriter := NewMockAuditWriter(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)

	reader.EXPECT().GetByID(ctx, listingID).
		Return(&models.ListingDB{ID: listingID, AgentID: agentID}, nil)
	writer.EXPECT().SetStatus(ctx, listingID, models.StatusDeleted).Return(nil)
	auditWriter.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	svc := NewListingService(reader, writer, nil, nil, auditWriter, nil, nil, kafkaWriter)
	assert.NoError(t, svc.Delete(ctx, agentID, listingID))
}
