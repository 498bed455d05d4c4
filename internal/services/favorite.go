package services

import (
	"context"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
)

// FavoriteReader defines favorite read operations.
type FavoriteReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.FavoriteDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error)
}

// FavoriteWriter defines favorite write operations.
type FavoriteWriter interface {
	Save(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// FavoriteService handles the favorites owned-resource CRUD.
type FavoriteService struct {
	reader FavoriteReader
	writer FavoriteWriter
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(reader FavoriteReader, writer FavoriteWriter) *FavoriteService {
	return &FavoriteService{reader: reader, writer: writer}
}

// Add favorites a listing for the given user. Any authenticated role may
// add favorites; duplicates are not constrained.
func (s *FavoriteService) Add(ctx context.Context, userID, listingID uuid.UUID) (*models.FavoriteDB, error) {
	if listingID == uuid.Nil {
		return nil, ErrMissingFields
	}

	favorite := models.FavoriteDB{
		ID:                uuid.New(),
		UserID:            userID,
		PropertyListingID: listingID,
	}

	saved, err := s.writer.Save(ctx, favorite)
	if err != nil {
		logger.Log.Errorw("failed to save favorite", "user_id", userID, "listing_id", listingID, "error", err)
		return nil, err
	}

	return saved, nil
}

// List returns the caller's favorites.
func (s *FavoriteService) List(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	favorites, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "error", err)
		return nil, err
	}
	return favorites, nil
}

// Remove deletes one favorite after checking that it belongs to the caller.
func (s *FavoriteService) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	favorite, err := s.reader.GetByID(ctx, favoriteID)
	if err != nil {
		logger.Log.Errorw("failed to load favorite", "id", favoriteID, "error", err)
		return err
	}
	if favorite == nil {
		return ErrNotFound
	}
	if favorite.UserID != userID {
		return ErrForbidden
	}

	if err := s.writer.Delete(ctx, favoriteID); err != nil {
		logger.Log.Errorw("failed to delete favorite", "id", favoriteID, "error", err)
		return err
	}

	return nil
}
