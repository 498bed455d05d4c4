package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FavoriteReadRepository handles favorite reads.
type FavoriteReadRepository struct {
	db *sqlx.DB
}

func NewFavoriteReadRepository(db *sqlx.DB) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db}
}

// GetByID returns one favorite row, or nil without error when absent.
func (r *FavoriteReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FavoriteDB, error) {
	const query = `
		SELECT id, user_id, property_listing_id, created_at
		FROM favorites
		WHERE id = $1
	`

	var favorite models.FavoriteDB
	err := r.db.GetContext(ctx, &favorite, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &favorite, nil
}

// ListByUserID returns every favorite belonging to a user.
func (r *FavoriteReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.FavoriteDB, error) {
	const query = `
		SELECT id, user_id, property_listing_id, created_at
		FROM favorites
		WHERE user_id = $1
	`

	favorites := []models.FavoriteDB{}
	err := r.db.SelectContext(ctx, &favorites, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(favorites),
		"error", err,
	)

	return favorites, err
}

// FavoriteWriteRepository handles favorite writes.
type FavoriteWriteRepository struct {
	db *sqlx.DB
}

func NewFavoriteWriteRepository(db *sqlx.DB) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db}
}

// Save inserts a favorite and returns the persisted row. Duplicate
// favorites of the same listing by the same user are not constrained.
func (r *FavoriteWriteRepository) Save(ctx context.Context, favorite models.FavoriteDB) (*models.FavoriteDB, error) {
	query := `
		INSERT INTO favorites (id, user_id, property_listing_id, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, user_id, property_listing_id, created_at
	`
	args := []any{favorite.ID, favorite.UserID, favorite.PropertyListingID}

	var saved models.FavoriteDB
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

// Delete removes one favorite row. Favorites are the only hard-deleted entity.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM favorites
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	return err
}
