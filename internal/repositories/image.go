package repositories

import (
	"context"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ImageReadRepository handles property image reads.
type ImageReadRepository struct {
	db *sqlx.DB
}

func NewImageReadRepository(db *sqlx.DB) *ImageReadRepository {
	return &ImageReadRepository{db: db}
}

// ListByListingID returns all images for a listing in render order:
// ascending display_order, ties broken by insertion order.
func (r *ImageReadRepository) ListByListingID(ctx context.Context, listingID uuid.UUID) ([]models.ImageDB, error) {
	const query = `
		SELECT id, property_listing_id, image_url, alt_text, display_order, created_at
		FROM property_images
		WHERE property_listing_id = $1
		ORDER BY display_order ASC, created_at ASC
	`

	images := []models.ImageDB{}
	err := r.db.SelectContext(ctx, &images, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"result_count", len(images),
		"error", err,
	)

	return images, err
}

// ImageWriteRepository handles property image writes. When the request
// context carries a transaction, statements run inside it.
type ImageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewImageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ImageWriteRepository {
	return &ImageWriteRepository{db: db, txGetter: txGetter}
}

func (r *ImageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts one image row. created_at uses clock_timestamp() rather than
// NOW(): images of one request are inserted in a single transaction, and
// NOW() would stamp them all with the transaction start time, losing the
// insertion order that breaks display_order ties.
func (r *ImageWriteRepository) Save(ctx context.Context, image models.ImageDB) error {
	query := `
		INSERT INTO property_images (id, property_listing_id, image_url, alt_text, display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, clock_timestamp())
	`
	args := []any{image.ID, image.PropertyListingID, image.ImageURL, image.AltText, image.DisplayOrder}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// DeleteByListingID removes every image of a listing. Image updates are a
// wholesale replace, never a merge: delete all, then insert the new set.
func (r *ImageWriteRepository) DeleteByListingID(ctx context.Context, listingID uuid.UUID) error {
	query := `
		DELETE FROM property_images
		WHERE property_listing_id = $1
	`

	_, err := r.executor(ctx).ExecContext(ctx, query, listingID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listingID},
		"error", err,
	)

	return err
}
