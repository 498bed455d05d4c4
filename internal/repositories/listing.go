package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ListingReadRepository handles listing read operations. When the request
// context carries a transaction, queries run inside it so reads issued
// during a mutation see that mutation's uncommitted writes.
type ListingReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingReadRepository {
	return &ListingReadRepository{db: db, txGetter: txGetter}
}

func (r *ListingReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns a listing row regardless of its status, or nil without
// error when the row does not exist. Deleted listings remain readable by id.
func (r *ListingReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ListingDB, error) {
	const query = `
		SELECT id, agent_id, title, description, property_type, price, address, city, zip_code,
		       amenities, bedrooms, bathrooms, area, latitude, longitude, status,
		       created_at, updated_at, published_at
		FROM property_listings
		WHERE id = $1
	`

	var listing models.ListingDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &listing, query, id)

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

	return &listing, nil
}

// Search assembles a filtered, sorted, paginated query over published
// listings from the given filter. Every predicate is parameterized; the
// status = 'published' condition is unconditional, so non-published listings
// are never visible through this path. Each row carries the URL of its image
// with the lowest display_order as primary_image_url.
func (r *ListingReadRepository) Search(ctx context.Context, filter models.ListingFilter) ([]models.ListingSummary, error) {
	query := `
		SELECT pl.id, pl.agent_id, pl.title, pl.description, pl.property_type, pl.price,
		       pl.address, pl.city, pl.zip_code, pl.amenities, pl.bedrooms, pl.bathrooms,
		       pl.area, pl.latitude, pl.longitude, pl.status, pl.created_at, pl.updated_at, pl.published_at,
		       (SELECT image_url FROM property_images
		        WHERE property_listing_id = pl.id
		        ORDER BY display_order ASC, created_at ASC
		        LIMIT 1) AS primary_image_url
		FROM property_listings pl
		WHERE pl.status = 'published'
	`
	args := []any{}

	if filter.Keywords != nil {
		args = append(args, "%"+*filter.Keywords+"%")
		query += fmt.Sprintf(" AND (pl.title ILIKE $%d OR pl.description ILIKE $%d)", len(args), len(args))
	}
	if filter.PriceMin != nil {
		args = append(args, *filter.PriceMin)
		query += fmt.Sprintf(" AND pl.price >= $%d", len(args))
	}
	if filter.PriceMax != nil {
		args = append(args, *filter.PriceMax)
		query += fmt.Sprintf(" AND pl.price <= $%d", len(args))
	}
	if filter.Bedrooms != nil {
		args = append(args, *filter.Bedrooms)
		query += fmt.Sprintf(" AND pl.bedrooms = $%d", len(args))
	}
	if filter.Bathrooms != nil {
		args = append(args, *filter.Bathrooms)
		query += fmt.Sprintf(" AND pl.bathrooms = $%d", len(args))
	}
	if filter.PropertyType != nil {
		args = append(args, *filter.PropertyType)
		query += fmt.Sprintf(" AND pl.property_type = $%d", len(args))
	}
	if filter.City != nil {
		args = append(args, "%"+*filter.City+"%")
		query += fmt.Sprintf(" AND pl.city ILIKE $%d", len(args))
	}

	switch filter.Sort {
	case models.SortPriceAsc:
		query += " ORDER BY pl.price ASC"
	case models.SortPriceDesc:
		query += " ORDER BY pl.price DESC"
	default:
		// newest and any unrecognized value
		query += " ORDER BY pl.published_at DESC"
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (filter.Page-1)*filter.Limit)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows := []models.ListingSummary{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result_count", len(rows),
		"error", err,
	)

	return rows, err
}

// ListAll returns every listing regardless of status, for admin moderation.
func (r *ListingReadRepository) ListAll(ctx context.Context) ([]models.ListingDB, error) {
	const query = `
		SELECT id, agent_id, title, description, property_type, price, address, city, zip_code,
		       amenities, bedrooms, bathrooms, area, latitude, longitude, status,
		       created_at, updated_at, published_at
		FROM property_listings
		ORDER BY created_at DESC
	`

	listings := []models.ListingDB{}
	err := sqlx.SelectContext(ctx, r.executor(ctx), &listings, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(listings),
		"error", err,
	)

	return listings, err
}

// ListingWriteRepository handles listing write operations. When the request
// context carries a transaction, statements run inside it.
type ListingWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewListingWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ListingWriteRepository {
	return &ListingWriteRepository{db: db, txGetter: txGetter}
}

func (r *ListingWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts a new listing. Status and published_at are set by the caller;
// creation always publishes immediately.
func (r *ListingWriteRepository) Save(ctx context.Context, listing models.ListingDB) error {
	query := `
		INSERT INTO property_listings
		(id, agent_id, title, description, property_type, price, address, city, zip_code,
		 amenities, bedrooms, bathrooms, area, latitude, longitude, status,
		 created_at, updated_at, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW(), NOW())
	`
	args := []any{
		listing.ID, listing.AgentID, listing.Title, listing.Description, listing.PropertyType,
		listing.Price, listing.Address, listing.City, listing.ZipCode, listing.Amenities,
		listing.Bedrooms, listing.Bathrooms, listing.Area, listing.Latitude, listing.Longitude,
		listing.Status,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listing.ID, listing.AgentID, listing.Title, listing.Status},
		"error", err,
	)

	return err
}

// Update overwrites the mutable listing fields and bumps updated_at.
func (r *ListingWriteRepository) Update(ctx context.Context, listing models.ListingDB) error {
	query := `
		UPDATE property_listings
		SET title = $1, description = $2, property_type = $3, price = $4,
		    address = $5, city = $6, zip_code = $7, amenities = $8, bedrooms = $9,
		    bathrooms = $10, area = $11, latitude = $12, longitude = $13, updated_at = NOW()
		WHERE id = $14
	`
	args := []any{
		listing.Title, listing.Description, listing.PropertyType, listing.Price,
		listing.Address, listing.City, listing.ZipCode, listing.Amenities, listing.Bedrooms,
		listing.Bathrooms, listing.Area, listing.Latitude, listing.Longitude, listing.ID,
	}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{listing.ID, listing.Title},
		"error", err,
	)

	return err
}

// SetStatus flips the listing status and bumps updated_at. Soft delete is a
// transition to 'deleted'; the row itself is never removed.
func (r *ListingWriteRepository) SetStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `
		UPDATE property_listings
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
	args := []any{status, id}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
