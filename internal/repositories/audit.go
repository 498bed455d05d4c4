package repositories

import (
	"context"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/jmoiron/sqlx"
)

// AuditWriteRepository appends listing audit entries. Rows are append-only:
// there is no update or delete path.
type AuditWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewAuditWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AuditWriteRepository {
	return &AuditWriteRepository{db: db, txGetter: txGetter}
}

func (r *AuditWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save appends one audit row for a mutating listing operation.
func (r *AuditWriteRepository) Save(ctx context.Context, audit models.AuditDB) error {
	query := `
		INSERT INTO listing_audits (id, property_listing_id, action, change_details, performed_by, performed_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	args := []any{audit.ID, audit.PropertyListingID, audit.Action, audit.ChangeDetails, audit.PerformedBy}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}
