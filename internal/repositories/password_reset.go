package repositories

import (
	"context"
	"strings"

	"github.com/dkenzhebek/estatefinder/internal/logger"
	"github.com/dkenzhebek/estatefinder/internal/models"
	"github.com/jmoiron/sqlx"
)

// PasswordResetWriteRepository stores issued reset tokens. Only issuance is
// implemented; redemption has no endpoint in the current surface.
type PasswordResetWriteRepository struct {
	db *sqlx.DB
}

func NewPasswordResetWriteRepository(db *sqlx.DB) *PasswordResetWriteRepository {
	return &PasswordResetWriteRepository{db: db}
}

// Save inserts a reset token row with its expiry.
func (r *PasswordResetWriteRepository) Save(ctx context.Context, reset models.PasswordResetDB) error {
	query := `
		INSERT INTO password_resets (id, user_id, reset_token, created_at, expires_at, used)
		VALUES ($1, $2, $3, NOW(), $4, FALSE)
	`
	args := []any{reset.ID, reset.UserID, reset.ResetToken, reset.ExpiresAt}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reset.ID, reset.UserID, reset.ExpiresAt},
		"error", err,
	)

	return err
}
