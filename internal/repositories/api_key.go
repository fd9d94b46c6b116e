package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pixelift/pixelift-api/internal/logger"
	"github.com/pixelift/pixelift-api/internal/models"
)

type APIKeyRepository struct {
	db *sqlx.DB
}

func NewAPIKeyRepository(db *sqlx.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

func (r *APIKeyRepository) Create(ctx context.Context, key *models.APIKey) error {
	query := `
		INSERT INTO api_keys (id, user_id, name, prefix, key_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := r.db.ExecContext(ctx, query, key.ID, key.UserID, key.Name, key.Prefix, key.KeyHash)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{key.ID, key.UserID, key.Name, key.Prefix},
		"error", err,
	)

	return err
}

// GetByPrefix returns the active key with the given prefix joined with its
// owner's email, or nil, nil when there is none.
func (r *APIKeyRepository) GetByPrefix(ctx context.Context, prefix string) (*models.APIKey, error) {
	query := `
		SELECT k.id, k.user_id, u.email AS user_email, k.name, k.prefix, k.key_hash,
		       k.last_used_at, k.revoked_at, k.created_at
		FROM api_keys k
		JOIN users u ON u.id = k.user_id
		WHERE k.prefix = $1 AND k.revoked_at IS NULL
	`

	var key models.APIKey
	err := r.db.GetContext(ctx, &key, query, prefix)

	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{prefix},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (r *APIKeyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.APIKey, error) {
	query := `
		SELECT id, user_id, name, prefix, last_used_at, revoked_at, created_at
		FROM api_keys
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	keys := []models.APIKey{}
	err := r.db.SelectContext(ctx, &keys, query, userID)
	if err != nil {
		logger.Log.Errorw("failed to list api keys", "userID", userID, "error", err)
		return nil, err
	}
	return keys, nil
}

// Revoke returns sql.ErrNoRows when the key does not belong to the user or is already revoked.
func (r *APIKeyRepository) Revoke(ctx context.Context, userID, keyID uuid.UUID) error {
	query := `
		UPDATE api_keys SET revoked_at = NOW()
		WHERE id = $1 AND user_id = $2 AND revoked_at IS NULL
	`
	res, err := r.db.ExecContext(ctx, query, keyID, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{keyID, userID},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *APIKeyRepository) TouchLastUsed(ctx context.Context, keyID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `UPDATE api_keys SET last_used_at = NOW() WHERE id = $1`, keyID)
	return err
}
