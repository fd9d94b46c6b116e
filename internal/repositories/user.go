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

const userColumns = `id, email, name, credits, total_usage, first_upload_at, role, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns nil, nil when no user has the email.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) LIMIT 1`
	return r.get(ctx, query, email)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *UserReadRepository) get(ctx context.Context, query string, arg any) (*models.User, error) {
	var user models.User
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, arg)

	// Log with query in single line
	logger.Log.Debugw(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// DebitCredits subtracts cost from the balance and counts one usage in a single
// conditional statement. It returns the new balance, or sql.ErrNoRows when the
// balance is lower than cost (or the user is gone); the row is left untouched.
func (r *UserWriteRepository) DebitCredits(ctx context.Context, userID uuid.UUID, cost int) (int, error) {
	query := `
		UPDATE users
		SET credits = credits - $2,
		    total_usage = total_usage + 1,
		    updated_at = NOW()
		WHERE id = $1 AND credits >= $2
		RETURNING credits
	`

	var balance int
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &balance, query, userID, cost)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, cost},
		"result", balance,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return balance, nil
}

// MarkFirstUpload sets first_upload_at if it is still NULL and reports whether
// this call was the one that set it.
func (r *UserWriteRepository) MarkFirstUpload(ctx context.Context, userID uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET first_upload_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND first_upload_at IS NULL
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected == 1, nil
}
