package repositories

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pixelift/pixelift-api/internal/logger"
)

//go:embed schema.sql
var schema string

// Migrate creates the tables used by the repositories if they do not exist.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	logger.Log.Infow("database schema applied")
	return nil
}
