package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"blogapi/migrations"
	"blogapi/src/infra/config"
)

// Migrate applies all pending schema migrations embedded in the binary.
// It uses a short-lived database/sql connection because goose does not
// speak the pgx pool API.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, log *slog.Logger) error {
	conn, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return fmt.Errorf("failed to open migration connection: %w", err)
	}
	defer conn.Close()

	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.UpContext(ctx, conn, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, conn)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	log.Info("schema migrations applied", "version", version)
	return nil
}
