package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"space-age/internal/shared/config"

	_ "github.com/lib/pq"
)

type DB struct {
	*sql.DB
}

// opener has the signature of sql.Open.
type opener func(driverName, dataSourceName string) (*sql.DB, error)

// Connect opens the Postgres pool described by cfg, verifies it with a ping
// and applies the migrations under cfg.MigrationsPath. An empty
// MigrationsPath leaves the schema untouched.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	return connect(ctx, cfg, sql.Open)
}

func connect(ctx context.Context, cfg config.DatabaseConfig, open opener) (*DB, error) {
	logger := slog.With(
		"component", "database",
		"operation", "connect",
		"host", cfg.Host,
		"database", cfg.Name,
	)

	sqlDB, err := open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db := &DB{sqlDB}

	if err := db.PingContext(ctx); err != nil {
		db.abandon(logger, err)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.MigrationsPath != "" {
		if err := db.RunMigrations(ctx, cfg.MigrationsPath); err != nil {
			db.abandon(logger, err)
			return nil, err
		}
	}

	logger.Info("Database ready",
		"port", cfg.Port,
		"sslmode", cfg.SSLMode,
		"max_open_conns", cfg.MaxOpenConns,
		"migrations", cfg.MigrationsPath,
	)
	return db, nil
}

func (db *DB) abandon(logger *slog.Logger, cause error) {
	logger.Error("Database unusable, closing pool", "error", cause)
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
}
