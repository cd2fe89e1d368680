// Package backend selects and opens the persistence implementation named
// by configuration. The engine only ever sees the repository interfaces.
package backend

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/kmwaniki/pesa/internal/config"
	"github.com/kmwaniki/pesa/internal/ledger"
	"github.com/kmwaniki/pesa/internal/ledger/store/file"
	"github.com/kmwaniki/pesa/internal/ledger/store/postgres"
	"github.com/kmwaniki/pesa/internal/ledger/store/sqlite"
)

// Open builds the repository for cfg.Backend.Kind. The returned closer
// releases any underlying database handles and is safe to call once.
func Open(ctx context.Context, cfg *config.Config) (ledger.Repository, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend.Kind {
	case "file":
		repo, err := file.New(cfg.Backend.StatePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening file backend: %w", err)
		}

		slog.Info("using file backend", "path", cfg.Backend.StatePath)

		return repo, noop, nil

	case "sqlite":
		repo, err := sqlite.New(cfg.Backend.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("opening sqlite backend: %w", err)
		}

		slog.Info("using sqlite backend", "path", cfg.Backend.SQLitePath)

		return repo, repo.Close, nil

	case "postgres":
		db, err := openPostgres(ctx, cfg.ConnectionString())
		if err != nil {
			return nil, nil, fmt.Errorf("opening postgres backend: %w", err)
		}

		repo := postgres.New(db, cfg.Ledger.Workspace)
		if err := repo.Init(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		slog.Info("using postgres backend", "workspace", cfg.Ledger.Workspace)

		return repo, db.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend.Kind)
	}
}

// openPostgres dials the hosted backend through the pgx stdlib driver. The
// pool stays small: one workspace talks to it at a time, so a handful of
// idle connections covers the dispatch goroutines.
func openPostgres(ctx context.Context, connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
