package postgre

import (
	"context"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"calendar-status-sync/internal/settings/repository"
	"calendar-status-sync/pkg/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

type implRepository struct {
	pool *pgxpool.Pool
	l    log.Logger
}

// New creates a PostgreSQL-backed settings Repository on pool.
func New(pool *pgxpool.Pool, l log.Logger) repository.Repository {
	if pool == nil {
		panic("settings/repository/postgre: pool is required")
	}
	return &implRepository{pool: pool, l: l}
}

// Connect runs pending migrations against dsn and opens a pool.
func Connect(ctx context.Context, dsn string, l log.Logger) (*pgxpool.Pool, error) {
	if err := Migrate(ctx, dsn, l); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// Migrate applies the embedded schema migrations. A dirty version left by an
// interrupted run is forced before migrating up.
func Migrate(ctx context.Context, dsn string, l log.Logger) error {
	sourceDriver, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("failed to create source driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}
	if dirty {
		l.Warnf(ctx, "settings/repository/postgre.Migrate: database dirty at version %d, forcing", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force migration version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		l.Infof(ctx, "settings/repository/postgre.Migrate: no new migrations to apply")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	newVersion, _, _ := m.Version()
	l.Infof(ctx, "settings/repository/postgre.Migrate: migrated from %d to %d", version, newVersion)
	return nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("settings/repository/postgre.%s", method)
}
