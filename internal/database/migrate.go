package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"spendwise/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// NewMigrator returns a golang-migrate instance for the configured driver,
// reading from the embedded migration files. SQLite migrations run on their
// own connection; closing the migrator closes it.
func NewMigrator(cfg *Config) (*migrate.Migrate, error) {
	switch cfg.Driver {
	case DriverSQLite:
		src, err := iofs.New(migrationsFS, "migrations/sqlite")
		if err != nil {
			return nil, fmt.Errorf("create iofs source: %w", err)
		}
		conn, err := sql.Open("sqlite3", cfg.SQLiteDSN())
		if err != nil {
			return nil, fmt.Errorf("open migration database: %w", err)
		}
		driver, err := sqlite3.WithInstance(conn, &sqlite3.Config{})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create sqlite driver: %w", err)
		}
		m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create migrate instance: %w", err)
		}
		return m, nil

	case DriverPostgres:
		src, err := iofs.New(migrationsFS, "migrations/postgres")
		if err != nil {
			return nil, fmt.Errorf("create iofs source: %w", err)
		}
		m, err := migrate.NewWithSourceInstance("iofs", src, cfg.PostgresURL())
		if err != nil {
			return nil, fmt.Errorf("create migrate instance: %w", err)
		}
		return m, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// MigrateUp applies every pending migration.
func MigrateUp(cfg *Config) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer CloseMigrator(m)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// CloseMigrator closes both ends of m and logs any failure.
func CloseMigrator(m *migrate.Migrate) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Get().Warnf("migrate source close error: %v", srcErr)
	}
	if dbErr != nil {
		logger.Get().Warnf("migrate database close error: %v", dbErr)
	}
}
