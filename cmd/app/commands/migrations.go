package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/allisson/resourceapi/internal/database"
)

// RunMigrations applies every pending migration for the configured driver when steps is 0,
// including the default role seed. A non-zero steps moves that many migrations up, or down
// when negative. Returns nil when there is nothing to do.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string, steps int) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver), slog.Int("steps", steps))

	migrationsPath, err := database.MigrationsPath(dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	m, err := migrate.New(migrationsPath, databaseURL(dbDriver, dbConnectionString))
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if steps == 0 {
		err = m.Up()
	} else {
		err = m.Steps(steps)
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}
	logger.Info("migrations completed successfully", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	return nil
}

// databaseURL turns a go-sql-driver/mysql DSN into the mysql:// URL golang-migrate expects.
// PostgreSQL URLs are shared by both.
func databaseURL(dbDriver, dbConnectionString string) string {
	if dbDriver == database.DriverMySQL && !strings.HasPrefix(dbConnectionString, "mysql://") {
		return "mysql://" + dbConnectionString
	}
	return dbConnectionString
}
