package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"trimly/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

func newMigrator(cfg *config.Config) (*migrate.Migrate, error) {
	pg := cfg.DB.Postgres

	databaseURL := fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s&x-migrations-table=%s",
		pg.Write.Username,
		pg.Write.Password,
		net.JoinHostPort(pg.Write.Host, pg.Write.Port),
		pg.Prefix+pg.Write.Name,
		pg.Write.SSLMode,
		pg.MigrationTable,
	)

	mig, err := migrate.New(migrationSource, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

func run(cfg *config.Config, apply func(*migrate.Migrate) error, doneMsg string) error {
	mig, err := newMigrator(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	log.Info().Msg(doneMsg)

	return nil
}

// Up applies every pending migration.
func Up(cfg *config.Config) error {
	return run(cfg, (*migrate.Migrate).Up, "Database migrations completed successfully")
}

// StepUp applies exactly one pending migration.
func StepUp(cfg *config.Config) error {
	return run(cfg, func(m *migrate.Migrate) error {
		return m.Steps(1)
	}, "Database migrations completed successfully")
}

// Down rolls back the most recent migration.
func Down(cfg *config.Config) error {
	return run(cfg, func(m *migrate.Migrate) error {
		return m.Steps(-1)
	}, "Database migrations rolled back successfully")
}

// Drop rolls back every applied migration.
func Drop(cfg *config.Config) error {
	return run(cfg, (*migrate.Migrate).Down, "Database migrations rolled back successfully")
}
