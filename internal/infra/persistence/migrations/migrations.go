// Package migrations embeds the SyncFloww schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"

	"syncfloww/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator is the subset of *migrate.Migrate used by the CLI.
type Migrator interface {
	Up() error
	Down() error
	Steps(n int) error
	Force(version int) error
	Version() (version uint, dirty bool, err error)
}

// These factories are overridden in tests so no database is required.
var (
	withPostgresInstance = func(db *sql.DB) (migratedb.Driver, error) {
		return postgres.WithInstance(db, &postgres.Config{})
	}

	newMigrateWithInstance = func(db *sql.DB, driver migratedb.Driver) (Migrator, error) {
		source, err := iofs.New(files, "sql")
		if err != nil {
			return nil, errors.Wrap(err, "failed to open embedded migrations")
		}

		return migrate.NewWithInstance("iofs", source, "postgres", driver)
	}
)

// New builds a migrator over the embedded SQL files.
func New(db *sql.DB) (Migrator, error) {
	driver, err := withPostgresInstance(db)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migration driver")
	}

	m, err := newMigrateWithInstance(db, driver)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create migrate instance")
	}

	return m, nil
}

// Apply runs steps migrations in direction, or all of them when steps is 0.
// migrate.ErrNoChange is returned unchanged.
func Apply(m Migrator, direction string, steps int) error {
	switch direction {
	case DirectionUp:
		if steps > 0 {
			return m.Steps(steps)
		}

		return m.Up()
	case DirectionDown:
		if steps > 0 {
			return m.Steps(-steps)
		}

		return m.Down()
	default:
		return errors.Errorf("invalid direction: %s (must be 'up' or 'down')", direction)
	}
}

// IsNoChange reports whether err only says the schema was already current.
func IsNoChange(err error) bool {
	return errors.Is(err, migrate.ErrNoChange)
}
