package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"syncfloww/config"
	"syncfloww/internal/domain/lifecycle"
	logs "syncfloww/internal/infra/log"
	"syncfloww/internal/infra/persistence/migrations"
	"syncfloww/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type migrateFlags struct {
	direction string
	steps     int
	force     int
}

func main() {
	var flags migrateFlags
	flag.StringVar(&flags.direction, "direction", migrations.DirectionUp, "Migration direction (up or down)")
	flag.IntVar(&flags.steps, "steps", 0, "Number of migrations to apply, 0 applies all")
	flag.IntVar(&flags.force, "force", -1, "Force the schema version and clear the dirty flag, then exit")
	flag.Parse()

	if err := run(flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(flags migrateFlags) error {
	var (
		db     *gorm.DB
		logger *slog.Logger
	)
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&db, &logger),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}
	defer func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	}()

	sqlDB, err := db.DB()
	if err != nil {
		return errors.WithStack(err)
	}
	m, err := migrations.New(sqlDB)
	if err != nil {
		return err
	}

	if flags.force >= 0 {
		if err := m.Force(flags.force); err != nil {
			return errors.Wrapf(err, "failed to force version %d", flags.force)
		}
		logger.Info("Forced migration version", slog.Int("version", flags.force))

		return nil
	}

	if err := migrations.Apply(m, flags.direction, flags.steps); err != nil {
		if migrations.IsNoChange(err) {
			logger.Info("Schema already up to date")

			return nil
		}

		return errors.Wrap(err, "migration failed")
	}

	// A schema rolled back to nothing has no version to report.
	if version, dirty, err := m.Version(); err == nil {
		logger.Info("Migration applied",
			slog.String("direction", flags.direction),
			slog.Uint64("version", uint64(version)),
			slog.Bool("dirty", dirty),
		)
	} else {
		logger.Info("Migration applied", slog.String("direction", flags.direction))
	}

	return nil
}
