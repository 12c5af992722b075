package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	root "mca"
	"mca/internal/config"
	"mca/pkg/logger"
)

// migrateCommand constructs the 'migrate' subcommand that brings the schema
// of the backend and of the job queue to their latest versions.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				logger.Fatal(ctx, "postgres storage is not backed by *sql.DB")
			}

			if dryRun {
				if err := printStatus(ctx, db); err != nil {
					logger.Fatal(ctx, "could not get migration status", zap.Error(err))
				}

				return
			}

			goose.SetBaseFS(root.Migrations)
			if err := goose.SetDialect("postgres"); err != nil {
				logger.Fatal(ctx, "could not set goose dialect to postgres", zap.Error(err))
			}
			if err := goose.UpContext(ctx, db, "migrations"); err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}

			version, err := migrateRiver(ctx, db)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river queue", zap.Error(err))
			}

			logger.Info(ctx, "database migrated", zap.Int("river_version", version))
		},
	}

	cmd.Flags().BoolVar(&dryRun, "status", false, "Only print the applied and pending migrations")

	return cmd
}

// migrateRiver applies the pending river queue migrations and returns the
// resulting version.
func migrateRiver(ctx context.Context, db *sql.DB) (int, error) {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return 0, fmt.Errorf("could not create river queue migrator: %w", err)
	}

	all := migrator.AllVersions()
	latest := all[len(all)-1].Version

	current := 0
	existing, err := migrator.ExistingVersions(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not get existing river queue migrations: %w", err)
	}
	if len(existing) > 0 {
		current = existing[len(existing)-1].Version
	}
	if latest <= current {
		return current, nil
	}

	if _, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, &rivermigrate.MigrateOpts{
		TargetVersion: latest,
	}); err != nil {
		return 0, fmt.Errorf("could not apply river queue migrations: %w", err)
	}

	return latest, nil
}

func printStatus(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("could not set goose dialect to postgres: %w", err)
	}

	if err := goose.StatusContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("could not get goose status: %w", err)
	}

	return nil
}
