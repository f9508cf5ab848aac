package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/spf13/cobra"

	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/database"
	"github.com/ManuelReschke/NewsNotes/migrations"
)

var errMigrateSQLite = errors.New("versioned migrations are only available for mysql; sqlite is migrated on start-up")

func migrateCommand(m *manage) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if m.cfg.Database.Driver == config.DriverSQLite {
					db, err := m.openDB()
					if err != nil {
						return err
					}
					closeDB(db, m.log)
					printf(cmd, "SQLite schema is up to date")
					return nil
				}
				return m.migrate(func(mg *migrate.Migrate) error {
					err := mg.Up()
					switch {
					case errors.Is(err, migrate.ErrNoChange):
						printf(cmd, "No change: database is already up to date")
					case err != nil:
						return fmt.Errorf("apply migrations: %w", err)
					default:
						printf(cmd, "Migrations applied")
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return m.migrate(func(mg *migrate.Migrate) error {
					if err := mg.Steps(-1); err != nil {
						return fmt.Errorf("roll back last migration: %w", err)
					}
					printf(cmd, "Rolled back the last migration")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "goto VERSION",
			Short: "Migrate up or down to VERSION",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				version, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid version %q: %w", args[0], err)
				}
				return m.migrate(func(mg *migrate.Migrate) error {
					err := mg.Migrate(uint(version))
					switch {
					case errors.Is(err, migrate.ErrNoChange):
						printf(cmd, "No change: database is already at version %d", version)
					case err != nil:
						return fmt.Errorf("migrate to version %d: %w", version, err)
					default:
						printf(cmd, "Migrated to version %d", version)
					}
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the current migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return m.migrate(func(mg *migrate.Migrate) error {
					version, dirty, err := mg.Version()
					switch {
					case errors.Is(err, migrate.ErrNilVersion):
						printf(cmd, "No migrations applied yet")
					case err != nil:
						return fmt.Errorf("read migration version: %w", err)
					case dirty:
						printf(cmd, "Current version: %d (dirty)", version)
					default:
						printf(cmd, "Current version: %d", version)
					}
					return nil
				})
			},
		},
	)

	return cmd
}

// migrate runs fn against the embedded MySQL migrations.
func (m *manage) migrate(fn func(mg *migrate.Migrate) error) error {
	if m.cfg.Database.Driver != config.DriverMySQL {
		return errMigrateSQLite
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	m.log.Infof("Connecting to database %s@%s:%s/%s",
		m.cfg.Database.User,
		m.cfg.Database.Host,
		m.cfg.Database.Port,
		m.cfg.Database.Name,
	)
	mg, err := migrate.NewWithSourceInstance("iofs", src, database.MigrateURL(m.cfg.Database))
	if err != nil {
		return fmt.Errorf("initialise migrations: %w", err)
	}
	defer func() {
		if sourceErr, dbErr := mg.Close(); sourceErr != nil || dbErr != nil {
			m.log.Warnf("Error closing migration resources: %v, %v", sourceErr, dbErr)
		}
	}()

	return fn(mg)
}
