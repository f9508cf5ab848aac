// Command manage runs the news and notes applications and their
// maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/config"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/database"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/env"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/logger"
)

func main() {
	if err := newRootCommand(&manage{}).Execute(); err != nil {
		os.Exit(1)
	}
}

// manage carries what every subcommand needs. Fields left nil are loaded
// from the environment before the first subcommand runs.
type manage struct {
	cfg *config.Config
	log *logrus.Logger
}

func newRootCommand(m *manage) *cobra.Command {
	root := &cobra.Command{
		Use:           "manage",
		Short:         "NewsNotes management commands",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if m.cfg == nil {
				env.SetupEnvFile()
				m.cfg = config.Load()
			}
			if m.log == nil {
				m.log = logger.New(m.cfg.LogLevel)
			}
		},
	}

	root.AddCommand(
		serveCommand(m),
		migrateCommand(m),
		newsCommand(m),
		userCommand(m),
	)

	return root
}

func (m *manage) openDB() (*gorm.DB, error) {
	return database.SetupDatabase(m.cfg.Database, m.log)
}

// withRepositories opens the database, hands the repositories to fn and
// closes the connection afterwards.
func (m *manage) withRepositories(fn func(repos *repository.Repositories) error) error {
	db, err := m.openDB()
	if err != nil {
		return err
	}
	defer closeDB(db, m.log)

	return fn(repository.NewFactory(db, nil).GetRepositories())
}

func closeDB(db *gorm.DB, log *logrus.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warnf("Error closing database: %v", err)
	}
}

func printf(cmd *cobra.Command, format string, args ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}
