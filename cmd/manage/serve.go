package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsNotes/app/repository"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/cache"
	"github.com/ManuelReschke/NewsNotes/internal/pkg/router"
)

const shutdownTimeout = 10 * time.Second

func serveCommand(m *manage) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:       "serve news|notes",
		Short:     "Run the news or the notes web application",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(router.News), string(router.Notes)},
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = m.cfg.Port
			}
			return m.serve(router.Kind(args[0]), fmt.Sprintf("%s:%s", m.cfg.Host, port))
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (default APP_PORT)")

	return cmd
}

func (m *manage) serve(kind router.Kind, addr string) error {
	db, err := m.openDB()
	if err != nil {
		return err
	}
	defer closeDB(db, m.log)

	redisClient := cache.NewClient(m.cfg.Cache, m.log)
	if redisClient != nil {
		defer redisClient.Close()
	}

	app, err := m.application(kind, db, redisClient)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		m.log.Info("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			m.log.Errorf("Shutdown: %v", err)
		}
	}()

	m.log.Infof("Starting %s application on %s", kind, addr)
	return app.Listen(addr)
}

func (m *manage) application(kind router.Kind, db *gorm.DB, redisClient *redis.Client) (*router.Application, error) {
	return router.NewApplication(kind, router.Dependencies{
		Config: m.cfg,
		DB:     db,
		Cache:  redisClient,
		Repos:  repository.NewFactory(db, nil).GetRepositories(),
		Log:    m.log,
	})
}
