package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/essgate/internal/config"
	"github.com/terraincognita07/essgate/internal/db"
	"github.com/terraincognita07/essgate/internal/logging"
	"github.com/terraincognita07/essgate/internal/secrets"
	"github.com/terraincognita07/essgate/internal/services"
	"github.com/terraincognita07/essgate/internal/session"
	"gorm.io/gorm"
)

// environment holds the wired services shared by every subcommand.
type environment struct {
	cfg       config.Config
	logger    logging.Logger
	database  *gorm.DB
	sessions  *session.Manager
	mobile    *services.MobileAuthService
	accounts  *services.AccountAuthService
	directory *services.DirectoryService
}

func openEnvironment(cmd *cobra.Command) (*environment, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	database, err := db.Open(db.Options{Driver: cfg.DBDriver, Path: cfg.DBPath, DSN: cfg.DatabaseDSN})
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	box, err := secrets.NewBox([]byte(cfg.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("init secret box: %w", err)
	}
	sessions, err := session.NewManager([]byte(cfg.SecretKey), cfg.SessionTTL)
	if err != nil {
		return nil, fmt.Errorf("init session manager: %w", err)
	}

	store := db.NewServiceStore(database)
	return &environment{
		cfg:      cfg,
		logger:   logger,
		database: database,
		sessions: sessions,
		mobile: services.NewMobileAuthService(services.MobileAuthDependencies{
			Store:    store,
			Box:      box,
			Sessions: sessions,
			Reporter: services.NewErrorReporter(store.ErrorLogs(), logger),
			Logger:   logger,
		}),
		accounts:  services.NewAccountAuthService(store.Accounts(), box, sessions, logger),
		directory: services.NewDirectoryService(store, box),
	}, nil
}

func (rt *environment) close() {
	sqlDB, err := rt.database.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		rt.logger.Warn(context.Background(), "close database failed", "error", err)
	}
}
