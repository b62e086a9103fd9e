package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/terraincognita07/essgate/internal/api"
	"github.com/terraincognita07/essgate/internal/i18n"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := openEnvironment(cmd)
			if err != nil {
				return err
			}
			defer rt.close()
			return serve(cmd, rt)
		},
	}
}

func serve(cmd *cobra.Command, rt *environment) error {
	time.Local = rt.cfg.Location

	i18nManager, err := i18n.NewEmbeddedManager(rt.cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(api.Dependencies{
		Mobile:       rt.mobile,
		Accounts:     rt.accounts,
		I18n:         i18nManager,
		Logger:       rt.logger,
		CookieSecure: rt.cfg.CookieSecure,
		SessionTTL:   rt.sessions.TTL(),
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}
	app := api.NewApp(handler, cmd.ErrOrStderr())

	sigCtx, stopSignals := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			rt.logger.Error(shutdownCtx, "server shutdown failed", "error", err)
		}
	}()

	rt.logger.Info(sigCtx, "essgate listening",
		"addr", "0.0.0.0:"+rt.cfg.Port,
		"db_driver", rt.cfg.DBDriver,
		"tz", rt.cfg.Location.String(),
	)
	if err := app.Listen(":" + rt.cfg.Port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}
