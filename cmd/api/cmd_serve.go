package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/watertight-recruitment/recruitment-backend/internal/database"
	"github.com/watertight-recruitment/recruitment-backend/internal/handlers"
	"github.com/watertight-recruitment/recruitment-backend/internal/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server.

On startup this:
1. Migrates the schema
2. Creates the ADMIN_NAME account if it is missing
3. Seeds the default job listings when SEED_DEFAULTS is set and there are none`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := bootstrap()
	if err != nil {
		return err
	}
	defer e.close()
	logger := e.logger

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.Migrate(e.db); err != nil {
		logger.Error("migration failed", zap.Error(err))
		return err
	}

	svc := handlers.NewServices(e.db, e.cfg)

	if _, created, err := svc.Users.EnsureUser(ctx, e.cfg.AdminName, e.cfg.AdminPassword); err != nil {
		logger.Error("ensure admin account failed", zap.Error(err))
		return err
	} else if created {
		logger.Info("created admin account", zap.String("name", e.cfg.AdminName))
	}

	if e.cfg.SeedDefaults {
		n, err := services.SeedDefaultJobs(ctx, svc.Jobs)
		if err != nil {
			logger.Error("seeding default jobs failed", zap.Error(err))
			return err
		}
		if n > 0 {
			logger.Info("seeded default jobs", zap.Int("count", n))
		}
	}

	if n, err := svc.Sessions.PurgeExpired(ctx); err != nil {
		logger.Warn("purging expired sessions failed", zap.Error(err))
	} else if n > 0 {
		logger.Info("purged expired sessions", zap.Int64("count", n))
	}

	srv := &http.Server{
		Addr:              ":" + e.cfg.Port,
		Handler:           handlers.NewRouter(e.cfg, logger, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
