package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/watertight-recruitment/recruitment-backend/internal/config"
	"github.com/watertight-recruitment/recruitment-backend/internal/database"
	"github.com/watertight-recruitment/recruitment-backend/internal/logging"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// rootCmd runs the server when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "api",
	Short: "Watertight Recruitment backend",
	Long: `Job listings, the application form and the management dashboard API.

Available subcommands:
  serve    - Run the HTTP server (default)
  migrate  - Create or update the database tables
  seed     - Insert the default job listings into an empty database
  add-user - Create a management account`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// env is what every subcommand needs before it can do anything.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	db     *gorm.DB
}

// bootstrap loads config, builds the logger and connects to the database.
func bootstrap() (*env, error) {
	// 1. Load Environment Variables
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	// 2. Logger
	logger, err := logging.New(cfg.LogLevel, cfg.Debug)
	if err != nil {
		return nil, err
	}

	// 3. Database Connection
	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", zap.Error(err))
		return nil, err
	}

	return &env{cfg: cfg, logger: logger, db: db}, nil
}

func (e *env) close() {
	if sqlDB, err := e.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = e.logger.Sync()
}
