package database

import (
	"fmt"
	"strings"
	"time"

	"github.com/watertight-recruitment/recruitment-backend/internal/config"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the database named by the config. Store errors are
// translated by the dialect (TranslateError) so callers can match on
// gorm.ErrForeignKeyViolated and friends.
func Connect(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := Open(cfg.DBDriver, cfg.DatabaseURL, newGormLogger(logger, cfg.Debug))
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection established", zap.String("driver", cfg.DBDriver))
	return db, nil
}

// Open connects with an explicit driver and DSN.
func Open(driver, dsn string, l gormlogger.Interface) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverPostgres:
		dialector = postgres.Open(dsn)
	case config.DriverSQLite:
		dialector = sqlite.Open(withForeignKeys(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         l,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// SQLite leaves foreign keys off unless asked, per connection.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func newGormLogger(logger *zap.Logger, debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}
	return gormlogger.New(zap.NewStdLog(logger.Named("gorm")), gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}
