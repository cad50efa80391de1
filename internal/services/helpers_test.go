package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/watertight-recruitment/recruitment-backend/internal/config"
	"github.com/watertight-recruitment/recruitment-backend/internal/database"
	"github.com/watertight-recruitment/recruitment-backend/internal/dtos"
	"github.com/watertight-recruitment/recruitment-backend/internal/models"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB returns a migrated sqlite database with the default listings.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(config.DriverSQLite, filepath.Join(t.TempDir(), "test.db"), gormlogger.Discard)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	_, err = SeedDefaultJobs(context.Background(), NewJobService(db))
	require.NoError(t, err)
	return db
}

// fixedClock starts at start and moves forward a minute per call.
func fixedClock(start time.Time) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(time.Minute)
		return now
	}
}

func submission(ref string, skills ...string) *dtos.EoiSubmission {
	return &dtos.EoiSubmission{
		JobReferenceID: ref,
		FirstName:      "Ada",
		LastName:       "Lovelace",
		EmailAddress:   "ada@example.com",
		PhoneNumber:    "0412345678",
		State:          models.StateVIC,
		Skills:         skills,
	}
}
