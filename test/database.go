package test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/finsight/backend/internal/config"
	"github.com/finsight/backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// DB returns a migrated sqlite database in a temporary file.
//
// The connection is closed when the test finishes.
func DB(t *testing.T) *gorm.DB {
	db, err := models.Connect(models.SQLite(TmpFile(t)), config.DatabaseConfig{ConnMaxLifetime: time.Hour})
	require.Nil(t, err, "database connection failed")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	return db
}

// CloseDB closes the database connection. This enables testing the handling
// of database errors.
func CloseDB(t *testing.T, db *gorm.DB) {
	sqlDB, err := db.DB()
	require.Nil(t, err, "failed to get database resource")
	sqlDB.Close()
}
