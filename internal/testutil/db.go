// Package testutil provides a migrated in-memory database for package tests.
package testutil

import (
	"context"
	"strings"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"salonbooking/internal/database"
)

// NewDB returns a fresh shared-cache in-memory SQLite database named after the test.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	database.SetMigrationLogger(goose.NopLogger())

	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := database.Connect("file:"+name+"?mode=memory&cache=shared", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
