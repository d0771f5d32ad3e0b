// Package testutil holds helpers shared by package tests.
package testutil

import (
	"io"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	controller "github.com/feedback-collector/feedback-collector/internal/db/controller/feedback"
)

// NewDB opens a private in-memory sqlite database with the feedback table created.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewEmptyDB(t)
	require.NoError(t, controller.EnsureSchema(db), "failed to create feedback table")

	return db
}

// NewEmptyDB opens a private in-memory sqlite database without any table.
func NewEmptyDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "failed to open sqlite in-memory db")

	sqlDB, err := db.DB()
	require.NoError(t, err)

	// every connection would get its own in-memory database
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return db
}

// NoOpViews is a minimal fiber Views engine for handler tests.
// It writes the "Error" value of a fiber.Map when present, otherwise the template name.
type NoOpViews struct{}

// Load implements fiber.Views.
func (NoOpViews) Load() error { return nil }

// Render implements fiber.Views.
func (NoOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	if m, ok := data.(fiber.Map); ok {
		if v, exists := m["Error"].(string); exists && v != "" {
			_, _ = io.WriteString(w, v)
			return nil
		}
	}

	_, _ = io.WriteString(w, name)

	return nil
}
