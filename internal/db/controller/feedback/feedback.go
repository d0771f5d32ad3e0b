// Package feedback provides the storage operations for the feedback table.
package feedback

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/feedback-collector/feedback-collector/internal/db/models"
)

const (
	// MinRating is the lowest rating the table accepts.
	MinRating = 1
	// MaxRating is the highest rating the table accepts.
	MaxRating = 5

	orderNewestFirst = "date_submitted DESC, id DESC"
)

// EnsureSchema creates the feedback table with its rating check if it does not exist yet.
// Calling it again on an existing table is a no-op.
func EnsureSchema(db *gorm.DB) error {
	if db == nil {
		return ErrDBNil
	}

	m := db.Migrator()
	if m.HasTable(&models.Feedback{}) {
		return nil
	}

	if err := m.CreateTable(&models.Feedback{}); err != nil {
		return fmt.Errorf("failed to create feedback table: %w", err)
	}

	return nil
}

// Insert appends entry and returns the id assigned by the database.
// The entry's ID field is ignored and overwritten.
func Insert(db *gorm.DB, entry *models.Feedback) (uint64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if entry == nil {
		return 0, ErrEntryNil
	}

	if entry.Rating < MinRating || entry.Rating > MaxRating {
		return 0, fmt.Errorf("%w: got %d", ErrConstraintViolation, entry.Rating)
	}

	entry.ID = 0
	if err := db.Create(entry).Error; err != nil {
		return 0, fmt.Errorf("failed to insert feedback: %w", err)
	}

	return entry.ID, nil
}

// ListAll returns every entry, newest submission first.
// Entries with the same timestamp are ordered by descending id.
func ListAll(db *gorm.DB) ([]models.Feedback, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	entries := make([]models.Feedback, 0)
	if err := db.Order(orderNewestFirst).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	return entries, nil
}

// Count returns the number of stored entries.
func Count(db *gorm.DB) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64
	if err := db.Model(&models.Feedback{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	return count, nil
}
