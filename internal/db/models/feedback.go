// Package models contains database model definitions.
package models

// Feedback is one persisted feedback submission.
// Rows are append-only: nothing in the application updates or deletes them.
type Feedback struct {
	// ID is assigned by the database on insert.
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	// Name of the submitter, never empty.
	Name string `gorm:"column:name;type:text;not null" json:"name"`
	// Email is optional and not validated.
	Email string `gorm:"column:email;type:text" json:"email"`
	// Rating is between 1 and 5, enforced by a check constraint.
	Rating int `gorm:"column:rating;not null;check:chk_feedback_rating,rating >= 1 AND rating <= 5" json:"rating"`
	// Comments is the optional free text, empty when not given.
	Comments string `gorm:"column:comments;type:text" json:"comments"`
	// DateSubmitted is the server assigned UTC submission time, see feedback.TimeLayout.
	DateSubmitted string `gorm:"column:date_submitted;size:32;not null" json:"date_submitted"`
}

// TableName pins the table name to "feedback".
func (Feedback) TableName() string {
	return "feedback"
}
