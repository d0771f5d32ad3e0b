// Package feedback validates submissions, stores them and computes the
// statistics shown on the admin dashboard.
package feedback

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	controller "github.com/feedback-collector/feedback-collector/internal/db/controller/feedback"
	"github.com/feedback-collector/feedback-collector/internal/db/models"
)

const (
	// MinRating is the lowest accepted rating.
	MinRating = controller.MinRating
	// MaxRating is the highest accepted rating.
	MaxRating = controller.MaxRating

	// TimeLayout is the fixed width UTC ISO-8601 layout of DateSubmitted.
	// Fixed width keeps string order equal to time order.
	TimeLayout = "2006-01-02T15:04:05.000000Z"

	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

var submissions = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "feedback_submissions_total",
		Help: "Number of feedback submissions, differentiated by outcome.",
	},
	[]string{"outcome"},
)

// Submission is a feedback form as posted by a visitor, JSON or urlencoded.
type Submission struct {
	Name     string `json:"name"     form:"name"`
	Email    string `json:"email"    form:"email"`
	Rating   Rating `json:"rating"   form:"rating"`
	Comments string `json:"comments" form:"comments"`
}

// Result is returned for an accepted submission.
type Result struct {
	ID      uint64
	Message string
}

// Record is the plain representation of an entry served by the JSON API.
type Record struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Rating        int    `json:"rating"`
	Comments      string `json:"comments"`
	DateSubmitted string `json:"date_submitted"`
}

// Dashboard bundles the entries and their statistics.
type Dashboard struct {
	Entries []models.Feedback
	Stats   Stats
}

// normalized is the submission after trimming and parsing.
type normalized struct {
	Name   string `validate:"required"`
	Rating int    `validate:"min=1,max=5"`
}

// Service implements the feedback operations on top of the storage layer.
type Service struct {
	db       *gorm.DB
	validate *validator.Validate
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithClock replaces time.Now, used to make submission times deterministic.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates the feedback service for db.
func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:       db,
		validate: validator.New(),
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Submit validates sub and stores it.
// Invalid input returns a *ValidationError and nothing is stored.
func (s *Service) Submit(sub Submission) (Result, error) {
	entry, err := s.normalize(sub)
	if err != nil {
		submissions.WithLabelValues(outcomeRejected).Inc()
		return Result{}, err
	}

	if s.db == nil {
		submissions.WithLabelValues(outcomeFailed).Inc()
		return Result{}, fmt.Errorf("%w: %w", ErrStorage, ErrDBNil)
	}

	id, err := controller.Insert(s.db, entry)
	if err != nil {
		submissions.WithLabelValues(outcomeFailed).Inc()
		return Result{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	submissions.WithLabelValues(outcomeAccepted).Inc()
	log.Debug().Uint64("id", id).Int("rating", entry.Rating).Msg("feedback stored")

	return Result{ID: id, Message: MsgSubmitted}, nil
}

func (s *Service) normalize(sub Submission) (*models.Feedback, error) {
	name := strings.TrimSpace(sub.Name)
	if name == "" {
		return nil, &ValidationError{Field: "name", Message: MsgNameRequired}
	}

	rating, err := sub.Rating.Int()
	if err != nil {
		return nil, &ValidationError{Field: "rating", Message: MsgInvalidRating}
	}

	if err = s.validate.Struct(normalized{Name: name, Rating: rating}); err != nil {
		return nil, toValidationError(err)
	}

	return &models.Feedback{
		Name:          name,
		Email:         strings.TrimSpace(sub.Email),
		Rating:        rating,
		Comments:      strings.TrimSpace(sub.Comments),
		DateSubmitted: s.now().UTC().Format(TimeLayout),
	}, nil
}

func toValidationError(err error) *ValidationError {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 && validationErrors[0].Field() == "Name" {
		return &ValidationError{Field: "name", Message: MsgNameRequired}
	}

	return &ValidationError{Field: "rating", Message: MsgInvalidRating}
}

// ListForDisplay returns every entry, newest first.
func (s *Service) ListForDisplay() ([]models.Feedback, error) {
	if s.db == nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, ErrDBNil)
	}

	entries, err := controller.ListAll(s.db)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return entries, nil
}

// ListForAPI returns every entry as plain records, newest first.
func (s *Service) ListForAPI() ([]Record, error) {
	entries, err := s.ListForDisplay()
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(entries))
	for _, e := range entries {
		records = append(records, Record{
			ID:            e.ID,
			Name:          e.Name,
			Email:         e.Email,
			Rating:        e.Rating,
			Comments:      e.Comments,
			DateSubmitted: e.DateSubmitted,
		})
	}

	return records, nil
}

// Dashboard reads all entries once and computes their statistics.
func (s *Service) Dashboard() (Dashboard, error) {
	entries, err := s.ListForDisplay()
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{Entries: entries, Stats: ComputeStats(entries)}, nil
}
