// Package api serves the stored feedback as JSON.
package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/feedback"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
)

// Path of the feedback list.
const Path = "/api/feedback"

// Service is the api handler service.
type Service struct {
	feedback *feedback.Service
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, feedbackService *feedback.Service) error {
	if app == nil || feedbackService == nil {
		return handler.ErrNilDependency
	}

	s.feedback = feedbackService

	app.Get(Path, s.List)

	return nil
}

// List returns every entry, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	records, err := s.feedback.ListForAPI()
	if err != nil {
		log.Error().Err(err).Msg("failed to list feedback")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   handler.MsgInternalServerError,
		})
	}

	return c.JSON(records)
}
