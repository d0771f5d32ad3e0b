// Package submit accepts feedback posted by the form script or any other client.
package submit

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/feedback"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
)

const (
	// Path accepts JSON and urlencoded bodies.
	Path = "/submit-feedback"

	// MsgInvalidBody is returned when the body can not be decoded.
	MsgInvalidBody = "Invalid request body."
)

// Response is the JSON answer to a submission.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Service is the submit handler service.
type Service struct {
	feedback *feedback.Service
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, feedbackService *feedback.Service) error {
	if app == nil || feedbackService == nil {
		return handler.ErrNilDependency
	}

	s.feedback = feedbackService

	app.Post(Path, s.Post)

	return nil
}

// Post stores a submission.
func (s *Service) Post(c *fiber.Ctx) error {
	var sub feedback.Submission

	if err := c.BodyParser(&sub); err != nil {
		log.Debug().Err(err).Msg("failed to parse feedback body")

		return c.Status(fiber.StatusBadRequest).JSON(Response{Error: MsgInvalidBody})
	}

	res, err := s.feedback.Submit(sub)
	if err != nil {
		var vErr *feedback.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(Response{Error: vErr.Message})
		}

		log.Error().Err(err).Msg("failed to store feedback")

		return c.Status(fiber.StatusInternalServerError).JSON(Response{Error: handler.MsgInternalServerError})
	}

	return c.JSON(Response{Success: true, Message: res.Message})
}
