// Package export offers all entries as a CSV download.
package export

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/export"
	"github.com/feedback-collector/feedback-collector/internal/feedback"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
)

// Path of the download.
const Path = handler.RootPath + "export-csv"

// Service is the export handler service.
type Service struct {
	feedback *feedback.Service
}

// Init registers the download behind guard.
func (s *Service) Init(app *fiber.App, feedbackService *feedback.Service, guard fiber.Handler) error {
	if app == nil || feedbackService == nil || guard == nil {
		return handler.ErrNilDependency
	}

	s.feedback = feedbackService

	app.Get(Path, guard, s.Get)

	return nil
}

// Get writes the CSV attachment.
func (s *Service) Get(c *fiber.Ctx) error {
	entries, err := s.feedback.ListForDisplay()
	if err != nil {
		log.Error().Err(err).Msg("failed to load feedback for export")

		return c.Status(fiber.StatusInternalServerError).SendString(handler.MsgInternalServerError)
	}

	var buf bytes.Buffer
	if err = export.WriteCSV(&buf, entries); err != nil {
		log.Error().Err(err).Msg("failed to write csv export")

		return c.Status(fiber.StatusInternalServerError).SendString(handler.MsgInternalServerError)
	}

	c.Attachment(export.FileName)
	c.Set(fiber.HeaderContentType, export.ContentType)

	log.Info().Int("entries", len(entries)).Msg("feedback exported")

	return c.Send(buf.Bytes())
}
