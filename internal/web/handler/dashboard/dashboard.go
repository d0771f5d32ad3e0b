// Package dashboard provides the admin dashboard with statistics and all entries.
package dashboard

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/feedback"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
	"github.com/feedback-collector/feedback-collector/internal/web/navigation"
)

const (
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "admin-dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "admin/dashboard"
)

// Service is the dashboard handler service.
type Service struct {
	cfg      *config.Config
	feedback *feedback.Service
}

// Init registers the dashboard behind guard.
func (s *Service) Init(app *fiber.App, cfg *config.Config, feedbackService *feedback.Service, guard fiber.Handler) error {
	if app == nil || cfg == nil || feedbackService == nil || guard == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.feedback = feedbackService

	app.Get(Path, guard, s.Get)

	return nil
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewPage(s.cfg.Title, "Dashboard", "dashboard").
		AsAdmin().
		AddCrumb("Home", handler.RootPath).
		AddCrumb("Dashboard", Path)

	data, err := s.feedback.Dashboard()
	if err != nil {
		log.Error().Err(err).Msg("failed to load dashboard")

		return c.Status(fiber.StatusInternalServerError).SendString(handler.MsgInternalServerError)
	}

	log.Debug().
		Int("total", data.Stats.Total).
		Float64("average_rating", data.Stats.AverageRating).
		Msg("dashboard loaded")

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Entries":    data.Entries,
		"Stats":      data.Stats,
	}, handler.BaseLayout)
}
