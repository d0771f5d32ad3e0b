// Package index renders the public feedback form.
package index

import (
	"github.com/gofiber/fiber/v2"

	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
	"github.com/feedback-collector/feedback-collector/internal/web/navigation"
)

const (
	// Path of the feedback form.
	Path = handler.RootPath

	// TemplateName is the name of the form template.
	TemplateName = "index"
)

// Service is the index handler service.
type Service struct {
	cfg *config.Config
}

// Init registers the route.
func (s *Service) Init(app *fiber.App, cfg *config.Config) error {
	if app == nil || cfg == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get renders the feedback form.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewPage(s.cfg.Title, "Share your feedback", "index").
		AddCrumb("Home", Path)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
	}, handler.BaseLayout)
}
