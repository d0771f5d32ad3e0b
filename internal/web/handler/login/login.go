// Package login provides the admin login page.
package login

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/auth"
	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/dashboard"
	authmw "github.com/feedback-collector/feedback-collector/internal/web/middleware/auth"
	"github.com/feedback-collector/feedback-collector/internal/web/navigation"
	"github.com/feedback-collector/feedback-collector/internal/web/session"
)

const (
	// Path is the path to the login page.
	Path = authmw.LoginPath

	// TemplateName is the name of the login template.
	TemplateName = "login"
)

// Form is the posted login form.
type Form struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Service is the login handler service.
type Service struct {
	cfg      *config.Config
	auth     *auth.Service
	sessions *session.Store
}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, authService *auth.Service, sessions *session.Store) error {
	if app == nil || cfg == nil || authService == nil || sessions == nil {
		return handler.ErrNilDependency
	}

	s.cfg = cfg
	s.auth = authService
	s.sessions = sessions

	app.Get(Path, s.Get)
	app.Post(Path, s.Post)

	return nil
}

// Get handles the login page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err == nil && s.auth.RequireAdmin(sess) == nil {
		return c.Redirect(dashboard.Path)
	}

	return s.render(c, "")
}

// Post handles the login form submission.
func (s *Service) Post(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		log.Debug().Err(err).Msg("failed to parse login form")
		return s.render(c, auth.ErrInvalidCredentials.Error())
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")
		return c.Status(fiber.StatusInternalServerError).SendString(handler.MsgInternalServerError)
	}

	ok, err := s.auth.Login(sess, form.Username, form.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to store login")
		return c.Status(fiber.StatusInternalServerError).SendString(handler.MsgInternalServerError)
	}

	if !ok {
		return s.render(c, auth.ErrInvalidCredentials.Error())
	}

	return c.Redirect(dashboard.Path)
}

func (s *Service) render(c *fiber.Ctx, errMsg string) error {
	nav := navigation.NewPage(s.cfg.Title, "Admin login", "login").
		AddCrumb("Home", handler.RootPath).
		AddCrumb("Admin login", Path)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Error":      errMsg,
	}, handler.BaseLayout)
}
