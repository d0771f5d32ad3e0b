// Package logout ends the admin session.
package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/auth"
	"github.com/feedback-collector/feedback-collector/internal/web/handler"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/login"
	"github.com/feedback-collector/feedback-collector/internal/web/session"
)

// Path of the logout link.
const Path = handler.RootPath + "admin-logout"

// Service is the logout handler service.
type Service struct {
	auth     *auth.Service
	sessions *session.Store
}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, authService *auth.Service, sessions *session.Store) error {
	if app == nil || authService == nil || sessions == nil {
		return handler.ErrNilDependency
	}

	s.auth = authService
	s.sessions = sessions

	app.Get(Path, s.Logout)

	return nil
}

// Logout clears the admin flag and sends the browser to the login page.
func (s *Service) Logout(c *fiber.Ctx) error {
	sess, err := s.sessions.Get(c)
	if err != nil {
		log.Error().Err(err).Msg("failed to load session")
		return c.Redirect(login.Path)
	}

	if err = s.auth.Logout(sess); err != nil {
		log.Error().Err(err).Msg("failed to clear session")
	}

	return c.Redirect(login.Path)
}
