package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/feedback-collector/feedback-collector/internal/auth"
	"github.com/feedback-collector/feedback-collector/internal/web/session"
)

// LoginPath is where anonymous requests are sent.
const LoginPath = "/admin-login"

// LocalsAdmin is the fiber.Locals key holding the *session.Admin of a guarded request.
const LocalsAdmin = "admin"

// RequireAdmin creates Fiber middleware that only lets authenticated admin sessions pass.
func RequireAdmin(sessions *session.Store, authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			log.Error().Err(err).Msg("failed to read session")
			return c.Redirect(LoginPath)
		}

		if err = authService.RequireAdmin(sess); err != nil {
			if !errors.Is(err, auth.ErrRedirectToLogin) {
				log.Error().Err(err).Msg("admin check failed")
			}

			return c.Redirect(LoginPath)
		}

		c.Locals(LocalsAdmin, sess)

		return c.Next()
	}
}
