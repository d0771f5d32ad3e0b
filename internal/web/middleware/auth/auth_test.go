package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feedback-collector/feedback-collector/internal/auth"
	"github.com/feedback-collector/feedback-collector/internal/web/session"
)

func TestRequireAdmin(t *testing.T) {
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)

	authService, err := auth.NewService("admin", hash)
	require.NoError(t, err)

	sessions := session.New(session.Config{})
	guard := RequireAdmin(sessions, authService)

	app := fiber.New()

	var reached bool

	app.Get("/secret", guard, func(c *fiber.Ctx) error {
		reached = true

		_, ok := c.Locals(LocalsAdmin).(*session.Admin)
		assert.True(t, ok)

		return c.SendString("secret")
	})

	app.Get("/login", func(c *fiber.Ctx) error {
		sess, err := sessions.Get(c)
		if err != nil {
			return err
		}

		ok, err := authService.Login(sess, c.Query("u"), c.Query("p"))
		if err != nil {
			return err
		}

		if !ok {
			return c.SendStatus(fiber.StatusUnauthorized)
		}

		return c.SendStatus(fiber.StatusNoContent)
	})

	t.Run("anonymous is redirected", func(t *testing.T) {
		reached = false

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/secret", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.Equal(t, LoginPath, resp.Header.Get(fiber.HeaderLocation))
		assert.False(t, reached)
	})

	t.Run("failed login is redirected", func(t *testing.T) {
		reached = false

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login?u=admin&p=wrong", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		for _, c := range resp.Cookies() {
			req.AddCookie(c)
		}

		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusFound, resp.StatusCode)
		assert.False(t, reached)
	})

	t.Run("admin passes", func(t *testing.T) {
		reached = false

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/login?u=admin&p=admin123", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)

		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		for _, c := range resp.Cookies() {
			req.AddCookie(c)
		}

		resp, err = app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.True(t, reached)
	})
}
