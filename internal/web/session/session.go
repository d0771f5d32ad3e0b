// Package session keeps the admin flag in a fiber server side session.
package session

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "session"

	authenticatedKey = "authenticated"
)

// Config configures the session store.
type Config struct {
	// Storage backend, nil keeps sessions in memory.
	Storage fiber.Storage
	// Expiration of idle sessions.
	Expiration time.Duration
	// Secure sets the Secure flag on the cookie.
	Secure bool
}

// Store hands out admin sessions for requests.
type Store struct {
	store *session.Store
}

// New creates the session store.
func New(cfg Config) *Store {
	return &Store{
		store: session.New(session.Config{
			Storage:        cfg.Storage,
			Expiration:     cfg.Expiration,
			KeyLookup:      "cookie:" + CookieName,
			CookieHTTPOnly: true,
			CookieSecure:   cfg.Secure,
			CookieSameSite: fiber.CookieSameSiteLaxMode,
		}),
	}
}

// Get loads the session of the request, a new one is started when none exists.
func (s *Store) Get(c *fiber.Ctx) (*Admin, error) {
	sess, err := s.store.Get(c)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	return &Admin{sess: sess}, nil
}

// Admin is the admin view of a session. It implements auth.Session.
type Admin struct {
	sess *session.Session
}

// Authenticated reports whether the admin logged in with this session.
func (a *Admin) Authenticated() bool {
	v, ok := a.sess.Get(authenticatedKey).(bool)
	return ok && v
}

// SetAuthenticated stores the flag and saves the session.
// Logging in issues a new session id.
func (a *Admin) SetAuthenticated(authenticated bool) error {
	if authenticated {
		if err := a.sess.Regenerate(); err != nil {
			return fmt.Errorf("failed to regenerate session: %w", err)
		}
	}

	a.sess.Set(authenticatedKey, authenticated)

	if err := a.sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}
