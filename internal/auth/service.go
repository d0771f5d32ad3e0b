package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Session is the part of an admin session the auth service needs.
type Session interface {
	// Authenticated reports whether the admin logged in with this session.
	Authenticated() bool
	// SetAuthenticated stores the flag.
	SetAuthenticated(authenticated bool) error
}

// Service verifies the admin credential and manages the session flag.
type Service struct {
	username     string
	passwordHash string
	kind         hashKind
}

// NewService creates the auth service for the configured admin.
func NewService(username, passwordHash string) (*Service, error) {
	if username == "" {
		return nil, ErrEmptyUsername
	}

	kind, err := detectHash(passwordHash)
	if err != nil {
		return nil, err
	}

	return &Service{
		username:     username,
		passwordHash: passwordHash,
		kind:         kind,
	}, nil
}

// Verify reports whether username and password both match the admin credential.
// The password is always checked so a wrong username takes as long as a wrong password.
func (s *Service) Verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := comparePassword(s.kind, password, s.passwordHash)

	return userOK && passOK
}

// Login marks sess as authenticated when the credential matches.
// On a mismatch the session is left untouched and false is returned.
func (s *Service) Login(sess Session, username, password string) (bool, error) {
	if sess == nil {
		return false, ErrSessionNil
	}

	if !s.Verify(username, password) {
		log.Info().Str("username", username).Msg("admin login failed")
		return false, nil
	}

	if err := sess.SetAuthenticated(true); err != nil {
		return false, fmt.Errorf("failed to store session: %w", err)
	}

	log.Info().Str("username", username).Msg("admin logged in")

	return true, nil
}

// Logout clears the authenticated flag. Logging out twice is fine.
func (s *Service) Logout(sess Session) error {
	if sess == nil {
		return ErrSessionNil
	}

	if err := sess.SetAuthenticated(false); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	return nil
}

// RequireAdmin returns ErrRedirectToLogin unless sess is authenticated.
func (s *Service) RequireAdmin(sess Session) error {
	if sess == nil || !sess.Authenticated() {
		return ErrRedirectToLogin
	}

	return nil
}
