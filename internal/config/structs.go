package config

import (
	"time"

	"github.com/feedback-collector/feedback-collector/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Admin holds the single administrator credential.
// PasswordHash is an argon2id or bcrypt hash, never a plaintext password.
type Admin struct {
	Username     string
	PasswordHash string
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Admin     Admin
}

// Webserver implement webserver settings.
type Webserver struct {
	Port                int     // listening port for the webserver
	ShutDownTime        int     // wait time for shutdown
	URL                 string  // base url for the webserver
	CookieEncryptionKey string  // base64 encoded 32 byte key for cookie encryption
	Session             Session // session settings
}
