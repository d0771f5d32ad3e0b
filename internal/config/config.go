// Package config handles input from etc/*.toml files
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvConfigJSON holds a JSON document merged over the toml config.
	EnvConfigJSON = "FEEDBACK_COLLECTOR_CONFIG_JSON"
	// EnvAdminPasswordHash overrides admin.passwordHash.
	EnvAdminPasswordHash = "FEEDBACK_COLLECTOR_ADMIN_PASSWORD_HASH"
	// EnvCookieKey overrides webserver.cookieEncryptionKey.
	EnvCookieKey = "FEEDBACK_COLLECTOR_COOKIE_KEY"

	redacted = "<redacted>"

	defaultShutDownTime  = 5
	defaultSessionExpiry = time.Hour
)

// Option changes the decoded config before it is validated.
type Option func(*Config)

// WithDevMode forces dev mode, as the start --dev flag does.
func WithDevMode() Option {
	return func(c *Config) {
		c.DevMode = true
	}
}

// ReadConfig from config file.
func ReadConfig(path string, opts ...Option) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// a missing .env is fine, secrets may come from the real environment
	_ = godotenv.Load()

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	v := viper.New()
	v.SetConfigFile(path + "main.toml")
	v.SetConfigType("toml")

	if err = v.ReadInConfig(); err != nil {
		return Config{}, errors.Wrap(err, "failed to read main config file")
	}

	// secrets are taken from the environment when set
	_ = v.BindEnv("admin.passwordhash", EnvAdminPasswordHash)
	_ = v.BindEnv("webserver.cookieencryptionkey", EnvCookieKey)

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode main config file")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)
	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	for _, opt := range opts {
		opt(&c)
	}

	return c, validate(&c)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// DumpConfig config as TOML String. Secrets are redacted.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer

	t := toml.NewEncoder(&buffer)
	if err := t.Encode(redact(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String. Secrets are redacted.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer

	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(redact(*c)); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

func redact(c Config) Config {
	if c.DB.Password != "" {
		c.DB.Password = redacted
	}

	if c.Webserver.CookieEncryptionKey != "" {
		c.Webserver.CookieEncryptionKey = redacted
	}

	if c.Admin.PasswordHash != "" {
		c.Admin.PasswordHash = redacted
	}

	return c
}

// validate minimal config settings and fill in defaults.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return errors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	if c.Webserver.URL == "" {
		return errors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	if c.Admin.Username == "" {
		return errors.Wrap(ErrEmptyAdminUsername, invalidErrMessage)
	}

	if c.Admin.PasswordHash == "" {
		return errors.Wrap(ErrEmptyAdminPasswordHash, invalidErrMessage)
	}

	// dev mode falls back to an ephemeral key
	if c.Webserver.CookieEncryptionKey == "" && !c.DevMode {
		return errors.Wrap(ErrEmptyCookieKey, invalidErrMessage)
	}

	switch c.DB.Engine {
	case "":
		c.DB.Engine = EngineSQLite
	case EngineSQLite, EngineMySQL, EnginePostgres:
	default:
		return errors.Wrap(ErrUnknownDBEngine, invalidErrMessage)
	}

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = defaultShutDownTime
	}

	if c.Webserver.Session.ExpiryTime == 0 {
		c.Webserver.Session.ExpiryTime = defaultSessionExpiry
	}

	return nil
}
