// Package web assembles the fiber application: templates, static files,
// sessions and the route handlers.
package web

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/encryptcookie"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/feedback-collector/feedback-collector/internal/auth"
	"github.com/feedback-collector/feedback-collector/internal/config"
	"github.com/feedback-collector/feedback-collector/internal/feedback"
	fiberlogger "github.com/feedback-collector/feedback-collector/internal/logger/adapter/fiber"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/api"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/dashboard"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/export"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/index"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/login"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/logout"
	"github.com/feedback-collector/feedback-collector/internal/web/handler/submit"
	authmw "github.com/feedback-collector/feedback-collector/internal/web/middleware/auth"
	"github.com/feedback-collector/feedback-collector/internal/web/session"
)

const (
	// CheckAlivePath answers 200 while serving and 503 during a graceful shutdown.
	CheckAlivePath = "/checkalive"
	// MetricsPath serves the prometheus metrics.
	MetricsPath = "/metrics"
)

// Options are the dependencies of New that do not come from the config.
type Options struct {
	// SessionStorage keeps the sessions, nil keeps them in memory.
	SessionStorage fiber.Storage
	// Views replaces the embedded templates, used by tests.
	Views fiber.Views
	// FastShutDown skips the 503 phase of WaitShutdown.
	FastShutDown bool
}

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address and blocks until it stops.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fiber listen error: %w", err)
	}

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown fails the check alive endpoint for the configured time, then stops the server.
func (s *Service) Shutdown() {
	s.alive.Store(false)

	// let load balancers take this instance out before connections are refused
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let the LB remove this instance",
			s.cfg.Webserver.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("failed to stop http server")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, opts Options) (*Service, error) {
	if cfg == nil || db == nil {
		return nil, ErrNilDependency
	}

	cookieKey, err := cookieKey(cfg)
	if err != nil {
		return nil, err
	}

	authService, err := auth.NewService(cfg.Admin.Username, cfg.Admin.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	feedbackService := feedback.NewService(db)

	sessions := session.New(session.Config{
		Storage:    opts.SessionStorage,
		Expiration: cfg.Webserver.Session.ExpiryTime,
		Secure:     !cfg.DevMode,
	})

	views := opts.Views
	if views == nil {
		views = newTemplateEngine(cfg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          views,
		},
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		fastShutDown: opts.FastShutDown,
	}
	service.alive.Store(true)

	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Use(encryptcookie.New(encryptcookie.Config{Key: cookieKey}))

	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
				Browse:     false,
			},
		),
	)

	app.Get(CheckAlivePath, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	guard := authmw.RequireAdmin(sessions, authService)

	for _, initErr := range []error{
		new(index.Service).Init(app, cfg),
		new(submit.Service).Init(app, feedbackService),
		new(api.Service).Init(app, feedbackService),
		new(login.Service).Init(app, cfg, authService, sessions),
		new(logout.Service).Init(app, authService, sessions),
		new(dashboard.Service).Init(app, cfg, feedbackService, guard),
		new(export.Service).Init(app, feedbackService, guard),
	} {
		if initErr != nil {
			return nil, fmt.Errorf("failed to init handler: %w", initErr)
		}
	}

	return service, nil
}

func (s *Service) checkAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	engine := html.NewFileSystem(http.FS(templateEmbedFS{embeddedTemplates}), ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		engine = html.New("./internal/web/templates", ".gohtml")
		engine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	engine.AddFunc("stars", func(rating int) string {
		out := make([]rune, 0, feedback.MaxRating)
		for i := feedback.MinRating; i <= feedback.MaxRating; i++ {
			if i <= rating {
				out = append(out, '★')
			} else {
				out = append(out, '☆')
			}
		}

		return string(out)
	})
	engine.AddFunc("percent", func(count, total int) int {
		if total == 0 {
			return 0
		}

		return count * 100 / total //nolint:mnd
	})

	return engine
}

// cookieKey returns the configured cookie encryption key. Dev mode without a key
// gets a random one, sessions then do not survive a restart.
func cookieKey(cfg *config.Config) (string, error) {
	key := cfg.Webserver.CookieEncryptionKey
	if key == "" {
		if !cfg.DevMode {
			return "", ErrInvalidCookieKey
		}

		log.Warn().Msg("no cookie encryption key configured, using an ephemeral key")

		return encryptcookie.GenerateKey(), nil
	}

	raw, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCookieKey, err)
	}

	switch len(raw) {
	case 16, 24, 32: //nolint:mnd // AES-128, AES-192, AES-256
		return key, nil
	default:
		return "", fmt.Errorf("%w: decoded key has %d bytes", ErrInvalidCookieKey, len(raw))
	}
}
