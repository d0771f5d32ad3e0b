// Package fiber provides the zerolog based access log middleware for the web service.
package fiber

import (
	"io"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/feedback-collector/feedback-collector/internal/logger"
)

// HeaderPerformance carries the request handling time in seconds.
const HeaderPerformance = "X-Performance"

// DefaultCacheControlError is sent with responses whose error could not be rendered.
const DefaultCacheControlError = "no-store"

// Config of the access log middleware.
type Config struct {
	// Skip disables the middleware for a request when it returns true.
	Skip func(c *fiber.Ctx) bool

	// Config of the logger.
	Config logger.Log

	// CacheControlError replaces DefaultCacheControlError when set.
	CacheControlError string

	// CheckAliveURI is left out of the access log when DisableCheckAlive is set.
	CheckAliveURI string
}

func (c Config) cacheControlError() string {
	if c.CacheControlError == "" {
		return DefaultCacheControlError
	}

	return c.CacheControlError
}

func (c Config) quiet(ctx *fiber.Ctx) bool {
	return c.Config.DisableCheckAlive && c.CheckAliveURI != "" && ctx.Path() == c.CheckAliveURI
}

// New returns a middleware writing one access log line per request.
func New(cfg Config) fiber.Handler {
	accessLogger := zerolog.New(zerolog.MultiLevelWriter(accessWriters(&cfg.Config)...)).
		With().
		Timestamp().
		Logger().
		Level(zerolog.NoLevel)

	cacheControl := cfg.cacheControlError()

	return func(ctx *fiber.Ctx) error {
		if cfg.Skip != nil && cfg.Skip(ctx) {
			return ctx.Next()
		}

		start := time.Now()
		chainErr := ctx.Next()

		if chainErr != nil {
			renderChainError(ctx, chainErr, cacheControl)
		}

		elapsed := time.Since(start).Seconds()
		ctx.Response().Header.Set(HeaderPerformance, strconv.FormatFloat(elapsed, 'f', 6, 64))

		if cfg.quiet(ctx) {
			return nil
		}

		event := accessLogger.Log().
			Str("IP", ctx.IP()).
			Int("status", ctx.Response().StatusCode()).
			Float64(HeaderPerformance, elapsed).
			Str("URI", requestURI(ctx)).
			Str("method", ctx.Method()).
			Bytes("host", ctx.Request().Host()).
			Str(fiber.HeaderXForwardedFor, ctx.Get(fiber.HeaderXForwardedFor)).
			Str(fiber.HeaderUserAgent, ctx.Get(fiber.HeaderUserAgent)).
			Str(fiber.HeaderReferer, ctx.Get(fiber.HeaderReferer))

		if chainErr != nil {
			event.Err(chainErr)
		}

		event.Send()

		return nil
	}
}

// renderChainError lets the app error handler write the response. The error is
// consumed here so it is logged with the final status. A failing error handler
// leaves a bare, uncached 500.
func renderChainError(ctx *fiber.Ctx, chainErr error, cacheControl string) {
	if err := ctx.App().ErrorHandler(ctx, chainErr); err == nil {
		return
	}

	ctx.Response().Reset()
	ctx.Status(fiber.StatusInternalServerError)
	ctx.Set(fiber.HeaderCacheControl, cacheControl)
}

// requestURI is the raw path plus query, fasthttp normalizes the URI used for routing.
func requestURI(ctx *fiber.Ctx) string {
	p := ctx.Path()
	if qs := ctx.Request().URI().QueryString(); len(qs) > 0 {
		p += "?" + string(qs)
	}

	return p
}

// accessWriters returns the configured access log sinks. The console sink
// needs both the console and the access log switch.
func accessWriters(cfg *logger.Log) []io.Writer {
	var writers []io.Writer

	if cfg.File.Enabled {
		if fw := newRollingAccessFile(cfg); fw != nil {
			writers = append(writers, fw)
		}
	}

	if !cfg.Console.Enabled || !cfg.EnableAccessLogToConsole {
		return writers
	}

	if cfg.Console.UseConsoleWriter {
		return append(writers, zerolog.ConsoleWriter{
			Out:          os.Stdout,
			TimeFormat:   zerolog.TimeFieldFormat,
			PartsExclude: []string{"level"},
		})
	}

	return append(writers, os.Stdout)
}

// newRollingAccessFile uses lumberjack to create file based access log.
func newRollingAccessFile(cfg *logger.Log) io.Writer {
	if cfg.File.Path != "" {
		if err := os.MkdirAll(cfg.File.Path, 0o750); err != nil {
			log.Error().Err(err).Str("path", cfg.File.Path).Msg("can't create log directory")

			return nil
		}
	}

	return &lumberjack.Logger{
		Filename:   path.Join(cfg.File.Path, cfg.File.AccessLog),
		MaxSize:    cfg.File.AccessMaxSize,
		MaxAge:     cfg.File.AccessMaxAge,
		MaxBackups: cfg.File.AccessMaxBackups,
		LocalTime:  false,
		Compress:   false,
	}
}
