package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/feedback-collector/feedback-collector/internal/logger/adapter/fiber"
	"github.com/feedback-collector/feedback-collector/internal/logger"
)

type accessLine struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	Host   string `json:"host"`
	Error  string `json:"error"`
}

func consoleConfig() adapter.Config {
	return adapter.Config{
		Config: logger.Log{
			EnableAccessLogToConsole: true,
			DisableCheckAlive:        true,
			Console:                  logger.Console{Enabled: true},
		},
		CheckAliveURI: "/checkalive",
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		config adapter.Config
		want   *accessLine
	}{
		{
			name:   "console disabled no output",
			method: fiber.MethodGet,
			target: "/api/feedback",
		},
		{
			name:   "api read logged as json",
			method: fiber.MethodGet,
			target: "/api/feedback",
			config: consoleConfig(),
			want:   &accessLine{IP: "0.0.0.0", Status: 200, URI: "/api/feedback", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "query string kept",
			method: fiber.MethodGet,
			target: "/api/feedback?pretty=1",
			config: consoleConfig(),
			want:   &accessLine{IP: "0.0.0.0", Status: 200, URI: "/api/feedback?pretty=1", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "rejected submission logs status",
			method: fiber.MethodPost,
			target: "/submit-feedback",
			config: consoleConfig(),
			want:   &accessLine{IP: "0.0.0.0", Status: 400, URI: "/submit-feedback", Method: fiber.MethodPost, Host: "example.com"},
		},
		{
			name:   "unknown route",
			method: fiber.MethodGet,
			target: "/nope",
			config: consoleConfig(),
			want:   &accessLine{IP: "0.0.0.0", Status: 404, URI: "/nope", Method: fiber.MethodGet, Host: "example.com"},
		},
		{
			name:   "handler error rendered by the app",
			method: fiber.MethodGet,
			target: "/export-csv",
			config: consoleConfig(),
			want: &accessLine{
				IP: "0.0.0.0", Status: 503, URI: "/export-csv", Method: fiber.MethodGet, Host: "example.com",
				Error: "database is locked",
			},
		},
		{
			name:   "skipped requests are not logged",
			method: fiber.MethodGet,
			target: "/api/feedback",
			config: func() adapter.Config {
				cfg := consoleConfig()
				cfg.Skip = func(*fiber.Ctx) bool { return true }

				return cfg
			}(),
		},
		{
			name:   "checkalive is not logged",
			method: fiber.MethodGet,
			target: "/checkalive",
			config: consoleConfig(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, perf := runMiddleware(t, tt.method, tt.target, tt.config)
			if tt.config.Skip == nil {
				assert.NotEmpty(t, perf, "performance header is always set")
			}

			if tt.want == nil {
				assert.Empty(t, output)
				return
			}

			require.NotEmpty(t, output)

			var got accessLine
			require.NoError(t, json.Unmarshal([]byte(output), &got))
			assert.Equal(t, *tt.want, got)
		})
	}
}

func runMiddleware(t *testing.T, method, target string, cfg adapter.Config) (string, string) {
	t.Helper()

	stdout := os.Stdout

	r, w, err := os.Pipe()
	require.NoError(t, err)

	os.Stdout = w

	app := fiber.New(fiber.Config{CaseSensitive: true, Immutable: true})
	app.Use(adapter.New(cfg))

	app.Get("/api/feedback", func(ctx *fiber.Ctx) error {
		return ctx.JSON([]string{})
	})
	app.Get("/checkalive", func(ctx *fiber.Ctx) error {
		return ctx.SendString("OK")
	})
	app.Post("/submit-feedback", func(ctx *fiber.Ctx) error {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false})
	})
	app.Get("/export-csv", func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusServiceUnavailable, "database is locked")
	})

	resp, err := app.Test(httptest.NewRequest(method, target, nil), -1)
	os.Stdout = stdout

	if err != nil {
		_ = w.Close()
		t.Fatalf("app.Test failed: %v", err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	outC := make(chan string)

	// copy the output in a separate goroutine so printing can't block indefinitely
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	_ = w.Close()

	return <-outC, resp.Header.Get(adapter.HeaderPerformance)
}

func TestFailingErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		cacheControl string
		want         string
	}{
		{name: "default cache control", want: adapter.DefaultCacheControlError},
		{name: "configured cache control", cacheControl: "max-age=0", want: "max-age=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New(fiber.Config{
				ErrorHandler: func(ctx *fiber.Ctx, err error) error {
					ctx.Set("X-Partial", "1")
					return err
				},
			})
			app.Use(adapter.New(adapter.Config{CacheControlError: tt.cacheControl}))
			app.Get("/admin-dashboard", func(*fiber.Ctx) error {
				return errors.New("template missing")
			})

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/admin-dashboard", nil), -1)
			require.NoError(t, err)

			defer func() {
				_ = resp.Body.Close()
			}()

			assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, tt.want, resp.Header.Get(fiber.HeaderCacheControl))
			assert.Empty(t, resp.Header.Get("X-Partial"), "partial error response is discarded")
			assert.NotEmpty(t, resp.Header.Get(adapter.HeaderPerformance))
		})
	}
}
