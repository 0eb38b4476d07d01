package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newApp(log *zap.Logger) *fiber.App {
	app := fiber.New()
	app.Use(RequestID())
	app.Use(Logger(log))
	app.Use(Metrics())
	app.Use(Recovery())
	app.Use(CORS(""))

	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.ErrBadRequest
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return errors.New("boom")
	})
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("kaboom")
	})
	return app
}

func TestRequestID(t *testing.T) {
	app := newApp(zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(fiber.HeaderXRequestID), 36)

	req := httptest.NewRequest("GET", "/ok", nil)
	req.Header.Set(fiber.HeaderXRequestID, "caller-supplied")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, "caller-supplied", resp.Header.Get(fiber.HeaderXRequestID))
}

func TestLogger_Levels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	app := newApp(zap.New(core))

	tests := []struct {
		path       string
		wantStatus int
		wantLevel  zapcore.Level
	}{
		{path: "/ok", wantStatus: 200, wantLevel: zapcore.InfoLevel},
		{path: "/bad", wantStatus: 400, wantLevel: zapcore.WarnLevel},
		{path: "/fail", wantStatus: 500, wantLevel: zapcore.ErrorLevel},
		{path: "/panic", wantStatus: 500, wantLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			logs.TakeAll()

			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			entries := logs.FilterMessage("HTTP request").AllUntimed()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)
			assert.Equal(t, int64(tt.wantStatus), entries[0].ContextMap()["status"])
		})
	}
}

func TestRecovery(t *testing.T) {
	app := newApp(zap.NewNop())

	resp, err := app.Test(httptest.NewRequest("GET", "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestCORS_Preflight(t *testing.T) {
	app := newApp(zap.NewNop())

	req := httptest.NewRequest("OPTIONS", "/ok", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, "POST")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
}
