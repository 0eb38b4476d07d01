package utils

import (
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/restaurant-explorer/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "app error",
			err:        errors.ErrLocationRequired,
			wantStatus: 400,
			wantBody:   `{"error":"Location is required"}`,
		},
		{
			name:       "wrapped app error",
			err:        fmt.Errorf("validate: %w", errors.ErrLocationRequired),
			wantStatus: 400,
			wantBody:   `{"error":"Location is required"}`,
		},
		{
			name:       "unexpected error",
			err:        fmt.Errorf("boom"),
			wantStatus: 500,
			wantBody:   `{"error":"boom"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return SendError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.JSONEq(t, tt.wantBody, string(body))
		})
	}
}
