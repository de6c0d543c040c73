package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"go-fabshop-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: status is required", service.ErrValidation),
			wantStatus: 400,
			wantBody:   "validation failed: status is required",
		},
		{
			name:       "credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: 401,
			wantBody:   "invalid username or access code",
		},
		{
			name:       "not found",
			err:        fmt.Errorf("%w: order 7", service.ErrNotFound),
			wantStatus: 404,
			wantBody:   "not found: order 7",
		},
		{
			name:       "conflict keeps the sentinel message",
			err:        fmt.Errorf("%w: barcode already exists", service.ErrConflict),
			wantStatus: 409,
			wantBody:   "conflict: barcode already exists",
		},
		{
			name:       "duplicate key",
			err:        gorm.ErrDuplicatedKey,
			wantStatus: 409,
			wantBody:   gorm.ErrDuplicatedKey.Error(),
		},
		{
			name:       "unexpected errors stay generic",
			err:        errors.New("dial tcp 10.0.0.5:5432: connection refused"),
			wantStatus: 500,
			wantBody:   "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return respondError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.wantStatus, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			var body map[string]string
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantBody, body["error"])
		})
	}
}
