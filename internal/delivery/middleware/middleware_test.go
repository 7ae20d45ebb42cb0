package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"syncfloww/config"
	deliverycontext "syncfloww/internal/delivery/context"
	domainerrors "syncfloww/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated when missing", incoming: "", reuse: false},
		{name: "client id reused", incoming: "abc-123", reuse: true},
		{name: "oversized id replaced", incoming: strings.Repeat("x", maxRequestIDLength+1), reuse: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var ctxID string
			var hasLogger bool
			m := NewRequestIDMiddleware(slog.New(slog.DiscardHandler))
			err := m.Process(func(c echo.Context) error {
				ctxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusNoContent)
			})(c)
			require.NoError(t, err)

			echoed := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.NotEmpty(t, echoed)
			assert.Equal(t, echoed, ctxID)
			assert.Equal(t, echoed, deliverycontext.GetRequestID(c))
			assert.True(t, hasLogger)
			if tt.reuse {
				assert.Equal(t, tt.incoming, echoed)
			} else {
				assert.NotEqual(t, tt.incoming, echoed)
			}
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	run := func(debug bool, path string, handler echo.HandlerFunc, skip ...string) string {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		m := NewLoggerMiddleware(slog.New(slog.NewTextHandler(&buf, nil)), cfg, skip...)

		e := echo.New()
		e.GET(path, handler, m.Handle)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		return buf.String()
	}
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	fail := func(c echo.Context) error { return domainerrors.ErrInternalError }

	t.Run("debug logs successful requests", func(t *testing.T) {
		out := run(true, "/api/projects", ok)
		assert.Contains(t, out, "HTTP Request")
		assert.Contains(t, out, "route=/api/projects")
		assert.Contains(t, out, "status=200")
	})

	t.Run("quiet mode skips successful requests", func(t *testing.T) {
		assert.Empty(t, run(false, "/api/projects", ok))
	})

	t.Run("quiet mode still logs server errors", func(t *testing.T) {
		out := run(false, "/api/projects", fail)
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "status=500")
	})

	t.Run("skipped route", func(t *testing.T) {
		assert.Empty(t, run(true, "/health", ok, "/health"))
	})
}
