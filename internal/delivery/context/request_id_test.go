package context

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID(t *testing.T) {
	newCtx := func() echo.Context {
		return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	}

	t.Run("set on echo and request context", func(t *testing.T) {
		c := newCtx()
		SetRequestID(c, "req-1")

		assert.Equal(t, "req-1", GetRequestID(c))
		assert.Equal(t, "req-1", GetRequestIDFromContext(c.Request().Context()))
	})

	t.Run("request context only", func(t *testing.T) {
		c := newCtx()
		c.SetRequest(c.Request().WithContext(WithRequestID(c.Request().Context(), "req-2")))

		assert.Equal(t, "req-2", GetRequestID(c))
	})

	t.Run("missing yields a fresh id", func(t *testing.T) {
		c := newCtx()

		first, second := GetRequestID(c), GetRequestID(c)
		assert.NotEmpty(t, first)
		assert.NotEqual(t, first, second)
		assert.Empty(t, GetRequestIDFromContext(c.Request().Context()))
	})
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := fallback.With(slog.String("request_id", "req-1"))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Nil(t, GetLogger(context.Background()))
}
