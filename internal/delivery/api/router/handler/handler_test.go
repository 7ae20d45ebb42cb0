package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"syncfloww/internal/delivery/api/middleware"
	"syncfloww/internal/delivery/api/validator"
	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// newTestEcho mirrors the production error handling and validation.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(testLogger).HandleHTTPError

	return e
}

// asUser authenticates every request as userID.
func asUser(userID uuid.UUID, roles ...entity.Role) echo.MiddlewareFunc {
	names := []string{entity.RoleUser.String()}
	for _, r := range roles {
		names = append(names, r.String())
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			middleware.SetIdentity(c, userID, names)

			return next(c)
		}
	}
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID  string `json:"request_id"`
		Pagination *struct {
			Page       int   `json:"page"`
			PageSize   int   `json:"page_size"`
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func fieldDetails(t *testing.T, env envelope) map[string][]string {
	t.Helper()
	require.NotNil(t, env.Error)

	var fields map[string][]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &fields), string(env.Error.Details))

	return fields
}

// extractJSON returns one key of the data object as raw JSON.
func extractJSON(t *testing.T, rec *httptest.ResponseRecorder, key string) string {
	t.Helper()

	var data map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))

	return string(data[key])
}
