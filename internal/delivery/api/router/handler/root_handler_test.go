package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"syncfloww/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootTestServer(publicBaseURL string) *echo.Echo {
	cfg := &config.Config{}
	cfg.HTTP.PublicBaseURL = publicBaseURL
	h := NewRootHandler(RootHandlerParams{Config: cfg})

	e := newTestEcho()
	e.GET("/", h.Root)
	e.GET("/health", h.HealthCheck)
	e.GET("/swagger.yaml", h.SwaggerYAML)
	e.GET("/swagger.json", h.SwaggerJSON)
	e.GET("/swagger", h.SwaggerUI)
	e.GET("/redoc", h.ReDoc)

	return e
}

func TestRootHandler_Root(t *testing.T) {
	tests := []struct {
		name          string
		publicBaseURL string
		wantDocs      string
	}{
		{name: "derived from the request", wantDocs: "http://example.com/swagger/"},
		{name: "configured base url", publicBaseURL: "https://api.syncflow.com/", wantDocs: "https://api.syncflow.com/swagger/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(newRootTestServer(tt.publicBaseURL), http.MethodGet, "/", "")

			require.Equal(t, http.StatusOK, rec.Code)
			var body RootResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, RootResponse{Status: "ok", Service: "SyncFloww API", Version: "1.0.0", Docs: tt.wantDocs}, body)
		})
	}
}

func TestRootHandler_HealthAndDocs(t *testing.T) {
	e := newRootTestServer("")

	rec := doRequest(e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/swagger.json", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.0.3", doc["openapi"])

	rec = doRequest(e, http.MethodGet, "/swagger.yaml", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "openapi:")

	for _, path := range []string{"/swagger/", "/redoc/"} {
		rec = doRequest(e, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "/swagger.json", path)
	}
}
