package handler

import (
	"net/http"
	"strings"

	"syncfloww/config"
	"syncfloww/internal/delivery/api/docs"
	"syncfloww/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	serviceName    = "SyncFloww API"
	serviceVersion = "1.0.0"
)

type RootHandlerParams struct {
	fx.In

	Config *config.Config
}

// RootHandler serves unauthenticated service metadata and the API documentation.
type RootHandler struct {
	publicBaseURL string
}

func NewRootHandler(params RootHandlerParams) *RootHandler {
	return &RootHandler{
		publicBaseURL: strings.TrimRight(params.Config.HTTP.PublicBaseURL, "/"),
	}
}

type RootResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
	Docs    string `json:"docs"`
}

// Root is served without the success envelope.
func (h *RootHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, RootResponse{
		Status:  "ok",
		Service: serviceName,
		Version: serviceVersion,
		Docs:    h.baseURL(c) + "/swagger/",
	})
}

func (h *RootHandler) baseURL(c echo.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}

// HealthCheck handles health check requests
func (h *RootHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *RootHandler) SwaggerYAML(c echo.Context) error {
	return c.Blob(http.StatusOK, "application/yaml", docs.YAML())
}

func (h *RootHandler) SwaggerJSON(c echo.Context) error {
	body, err := docs.JSON()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSONBlob(http.StatusOK, body)
}

func (h *RootHandler) SwaggerUI(c echo.Context) error {
	return c.HTML(http.StatusOK, docs.SwaggerUI())
}

func (h *RootHandler) ReDoc(c echo.Context) error {
	return c.HTML(http.StatusOK, docs.ReDoc())
}
