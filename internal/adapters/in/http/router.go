package http

import (
	"log/slog"
	"net/http"

	"pizzeria/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const BaseURL = "/api/v1"

// NewRouter builds the echo instance: API routes behind request validation,
// plus /health, /metrics and the swagger UI.
func NewRouter(server *Server, registry *prometheus.Registry, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(api.OpenAPI)
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	if err := registerSwaggerDoc(doc); err != nil {
		return nil, err
	}
	metrics, err := NewMetricsMiddleware(registry)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler(logger)

	e.Use(middleware.Recover())
	e.Use(RequestLogger(logger))
	e.Use(metrics)

	e.GET("/health", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e.Group(BaseURL, validator), server, "")

	return e, nil
}
