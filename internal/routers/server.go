package routers

import (
	"net/http"

	"hunt-api/internal/middleware"
	"hunt-api/internal/shared"

	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type ServerConfig struct {
	MetricsAPIKey  string
	BodyLimit      string
	MaxHeaderBytes int
}

// NewServer builds the echo instance with every route registered. It does
// not start listening.
func NewServer(cfg ServerConfig, log *zap.SugaredLogger, tracer trace.Tracer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes
	e.Server.ReadTimeout = shared.DefaultReadTimeout

	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			apiKey, err := shared.ExtractAPIKey(c)
			if err != nil {
				return c.String(http.StatusUnauthorized, "Missing or invalid API key")
			}

			if apiKey != cfg.MetricsAPIKey {
				return c.String(http.StatusUnauthorized, "Unauthorized API key")
			}
			return next(c)
		}
	})

	base := e.Group("")
	base.Use(emw.CORS())
	base.Use(middleware.NewTrackMiddleware(log))
	base.Use(emw.BodyLimit(cfg.BodyLimit))
	base.Use(middleware.NewRecoverMiddleware(log))

	RegisterHuntRoutes(base)
	RegisterCookieRoutes(base, log, tracer)
	return e
}
