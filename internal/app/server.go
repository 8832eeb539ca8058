// Package app wires configuration, middleware and domain handlers into a
// ready-to-serve echo instance.
package app

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/ehr/scribe/internal/config"
	"github.com/ehr/scribe/internal/domain/consultation"
	"github.com/ehr/scribe/internal/domain/emr"
	"github.com/ehr/scribe/internal/domain/reporting"
	"github.com/ehr/scribe/internal/platform/middleware"
	"github.com/ehr/scribe/internal/platform/spa"
)

// Version is reported by the health endpoint.
const Version = "0.1.0"

// NewServer builds the HTTP server. staticFs must be rooted at the frontend
// build directory; pass nil to serve cfg.StaticDir from disk.
func NewServer(cfg *config.Config, logger zerolog.Logger, staticFs afero.Fs) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = ErrorHandler(logger)

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.CORSOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader, "ETag"},
	}))

	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": Version,
		})
	})

	cacheCfg := middleware.DefaultCacheConfig()
	cacheCfg.MaxAge = cfg.CacheMaxAge

	api := e.Group("/api")
	api.Use(middleware.SecurityHeaders())
	api.Use(middleware.AccessAudit(logger))
	api.Use(middleware.ETag(cacheCfg))
	// Unknown API paths must 404 here instead of reaching the SPA fallback.
	apiNotFound := func(c echo.Context) error {
		return echo.ErrNotFound
	}
	api.RouteNotFound("", apiNotFound)
	api.RouteNotFound("/*", apiNotFound)

	consultationSvc := consultation.NewService(consultation.NewMemoryRepository())
	consultation.NewHandler(consultationSvc).RegisterRoutes(api)

	reportingSvc := reporting.NewService(reporting.NewMemoryRepository())
	reporting.NewHandler(reportingSvc).RegisterRoutes(api)

	emrSvc := emr.NewService(logger)
	emr.NewHandler(emrSvc).RegisterRoutes(api)

	var frontend *spa.Handler
	if staticFs != nil {
		frontend = spa.NewHandler(staticFs)
	} else {
		frontend = spa.NewDirHandler(cfg.StaticDir)
	}
	frontend.RegisterRoutes(e)

	return e
}
