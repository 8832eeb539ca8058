package reporting

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/scribe/internal/platform/params"
)

// readMethods answer HEAD on every GET route.
var readMethods = []string{http.MethodGet, http.MethodHead}

// Handler provides REST endpoints for reports and dashboard statistics.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers reporting routes on the /api group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.Match(readMethods, "/statistics", h.GetStatistics)
	api.Match(readMethods, "/reports", h.ListReports)
	api.Match(readMethods, "/reports/:id", h.GetReport)
}

// GetStatistics handles GET /api/statistics
func (h *Handler) GetStatistics(c echo.Context) error {
	stats, err := h.svc.GetStatistics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, stats)
}

// ListReports handles GET /api/reports
func (h *Handler) ListReports(c echo.Context) error {
	reports, err := h.svc.ListReports(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, reports)
}

// GetReport handles GET /api/reports/:id
func (h *Handler) GetReport(c echo.Context) error {
	id, err := params.Int(c, "id")
	if errors.Is(err, params.ErrOutOfRange) {
		return reportNotFound(c)
	}
	if err != nil {
		return err
	}
	rep, err := h.svc.GetReport(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrReportNotFound) {
			return reportNotFound(c)
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, rep)
}

// reportNotFound answers a well-formed id that matches no report.
func reportNotFound(c echo.Context) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": "Report not found"})
}
