package consultation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ehr/scribe/internal/platform/params"
)

// readMethods answer HEAD on every GET route.
var readMethods = []string{http.MethodGet, http.MethodHead}

// Handler provides REST endpoints for consultations.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes registers consultation routes on the /api group.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.Match(readMethods, "/consultations", h.ListConsultations)
	api.Match(readMethods, "/transcript/:id", h.GetTranscript)
	api.Match(readMethods, "/missing-info/:id", h.GetMissingInfo)
	api.Match(readMethods, "/soap/:id", h.GetSoapNote)
	api.Match(readMethods, "/icd-codes/:id", h.GetICDCodes)
}

// consultationID parses :id. Every id maps to the same payload, so a digit
// string too large for int is still a valid consultation id.
func consultationID(c echo.Context) (int, error) {
	id, err := params.Int(c, "id")
	if errors.Is(err, params.ErrOutOfRange) {
		return id, nil
	}
	return id, err
}

// ListConsultations handles GET /api/consultations
func (h *Handler) ListConsultations(c echo.Context) error {
	items, err := h.svc.ListConsultations(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, items)
}

// GetTranscript handles GET /api/transcript/:id
func (h *Handler) GetTranscript(c echo.Context) error {
	id, err := consultationID(c)
	if err != nil {
		return err
	}
	lines, err := h.svc.GetTranscript(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, lines)
}

// GetMissingInfo handles GET /api/missing-info/:id
func (h *Handler) GetMissingInfo(c echo.Context) error {
	id, err := consultationID(c)
	if err != nil {
		return err
	}
	alert, err := h.svc.GetMissingInfo(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, alert)
}

// GetSoapNote handles GET /api/soap/:id
func (h *Handler) GetSoapNote(c echo.Context) error {
	id, err := consultationID(c)
	if err != nil {
		return err
	}
	note, err := h.svc.GetSoapNote(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, note)
}

// GetICDCodes handles GET /api/icd-codes/:id
func (h *Handler) GetICDCodes(c echo.Context) error {
	id, err := consultationID(c)
	if err != nil {
		return err
	}
	codes, err := h.svc.GetICDCodes(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, codes)
}
