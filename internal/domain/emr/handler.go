package emr

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Handler provides the EMR save endpoint.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/save-to-emr", h.SaveToEMR)
}

// SaveToEMR handles POST /api/save-to-emr. The body is drained but never
// parsed, so empty and malformed payloads get the same success response.
func (h *Handler) SaveToEMR(c echo.Context) error {
	req := c.Request()

	var size int64
	if req.Body != nil {
		size, _ = io.Copy(io.Discard, req.Body)
	}

	result := h.svc.Push(req.Context(), Submission{
		ID:          uuid.NewString(),
		ContentType: req.Header.Get(echo.HeaderContentType),
		Size:        size,
	})
	return c.JSON(http.StatusOK, result)
}
