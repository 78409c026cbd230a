package insights

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
	"github.com/nutritrack/nutritrack/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	protected.GET("/insights/breakdown", h.Breakdown)
	protected.GET("/insights/cohort", h.Cohort)
}

func (h *Handler) Breakdown(c echo.Context) error {
	breakdown, err := h.svc.Breakdown(c.Request().Context(), auth.UserID(c))
	if err != nil {
		if errors.Is(err, patient.ErrUnknownUser) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, breakdown)
}

func (h *Handler) Cohort(c echo.Context) error {
	averages, err := h.svc.Cohort(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, averages)
}
