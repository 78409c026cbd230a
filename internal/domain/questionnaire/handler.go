package questionnaire

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutritrack/nutritrack/internal/platform/auth"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	protected.GET("/questionnaire", h.Get)
	protected.PUT("/questionnaire", h.Submit)
	protected.GET("/questionnaire/status", h.Status)
}

func (h *Handler) Get(c echo.Context) error {
	resp, err := h.svc.Get(c.Request().Context(), auth.UserID(c))
	if err != nil {
		if errors.Is(err, ErrNoResponse) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Submit(c echo.Context) error {
	var resp Response
	if err := c.Bind(&resp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	resp.UserID = auth.UserID(c)

	if err := h.svc.Submit(c.Request().Context(), &resp); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) Status(c echo.Context) error {
	done, err := h.svc.Completed(c.Request().Context(), auth.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]bool{"completed": done})
}
