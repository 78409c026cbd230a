package nutricoach

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutritrack/nutritrack/internal/domain/patient"
	"github.com/nutritrack/nutritrack/internal/platform/auth"
	"github.com/nutritrack/nutritrack/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(protected *echo.Group) {
	protected.POST("/nutricoach/tips", h.GenerateTip)
	protected.GET("/nutricoach/tips", h.ListTips)
	protected.GET("/nutricoach/fruit/:name", h.FruitInfo)
}

func (h *Handler) GenerateTip(c echo.Context) error {
	tip, err := h.svc.GenerateTip(c.Request().Context(), auth.UserID(c))
	if err != nil {
		if errors.Is(err, patient.ErrUnknownUser) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusCreated, tip)
}

func (h *Handler) ListTips(c echo.Context) error {
	pg := pagination.FromContext(c)
	tips, total, err := h.svc.ListTips(c.Request().Context(), auth.UserID(c), pg.Limit, pg.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if tips == nil {
		tips = []Tip{}
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(tips, total, pg.Limit, pg.Offset))
}

func (h *Handler) FruitInfo(c echo.Context) error {
	fruit, err := h.svc.FruitInfo(c.Request().Context(), c.Param("name"))
	if err != nil {
		if errors.Is(err, ErrFruitNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.JSON(http.StatusOK, fruit)
}
