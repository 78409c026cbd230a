package patient

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nutritrack/nutritrack/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenIssuer
}

func NewHandler(svc *Service, tokens *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

func (h *Handler) RegisterRoutes(public, protected *echo.Group) {
	public.GET("/users", h.ListUserIDs)
	public.POST("/auth/claim", h.Claim)
	public.POST("/auth/login", h.Login)
	protected.POST("/auth/password", h.ChangePassword)
}

type claimRequest struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
	Password    string `json:"password"`
}

type loginRequest struct {
	UserID   string `json:"user_id"`
	Password string `json:"password"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type sessionResponse struct {
	Token string  `json:"token"`
	User  *Record `json:"user"`
}

func (h *Handler) ListUserIDs(c echo.Context) error {
	ids, err := h.svc.ListUserIDs(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if ids == nil {
		ids = []string{}
	}
	return c.JSON(http.StatusOK, map[string][]string{"user_ids": ids})
}

func (h *Handler) Claim(c echo.Context) error {
	var req claimRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Claim(c.Request().Context(), req.UserID, req.PhoneNumber, req.Name, req.Password)
	if err != nil {
		return lifecycleError(err)
	}

	token, err := h.tokens.IssueToken(rec.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: rec})
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rec, err := h.svc.Login(c.Request().Context(), req.UserID, req.Password)
	if err != nil {
		return lifecycleError(err)
	}

	token, err := h.tokens.IssueToken(rec.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, sessionResponse{Token: token, User: rec})
}

func (h *Handler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	userID := auth.UserID(c)
	if err := h.svc.ChangePassword(c.Request().Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return lifecycleError(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func lifecycleError(err error) error {
	switch {
	case errors.Is(err, ErrUnknownUser):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrAlreadyClaimed):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, ErrPhoneMismatch), errors.Is(err, ErrInvalidPassword):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUnclaimedAccount):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrWrongPassword):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
