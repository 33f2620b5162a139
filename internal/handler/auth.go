package handler

import (
	"net/http"
	"time"

	"contentshop/internal/dto"
	"contentshop/internal/middleware"
	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	userService   service.UserService
	cookieName    string
	cookieTTL     time.Duration
	secureCookies bool
}

func NewAuthHandler(userService service.UserService, cookieName string, cookieTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		userService:   userService,
		cookieName:    cookieName,
		cookieTTL:     cookieTTL,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}

	session, err := h.userService.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusCreated, session)
}

func (h *AuthHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}

	session, err := h.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	h.setSessionCookie(c, session.Token)
	return c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) Me(c echo.Context) error {
	ctx := c.Request().Context()

	profile, err := h.userService.GetProfile(ctx, middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, profile)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(h.cookieTTL),
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
