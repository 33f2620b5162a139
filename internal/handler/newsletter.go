package handler

import (
	"net/http"
	"strings"

	"contentshop/internal/dto"
	"contentshop/internal/repository"

	"github.com/labstack/echo/v4"
)

type NewsletterHandler struct {
	newsletterRepo repository.NewsletterRepository
}

func NewNewsletterHandler(newsletterRepo repository.NewsletterRepository) *NewsletterHandler {
	return &NewsletterHandler{
		newsletterRepo: newsletterRepo,
	}
}

func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return errorJSON(c, http.StatusBadRequest, "ongeldig e-mailadres")
	}

	if err := h.newsletterRepo.Subscribe(ctx, email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
