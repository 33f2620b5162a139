package handler

import (
	"errors"
	"net/http"

	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

// user-facing fallback; detail stays in the server log
const genericErrorMsg = "Er is iets misgegaan. Probeer het later opnieuw."

func errorJSON(c echo.Context, status int, msg string) error {
	return c.JSON(status, map[string]string{"error": msg})
}

// respondError maps domain errors onto the HTTP contract. Anything
// unrecognized is logged and answered with the generic message.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		return errorJSON(c, http.StatusBadRequest, "geen artikelen om af te rekenen")
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, service.ErrProductNotFound):
		return errorJSON(c, http.StatusNotFound, "niet gevonden")
	case errors.Is(err, service.ErrInvalidCredentials):
		return errorJSON(c, http.StatusUnauthorized, "ongeldige inloggegevens")
	case errors.Is(err, service.ErrEmailTaken):
		return errorJSON(c, http.StatusConflict, "e-mailadres is al in gebruik")
	case errors.Is(err, service.ErrNotPurchased), errors.Is(err, service.ErrDownloadLimit), errors.Is(err, service.ErrInvalidToken):
		return errorJSON(c, http.StatusForbidden, "geen toegang tot dit bestand")
	case errors.Is(err, service.ErrNotRefundable):
		return errorJSON(c, http.StatusConflict, "bestelling kan niet worden terugbetaald")
	default:
		c.Logger().Error(err)
		return errorJSON(c, http.StatusInternalServerError, genericErrorMsg)
	}
}
