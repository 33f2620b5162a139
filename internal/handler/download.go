package handler

import (
	"net/http"

	"contentshop/internal/dto"
	"contentshop/internal/middleware"
	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

type DownloadHandler struct {
	downloadService service.DownloadService
	baseURL         string
}

func NewDownloadHandler(downloadService service.DownloadService, baseURL string) *DownloadHandler {
	return &DownloadHandler{
		downloadService: downloadService,
		baseURL:         baseURL,
	}
}

// RequestDownload runs the gate for the signed-in user and hands back a
// tokenized URL for the actual fetch.
func (h *DownloadHandler) RequestDownload(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("productID")

	grant, err := h.downloadService.IssueToken(ctx, middleware.UserID(c), productID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, &dto.DownloadLinkResponse{
		DownloadURL: h.baseURL + "/api/download/" + productID + "?token=" + grant.Token,
		ExpiresAt:   grant.ExpiresAt.Unix(),
	})
}

// Download redeems a token. The legacy userId parameter is still accepted and
// cross-checked against the token's subject.
func (h *DownloadHandler) Download(c echo.Context) error {
	ctx := c.Request().Context()
	productID := c.Param("productID")

	token := c.QueryParam("token")
	if token == "" {
		return errorJSON(c, http.StatusBadRequest, "missing token")
	}

	grant, err := h.downloadService.Redeem(ctx, token, productID, c.QueryParam("userId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.Redirect(http.StatusFound, grant.StorageURL)
}
