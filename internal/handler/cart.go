package handler

import (
	"net/http"

	"contentshop/internal/dto"
	"contentshop/internal/middleware"
	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cartService.GetCart(ctx, middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.cartService.AddItem(ctx, middleware.UserID(c), req.ProductID, req.Quantity); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.RemoveItem(ctx, middleware.UserID(c), c.Param("productID")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CartHandler) Clear(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cartService.Clear(ctx, middleware.UserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
