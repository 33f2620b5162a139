package handler

import (
	"net/http"

	"contentshop/internal/model"
	"contentshop/internal/repository"
	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	filter := &repository.ProductFilter{
		Type:     c.QueryParam("type"),
		Category: c.QueryParam("category"),
	}
	if c.QueryParam("featured") == "true" {
		featured := true
		filter.Featured = &featured
	}

	products, err := h.catalogService.List(ctx, filter)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"products": products,
		"count":    len(products),
	})
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	product, err := h.catalogService.Get(ctx, c.Param("productID"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var product model.Product
	if err := c.Bind(&product); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}

	if err := h.catalogService.Create(ctx, &product); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var product model.Product
	if err := c.Bind(&product); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}
	product.ID = c.Param("productID")

	if err := h.catalogService.Update(ctx, &product); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, product)
}

func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.catalogService.Delete(ctx, c.Param("productID")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *CatalogHandler) CreateDigitalProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var dp model.DigitalProduct
	if err := c.Bind(&dp); err != nil {
		return errorJSON(c, http.StatusBadRequest, "ongeldig verzoek")
	}

	if err := h.catalogService.CreateDigitalProduct(ctx, &dp); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, dp)
}
