package handler

import (
	"encoding/json"
	"net/http"

	"contentshop/internal/service"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
	}
}

// Webhook is called by the gateway with nothing but a payment id, delivered
// as a form field or a JSON body. The reported state is never trusted; the
// service re-queries the gateway.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	ctx := c.Request().Context()

	paymentID := c.FormValue("id")
	if paymentID == "" {
		var body struct {
			ID string `json:"id"`
		}
		if err := json.NewDecoder(c.Request().Body).Decode(&body); err == nil {
			paymentID = body.ID
		}
	}
	if paymentID == "" {
		return errorJSON(c, http.StatusBadRequest, "missing payment id")
	}

	if err := h.paymentService.ProcessWebhook(ctx, paymentID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// WebhookLiveness lets the gateway's endpoint check answer something friendly.
func (h *PaymentHandler) WebhookLiveness(c echo.Context) error {
	return c.String(http.StatusOK, "webhook endpoint actief")
}

func (h *PaymentHandler) Refund(c echo.Context) error {
	ctx := c.Request().Context()

	orderID := c.Param("orderID")
	if orderID == "" {
		return errorJSON(c, http.StatusBadRequest, "missing order id")
	}

	if err := h.paymentService.RefundOrder(ctx, orderID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
