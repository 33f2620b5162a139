package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"contentshop/internal/config"
	"contentshop/internal/model"
)

// PaymentStatusRefunded is not a literal Mollie payment status; GetPayment
// reports it when the payment carries a non-zero amountRefunded.
const PaymentStatusRefunded = "refunded"

type CreatePaymentRequest struct {
	Amount      int64 // euro cents
	Currency    string
	Description string
	RedirectURL string
	WebhookURL  string
	OrderID     string
	UserID      string
}

type CreatePaymentResponse struct {
	PaymentID   string
	CheckoutURL string
}

type MollieClient interface {
	CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*model.MolliePayment, error)
	CreateRefund(ctx context.Context, paymentID string, amount int64, currency string) (*model.MollieRefund, error)
}

type mollieClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewMollieClient(cfg *config.Mollie) MollieClient {
	return &mollieClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		apiKey:     cfg.APIKey,
	}
}

// centsToValue renders euro cents the way the API wants amounts: "121.00".
func centsToValue(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

func (c *mollieClientImpl) doJSON(ctx context.Context, method, url string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mollie error %d: %s", resp.StatusCode, string(b))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode mollie response: %w", err)
		}
	}
	return nil
}

func (c *mollieClientImpl) CreatePayment(ctx context.Context, req *CreatePaymentRequest) (*CreatePaymentResponse, error) {
	payload := map[string]interface{}{
		"amount": map[string]string{
			"currency": req.Currency,
			"value":    centsToValue(req.Amount),
		},
		"description": req.Description,
		"redirectUrl": req.RedirectURL,
		"webhookUrl":  req.WebhookURL,
		"metadata": map[string]string{
			"order_id": req.OrderID,
			"user_id":  req.UserID,
		},
	}

	var result model.MolliePayment
	err := c.doJSON(ctx, http.MethodPost, c.baseApiURL+"/v2/payments", payload, &result)
	if err != nil {
		return nil, err
	}

	checkoutURL := ""
	if result.Links.Checkout != nil {
		checkoutURL = result.Links.Checkout.Href
	}

	return &CreatePaymentResponse{
		PaymentID:   result.ID,
		CheckoutURL: checkoutURL,
	}, nil
}

func (c *mollieClientImpl) GetPayment(ctx context.Context, paymentID string) (*model.MolliePayment, error) {
	var result model.MolliePayment
	url := fmt.Sprintf("%s/v2/payments/%s", c.baseApiURL, paymentID)
	if err := c.doJSON(ctx, http.MethodGet, url, nil, &result); err != nil {
		return nil, err
	}

	// Mollie keeps status "paid" after a refund; the refunded amount is the signal.
	if result.AmountRefunded != nil && result.AmountRefunded.Value != "" && result.AmountRefunded.Value != "0.00" {
		result.Status = PaymentStatusRefunded
	}

	return &result, nil
}

func (c *mollieClientImpl) CreateRefund(ctx context.Context, paymentID string, amount int64, currency string) (*model.MollieRefund, error) {
	payload := map[string]interface{}{
		"amount": map[string]string{
			"currency": currency,
			"value":    centsToValue(amount),
		},
	}

	var result model.MollieRefund
	url := fmt.Sprintf("%s/v2/payments/%s/refunds", c.baseApiURL, paymentID)
	if err := c.doJSON(ctx, http.MethodPost, url, payload, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
