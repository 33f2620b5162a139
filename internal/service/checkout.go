package service

import (
	"context"
	"fmt"

	"contentshop/internal/client"
	"contentshop/internal/dto"
	"contentshop/internal/model"

	"github.com/shopspring/decimal"
)

const defaultCurrency = "EUR"

// Dutch VAT
var taxRate = decimal.New(21, -2)

type CheckoutService interface {
	CreatePayment(ctx context.Context, userID string, items []*dto.CheckoutItem) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	orderService   OrderService
	mollieClient   client.MollieClient
	serviceBaseURL string
}

func NewCheckoutService(orderService OrderService, mollieClient client.MollieClient, serviceBaseURL string) CheckoutService {
	return &checkoutServiceImpl{
		orderService:   orderService,
		mollieClient:   mollieClient,
		serviceBaseURL: serviceBaseURL,
	}
}

// ComputeTax rounds half-up on the tax term only; the grand total is the
// untouched subtotal plus that rounded tax.
func ComputeTax(subtotal int64) int64 {
	return decimal.NewFromInt(subtotal).
		Mul(taxRate).
		Round(0).
		IntPart()
}

func (s *checkoutServiceImpl) CreatePayment(ctx context.Context, userID string, items []*dto.CheckoutItem) (*dto.CheckoutResponse, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	var subtotal int64
	orderItems := make([]*model.OrderItem, len(items))
	for i, item := range items {
		if item.ID == "" || item.Price < 0 {
			return nil, fmt.Errorf("%w: item %d", ErrEmptyCart, i)
		}
		subtotal += item.Price

		orderItems[i] = &model.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Type:      item.Type,
		}
	}

	tax := ComputeTax(subtotal)
	total := subtotal + tax

	order, err := s.orderService.Create(ctx, userID, orderItems, total, tax, defaultCurrency)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	payment, err := s.mollieClient.CreatePayment(ctx, &client.CreatePaymentRequest{
		Amount:      total,
		Currency:    defaultCurrency,
		Description: fmt.Sprintf("Bestelling %s", order.ID),
		RedirectURL: fmt.Sprintf("%s/bedankt?orderId=%s", s.serviceBaseURL, order.ID),
		WebhookURL:  fmt.Sprintf("%s/api/payment/webhook", s.serviceBaseURL),
		OrderID:     order.ID,
		UserID:      userID,
	})
	if err != nil {
		// The order stays pending without a reference; checkout can be retried.
		return nil, fmt.Errorf("mollie create payment: %w", err)
	}

	if err := s.orderService.AttachPaymentReference(ctx, order.ID, payment.PaymentID); err != nil {
		return nil, fmt.Errorf("attach payment reference: %w", err)
	}

	return &dto.CheckoutResponse{
		Success:     true,
		CheckoutURL: payment.CheckoutURL,
		OrderID:     order.ID,
		PaymentID:   payment.PaymentID,
	}, nil
}
