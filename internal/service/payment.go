package service

import (
	"context"
	"fmt"

	"contentshop/internal/client"
	"contentshop/internal/model"
	"contentshop/internal/repository"
)

type PaymentService interface {
	// ProcessWebhook is driven by the gateway's callback, which carries only a
	// payment id. The authoritative status always comes from a fresh gateway
	// query, never from the callback body.
	ProcessWebhook(ctx context.Context, paymentID string) error
	RefundOrder(ctx context.Context, orderID string) error
}

type paymentServiceImpl struct {
	mollieClient client.MollieClient
	orderService OrderService
	deliveryRepo repository.WebhookDeliveryRepository
}

func NewPaymentService(mollieClient client.MollieClient, orderService OrderService, deliveryRepo repository.WebhookDeliveryRepository) PaymentService {
	return &paymentServiceImpl{
		mollieClient: mollieClient,
		orderService: orderService,
		deliveryRepo: deliveryRepo,
	}
}

// mapPaymentStatus collapses gateway statuses onto the order lifecycle.
// canceled and expired count as failed; open/pending are non-terminal and
// map to nothing, leaving the order for the gateway's next delivery.
func mapPaymentStatus(gatewayStatus string) (model.OrderStatus, bool) {
	switch gatewayStatus {
	case "paid":
		return model.OrderPaid, true
	case "failed", "canceled", "expired":
		return model.OrderFailed, true
	case client.PaymentStatusRefunded:
		return model.OrderRefunded, true
	default:
		return "", false
	}
}

func (s *paymentServiceImpl) ProcessWebhook(ctx context.Context, paymentID string) error {
	payment, err := s.mollieClient.GetPayment(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("query payment %s: %w", paymentID, err)
	}

	if err := s.deliveryRepo.Record(ctx, paymentID, payment.Status); err != nil {
		return fmt.Errorf("record webhook delivery: %w", err)
	}

	order, err := s.orderService.GetByPaymentReference(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("order for payment %s: %w", paymentID, err)
	}

	status, terminal := mapPaymentStatus(payment.Status)
	if !terminal {
		return nil
	}

	if _, err := s.orderService.UpdateStatus(ctx, order.ID, status); err != nil {
		return fmt.Errorf("update order %s status: %w", order.ID, err)
	}

	return nil
}

func (s *paymentServiceImpl) RefundOrder(ctx context.Context, orderID string) error {
	order, err := s.orderService.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != string(model.OrderPaid) || order.PaymentReference == "" {
		return ErrNotRefundable
	}

	_, err = s.mollieClient.CreateRefund(ctx, order.PaymentReference, order.Amount, order.Currency)
	if err != nil {
		return fmt.Errorf("mollie create refund: %w", err)
	}

	// The order flips to refunded when the gateway reports the refund through
	// the webhook, same path as every other transition.
	return nil
}
