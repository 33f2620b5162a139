package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contentshop/internal/model"
	"contentshop/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderService interface {
	Create(ctx context.Context, userID string, items []*model.OrderItem, amount, taxAmount int64, currency string) (*model.Order, error)
	AttachPaymentReference(ctx context.Context, orderID, reference string) error
	// UpdateStatus applies a guarded transition and reports whether it fired.
	// paid/failed fire only from pending, refunded only from paid; anything
	// else is a no-op so replayed webhooks change nothing.
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (bool, error)
	GetByID(ctx context.Context, orderID string) (*model.Order, error)
	GetByPaymentReference(ctx context.Context, reference string) (*model.Order, error)
	ListForUser(ctx context.Context, userID string) ([]*model.Order, error)
	HasUserPurchasedProduct(ctx context.Context, userID, productID string) (bool, error)
}

type orderServiceImpl struct {
	db        *gorm.DB
	orderRepo repository.OrderRepository
}

func NewOrderService(db *gorm.DB, orderRepo repository.OrderRepository) OrderService {
	return &orderServiceImpl{
		db:        db,
		orderRepo: orderRepo,
	}
}

func (s *orderServiceImpl) Create(ctx context.Context, userID string, items []*model.OrderItem, amount, taxAmount int64, currency string) (*model.Order, error) {
	order := &model.Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Status:    string(model.OrderPending),
		Amount:    amount,
		TaxAmount: taxAmount,
		Currency:  currency,
	}

	for _, item := range items {
		item.OrderID = order.ID
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(ctx, tx, order); err != nil {
			return fmt.Errorf("store order: %w", err)
		}
		if err := s.orderRepo.CreateOrderItems(ctx, tx, items); err != nil {
			return fmt.Errorf("store order items: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		order.Items = append(order.Items, *item)
	}

	return order, nil
}

func (s *orderServiceImpl) AttachPaymentReference(ctx context.Context, orderID, reference string) error {
	err := s.orderRepo.AttachPaymentReference(ctx, orderID, reference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// transitionSources maps a target status to the states it may fire from.
var transitionSources = map[model.OrderStatus][]string{
	model.OrderPaid:     {string(model.OrderPending)},
	model.OrderFailed:   {string(model.OrderPending)},
	model.OrderRefunded: {string(model.OrderPaid)},
}

func (s *orderServiceImpl) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) (bool, error) {
	sources, ok := transitionSources[status]
	if !ok {
		return false, fmt.Errorf("no transition into status %q", status)
	}

	var paidAt *time.Time
	if status == model.OrderPaid {
		now := time.Now()
		paidAt = &now
	}

	var applied bool
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		applied, err = s.orderRepo.TransitionStatus(ctx, tx, orderID, sources, string(status), paidAt)
		return err
	})
	if err != nil {
		return false, err
	}

	if !applied {
		// Distinguish a missing order from an already-terminal one.
		if _, err := s.GetByID(ctx, orderID); err != nil {
			return false, err
		}
	}

	return applied, nil
}

func (s *orderServiceImpl) GetByID(ctx context.Context, orderID string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderServiceImpl) GetByPaymentReference(ctx context.Context, reference string) (*model.Order, error) {
	order, err := s.orderRepo.FindByPaymentReference(ctx, reference)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderServiceImpl) ListForUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderServiceImpl) HasUserPurchasedProduct(ctx context.Context, userID, productID string) (bool, error) {
	count, err := s.orderRepo.CountPaidOrdersWithProduct(ctx, userID, productID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
