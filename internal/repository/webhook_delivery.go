package repository

import (
	"context"
	"time"

	"contentshop/internal/model"

	"gorm.io/gorm"
)

type WebhookDeliveryRepository interface {
	Record(ctx context.Context, paymentID, status string) error
}

type webhookDeliveryRepoImpl struct {
	db *gorm.DB
}

func NewWebhookDeliveryRepository(db *gorm.DB) WebhookDeliveryRepository {
	return &webhookDeliveryRepoImpl{db: db}
}

func (r *webhookDeliveryRepoImpl) Record(ctx context.Context, paymentID, status string) error {
	return r.db.WithContext(ctx).Create(&model.WebhookDelivery{
		PaymentID:  paymentID,
		Status:     status,
		ReceivedAt: time.Now(),
	}).Error
}
