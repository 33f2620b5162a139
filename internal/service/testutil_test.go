package service

import (
	"context"
	"fmt"
	"testing"

	"contentshop/internal/client"
	"contentshop/internal/model"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := client.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	return db
}

// fakeMollieClient scripts gateway behavior for service tests.
type fakeMollieClient struct {
	createErr     error
	paymentStatus map[string]string
	getErr        error
	created       int
	refunds       []string
	refundErr     error
}

func newFakeMollie() *fakeMollieClient {
	return &fakeMollieClient{
		paymentStatus: map[string]string{},
	}
}

func (f *fakeMollieClient) CreatePayment(ctx context.Context, req *client.CreatePaymentRequest) (*client.CreatePaymentResponse, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created++
	id := fmt.Sprintf("tr_test_%d", f.created)
	f.paymentStatus[id] = "open"
	return &client.CreatePaymentResponse{
		PaymentID:   id,
		CheckoutURL: "https://checkout.example/" + id,
	}, nil
}

func (f *fakeMollieClient) GetPayment(ctx context.Context, paymentID string) (*model.MolliePayment, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	status, ok := f.paymentStatus[paymentID]
	if !ok {
		return nil, fmt.Errorf("mollie error 404: payment %s not found", paymentID)
	}
	return &model.MolliePayment{ID: paymentID, Status: status}, nil
}

func (f *fakeMollieClient) CreateRefund(ctx context.Context, paymentID string, amount int64, currency string) (*model.MollieRefund, error) {
	if f.refundErr != nil {
		return nil, f.refundErr
	}
	f.refunds = append(f.refunds, paymentID)
	f.paymentStatus[paymentID] = client.PaymentStatusRefunded
	return &model.MollieRefund{ID: "re_" + paymentID, Status: "refunded", PaymentID: paymentID}, nil
}
