package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"contentshop/internal/model"
	"contentshop/internal/repository"
)

type downloadFixture struct {
	orders   OrderService
	digital  repository.DigitalProductRepository
	download DownloadService
}

func newDownloadFixture(t *testing.T, limit int32) *downloadFixture {
	db := newTestDB(t)
	orders := NewOrderService(db, repository.NewOrderRepository(db))
	digital := repository.NewDigitalProductRepository(db)

	err := digital.Create(context.Background(), &model.DigitalProduct{
		ID:            "dp-ebook",
		ProductID:     "ebook-budget",
		FileName:      "budget.epub",
		StorageURL:    "https://files.example/budget.epub",
		DownloadLimit: limit,
	})
	if err != nil {
		t.Fatal(err)
	}

	return &downloadFixture{
		orders:   orders,
		digital:  digital,
		download: NewDownloadService(orders, digital, "test-secret", 30*time.Minute),
	}
}

func (f *downloadFixture) buyEbook(t *testing.T, userID string) {
	t.Helper()
	items := []*model.OrderItem{
		{ProductID: "ebook-budget", Name: "E-book Budgetteren", UnitPrice: 1500, Type: "ebook"},
	}
	order, err := f.orders.Create(context.Background(), userID, items, 1815, 315, "EUR")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.orders.UpdateStatus(context.Background(), order.ID, model.OrderPaid); err != nil {
		t.Fatal(err)
	}
}

func TestCanUserDownload(t *testing.T) {
	ctx := context.Background()

	t.Run("false without a paid order even when unlimited", func(t *testing.T) {
		f := newDownloadFixture(t, 0)

		allowed, err := f.download.CanUserDownload(ctx, "user-1", "dp-ebook")
		if err != nil {
			t.Fatal(err)
		}
		if allowed {
			t.Error("expected download to be denied")
		}
	})

	t.Run("true after purchase", func(t *testing.T) {
		f := newDownloadFixture(t, 0)
		f.buyEbook(t, "user-1")

		allowed, err := f.download.CanUserDownload(ctx, "user-1", "dp-ebook")
		if err != nil {
			t.Fatal(err)
		}
		if !allowed {
			t.Error("expected download to be allowed")
		}
	})

	t.Run("limit of three allows the third and blocks the fourth", func(t *testing.T) {
		f := newDownloadFixture(t, 3)
		f.buyEbook(t, "user-1")

		for i := 0; i < 2; i++ {
			if err := f.digital.IncrementDownloadCount(ctx, "user-1", "dp-ebook"); err != nil {
				t.Fatal(err)
			}
		}
		allowed, err := f.download.CanUserDownload(ctx, "user-1", "dp-ebook")
		if err != nil {
			t.Fatal(err)
		}
		if !allowed {
			t.Error("two prior downloads should still allow")
		}

		if err := f.digital.IncrementDownloadCount(ctx, "user-1", "dp-ebook"); err != nil {
			t.Fatal(err)
		}
		allowed, err = f.download.CanUserDownload(ctx, "user-1", "dp-ebook")
		if err != nil {
			t.Fatal(err)
		}
		if allowed {
			t.Error("three prior downloads should block")
		}
	})

	t.Run("unknown digital product", func(t *testing.T) {
		f := newDownloadFixture(t, 0)

		_, err := f.download.CanUserDownload(ctx, "user-1", "dp-missing")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("err = %v, want ErrProductNotFound", err)
		}
	})
}

func TestDownloadTokens(t *testing.T) {
	ctx := context.Background()

	t.Run("redeem increments the counter", func(t *testing.T) {
		f := newDownloadFixture(t, 3)
		f.buyEbook(t, "user-1")

		grant, err := f.download.IssueToken(ctx, "user-1", "ebook-budget")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := f.download.Redeem(ctx, grant.Token, "ebook-budget", "user-1"); err != nil {
			t.Fatalf("redeem: %v", err)
		}

		count, err := f.digital.GetDownloadCount(ctx, "user-1", "dp-ebook")
		if err != nil {
			t.Fatal(err)
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})

	t.Run("token for another product is rejected", func(t *testing.T) {
		f := newDownloadFixture(t, 0)
		f.buyEbook(t, "user-1")

		grant, err := f.download.IssueToken(ctx, "user-1", "ebook-budget")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := f.download.Redeem(ctx, grant.Token, "other-product", ""); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("mismatched legacy userId is rejected", func(t *testing.T) {
		f := newDownloadFixture(t, 0)
		f.buyEbook(t, "user-1")

		grant, err := f.download.IssueToken(ctx, "user-1", "ebook-budget")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := f.download.Redeem(ctx, grant.Token, "ebook-budget", "user-2"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("tampered token is rejected", func(t *testing.T) {
		f := newDownloadFixture(t, 0)
		f.buyEbook(t, "user-1")

		other := NewDownloadService(f.orders, f.digital, "wrong-secret", 30*time.Minute)
		grant, err := other.IssueToken(ctx, "user-1", "ebook-budget")
		if err != nil {
			t.Fatal(err)
		}

		if _, err := f.download.Redeem(ctx, grant.Token, "ebook-budget", ""); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("token without a purchase is refused at issue time", func(t *testing.T) {
		f := newDownloadFixture(t, 0)

		if _, err := f.download.IssueToken(ctx, "user-1", "ebook-budget"); !errors.Is(err, ErrNotPurchased) {
			t.Fatalf("err = %v, want ErrNotPurchased", err)
		}
	})
}
