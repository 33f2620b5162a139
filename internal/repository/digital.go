package repository

import (
	"context"
	"errors"
	"time"

	"contentshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DigitalProductRepository interface {
	Create(ctx context.Context, dp *model.DigitalProduct) error
	FindByID(ctx context.Context, digitalProductID string) (*model.DigitalProduct, error)
	FindByProductID(ctx context.Context, productID string) (*model.DigitalProduct, error)
	GetDownloadCount(ctx context.Context, userID, digitalProductID string) (int32, error)
	IncrementDownloadCount(ctx context.Context, userID, digitalProductID string) error
}

type digitalProductRepoImpl struct {
	db *gorm.DB
}

func NewDigitalProductRepository(db *gorm.DB) DigitalProductRepository {
	return &digitalProductRepoImpl{
		db: db,
	}
}

func (r *digitalProductRepoImpl) Create(ctx context.Context, dp *model.DigitalProduct) error {
	return r.db.WithContext(ctx).Create(dp).Error
}

func (r *digitalProductRepoImpl) FindByID(ctx context.Context, digitalProductID string) (*model.DigitalProduct, error) {
	var dp model.DigitalProduct
	err := r.db.WithContext(ctx).
		Where("id = ?", digitalProductID).
		First(&dp).Error

	if err != nil {
		return nil, err
	}

	return &dp, nil
}

func (r *digitalProductRepoImpl) FindByProductID(ctx context.Context, productID string) (*model.DigitalProduct, error) {
	var dp model.DigitalProduct
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&dp).Error

	if err != nil {
		return nil, err
	}

	return &dp, nil
}

func (r *digitalProductRepoImpl) GetDownloadCount(ctx context.Context, userID, digitalProductID string) (int32, error) {
	var record model.DownloadRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND digital_product_id = ?", userID, digitalProductID).
		First(&record).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return record.Count, nil
}

func (r *digitalProductRepoImpl) IncrementDownloadCount(ctx context.Context, userID, digitalProductID string) error {
	now := time.Now()
	record := &model.DownloadRecord{
		UserID:           userID,
		DigitalProductID: digitalProductID,
		Count:            1,
		FirstDownloadAt:  now,
		LastDownloadAt:   now,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "digital_product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":            gorm.Expr("download_records.count + 1"),
			"last_download_at": now,
		}),
	}).Create(&record).Error
}
