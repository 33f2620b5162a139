package repository

import (
	"context"

	"contentshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NewsletterRepository interface {
	Subscribe(ctx context.Context, email string) error
}

type newsletterRepoImpl struct {
	db *gorm.DB
}

func NewNewsletterRepository(db *gorm.DB) NewsletterRepository {
	return &newsletterRepoImpl{db: db}
}

func (r *newsletterRepoImpl) Subscribe(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.NewsletterSubscription{Email: email}).Error
}
