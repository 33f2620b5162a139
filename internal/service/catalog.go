package service

import (
	"context"
	"errors"
	"fmt"

	"contentshop/internal/model"
	"contentshop/internal/repository"

	"gorm.io/gorm"
)

type CatalogService interface {
	List(ctx context.Context, filter *repository.ProductFilter) ([]*model.Product, error)
	Get(ctx context.Context, productID string) (*model.Product, error)
	Create(ctx context.Context, product *model.Product) error
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, productID string) error
	CreateDigitalProduct(ctx context.Context, dp *model.DigitalProduct) error
}

type catalogServiceImpl struct {
	productRepo repository.ProductRepository
	digitalRepo repository.DigitalProductRepository
}

func NewCatalogService(productRepo repository.ProductRepository, digitalRepo repository.DigitalProductRepository) CatalogService {
	return &catalogServiceImpl{
		productRepo: productRepo,
		digitalRepo: digitalRepo,
	}
}

func (s *catalogServiceImpl) List(ctx context.Context, filter *repository.ProductFilter) ([]*model.Product, error) {
	return s.productRepo.ListActive(ctx, filter)
}

func (s *catalogServiceImpl) Get(ctx context.Context, productID string) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (s *catalogServiceImpl) Create(ctx context.Context, product *model.Product) error {
	if product.ID == "" || product.Name == "" {
		return fmt.Errorf("product id and name are required")
	}
	if product.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	// review items are free affiliate entries; price 0 is fine
	if product.Currency == "" {
		product.Currency = defaultCurrency
	}
	return s.productRepo.Create(ctx, product)
}

func (s *catalogServiceImpl) Update(ctx context.Context, product *model.Product) error {
	err := s.productRepo.Update(ctx, product)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *catalogServiceImpl) Delete(ctx context.Context, productID string) error {
	// Order items are snapshots, so deleting a product never touches
	// historical orders.
	err := s.productRepo.Delete(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *catalogServiceImpl) CreateDigitalProduct(ctx context.Context, dp *model.DigitalProduct) error {
	if dp.ProductID == "" || dp.StorageURL == "" {
		return fmt.Errorf("product id and storage url are required")
	}
	if _, err := s.Get(ctx, dp.ProductID); err != nil {
		return err
	}
	return s.digitalRepo.Create(ctx, dp)
}
