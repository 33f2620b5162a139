package service

import (
	"context"
	"errors"
	"fmt"

	"contentshop/internal/dto"
	"contentshop/internal/model"
	"contentshop/internal/repository"

	"gorm.io/gorm"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int32) error
	GetCart(ctx context.Context, userID string) (*dto.CartResponse, error)
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type cartServiceImpl struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *cartServiceImpl) AddItem(ctx context.Context, userID, productID string, quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	if !product.Active || product.ComingSoon {
		return ErrProductNotFound
	}

	return s.cartRepo.Upsert(ctx, &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	})
}

// GetCart prices lines against the live catalog; cart rows are references,
// not snapshots, unlike order items.
func (s *cartServiceImpl) GetCart(ctx context.Context, userID string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CartResponse{
		Items:    []*dto.CartLine{},
		Currency: defaultCurrency,
	}
	if len(items) == 0 {
		return resp, nil
	}

	ids := make([]string, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	products, err := s.productRepo.FindMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, item := range items {
		product, ok := byID[item.ProductID]
		if !ok || !product.Active {
			// product pulled from the catalog since it was carted
			continue
		}
		line := &dto.CartLine{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Subtotal:  product.Price * int64(item.Quantity),
			Type:      product.Type,
		}
		resp.Items = append(resp.Items, line)
		resp.Subtotal += line.Subtotal
	}

	return resp, nil
}

func (s *cartServiceImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	err := s.cartRepo.Remove(ctx, userID, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *cartServiceImpl) Clear(ctx context.Context, userID string) error {
	return s.cartRepo.Clear(ctx, userID)
}
