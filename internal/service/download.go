package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"contentshop/internal/model"
	"contentshop/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type DownloadGrant struct {
	Token       string
	ExpiresAt   time.Time
	StorageURL  string
	FileName    string
	ContentType string
}

type DownloadService interface {
	CanUserDownload(ctx context.Context, userID, digitalProductID string) (bool, error)
	// IssueToken runs the gate and mints a signed token for the product's file.
	IssueToken(ctx context.Context, userID, productID string) (*DownloadGrant, error)
	// Redeem verifies a token against the requested product, re-runs the gate,
	// bumps the per-user counter and returns the file location.
	Redeem(ctx context.Context, token, productID, claimedUserID string) (*DownloadGrant, error)
}

type downloadClaims struct {
	DigitalProductID string `json:"dpid"`
	ProductID        string `json:"pid"`
	jwt.RegisteredClaims
}

type downloadServiceImpl struct {
	orderService OrderService
	digitalRepo  repository.DigitalProductRepository
	secret       []byte
	tokenTTL     time.Duration
}

func NewDownloadService(orderService OrderService, digitalRepo repository.DigitalProductRepository, secret string, tokenTTL time.Duration) DownloadService {
	return &downloadServiceImpl{
		orderService: orderService,
		digitalRepo:  digitalRepo,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
	}
}

func (s *downloadServiceImpl) CanUserDownload(ctx context.Context, userID, digitalProductID string) (bool, error) {
	dp, err := s.digitalRepo.FindByID(ctx, digitalProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, ErrProductNotFound
	}
	if err != nil {
		return false, err
	}

	purchased, err := s.orderService.HasUserPurchasedProduct(ctx, userID, dp.ProductID)
	if err != nil {
		return false, err
	}
	if !purchased {
		return false, nil
	}

	if dp.DownloadLimit > 0 {
		count, err := s.digitalRepo.GetDownloadCount(ctx, userID, dp.ID)
		if err != nil {
			return false, err
		}
		if count >= dp.DownloadLimit {
			return false, nil
		}
	}

	return true, nil
}

func (s *downloadServiceImpl) findDigitalProduct(ctx context.Context, productID string) (*model.DigitalProduct, error) {
	dp, err := s.digitalRepo.FindByProductID(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return dp, nil
}

func (s *downloadServiceImpl) IssueToken(ctx context.Context, userID, productID string) (*DownloadGrant, error) {
	dp, err := s.findDigitalProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.CanUserDownload(ctx, userID, dp.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		purchased, perr := s.orderService.HasUserPurchasedProduct(ctx, userID, dp.ProductID)
		if perr == nil && purchased {
			return nil, ErrDownloadLimit
		}
		return nil, ErrNotPurchased
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := downloadClaims{
		DigitalProductID: dp.ID,
		ProductID:        dp.ProductID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign download token: %w", err)
	}

	return &DownloadGrant{
		Token:       token,
		ExpiresAt:   expiresAt,
		StorageURL:  dp.StorageURL,
		FileName:    dp.FileName,
		ContentType: dp.ContentType,
	}, nil
}

func (s *downloadServiceImpl) Redeem(ctx context.Context, token, productID, claimedUserID string) (*DownloadGrant, error) {
	var claims downloadClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if claims.ProductID != productID {
		return nil, ErrInvalidToken
	}
	// Legacy clients still send userId alongside the token; when present it
	// must agree with the signed subject.
	if claimedUserID != "" && claimedUserID != claims.Subject {
		return nil, ErrInvalidToken
	}

	dp, err := s.digitalRepo.FindByID(ctx, claims.DigitalProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	allowed, err := s.CanUserDownload(ctx, claims.Subject, dp.ID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, ErrDownloadLimit
	}

	if err := s.digitalRepo.IncrementDownloadCount(ctx, claims.Subject, dp.ID); err != nil {
		return nil, fmt.Errorf("increment download count: %w", err)
	}

	return &DownloadGrant{
		StorageURL:  dp.StorageURL,
		FileName:    dp.FileName,
		ContentType: dp.ContentType,
	}, nil
}
