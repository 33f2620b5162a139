package service

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrEmptyCart          = errors.New("no items to check out")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotPurchased       = errors.New("product not purchased")
	ErrDownloadLimit      = errors.New("download limit reached")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNotRefundable      = errors.New("order is not refundable")
)
