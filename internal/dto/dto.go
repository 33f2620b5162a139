package dto

type CheckoutItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"` // euro cents
	Type  string `json:"type"`  // course, ebook
}

type CheckoutRequest struct {
	Items []*CheckoutItem `json:"items"`
}

type CheckoutResponse struct {
	Success     bool   `json:"success"`
	CheckoutURL string `json:"checkoutUrl"`
	OrderID     string `json:"orderId"`
	PaymentID   string `json:"paymentId"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token string       `json:"token"`
	User  *UserProfile `json:"user"`
}

type UserProfile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type AddCartItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int32  `json:"quantity"`
}

type CartLine struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unitPrice"`
	Quantity  int32  `json:"quantity"`
	Subtotal  int64  `json:"subtotal"`
	Type      string `json:"type"`
}

type CartResponse struct {
	Items    []*CartLine `json:"items"`
	Subtotal int64       `json:"subtotal"`
	Currency string      `json:"currency"`
}

type DownloadLinkResponse struct {
	DownloadURL string `json:"downloadUrl"`
	ExpiresAt   int64  `json:"expiresAt"`
}

type NewsletterRequest struct {
	Email string `json:"email"`
}
