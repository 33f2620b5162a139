package model

import "time"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	ID           string `gorm:"primaryKey;size:64;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:128;not null"`
	Name         string `gorm:"size:128"`
	Role         string `gorm:"size:32;not null"` // customer, admin
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ProductType string

const (
	ProductCourse ProductType = "course"
	ProductEbook  ProductType = "ebook"
	ProductReview ProductType = "review"
)

type Product struct {
	ID               string `gorm:"primaryKey;size:64;not null"`
	Name             string `gorm:"size:255;not null"`
	ShortDescription string `gorm:"size:512"`
	Description      string
	Price            int64  `gorm:"not null"` // euro cents, 0 allowed for review items
	Currency         string `gorm:"size:8;not null"`
	Type             string `gorm:"size:32;index;not null"` // course, ebook, review
	Category         string `gorm:"size:64;index"`
	Tags             string `gorm:"size:512"` // comma separated
	Active           bool   `gorm:"not null;default:true"`
	Featured         bool   `gorm:"not null;default:false"`
	ComingSoon       bool   `gorm:"not null;default:false"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderPaid     OrderStatus = "paid"
	OrderFailed   OrderStatus = "failed"
	OrderRefunded OrderStatus = "refunded"
)

type Order struct {
	ID     string `gorm:"primaryKey;size:64;not null"`
	UserID string `gorm:"size:64;index;not null"`
	Status string `gorm:"size:32;index;not null"` // pending, paid, failed, refunded
	// mollie payment id, empty until the checkout session exists
	PaymentReference string `gorm:"size:64;index"`
	Amount           int64  `gorm:"not null"` // total including tax, euro cents
	TaxAmount        int64  `gorm:"not null"`
	Currency         string `gorm:"size:8;not null"`
	Items            []OrderItem
	PaidAt           *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// OrderItem is a snapshot taken at checkout time. Historical orders must not
// change when the catalog does, so nothing here joins back to Product.
type OrderItem struct {
	ID        uint   `gorm:"primaryKey"`
	OrderID   string `gorm:"size:64;index;not null"`
	ProductID string `gorm:"size:64;index;not null"`
	Name      string `gorm:"size:255;not null"`
	UnitPrice int64  `gorm:"not null"`
	Type      string `gorm:"size:32;not null"` // course, ebook
	CreatedAt time.Time
}

// CartItem joins the live catalog for pricing, unlike OrderItem.
type CartItem struct {
	UserID    string `gorm:"primaryKey;size:64;not null"`
	ProductID string `gorm:"primaryKey;size:64;not null"`
	Quantity  int32  `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DigitalProduct struct {
	ID          string `gorm:"primaryKey;size:64;not null"`
	ProductID   string `gorm:"size:64;index;not null"`
	FileName    string `gorm:"size:255;not null"`
	FileSize    int64
	ContentType string `gorm:"size:64"`
	StorageURL  string `gorm:"size:512;not null"`
	// 0 means unlimited
	DownloadLimit int32 `gorm:"not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DownloadRecord struct {
	UserID           string `gorm:"primaryKey;size:64;not null"`
	DigitalProductID string `gorm:"primaryKey;size:64;not null"`
	Count            int32  `gorm:"not null"`
	FirstDownloadAt  time.Time
	LastDownloadAt   time.Time
}

// WebhookDelivery is an audit trail of gateway callbacks. Transitions are
// guarded on order status, so a duplicate row here is expected and harmless.
type WebhookDelivery struct {
	ID         uint   `gorm:"primaryKey"`
	PaymentID  string `gorm:"size:64;index;not null"`
	Status     string `gorm:"size:32"`
	ReceivedAt time.Time
}

type NewsletterSubscription struct {
	Email     string `gorm:"primaryKey;size:255;not null"`
	CreatedAt time.Time
}
