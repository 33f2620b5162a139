package model

// Wire types for the Mollie v2 payments API.

type MollieAmount struct {
	Currency string `json:"currency"`
	Value    string `json:"value"` // decimal string, e.g. "121.00"
}

type MollieLink struct {
	Href string `json:"href"`
	Type string `json:"type"`
}

type MollieLinks struct {
	Checkout *MollieLink `json:"checkout,omitempty"`
	Self     *MollieLink `json:"self,omitempty"`
}

type MolliePaymentMetadata struct {
	OrderID string `json:"order_id"`
	UserID  string `json:"user_id"`
}

type MolliePayment struct {
	ID             string                `json:"id"`
	Status         string                `json:"status"` // open, pending, paid, failed, canceled, expired
	Amount         MollieAmount          `json:"amount"`
	AmountRefunded *MollieAmount         `json:"amountRefunded,omitempty"`
	Description    string                `json:"description"`
	Metadata       MolliePaymentMetadata `json:"metadata"`
	RedirectURL    string                `json:"redirectUrl"`
	WebhookURL     string                `json:"webhookUrl"`
	PaidAt         string                `json:"paidAt,omitempty"`
	Links          MollieLinks           `json:"_links"`
}

type MollieRefund struct {
	ID        string       `json:"id"`
	Status    string       `json:"status"`
	Amount    MollieAmount `json:"amount"`
	PaymentID string       `json:"paymentId"`
}
