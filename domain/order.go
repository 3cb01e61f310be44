package domain

import "time"

// Order statuses an admin may move an order to after creation.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
	StatusRefunded   = "Refunded"
	StatusCancelled  = "Cancelled"
)

var validStatuses = map[string]bool{
	StatusPending:    true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusDelivered:  true,
	StatusRefunded:   true,
	StatusCancelled:  true,
}

func IsValidStatus(status string) bool {
	return validStatuses[status]
}

type CustomerInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
}

type Address struct {
	Street  string `json:"street"`
	Apt     string `json:"apt,omitempty"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

type PaymentInfo struct {
	Method      string `json:"method"`
	NameOnCard  string `json:"nameOnCard,omitempty"`
	CardNumber  string `json:"cardNumber,omitempty"`
	Expiry      string `json:"expiry,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	UPIID       string `json:"upiId,omitempty"`
	PayPalEmail string `json:"paypalEmail,omitempty"`
}

// OrderItem is a snapshot of a cart line at checkout time, not a live
// reference into the catalog.
type OrderItem struct {
	ProductID uint64  `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Color     string  `json:"color,omitempty"`
	Image     string  `json:"image,omitempty"`
}

type Totals struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Taxes        float64 `json:"taxes"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`
}

// Order is immutable after creation except for Status and UpdatedAt.
type Order struct {
	ID              string       `gorm:"primaryKey;type:uuid" json:"id"`
	CustomerInfo    CustomerInfo `gorm:"column:customer_info;type:jsonb;serializer:json" json:"customerInfo"`
	ShippingAddress Address      `gorm:"column:shipping_address;type:jsonb;serializer:json" json:"shippingAddress"`
	BillingAddress  Address      `gorm:"column:billing_address;type:jsonb;serializer:json" json:"billingAddress"`
	Items           []OrderItem  `gorm:"column:items;type:jsonb;serializer:json" json:"items"`
	ShippingMethod  string       `gorm:"column:shipping_method" json:"shippingMethod"`
	PaymentInfo     PaymentInfo  `gorm:"column:payment_info;type:jsonb;serializer:json" json:"paymentInfo"`
	PromoCode       string       `gorm:"column:promo_code" json:"promoCode"`
	Totals          Totals       `gorm:"column:totals;type:jsonb;serializer:json" json:"totals"`
	Status          string       `gorm:"column:status" json:"status"`
	CreatedAt       time.Time    `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time    `gorm:"column:updated_at" json:"updatedAt"`
}

func (Order) TableName() string {
	return "orders"
}
