package domain

import "time"

// PromoCode maps a code to its discount amount. The storefront client
// still applies a flat discount for any non-empty code; the registry
// backs the admin coupon count.
type PromoCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Code      string    `gorm:"column:code;unique;not null" json:"code"`
	Discount  float64   `gorm:"column:discount;type:numeric" json:"discount"`
	Active    bool      `gorm:"column:active;default:true" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func (PromoCode) TableName() string {
	return "promo_codes"
}
