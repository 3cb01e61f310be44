package domain

import (
	"time"
)

// Product is a catalog entry. The checkout flow only ever reads it.
type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"column:title;type:text" json:"title"`
	Category    string    `gorm:"column:category;type:text" json:"category"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Image       string    `gorm:"column:image;type:text" json:"image"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Product) TableName() string {
	return "products"
}
