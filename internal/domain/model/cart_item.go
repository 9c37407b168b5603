package model

import "time"

// CartItem is one line of a cart.
// price_at_time is fixed when the item is added and never recalculated.
type CartItem struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID      int64     `gorm:"not null;index" json:"cart_id"`
	ProductID   int64     `gorm:"not null;index" json:"product_id"`
	Quantity    int64     `gorm:"not null" json:"quantity"`
	PriceAtTime int64     `gorm:"not null;column:price_at_time" json:"price_at_time"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
