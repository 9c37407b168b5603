package model

import "time"

type PaymentMethod string

const (
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCOD          PaymentMethod = "cod"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// Order is created at checkout. Customer fields are denormalized text,
// not foreign keys, so an order survives account changes untouched.
type Order struct {
	ID              int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber     string        `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	CustomerName    string        `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerEmail   string        `gorm:"type:varchar(255)" json:"customer_email"`
	CustomerPhone   string        `gorm:"type:varchar(30)" json:"customer_phone"`
	CustomerAddress string        `gorm:"type:text" json:"customer_address"`
	TotalAmount     int64         `gorm:"not null" json:"total_amount"`
	PaymentMethod   PaymentMethod `gorm:"type:varchar(20);not null" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:varchar(20);not null;index" json:"payment_status"`
	OrderStatus     OrderStatus   `gorm:"type:varchar(20);not null;index" json:"order_status"`
	CreatedAt       time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time     `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
