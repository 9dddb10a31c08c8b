package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// A Pending order doubles as the user's active cart.
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing" // checkout done, awaiting fulfilment
)

type Order struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint            `gorm:"index;not null" json:"user_id"`
	FullName  string          `gorm:"size:50;not null" json:"full_name"`
	Email     string          `gorm:"size:254;not null" json:"email"`
	TotalPaid decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_paid"`
	Status    OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	Items     []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index" json:"order_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `gorm:"default:1" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"` // snapshot at add-time
}
