package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryID  uint            `gorm:"index" json:"category_id"`
	Title       string          `gorm:"size:255;index;not null" json:"title"`
	Brand       string          `gorm:"size:255" json:"brand"`
	Description string          `gorm:"default:''" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`
	// No default tag: GORM omits zero-value fields carrying one from the
	// INSERT, so an explicit false would be stored as true. Writers set it.
	InStock   bool      `json:"in_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
