package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is the durable record of a completed checkout. Totals are stored
// already rounded to two decimals so the persisted values match the receipt.
type Order struct {
	gorm.Model
	OrderDate time.Time `json:"orderDate"`
	Subtotal  float64   `json:"subtotal"`
	Tax       float64   `json:"tax"`
	Total     float64   `json:"total"`

	OrderItems []OrderItem `json:"-"`
}
