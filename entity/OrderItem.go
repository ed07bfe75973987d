package entity

import (
	"gorm.io/gorm"
)

// OrderItem snapshots the name and price charged at checkout time, so old
// receipts stay correct when the catalog changes later.
type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"`

	ItemName  string  `json:"itemName"`
	ItemPrice float64 `json:"itemPrice"`
}
