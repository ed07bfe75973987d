package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	// Price is the selling price; always derived from OriginalPrice and
	// DiscountPercentage, never stored independently.
	Price              float64 `json:"price"`
	OriginalPrice      float64 `json:"originalPrice"`
	DiscountPercentage float64 `json:"discountPercentage"`

	Category  string `json:"category"`
	ImagePath string `json:"imagePath"`
	IsSpecial bool   `json:"isSpecial"`

	// filled by the catalog query (AVG over reviews), not a real column
	AvgRating float64 `gorm:"->;-:migration" json:"avgRating"`

	Reviews    []Review    `gorm:"foreignKey:FoodItemID" json:"reviews,omitempty"`
	OrderItems []OrderItem `gorm:"foreignKey:FoodItemID" json:"-"`
}
