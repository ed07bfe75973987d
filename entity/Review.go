package entity

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	FoodItemID uint     `gorm:"column:food_id" json:"foodId"`
	FoodItem   FoodItem `gorm:"foreignKey:FoodItemID" json:"-"`

	CustomerName string    `json:"customerName"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	ReviewDate   time.Time `json:"reviewDate"`
}
