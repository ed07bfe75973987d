package repository

import (
	"github.com/ArrowAk07/Green-Chilli/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{DB: db}
}

func (r *ReviewRepository) Create(rev *entity.Review) error {
	return r.DB.Create(rev).Error
}

func (r *ReviewRepository) ListForItem(foodID uint, limit, offset int) ([]entity.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var out []entity.Review
	err := r.DB.Where("food_id = ?", foodID).
		Order("review_date DESC").
		Limit(limit).Offset(offset).
		Find(&out).Error
	return out, err
}

// ListRecent คืนรีวิวล่าสุดพร้อมชื่อเมนู
type ReviewWithItem struct {
	ID           uint   `json:"id"`
	FoodID       uint   `json:"foodId"`
	FoodName     string `json:"foodName"`
	CustomerName string `json:"customerName"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

func (r *ReviewRepository) ListRecent(limit int) ([]ReviewWithItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var out []ReviewWithItem
	err := r.DB.Table("reviews AS r").
		Select("r.id, r.food_id, f.name AS food_name, r.customer_name, r.rating, r.comment").
		Joins("JOIN food_items f ON f.id = r.food_id").
		Where("r.deleted_at IS NULL").
		Order("r.review_date DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}
