package repository

import (
	"github.com/ArrowAk07/Green-Chilli/entity"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{DB: db}
}

// ListWithRatings returns every food item with its review average attached,
// ordered by name ascending. One aggregating query; reviews themselves are
// fetched separately per item.
func (r *CatalogRepository) ListWithRatings() ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Model(&entity.FoodItem{}).
		Select("food_items.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.food_id = food_items.id AND reviews.deleted_at IS NULL").
		Group("food_items.id").
		Order("food_items.name ASC").
		Find(&items).Error
	return items, err
}

// ListSpecials: discounted or flagged items, for the offers screen.
func (r *CatalogRepository) ListSpecials() ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Model(&entity.FoodItem{}).
		Select("food_items.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.food_id = food_items.id AND reviews.deleted_at IS NULL").
		Where("food_items.discount_percentage > 0 OR food_items.is_special = ?", true).
		Group("food_items.id").
		Order("food_items.name ASC").
		Find(&items).Error
	return items, err
}

func (r *CatalogRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := r.DB.Model(&entity.FoodItem{}).
		Select("food_items.*, COALESCE(AVG(reviews.rating), 0) AS avg_rating").
		Joins("LEFT JOIN reviews ON reviews.food_id = food_items.id AND reviews.deleted_at IS NULL").
		Where("food_items.id = ?", id).
		Group("food_items.id").
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) Create(item *entity.FoodItem) error {
	return r.DB.Create(item).Error
}

func (r *CatalogRepository) Update(item *entity.FoodItem) error {
	return r.DB.Save(item).Error
}

func (r *CatalogRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}
