package services

import (
	"path/filepath"
	"testing"

	"github.com/ArrowAk07/Green-Chilli/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.FoodItem{},
		&entity.Review{},
		&entity.Order{}, &entity.OrderItem{},
	))
	return db
}

func foodItem(id uint, name string, price float64) *entity.FoodItem {
	return &entity.FoodItem{
		Model:         gorm.Model{ID: id},
		Name:          name,
		Price:         price,
		OriginalPrice: price,
	}
}
