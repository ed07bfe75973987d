package services

import (
	"errors"
	"testing"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"github.com/ArrowAk07/Green-Chilli/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviews(t *testing.T) (*ReviewService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewReviewService(repository.NewReviewRepository(db), repository.NewCatalogRepository(db))
	return svc, db
}

func TestCreateReview(t *testing.T) {
	svc, db := newReviews(t)
	item := entity.FoodItem{Name: "Biryani", Price: 180, OriginalPrice: 180}
	require.NoError(t, db.Create(&item).Error)

	rev, err := svc.Create("Priya", &CreateReviewIn{FoodID: item.ID, Rating: 5, Comment: "excellent"})
	require.NoError(t, err)
	assert.NotZero(t, rev.ID)
	assert.False(t, rev.ReviewDate.IsZero())

	got, err := svc.ListForItem(item.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Priya", got[0].CustomerName)
	assert.Equal(t, 5, got[0].Rating)
}

func TestCreateReviewUnknownItem(t *testing.T) {
	svc, _ := newReviews(t)
	_, err := svc.Create("Priya", &CreateReviewIn{FoodID: 999, Rating: 4})
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCreateReviewRequiresCustomerName(t *testing.T) {
	svc, db := newReviews(t)
	item := entity.FoodItem{Name: "Biryani", Price: 180, OriginalPrice: 180}
	require.NoError(t, db.Create(&item).Error)

	_, err := svc.Create("  ", &CreateReviewIn{FoodID: item.ID, Rating: 4})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListRecentJoinsItemName(t *testing.T) {
	svc, db := newReviews(t)
	item := entity.FoodItem{Name: "Biryani", Price: 180, OriginalPrice: 180}
	require.NoError(t, db.Create(&item).Error)
	_, err := svc.Create("Priya", &CreateReviewIn{FoodID: item.ID, Rating: 4, Comment: "tasty"})
	require.NoError(t, err)

	out, err := svc.ListRecent(10)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Biryani", out[0].FoodName)
	assert.Equal(t, "Priya", out[0].CustomerName)
}
