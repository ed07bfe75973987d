package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"github.com/ArrowAk07/Green-Chilli/repository"
)

type ReviewService struct {
	Repo *repository.ReviewRepository
	Cat  *repository.CatalogRepository
}

func NewReviewService(repo *repository.ReviewRepository, cat *repository.CatalogRepository) *ReviewService {
	return &ReviewService{Repo: repo, Cat: cat}
}

type CreateReviewIn struct {
	FoodID  uint   `json:"foodId" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

func (s *ReviewService) Create(customerName string, in *CreateReviewIn) (*entity.Review, error) {
	if strings.TrimSpace(customerName) == "" {
		return nil, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	// เมนูต้องมีอยู่จริงก่อนรับรีวิว
	if _, err := s.Cat.FindByID(in.FoodID); err != nil {
		return nil, err
	}

	rev := &entity.Review{
		FoodItemID:   in.FoodID,
		CustomerName: strings.TrimSpace(customerName),
		Rating:       in.Rating,
		Comment:      in.Comment,
		ReviewDate:   time.Now(),
	}
	if err := s.Repo.Create(rev); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *ReviewService) ListForItem(foodID uint, limit, offset int) ([]entity.Review, error) {
	return s.Repo.ListForItem(foodID, limit, offset)
}

func (s *ReviewService) ListRecent(limit int) ([]repository.ReviewWithItem, error) {
	return s.Repo.ListRecent(limit)
}
