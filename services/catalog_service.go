package services

import (
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"github.com/ArrowAk07/Green-Chilli/repository"
)

type CatalogService struct {
	Repo *repository.CatalogRepository
	Rev  *repository.ReviewRepository

	// Discount picks the discount percentage for a newly created item.
	// Injectable so tests can pin it.
	Discount func() float64
}

func NewCatalogService(repo *repository.CatalogRepository, rev *repository.ReviewRepository) *CatalogService {
	return &CatalogService{
		Repo:     repo,
		Rev:      rev,
		Discount: randomDiscount,
	}
}

// randomDiscount: 5–25%, the house rule for new menu items.
func randomDiscount() float64 {
	return 5 + rand.Float64()*20
}

// LoadMenu returns the whole catalog, name-ascending, with review averages.
// Review texts are attached best-effort: a failure for one item logs a
// warning and leaves that item without reviews instead of aborting the load.
func (s *CatalogService) LoadMenu() ([]entity.FoodItem, error) {
	items, err := s.Repo.ListWithRatings()
	if err != nil {
		return nil, err
	}
	for i := range items {
		revs, err := s.Rev.ListForItem(items[i].ID, 100, 0)
		if err != nil {
			log.Printf("load reviews for item %d: %v", items[i].ID, err)
			continue
		}
		items[i].Reviews = revs
	}
	return items, nil
}

func (s *CatalogService) Get(id uint) (*entity.FoodItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	revs, err := s.Rev.ListForItem(item.ID, 100, 0)
	if err != nil {
		log.Printf("load reviews for item %d: %v", item.ID, err)
	} else {
		item.Reviews = revs
	}
	return item, nil
}

func (s *CatalogService) SpecialOffers() ([]entity.FoodItem, error) {
	return s.Repo.ListSpecials()
}

type CreateItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required"` // base price before discount
	Category    string  `json:"category"`
	ImagePath   string  `json:"imagePath"`
	IsSpecial   bool    `json:"isSpecial"`
}

// Create stores a new item. The base price goes to OriginalPrice, a discount
// is drawn from s.Discount, and the selling price is derived — one canonical
// direction, applied everywhere.
func (s *CatalogService) Create(in *CreateItemIn) (*entity.FoodItem, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrValidation)
	}
	if in.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
	}

	discount := s.Discount()
	item := &entity.FoodItem{
		Name:               strings.TrimSpace(in.Name),
		Description:        in.Description,
		OriginalPrice:      in.Price,
		DiscountPercentage: discount,
		Price:              DiscountedPrice(in.Price, discount),
		Category:           in.Category,
		ImagePath:          in.ImagePath,
		IsSpecial:          in.IsSpecial,
	}
	if err := s.Repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

type UpdateItemIn struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Price              *float64 `json:"price"` // base price
	DiscountPercentage *float64 `json:"discountPercentage"`
	Category           *string  `json:"category"`
	ImagePath          *string  `json:"imagePath"`
	IsSpecial          *bool    `json:"isSpecial"`
}

func (s *CatalogService) Update(id uint, in *UpdateItemIn) (*entity.FoodItem, error) {
	item, err := s.Repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrValidation)
		}
		item.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		item.Description = *in.Description
	}
	if in.Price != nil {
		if *in.Price <= 0 {
			return nil, fmt.Errorf("%w: price must be positive", ErrValidation)
		}
		item.OriginalPrice = *in.Price
	}
	if in.DiscountPercentage != nil {
		if *in.DiscountPercentage < 0 || *in.DiscountPercentage >= 100 {
			return nil, fmt.Errorf("%w: discount must be in [0,100)", ErrValidation)
		}
		item.DiscountPercentage = *in.DiscountPercentage
	}
	if in.Category != nil {
		item.Category = *in.Category
	}
	if in.ImagePath != nil {
		item.ImagePath = *in.ImagePath
	}
	if in.IsSpecial != nil {
		item.IsSpecial = *in.IsSpecial
	}

	// re-derive selling price whenever base or discount moved
	item.Price = DiscountedPrice(item.OriginalPrice, item.DiscountPercentage)

	if err := s.Repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) Delete(id uint) error {
	return s.Repo.Delete(id)
}

// DiscountedPrice derives the selling price from the stored base price.
func DiscountedPrice(base, discountPct float64) float64 {
	return round2(base * (1 - discountPct/100))
}
