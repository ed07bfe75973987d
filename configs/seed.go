package configs

import (
	"log"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"golang.org/x/crypto/bcrypt"
)

// สร้าง admin ครั้งแรก
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed เมนูเริ่มต้นของร้าน
func SeedMenu() error {
	db := DB()

	items := []entity.FoodItem{
		{Name: "Paneer Tikka", Description: "Char-grilled cottage cheese with mint chutney",
			OriginalPrice: 250, DiscountPercentage: 20, Price: 200, Category: "Starters", IsSpecial: true},
		{Name: "Butter Chicken", Description: "Tandoori chicken simmered in tomato butter gravy",
			OriginalPrice: 320, DiscountPercentage: 25, Price: 240, Category: "Main Course", IsSpecial: true},
		{Name: "Dal Makhani", Description: "Black lentils slow-cooked overnight",
			OriginalPrice: 180, DiscountPercentage: 5, Price: 171, Category: "Main Course"},
		{Name: "Garlic Naan", Description: "Leavened bread with roasted garlic",
			OriginalPrice: 60, DiscountPercentage: 0, Price: 60, Category: "Breads"},
		{Name: "Masala Chai", Description: "Spiced milk tea",
			OriginalPrice: 40, DiscountPercentage: 0, Price: 40, Category: "Beverages"},
	}
	for _, it := range items {
		if err := db.Where(entity.FoodItem{Name: it.Name}).FirstOrCreate(&it).Error; err != nil {
			return err
		}
	}
	return nil
}
