package routes

import (
	"github.com/ArrowAk07/Green-Chilli/configs"
	"github.com/ArrowAk07/Green-Chilli/controllers"
	"github.com/ArrowAk07/Green-Chilli/middlewares"
	"github.com/ArrowAk07/Green-Chilli/repository"
	"github.com/ArrowAk07/Green-Chilli/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	catalogSvc := services.NewCatalogService(catalogRepo, reviewRepo)
	reviewSvc := services.NewReviewService(reviewRepo, catalogRepo)
	checkoutSvc := services.NewCheckoutService(db, orderRepo)
	carts := services.NewCartStore()

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(catalogSvc)
	cartCtrl := controllers.NewCartController(carts, catalogSvc)
	checkoutCtrl := controllers.NewCheckoutController(carts, checkoutSvc, authSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc, authSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(), authCtrl.Me)

	// Menu + offers + reviews (public reads)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)
	r.GET("/menu/:id/reviews", reviewCtrl.ListForItem)
	r.GET("/offers", menuCtrl.Offers)
	r.GET("/reviews", reviewCtrl.ListRecent)

	// Cart + checkout + orders (ต้องล็อกอิน)
	u := r.Group("/", middlewares.AuthMiddleware())
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.DELETE("/cart/items/:index", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/checkout/preview", checkoutCtrl.Preview)
		u.POST("/checkout/confirm", checkoutCtrl.Confirm)
		u.GET("/orders/:id", checkoutCtrl.Detail)

		u.POST("/reviews", reviewCtrl.Create)
	}

	// Menu management (admin only)
	admin := r.Group("/menu", middlewares.AuthMiddleware("admin"))
	{
		admin.POST("", menuCtrl.Create)
		admin.PATCH("/:id", menuCtrl.Update)
		admin.DELETE("/:id", menuCtrl.Delete)
	}
}
