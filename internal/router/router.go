package router

import (
	"time"

	"menumaster/internal/auth"
	"menumaster/internal/category"
	"menumaster/internal/menu"
	"menumaster/internal/middleware"
	"menumaster/internal/offer"
	"menumaster/internal/product"
	"menumaster/internal/restaurant"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Auth       *auth.Handler
	Restaurant *restaurant.Handler
	Category   *category.Handler
	Product    *product.Handler
	Offer      *offer.Handler
	Menu       *menu.Handler
}

func NewRouter(h Handlers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ---------------------------------
	// Public customer-facing routes
	// ---------------------------------
	r.GET("/menu/:restaurantId", h.Menu.GetMenu)
	r.GET("/themes", h.Menu.ListThemes)
	r.GET("/restaurants/:id", h.Restaurant.Get)

	r.POST("/auth/login", h.Auth.Login)

	// ---------------------------------
	// Operator routes (restaurant admin or super admin)
	// ---------------------------------
	operator := r.Group("/")
	operator.Use(middleware.AuthMiddleware())
	operator.Use(middleware.RequireRole(auth.RoleRestaurantAdmin, auth.RoleSuperAdmin))
	{
		operator.GET("/my/restaurant", h.Restaurant.GetMine)
		operator.PUT("/restaurants/:id", h.Restaurant.Update)
		operator.POST("/restaurants/:id/logo", h.Restaurant.UploadLogo)

		operator.GET("/categories", h.Category.List)
		operator.POST("/categories", h.Category.Create)
		operator.PUT("/categories/:id", h.Category.Update)
		operator.DELETE("/categories/:id", h.Category.Delete)

		operator.GET("/products", h.Product.List)
		operator.POST("/products", h.Product.Create)
		operator.PUT("/products/:id", h.Product.Update)
		operator.DELETE("/products/:id", h.Product.Delete)

		operator.GET("/offers", h.Offer.List)
		operator.POST("/offers", h.Offer.Create)
		operator.PUT("/offers/:id", h.Offer.Update)
		operator.DELETE("/offers/:id", h.Offer.Delete)
	}

	// ---------------------------------
	// Super admin routes
	// ---------------------------------
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.RequireRole(auth.RoleSuperAdmin))
	{
		admin.GET("/restaurants", h.Restaurant.List)
		admin.POST("/restaurants", h.Restaurant.Create)
		admin.DELETE("/restaurants/:id", h.Restaurant.Delete)

		admin.GET("/restaurant-admins", h.Auth.List)
		admin.POST("/restaurant-admins", h.Auth.Register)
		admin.DELETE("/restaurant-admins/:id", h.Auth.Delete)
	}

	return r
}
