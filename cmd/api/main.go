package main

import (
	"context"
	"log"
	"os"
	"time"

	"menumaster/internal/auth"
	"menumaster/internal/cache"
	"menumaster/internal/category"
	"menumaster/internal/db"
	"menumaster/internal/menu"
	"menumaster/internal/offer"
	"menumaster/internal/product"
	"menumaster/internal/restaurant"
	"menumaster/internal/router"
	"menumaster/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	ctx := context.Background()

	// ───────────────────────── INFRA ─────────────────────────
	pool := db.ConnectPostgres()
	defer pool.Close()

	r2, err := storage.NewR2Client(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	// Redis is optional: without REDIS_ADDR every menu load hits Postgres.
	var redisClient *cache.Client
	if os.Getenv("REDIS_ADDR") != "" {
		redisClient, err = cache.NewClient(5 * time.Minute)
		if err != nil {
			log.Fatalf("Failed to initialize Redis client: %v", err)
		}
		defer redisClient.Close()
	} else {
		log.Println("REDIS_ADDR not set, menu snapshot cache disabled")
	}

	// ───────────────────────── REPOSITORIES ─────────────────────────
	adminRepo := auth.NewPostgresRepository(pool)
	restaurantRepo := restaurant.NewPostgresRepository(pool)
	categoryRepo := category.NewPostgresRepository(pool)
	productRepo := product.NewPostgresRepository(pool)
	offerRepo := offer.NewPostgresRepository(pool)

	// ───────────────────────── SERVICES ─────────────────────────
	authService := auth.NewService(adminRepo)
	restaurantService := restaurant.NewService(restaurantRepo, r2, redisClient)
	categoryService := category.NewService(categoryRepo, r2, redisClient)
	productService := product.NewService(productRepo, r2, redisClient)
	offerService := offer.NewService(offerRepo, redisClient)

	var provider menu.SnapshotProvider = menu.NewRepositoryLoader(
		restaurantRepo,
		categoryRepo,
		productRepo,
		offerRepo,
	)
	if redisClient != nil {
		provider = cache.NewSnapshotProvider(provider, redisClient)
	}
	menuService := menu.NewService(provider, time.Now)

	// ───────────────────────── HTTP ─────────────────────────
	engine := router.NewRouter(router.Handlers{
		Auth:       auth.NewHandler(authService),
		Restaurant: restaurant.NewHandler(restaurantService),
		Category:   category.NewHandler(categoryService),
		Product:    product.NewHandler(productService),
		Offer:      offer.NewHandler(offerService),
		Menu:       menu.NewHandler(menuService),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting server on :%s", port)
	if err := engine.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
