package db

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("Connected to PostgreSQL")

	// Initialize schema
	if err := initSchema(db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// initSchema creates the database schema
func initSchema(db *pgxpool.Pool) error {
	ctx := context.Background()

	// -------------------------------
	// RESTAURANT ADMINS
	// -------------------------------
	adminsSQL := `
		CREATE TABLE IF NOT EXISTS restaurant_admins (
			id UUID PRIMARY KEY,
			username VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'RESTAURANT_ADMIN',
			restaurant_id UUID NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, adminsSQL); err != nil {
		return err
	}

	// -------------------------------
	// RESTAURANTS
	// -------------------------------
	restaurantsSQL := `
		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			address TEXT NOT NULL,
			contact VARCHAR(255) NOT NULL,
			logo VARCHAR(500) NULL,
			logo_key VARCHAR(500) NULL,
			admin_id UUID NOT NULL,
			theme VARCHAR(50) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.Exec(ctx, restaurantsSQL); err != nil {
		return err
	}

	// -------------------------------
	// CATEGORIES
	// -------------------------------
	// sort_order drives the public menu ordering; ties keep insertion order.
	categoriesSQL := `
		CREATE TABLE IF NOT EXISTS categories (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			image VARCHAR(500) NULL,
			image_key VARCHAR(500) NULL,
			restaurant_id UUID NOT NULL,
			sort_order INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
		)
	`
	if _, err := db.Exec(ctx, categoriesSQL); err != nil {
		return err
	}

	// -------------------------------
	// PRODUCTS
	// -------------------------------
	// category_id is intentionally not a foreign key: deleting a category
	// orphans its products, and the menu engine hides orphans instead of
	// failing.
	productsSQL := `
		CREATE TABLE IF NOT EXISTS products (
			id UUID PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			price NUMERIC(10, 2) NOT NULL CHECK (price >= 0),
			image VARCHAR(500) NULL,
			image_key VARCHAR(500) NULL,
			category_id UUID NOT NULL,
			restaurant_id UUID NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
		)
	`
	if _, err := db.Exec(ctx, productsSQL); err != nil {
		return err
	}

	// -------------------------------
	// OFFERS
	// -------------------------------
	offersSQL := `
		CREATE TABLE IF NOT EXISTS offers (
			id UUID PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			discount NUMERIC(5, 2) NOT NULL DEFAULT 0,
			tags TEXT[] NOT NULL DEFAULT '{}',
			restaurant_id UUID NOT NULL,
			valid_until TIMESTAMPTZ NOT NULL,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (restaurant_id) REFERENCES restaurants(id) ON DELETE CASCADE
		)
	`
	if _, err := db.Exec(ctx, offersSQL); err != nil {
		return err
	}

	log.Println("Schema initialized successfully")
	return nil
}
