package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, product *Product) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO products
			(id, name, description, price, image, image_key, category_id, restaurant_id, available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Image,
		product.ImageKey,
		product.CategoryID,
		product.RestaurantID,
		product.Available,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Product, error) {
	var p Product
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price, image, image_key,
		       category_id, restaurant_id, available, created_at
		FROM products
		WHERE id = $1
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Image,
		&p.ImageKey,
		&p.CategoryID,
		&p.RestaurantID,
		&p.Available,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns every product in insertion order; the engine keeps that order
// when grouping per category.
func (r *PostgresRepository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price, image, image_key,
		       category_id, restaurant_id, available, created_at
		FROM products
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Description,
			&p.Price,
			&p.Image,
			&p.ImageKey,
			&p.CategoryID,
			&p.RestaurantID,
			&p.Available,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, product *Product) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE products
		SET name = $2, description = $3, price = $4, image = $5, image_key = $6,
		    category_id = $7, available = $8
		WHERE id = $1
	`,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Image,
		product.ImageKey,
		product.CategoryID,
		product.Available,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
