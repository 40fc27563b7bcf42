package category

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

func (r *PostgresRepository) Create(ctx context.Context, category *Category) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO categories (id, name, image, image_key, restaurant_id, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		category.ID,
		category.Name,
		category.Image,
		category.ImageKey,
		category.RestaurantID,
		category.Order,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Category, error) {
	var cat Category
	err := r.db.QueryRow(ctx, `
		SELECT id, name, image, image_key, restaurant_id, sort_order, created_at
		FROM categories
		WHERE id = $1
	`, id).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Image,
		&cat.ImageKey,
		&cat.RestaurantID,
		&cat.Order,
		&cat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cat, nil
}

// List returns every category in insertion order; scoping and display
// ordering happen in the menu engine.
func (r *PostgresRepository) List(ctx context.Context) ([]Category, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, image, image_key, restaurant_id, sort_order, created_at
		FROM categories
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		var cat Category
		if err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.Image,
			&cat.ImageKey,
			&cat.RestaurantID,
			&cat.Order,
			&cat.CreatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) CountByRestaurant(ctx context.Context, restaurantID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM categories WHERE restaurant_id = $1
	`, restaurantID).Scan(&count)
	return count, err
}

func (r *PostgresRepository) Update(ctx context.Context, category *Category) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE categories
		SET name = $2, image = $3, image_key = $4, sort_order = $5
		WHERE id = $1
	`,
		category.ID,
		category.Name,
		category.Image,
		category.ImageKey,
		category.Order,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
