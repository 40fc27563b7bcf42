package restaurant

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

func (r *PostgresRepository) Create(ctx context.Context, restaurant *Restaurant) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurants (id, name, address, contact, logo, logo_key, admin_id, theme)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Contact,
		restaurant.Logo,
		restaurant.LogoKey,
		restaurant.AdminID,
		restaurant.Theme,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Restaurant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, address, contact, logo, logo_key, admin_id, theme, created_at
		FROM restaurants
		WHERE id = $1
	`, id)

	return scanRestaurant(row)
}

func (r *PostgresRepository) GetByAdmin(ctx context.Context, adminID string) (*Restaurant, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, address, contact, logo, logo_key, admin_id, theme, created_at
		FROM restaurants
		WHERE admin_id = $1
	`, adminID)

	return scanRestaurant(row)
}

func (r *PostgresRepository) List(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, address, contact, logo, logo_key, admin_id, theme, created_at
		FROM restaurants
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := []Restaurant{}
	for rows.Next() {
		var rest Restaurant
		if err := rows.Scan(
			&rest.ID,
			&rest.Name,
			&rest.Address,
			&rest.Contact,
			&rest.Logo,
			&rest.LogoKey,
			&rest.AdminID,
			&rest.Theme,
			&rest.CreatedAt,
		); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, restaurant *Restaurant) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE restaurants
		SET name = $2, address = $3, contact = $4, logo = $5, logo_key = $6, theme = $7
		WHERE id = $1
	`,
		restaurant.ID,
		restaurant.Name,
		restaurant.Address,
		restaurant.Contact,
		restaurant.Logo,
		restaurant.LogoKey,
		restaurant.Theme,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	var rest Restaurant
	err := row.Scan(
		&rest.ID,
		&rest.Name,
		&rest.Address,
		&rest.Contact,
		&rest.Logo,
		&rest.LogoKey,
		&rest.AdminID,
		&rest.Theme,
		&rest.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rest, nil
}
