package auth

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

func (r *PostgresRepository) Save(ctx context.Context, admin *Admin) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO restaurant_admins (id, username, password, role, restaurant_id)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''))
	`,
		admin.ID,
		admin.Username,
		admin.Password,
		admin.Role,
		admin.RestaurantID,
	)
	return err
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (*Admin, error) {
	var admin Admin
	var restaurantID *string

	err := r.db.QueryRow(ctx, `
		SELECT id, username, password, role, restaurant_id, created_at
		FROM restaurant_admins
		WHERE username = $1
	`, username).Scan(
		&admin.ID,
		&admin.Username,
		&admin.Password,
		&admin.Role,
		&restaurantID,
		&admin.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("admin not found")
		}
		return nil, err
	}

	if restaurantID != nil {
		admin.RestaurantID = *restaurantID
	}
	return &admin, nil
}

func (r *PostgresRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM restaurant_admins WHERE username = $1)
	`, username).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]Admin, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, username, password, role, restaurant_id, created_at
		FROM restaurant_admins
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admins := []Admin{}
	for rows.Next() {
		var admin Admin
		var restaurantID *string
		if err := rows.Scan(
			&admin.ID,
			&admin.Username,
			&admin.Password,
			&admin.Role,
			&restaurantID,
			&admin.CreatedAt,
		); err != nil {
			return nil, err
		}
		if restaurantID != nil {
			admin.RestaurantID = *restaurantID
		}
		admins = append(admins, admin)
	}
	return admins, rows.Err()
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM restaurant_admins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("admin not found")
	}
	return nil
}
