package offer

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

func (r *PostgresRepository) Create(ctx context.Context, offer *Offer) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO offers (id, title, description, discount, tags, restaurant_id, valid_until, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Discount,
		offer.Tags,
		offer.RestaurantID,
		offer.ValidUntil,
		offer.Active,
	)
	return err
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Offer, error) {
	var o Offer
	err := r.db.QueryRow(ctx, `
		SELECT id, title, description, discount, tags, restaurant_id, valid_until, active, created_at
		FROM offers
		WHERE id = $1
	`, id).Scan(
		&o.ID,
		&o.Title,
		&o.Description,
		&o.Discount,
		&o.Tags,
		&o.RestaurantID,
		&o.ValidUntil,
		&o.Active,
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &o, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, description, discount, tags, restaurant_id, valid_until, active, created_at
		FROM offers
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []Offer{}
	for rows.Next() {
		var o Offer
		if err := rows.Scan(
			&o.ID,
			&o.Title,
			&o.Description,
			&o.Discount,
			&o.Tags,
			&o.RestaurantID,
			&o.ValidUntil,
			&o.Active,
			&o.CreatedAt,
		); err != nil {
			return nil, err
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (r *PostgresRepository) Update(ctx context.Context, offer *Offer) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE offers
		SET title = $2, description = $3, discount = $4, tags = $5, valid_until = $6, active = $7
		WHERE id = $1
	`,
		offer.ID,
		offer.Title,
		offer.Description,
		offer.Discount,
		offer.Tags,
		offer.ValidUntil,
		offer.Active,
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
	tag, err := r.db.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
