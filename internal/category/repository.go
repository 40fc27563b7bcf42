package category

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("category not found")

type Repository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id string) (*Category, error)
	List(ctx context.Context) ([]Category, error)
	CountByRestaurant(ctx context.Context, restaurantID string) (int, error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id string) error
}
