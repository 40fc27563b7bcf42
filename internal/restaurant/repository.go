package restaurant

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("restaurant not found")

type Repository interface {
	Create(ctx context.Context, restaurant *Restaurant) error
	GetByID(ctx context.Context, id string) (*Restaurant, error)
	GetByAdmin(ctx context.Context, adminID string) (*Restaurant, error)
	List(ctx context.Context) ([]Restaurant, error)
	Update(ctx context.Context, restaurant *Restaurant) error
	Delete(ctx context.Context, id string) error
}
