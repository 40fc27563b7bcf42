package offer

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("offer not found")

type Repository interface {
	Create(ctx context.Context, offer *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	List(ctx context.Context) ([]Offer, error)
	Update(ctx context.Context, offer *Offer) error
	Delete(ctx context.Context, id string) error
}
