package menu

import (
	"context"

	"menumaster/internal/category"
	"menumaster/internal/offer"
	"menumaster/internal/product"
	"menumaster/internal/restaurant"
)

// The engine consumes four read collections; these narrow interfaces are
// satisfied by the entity repositories.
type restaurantReader interface {
	GetByID(ctx context.Context, id string) (*restaurant.Restaurant, error)
}

type categoryReader interface {
	List(ctx context.Context) ([]category.Category, error)
}

type productReader interface {
	List(ctx context.Context) ([]product.Product, error)
}

type offerReader interface {
	List(ctx context.Context) ([]offer.Offer, error)
}

// RepositoryLoader builds snapshots straight from the persistence
// collaborator. The collections come back unordered and unscoped; the
// session projects them.
type RepositoryLoader struct {
	restaurants restaurantReader
	categories  categoryReader
	products    productReader
	offers      offerReader
}

func NewRepositoryLoader(
	restaurants restaurantReader,
	categories categoryReader,
	products productReader,
	offers offerReader,
) *RepositoryLoader {
	return &RepositoryLoader{
		restaurants: restaurants,
		categories:  categories,
		products:    products,
		offers:      offers,
	}
}

func (l *RepositoryLoader) LoadSnapshot(ctx context.Context, restaurantID string) (*Snapshot, error) {
	rest, err := l.restaurants.GetByID(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	categories, err := l.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	products, err := l.products.List(ctx)
	if err != nil {
		return nil, err
	}

	offers, err := l.offers.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Restaurant: rest,
		Categories: categories,
		Products:   products,
		Offers:     offers,
	}, nil
}
