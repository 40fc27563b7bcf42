package offer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Invalidator interface {
	InvalidateMenu(ctx context.Context, restaurantID string)
}

type Service struct {
	repo  Repository
	cache Invalidator
}

func NewService(repo Repository, cache Invalidator) *Service {
	return &Service{repo: repo, cache: cache}
}

func (s *Service) invalidate(ctx context.Context, restaurantID string) {
	if s.cache != nil {
		s.cache.InvalidateMenu(ctx, restaurantID)
	}
}

// --------------------------------------------------
// Create offer
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	title, description string,
	discount float64,
	tags []string,
	restaurantID string,
	validUntil time.Time,
	active bool,
) (*Offer, error) {

	if title == "" || restaurantID == "" {
		return nil, errors.New("missing required fields")
	}
	if validUntil.IsZero() {
		return nil, errors.New("valid_until is required")
	}

	if tags == nil {
		tags = []string{}
	}

	o := &Offer{
		ID:           uuid.New().String(),
		Title:        title,
		Description:  description,
		Discount:     discount,
		Tags:         tags,
		RestaurantID: restaurantID,
		ValidUntil:   validUntil,
		Active:       active,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.invalidate(ctx, restaurantID)
	return o, nil
}

// --------------------------------------------------
// Update offer
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	id, title, description string,
	discount *float64,
	tags []string,
	validUntil *time.Time,
	active *bool,
) (*Offer, error) {

	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != "" {
		o.Title = title
	}
	if description != "" {
		o.Description = description
	}
	if discount != nil {
		o.Discount = *discount
	}
	if tags != nil {
		o.Tags = tags
	}
	if validUntil != nil {
		o.ValidUntil = *validUntil
	}
	if active != nil {
		o.Active = *active
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}

	s.invalidate(ctx, o.RestaurantID)
	return o, nil
}

// --------------------------------------------------
// Read / delete
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Offer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Offer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, o.RestaurantID)
	return nil
}
