package product

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

type Invalidator interface {
	InvalidateMenu(ctx context.Context, restaurantID string)
}

type Service struct {
	repo    Repository
	storage Storage
	cache   Invalidator
}

func NewService(repo Repository, storage Storage, cache Invalidator) *Service {
	return &Service{repo: repo, storage: storage, cache: cache}
}

func (s *Service) invalidate(ctx context.Context, restaurantID string) {
	if s.cache != nil {
		s.cache.InvalidateMenu(ctx, restaurantID)
	}
}

// --------------------------------------------------
// Create product
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name, description string,
	price float64,
	categoryID, restaurantID string,
	available bool,
	image multipart.File,
	filename string,
) (*Product, error) {

	if name == "" || categoryID == "" || restaurantID == "" {
		return nil, errors.New("missing required fields")
	}
	if price < 0 {
		return nil, errors.New("price must not be negative")
	}

	p := &Product{
		ID:           uuid.New().String(),
		Name:         name,
		Description:  description,
		Price:        price,
		CategoryID:   categoryID,
		RestaurantID: restaurantID,
		Available:    available,
	}

	if image != nil {
		url, key, err := s.uploadImage(ctx, restaurantID, image, filename)
		if err != nil {
			return nil, err
		}
		p.Image = &url
		p.ImageKey = &key
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, restaurantID)
	return p, nil
}

// --------------------------------------------------
// Update product
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	id, name, description string,
	price *float64,
	categoryID string,
	available *bool,
	image multipart.File,
	filename string,
) (*Product, error) {

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		p.Name = name
	}
	if description != "" {
		p.Description = description
	}
	if price != nil {
		if *price < 0 {
			return nil, errors.New("price must not be negative")
		}
		p.Price = *price
	}
	if categoryID != "" {
		p.CategoryID = categoryID
	}
	if available != nil {
		p.Available = *available
	}

	if image != nil {
		url, key, err := s.uploadImage(ctx, p.RestaurantID, image, filename)
		if err != nil {
			return nil, err
		}
		p.Image = &url
		p.ImageKey = &key
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.invalidate(ctx, p.RestaurantID)
	return p, nil
}

// --------------------------------------------------
// Read / delete
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, p.RestaurantID)
	return nil
}

func (s *Service) uploadImage(
	ctx context.Context,
	restaurantID string,
	file multipart.File,
	filename string,
) (url, key string, err error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return "", "", errors.New("invalid file")
	}

	key = fmt.Sprintf("products/%s/%s%s", restaurantID, uuid.New().String(), ext)

	url, err = s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}
