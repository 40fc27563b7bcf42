package restaurant

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

// Invalidator drops any cached public menu snapshot after a mutation.
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
// Create restaurant
// --------------------------------------------------
func (s *Service) Create(
	ctx context.Context,
	name, address, contact, theme, adminID string,
) (*Restaurant, error) {

	if name == "" || address == "" || contact == "" {
		return nil, errors.New("missing required fields")
	}

	restaurant := &Restaurant{
		ID:      uuid.New().String(),
		Name:    name,
		Address: address,
		Contact: contact,
		Theme:   theme,
		AdminID: adminID,
	}

	if err := s.repo.Create(ctx, restaurant); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// --------------------------------------------------
// Read
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Restaurant, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetMine(ctx context.Context, adminID string) (*Restaurant, error) {
	return s.repo.GetByAdmin(ctx, adminID)
}

func (s *Service) List(ctx context.Context) ([]Restaurant, error) {
	return s.repo.List(ctx)
}

// --------------------------------------------------
// Update profile (name, address, contact, theme)
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	id, name, address, contact, theme string,
) (*Restaurant, error) {

	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		restaurant.Name = name
	}
	if address != "" {
		restaurant.Address = address
	}
	if contact != "" {
		restaurant.Contact = contact
	}
	if theme != "" {
		restaurant.Theme = theme
	}

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	s.invalidate(ctx, restaurant.ID)
	return restaurant, nil
}

// --------------------------------------------------
// Upload logo (replaces any previous one)
// --------------------------------------------------
func (s *Service) UploadLogo(
	ctx context.Context,
	id string,
	file multipart.File,
	filename string,
) (*Restaurant, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return nil, errors.New("invalid file")
	}

	restaurant, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("logos/%s/%s%s", id, uuid.New().String(), ext)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return nil, err
	}

	restaurant.Logo = &url
	restaurant.LogoKey = &key

	if err := s.repo.Update(ctx, restaurant); err != nil {
		return nil, err
	}

	s.invalidate(ctx, restaurant.ID)
	return restaurant, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}
