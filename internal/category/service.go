package category

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
// Create category
// --------------------------------------------------
// order <= 0 means "append": the new category sorts after the existing ones.
func (s *Service) Create(
	ctx context.Context,
	name, restaurantID string,
	order int,
	image multipart.File,
	filename string,
) (*Category, error) {

	if name == "" || restaurantID == "" {
		return nil, errors.New("missing required fields")
	}

	if order <= 0 {
		count, err := s.repo.CountByRestaurant(ctx, restaurantID)
		if err != nil {
			return nil, err
		}
		order = count + 1
	}

	cat := &Category{
		ID:           uuid.New().String(),
		Name:         name,
		RestaurantID: restaurantID,
		Order:        order,
	}

	if image != nil {
		url, key, err := s.uploadImage(ctx, restaurantID, image, filename)
		if err != nil {
			return nil, err
		}
		cat.Image = &url
		cat.ImageKey = &key
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	s.invalidate(ctx, restaurantID)
	return cat, nil
}

// --------------------------------------------------
// Update category
// --------------------------------------------------
func (s *Service) Update(
	ctx context.Context,
	id, name string,
	order int,
	image multipart.File,
	filename string,
) (*Category, error) {

	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		cat.Name = name
	}
	if order > 0 {
		cat.Order = order
	}

	if image != nil {
		url, key, err := s.uploadImage(ctx, cat.RestaurantID, image, filename)
		if err != nil {
			return nil, err
		}
		cat.Image = &url
		cat.ImageKey = &key
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	s.invalidate(ctx, cat.RestaurantID)
	return cat, nil
}

// --------------------------------------------------
// Read / delete
// --------------------------------------------------
func (s *Service) Get(ctx context.Context, id string) (*Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

// Delete removes the category only; its products become orphans and simply
// stop rendering (the engine excludes them, it never errors).
func (s *Service) Delete(ctx context.Context, id string) error {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, cat.RestaurantID)
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

	key = fmt.Sprintf("categories/%s/%s%s", restaurantID, uuid.New().String(), ext)

	url, err = s.storage.Upload(ctx, key, file)
	if err != nil {
		return "", "", err
	}
	return url, key, nil
}
