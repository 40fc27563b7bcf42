package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Service struct {
	repo AdminRepository
}

func NewService(repo AdminRepository) *Service {
	return &Service{repo: repo}
}

// REGISTER
func (s *Service) Register(
	ctx context.Context,
	username, password, role, restaurantID string,
) (*Admin, error) {

	if username == "" || password == "" {
		return nil, errors.New("missing required fields")
	}
	if role != RoleSuperAdmin && role != RoleRestaurantAdmin {
		return nil, errors.New("unknown role")
	}
	if role == RoleRestaurantAdmin && restaurantID == "" {
		return nil, errors.New("restaurant admin needs a restaurant")
	}

	exists, _ := s.repo.ExistsByUsername(ctx, username)
	if exists {
		return nil, errors.New("username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           uuid.New().String(),
		Username:     username,
		Password:     string(hashedPassword),
		Role:         role,
		RestaurantID: restaurantID,
	}

	if err := s.repo.Save(ctx, admin); err != nil {
		return nil, err
	}

	return admin, nil
}

// LOGIN
func (s *Service) Login(ctx context.Context, username, password string) (*Admin, string, error) {
	admin, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	err = bcrypt.CompareHashAndPassword(
		[]byte(admin.Password),
		[]byte(password),
	)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := GenerateToken(admin.ID, admin.Username, admin.Role)
	if err != nil {
		return nil, "", err
	}

	return admin, token, nil
}

func (s *Service) List(ctx context.Context) ([]Admin, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
