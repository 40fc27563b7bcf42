package auth

import (
	"context"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service := NewService(NewMemoryRepository())
	ctx := context.Background()

	admin, err := service.Register(ctx, "mario", "secret123", RoleRestaurantAdmin, "r1")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if admin.ID == "" {
		t.Error("expected an id to be assigned")
	}
	if admin.Password == "secret123" {
		t.Error("password must be stored hashed")
	}

	logged, token, err := service.Login(ctx, "mario", "secret123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Error("expected a token")
	}
	if logged.RestaurantID != "r1" {
		t.Errorf("expected restaurant r1, got %q", logged.RestaurantID)
	}

	userID, username, role, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("token validation failed: %v", err)
	}
	if userID != admin.ID || username != "mario" || role != RoleRestaurantAdmin {
		t.Errorf("unexpected claims: %s %s %s", userID, username, role)
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	service := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "mario", "secret123", RoleRestaurantAdmin, "r1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := service.Register(ctx, "mario", "other", RoleRestaurantAdmin, "r2"); err == nil {
		t.Error("expected duplicate username to fail")
	}
}

func TestRegisterValidation(t *testing.T) {
	service := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "", "pw", RoleRestaurantAdmin, "r1"); err == nil {
		t.Error("expected missing username to fail")
	}
	if _, err := service.Register(ctx, "luigi", "pw", "KITCHEN", ""); err == nil {
		t.Error("expected unknown role to fail")
	}
	if _, err := service.Register(ctx, "luigi", "pw", RoleRestaurantAdmin, ""); err == nil {
		t.Error("expected restaurant admin without restaurant to fail")
	}
	if _, err := service.Register(ctx, "root", "pw", RoleSuperAdmin, ""); err != nil {
		t.Errorf("super admin needs no restaurant, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	service := NewService(NewMemoryRepository())
	ctx := context.Background()

	if _, err := service.Register(ctx, "mario", "secret123", RoleRestaurantAdmin, "r1"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := service.Login(ctx, "mario", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := service.Login(ctx, "ghost", "secret123"); err != ErrInvalidCredentials {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
