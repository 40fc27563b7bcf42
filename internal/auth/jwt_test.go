package auth

import "testing"

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken("u1", "mario", RoleRestaurantAdmin); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}

func TestGenerateTokenRequiresUserID(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, err := GenerateToken("", "mario", RoleRestaurantAdmin); err == nil {
		t.Error("expected error for empty userID")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("expected garbage token to fail validation")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("u1", "mario", RoleSuperAdmin)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, _, _, err := ValidateToken(token); err == nil {
		t.Error("expected token signed with another secret to fail")
	}
}
