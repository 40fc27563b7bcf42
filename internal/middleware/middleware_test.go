package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"menumaster/internal/auth"

	"github.com/gin-gonic/gin"
)

func protectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	group := r.Group("/")
	group.Use(AuthMiddleware())
	if len(roles) > 0 {
		group.Use(RequireRole(roles...))
	}
	group.GET("/secure", func(c *gin.Context) {
		c.JSON(200, gin.H{"userID": c.GetString("userID")})
	})
	return r
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareBadFormat(t *testing.T) {
	r := protectedRouter()

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken("u1", "mario", auth.RoleRestaurantAdmin)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := protectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRequireRoleForbidden(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken("u1", "mario", auth.RoleRestaurantAdmin)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := protectedRouter(auth.RoleSuperAdmin)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", w.Code)
	}
}

func TestRequireRoleAllowsListedRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.GenerateToken("u1", "root", auth.RoleSuperAdmin)
	if err != nil {
		t.Fatalf("token generation failed: %v", err)
	}

	r := protectedRouter(auth.RoleRestaurantAdmin, auth.RoleSuperAdmin)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
