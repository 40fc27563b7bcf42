package auth

import "time"

// Roles carried in JWT claims and checked by the role middleware.
const (
	RoleSuperAdmin      = "SUPER_ADMIN"
	RoleRestaurantAdmin = "RESTAURANT_ADMIN"
)

// Admin is an operator account. RestaurantID is empty for super admins.
type Admin struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	RestaurantID string    `json:"restaurant_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
