package category

import "time"

// Category groups products on the menu. Order drives the ascending display
// sort; ties keep insertion order. Image is nil when none was uploaded.
type Category struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Image        *string   `json:"image,omitempty"`
	ImageKey     *string   `json:"-"`
	RestaurantID string    `json:"restaurant_id"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
}
