package product

import "time"

// Product is a single menu item. Unavailable products never render on the
// public menu regardless of any search query.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
	Image        *string   `json:"image,omitempty"`
	ImageKey     *string   `json:"-"`
	CategoryID   string    `json:"category_id"`
	RestaurantID string    `json:"restaurant_id"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}
