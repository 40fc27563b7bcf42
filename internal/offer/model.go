package offer

import "time"

// Offer is a time-bounded promotion. It renders on the public menu only
// while Active and strictly before ValidUntil; the cutoff itself counts
// as expired.
type Offer struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Discount     float64   `json:"discount"`
	Tags         []string  `json:"tags"`
	RestaurantID string    `json:"restaurant_id"`
	ValidUntil   time.Time `json:"valid_until"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}
