package menu

import (
	"time"

	"menumaster/internal/offer"
)

// OfferVisible reports whether an offer should currently render. The cutoff
// is strict: an offer evaluated exactly at ValidUntil is already expired.
func OfferVisible(o offer.Offer, now time.Time) bool {
	return o.Active && o.ValidUntil.After(now)
}

// VisibleOffers narrows offers to one restaurant's currently visible ones,
// keeping fetch order.
func VisibleOffers(offers []offer.Offer, restaurantID string, now time.Time) []offer.Offer {
	visible := []offer.Offer{}
	for _, o := range offers {
		if o.RestaurantID == restaurantID && OfferVisible(o, now) {
			visible = append(visible, o)
		}
	}
	return visible
}
