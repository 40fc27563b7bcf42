package menu

import (
	"strings"

	"menumaster/internal/offer"
	"menumaster/internal/product"
	"menumaster/internal/restaurant"
)

// CategoryView is one expandable menu section.
type CategoryView struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Image     *string           `json:"image,omitempty"`
	ItemCount int               `json:"item_count"`
	Open      bool              `json:"open"`
	Products  []product.Product `json:"products"`
}

// View is the fully derived render model for one session state. It is
// recomputed from scratch on every query or toggle change.
type View struct {
	State        LoadState              `json:"state"`
	Restaurant   *restaurant.Restaurant `json:"restaurant,omitempty"`
	Theme        ThemeBundle            `json:"theme"`
	Query        string                 `json:"query,omitempty"`
	Offers       []offer.Offer          `json:"offers"`
	Categories   []CategoryView         `json:"categories"`
	EmptyMessage string                 `json:"empty_message,omitempty"`
}

// View assembles the current render model. Pure re-derivation: nothing is
// cached between calls.
func (s *Session) View() View {
	view := View{
		State:      s.state,
		Query:      s.query,
		Theme:      ResolveTheme(""),
		Offers:     []offer.Offer{},
		Categories: []CategoryView{},
	}

	if s.state != StateReady {
		return view
	}

	view.Restaurant = s.restaurant
	view.Theme = ResolveTheme(s.restaurant.Theme)
	view.Offers = VisibleOffers(s.offers, s.restaurant.ID, s.now())

	for _, c := range s.VisibleCategories() {
		products := s.ProductsFor(c.ID)
		view.Categories = append(view.Categories, CategoryView{
			ID:        c.ID,
			Name:      c.Name,
			Image:     c.Image,
			ItemCount: len(products),
			Open:      s.IsOpen(c.ID),
			Products:  products,
		})
	}

	if len(view.Categories) == 0 {
		if strings.TrimSpace(s.query) != "" {
			view.EmptyMessage = "No items found"
		} else {
			view.EmptyMessage = "No menu items available"
		}
	}

	return view
}
