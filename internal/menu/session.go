package menu

import (
	"context"
	"errors"
	"time"

	"menumaster/internal/category"
	"menumaster/internal/offer"
	"menumaster/internal/product"
	"menumaster/internal/restaurant"
)

// LoadState tracks the one asynchronous boundary: the snapshot fetch.
type LoadState string

const (
	StateLoading  LoadState = "loading"
	StateReady    LoadState = "ready"
	StateNotFound LoadState = "not_found"
	StateFailed   LoadState = "failed"
)

// ErrSuperseded is returned by Load when a newer Load started before this
// one finished; the superseded result is discarded, never merged.
var ErrSuperseded = errors.New("menu load superseded by a newer one")

// Snapshot is the raw data a session works on, fetched once per view-load
// and immutable afterwards.
type Snapshot struct {
	Restaurant *restaurant.Restaurant `json:"restaurant"`
	Categories []category.Category    `json:"categories"`
	Products   []product.Product      `json:"products"`
	Offers     []offer.Offer          `json:"offers"`
}

// SnapshotProvider is the data-access collaborator boundary. It must return
// restaurant.ErrNotFound (wrapped or not) for an unknown restaurant id.
type SnapshotProvider interface {
	LoadSnapshot(ctx context.Context, restaurantID string) (*Snapshot, error)
}

// Session owns the transient view state for one customer menu visit: the
// projected snapshot, the current search query and the open-category set.
// It is not safe for concurrent use; the host serializes interactions.
type Session struct {
	provider SnapshotProvider
	now      func() time.Time

	state      LoadState
	restaurant *restaurant.Restaurant
	categories []category.Category // projected: scoped + ordered
	products   []product.Product   // scoped to the restaurant
	offers     []offer.Offer       // raw, validity evaluated per render

	query string
	open  map[string]struct{}
	gen   uint64
}

func NewSession(provider SnapshotProvider, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{
		provider: provider,
		now:      now,
		state:    StateLoading,
		open:     map[string]struct{}{},
	}
}

// --------------------------------------------------
// Snapshot load
// --------------------------------------------------
// Load fetches a fresh snapshot and re-seeds the session. A Load that was
// overtaken by a newer one leaves no trace and reports ErrSuperseded.
func (s *Session) Load(ctx context.Context, restaurantID string) error {
	s.gen++
	gen := s.gen
	s.state = StateLoading

	snap, err := s.provider.LoadSnapshot(ctx, restaurantID)

	if s.gen != gen {
		return ErrSuperseded
	}

	// Whatever happened, the previous snapshot is gone.
	s.restaurant = nil
	s.categories = nil
	s.products = nil
	s.offers = nil
	s.query = ""
	s.open = map[string]struct{}{}

	if err != nil {
		if errors.Is(err, restaurant.ErrNotFound) {
			s.state = StateNotFound
			return nil
		}
		s.state = StateFailed
		return err
	}

	s.restaurant = snap.Restaurant
	s.categories, s.products = Project(restaurantID, snap.Categories, snap.Products)
	s.offers = snap.Offers
	s.state = StateReady

	s.initialize()
	return nil
}

// initialize seeds the open set with the first projected category, once per
// successful load.
func (s *Session) initialize() {
	if len(s.categories) > 0 {
		s.open[s.categories[0].ID] = struct{}{}
	}
}

// --------------------------------------------------
// Query and open-set state
// --------------------------------------------------
func (s *Session) SetQuery(query string) {
	s.query = query
}

func (s *Session) Query() string {
	return s.query
}

// Toggle flips a category between open and closed. Toggling twice restores
// the previous state.
func (s *Session) Toggle(categoryID string) {
	if _, ok := s.open[categoryID]; ok {
		delete(s.open, categoryID)
	} else {
		s.open[categoryID] = struct{}{}
	}
}

func (s *Session) IsOpen(categoryID string) bool {
	_, ok := s.open[categoryID]
	return ok
}

// RestoreOpen replaces the open set wholesale, used by hosts that carry the
// set across stateless requests.
func (s *Session) RestoreOpen(categoryIDs []string) {
	s.open = make(map[string]struct{}, len(categoryIDs))
	for _, id := range categoryIDs {
		s.open[id] = struct{}{}
	}
}

func (s *Session) State() LoadState {
	return s.state
}

// --------------------------------------------------
// Derivations
// --------------------------------------------------
// ProductsFor lists a category's renderable products: available and matching
// the current query, in fetch order. Products pointing at deleted categories
// never show up because no rendered category carries their id.
func (s *Session) ProductsFor(categoryID string) []product.Product {
	matched := []product.Product{}
	for _, p := range s.products {
		if p.CategoryID == categoryID && p.Available && MatchesQuery(p, s.query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// VisibleCategories keeps the projected order and drops categories with no
// renderable products.
func (s *Session) VisibleCategories() []category.Category {
	visible := []category.Category{}
	for _, c := range s.categories {
		if len(s.ProductsFor(c.ID)) > 0 {
			visible = append(visible, c)
		}
	}
	return visible
}
