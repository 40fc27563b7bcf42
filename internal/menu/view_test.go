package menu

import (
	"context"
	"testing"

	"menumaster/internal/restaurant"
)

func TestViewAssemblesRenderModel(t *testing.T) {
	s := loadedSession(t)

	view := s.View()

	if view.State != StateReady {
		t.Fatalf("expected ready view, got %s", view.State)
	}
	if view.Restaurant == nil || view.Restaurant.ID != "r1" {
		t.Fatal("view should carry the loaded restaurant")
	}
	if view.Theme.ID != "luxury" {
		t.Errorf("expected the restaurant's theme, got %q", view.Theme.ID)
	}

	// only o1 is active and unexpired
	if len(view.Offers) != 1 || view.Offers[0].ID != "o1" {
		t.Errorf("expected exactly offer o1, got %v", view.Offers)
	}

	if len(view.Categories) != 2 {
		t.Fatalf("expected 2 category sections, got %d", len(view.Categories))
	}
	starters := view.Categories[0]
	if starters.ID != "c2" || !starters.Open || starters.ItemCount != 1 {
		t.Errorf("unexpected starters section: %+v", starters)
	}
	mains := view.Categories[1]
	if mains.ID != "c1" || mains.Open || mains.ItemCount != 1 {
		t.Errorf("unexpected mains section: %+v", mains)
	}
	if view.EmptyMessage != "" {
		t.Errorf("non-empty menu should carry no empty message, got %q", view.EmptyMessage)
	}
}

func TestViewThemeFallsBackWithoutTheme(t *testing.T) {
	snap := testSnapshot()
	snap.Restaurant = &restaurant.Restaurant{ID: "r1", Name: "No Theme"}
	s := NewSession(&stubProvider{snap: snap}, fixedNow)
	if err := s.Load(context.Background(), "r1"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if got := s.View().Theme.ID; got != DefaultTheme {
		t.Errorf("expected default theme, got %q", got)
	}
}

func TestViewEmptyMessages(t *testing.T) {
	s := loadedSession(t)

	s.SetQuery("pizza")
	if got := s.View().EmptyMessage; got != "No items found" {
		t.Errorf("active query empty state: got %q", got)
	}

	snap := testSnapshot()
	snap.Products = nil
	empty := NewSession(&stubProvider{snap: snap}, fixedNow)
	if err := empty.Load(context.Background(), "r1"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got := empty.View().EmptyMessage; got != "No menu items available" {
		t.Errorf("no-products empty state: got %q", got)
	}
}

func TestViewNotFoundState(t *testing.T) {
	s := NewSession(&stubProvider{err: restaurant.ErrNotFound}, fixedNow)
	if err := s.Load(context.Background(), "missing"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := s.View()
	if view.State != StateNotFound {
		t.Fatalf("expected not_found view, got %s", view.State)
	}
	if view.Restaurant != nil {
		t.Error("not-found view should carry no restaurant")
	}
	if view.Theme.ID != DefaultTheme {
		t.Error("not-found view should fall back to the default theme")
	}
}
