package menu

import (
	"testing"

	"menumaster/internal/category"
	"menumaster/internal/product"
)

func TestProjectSortsCategoriesByOrder(t *testing.T) {
	categories := []category.Category{
		{ID: "c1", RestaurantID: "r1", Order: 2},
		{ID: "c2", RestaurantID: "r1", Order: 1},
	}

	ordered, _ := Project("r1", categories, nil)

	if len(ordered) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(ordered))
	}
	if ordered[0].ID != "c2" || ordered[1].ID != "c1" {
		t.Errorf("expected [c2 c1], got [%s %s]", ordered[0].ID, ordered[1].ID)
	}
}

func TestProjectStableSortOnEqualOrder(t *testing.T) {
	categories := []category.Category{
		{ID: "first", RestaurantID: "r1", Order: 5},
		{ID: "second", RestaurantID: "r1", Order: 5},
		{ID: "third", RestaurantID: "r1", Order: 5},
	}

	ordered, _ := Project("r1", categories, nil)

	want := []string{"first", "second", "third"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, ordered[i].ID)
		}
	}
}

func TestProjectScopesByRestaurant(t *testing.T) {
	categories := []category.Category{
		{ID: "c1", RestaurantID: "r1", Order: 1},
		{ID: "c2", RestaurantID: "r2", Order: 1},
	}
	products := []product.Product{
		{ID: "p1", RestaurantID: "r1", CategoryID: "c1"},
		{ID: "p2", RestaurantID: "r2", CategoryID: "c2"},
		{ID: "p3", RestaurantID: "r1", CategoryID: "c1"},
	}

	ordered, scoped := Project("r1", categories, products)

	if len(ordered) != 1 || ordered[0].ID != "c1" {
		t.Errorf("expected only c1, got %v", ordered)
	}
	if len(scoped) != 2 {
		t.Fatalf("expected 2 products, got %d", len(scoped))
	}
	// product order is fetch order, never sorted
	if scoped[0].ID != "p1" || scoped[1].ID != "p3" {
		t.Errorf("expected [p1 p3], got [%s %s]", scoped[0].ID, scoped[1].ID)
	}
}

func TestProjectEmptyInput(t *testing.T) {
	ordered, scoped := Project("r1", nil, nil)
	if len(ordered) != 0 || len(scoped) != 0 {
		t.Error("expected empty projections for empty input")
	}
}
