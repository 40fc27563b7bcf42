package menu

import (
	"sort"

	"menumaster/internal/category"
	"menumaster/internal/product"
)

// Project scopes raw category and product collections to one restaurant.
// Categories come back sorted ascending by Order; the sort is stable, so
// equal orders keep their fetch order. Products keep fetch order untouched,
// grouping per category happens later.
func Project(
	restaurantID string,
	categories []category.Category,
	products []product.Product,
) ([]category.Category, []product.Product) {

	ordered := []category.Category{}
	for _, c := range categories {
		if c.RestaurantID == restaurantID {
			ordered = append(ordered, c)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})

	scoped := []product.Product{}
	for _, p := range products {
		if p.RestaurantID == restaurantID {
			scoped = append(scoped, p)
		}
	}

	return ordered, scoped
}
