package menu

import (
	"strings"

	"menumaster/internal/product"
)

// MatchesQuery is the search predicate: a blank query matches everything,
// otherwise the lowercased query must appear in the product name or
// description. No tokenization, no ranking.
func MatchesQuery(p product.Product, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}
