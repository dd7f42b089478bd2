package filter

import (
	"strings"

	"petfood/finder/internal/domain"
)

// Matches reports whether the product passes every enabled criterion. Each
// criterion is an independent conjunction; evaluation short-circuits on the
// first failure. The predicate is pure and total: it never panics, whatever
// the product or filter state contain.
func Matches(p domain.Product, f domain.FilterState) bool {
	if f.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.SearchTerm)) {
		return false
	}

	if f.PetType != "" && p.PetType != f.PetType {
		return false
	}

	// Raw life-stage equality, not the display-normalized form.
	if f.LifeStage != "" && p.LifeStage != f.LifeStage {
		return false
	}

	if f.IsPregnant && !p.ForPregnant {
		return false
	}

	if f.IsLactating && !p.ForLactation {
		return false
	}

	// OR across selected ids: one common id is enough.
	if len(f.SpecialCare) > 0 && !p.SpecialCares.ContainsAny(f.SpecialCare) {
		return false
	}

	return true
}

// Apply returns the products that match, preserving input order.
func Apply(products []domain.Product, f domain.FilterState) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if Matches(p, f) {
			out = append(out, p)
		}
	}
	return out
}
