// Package catalog implements the faceted filter, sort, and pagination
// pipeline over the loaded recipe list, plus the small derivations the
// presentation layer needs (time estimates, ingredient lines, kit
// items). Everything in this package is a pure function of its inputs.
package catalog

import (
	"strconv"
	"strings"

	"forgottenflavors/internal/domain"
)

// EstimateMinutes sums the recipe's positive step durations. ok is
// false when no step carries a usable duration, in which case the
// recipe has no time estimate at all (it is not treated as zero).
func EstimateMinutes(r domain.Recipe) (minutes float64, ok bool) {
	var total float64
	for _, step := range r.Steps {
		if d := float64(step.DurationMinutes); d > 0 {
			total += d
			ok = true
		}
	}
	return total, ok
}

// FormatMinutes renders an estimate without trailing zeros, e.g. "100"
// or "7.5".
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}

// IngredientLine renders one ingredient as "<name> - <qty> <unit>
// (optional)". Absent quantity leaves the segment empty, absent unit
// omits it entirely; the joined string is trimmed at the ends only, so
// the separator never dangles.
func IngredientLine(item domain.Ingredient) string {
	qty := ""
	if item.Quantity != nil {
		qty = strconv.FormatFloat(*item.Quantity, 'f', -1, 64)
	}
	unit := ""
	if item.Unit != "" {
		unit = " " + item.Unit
	}
	opt := ""
	if item.Optional {
		opt = " (optional)"
	}
	return strings.TrimSpace(item.Name + " - " + qty + unit + opt)
}

// kitFallbackSize is how many leading ingredients form the implicit kit
// when a recipe declares no commerce links.
const kitFallbackSize = 4

// KitItems derives the shoppable item names for a recipe: the declared
// commerce ingredient links verbatim when present, otherwise the names
// of the first four ingredients in declaration order.
func KitItems(r domain.Recipe) []string {
	if len(r.Commerce.IngredientLinks) > 0 {
		return r.Commerce.IngredientLinks
	}
	ingredients := r.Ingredients
	if len(ingredients) > kitFallbackSize {
		ingredients = ingredients[:kitFallbackSize]
	}
	items := make([]string, 0, len(ingredients))
	for _, item := range ingredients {
		items = append(items, item.Name)
	}
	return items
}

// KitReady reports whether the recipe has any derived kit items.
func KitReady(r domain.Recipe) bool {
	return len(KitItems(r)) > 0
}

// Substitutions collects every ingredient substitution idea across the
// recipe, de-duplicated, in first-seen order. Empty entries are
// dropped.
func Substitutions(r domain.Recipe) []string {
	var out []string
	seen := make(map[string]bool)
	for _, item := range r.Ingredients {
		for _, sub := range item.Substitutions {
			if sub == "" || seen[sub] {
				continue
			}
			seen[sub] = true
			out = append(out, sub)
		}
	}
	return out
}

// searchText concatenates the recipe's present descriptive fields,
// lowercased. Absent fields are omitted rather than contributing empty
// strings.
func searchText(r domain.Recipe) string {
	fields := make([]string, 0, 5)
	for _, f := range []string{r.Name, r.Summary, r.Region, r.Era, r.Culture} {
		if f != "" {
			fields = append(fields, f)
		}
	}
	return strings.ToLower(strings.Join(fields, " "))
}
