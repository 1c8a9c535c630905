package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"forgottenflavors/internal/domain"
)

// PageSize is the fixed number of recipes per result page.
const PageSize = 9

// collator orders names the way a locale-aware UI would, rather than by
// raw byte value.
var collator = collate.New(language.Und)

// Matches reports whether the recipe passes every active filter in
// state. Empty selections and an empty query are vacuously true.
func Matches(r domain.Recipe, state domain.FilterState) bool {
	if !inSelection(r.Culture, state.Cultures) {
		return false
	}
	if !inSelection(r.Era, state.Eras) {
		return false
	}
	if state.Quick.Fast && !isFast(r) {
		return false
	}
	if state.Quick.KitReady && !KitReady(r) {
		return false
	}
	query := strings.ToLower(strings.TrimSpace(state.Query))
	if query != "" && !strings.Contains(searchText(r), query) {
		return false
	}
	return true
}

// fastThresholdMinutes is the cutoff for the "45 min or less" toggle.
const fastThresholdMinutes = 45

func isFast(r domain.Recipe) bool {
	minutes, ok := EstimateMinutes(r)
	return ok && minutes <= fastThresholdMinutes
}

func inSelection(value string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, s := range selected {
		if s == value {
			return true
		}
	}
	return false
}

// Filter returns the recipes matching every active filter, preserving
// catalog order.
func Filter(recipes []domain.Recipe, state domain.FilterState) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range recipes {
		if Matches(r, state) {
			out = append(out, r)
		}
	}
	return out
}

// SortRecipes returns a sorted copy. Featured and name both order by
// recipe name, locale-aware ascending; time orders by estimated total
// minutes ascending with unestimated recipes last. The sort is stable,
// so ties keep their original order.
func SortRecipes(recipes []domain.Recipe, key domain.SortKey) []domain.Recipe {
	out := make([]domain.Recipe, len(recipes))
	copy(out, recipes)

	switch key {
	case domain.SortTime:
		sort.SliceStable(out, func(i, j int) bool {
			return estimateRank(out[i]) < estimateRank(out[j])
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return collator.CompareString(out[i].Name, out[j].Name) < 0
		})
	}
	return out
}

// estimateRank maps a recipe onto the time-sort axis. Recipes without
// an estimate rank behind every estimated one.
func estimateRank(r domain.Recipe) float64 {
	minutes, ok := EstimateMinutes(r)
	if !ok {
		return maxRank
	}
	return minutes
}

const maxRank = 1 << 52 // beyond any plausible duration sum

// TotalPages returns the page count for n matches: at least 1, even
// for an empty result set.
func TotalPages(n int) int {
	pages := (n + PageSize - 1) / PageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage confines a requested page to [1, TotalPages(n)].
func ClampPage(page, n int) int {
	if page < 1 {
		return 1
	}
	if last := TotalPages(n); page > last {
		return last
	}
	return page
}

// Paginate slices one page out of the sorted matches. The requested
// page is clamped first; the clamped page number is returned alongside
// the slice.
func Paginate(recipes []domain.Recipe, page int) ([]domain.Recipe, int) {
	page = ClampPage(page, len(recipes))
	start := (page - 1) * PageSize
	end := start + PageSize
	if start > len(recipes) {
		start = len(recipes)
	}
	if end > len(recipes) {
		end = len(recipes)
	}
	return recipes[start:end], page
}
