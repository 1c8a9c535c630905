package catalog

import (
	"sort"

	"forgottenflavors/internal/domain"
)

// Dimension is a facet axis of the catalog.
type Dimension int

const (
	DimCulture Dimension = iota
	DimEra
)

func (d Dimension) value(r domain.Recipe) string {
	if d == DimEra {
		return r.Era
	}
	return r.Culture
}

// withoutOwnSelection clears the dimension's own selection so facet
// availability honors every other filter but never the one it drives.
// That is what lets a user broaden a filter by deselecting: values the
// current selection excludes still show up as selectable.
func withoutOwnSelection(state domain.FilterState, dim Dimension) domain.FilterState {
	if dim == DimEra {
		state.Eras = nil
	} else {
		state.Cultures = nil
	}
	return state
}

// FacetValues returns the dimension values that would yield a non-empty
// result if selected, given every filter except the dimension's own
// selection. Values are sorted locale-ascending. Recipes without a
// value for the dimension contribute nothing.
func FacetValues(recipes []domain.Recipe, state domain.FilterState, dim Dimension) []string {
	counts := FacetCounts(recipes, state, dim)
	values := make([]string, 0, len(counts))
	for v := range counts {
		values = append(values, v)
	}
	sort.Slice(values, func(i, j int) bool {
		return collator.CompareString(values[i], values[j]) < 0
	})
	return values
}

// FacetCounts returns, per dimension value, how many recipes match all
// filters except the dimension's own selection.
func FacetCounts(recipes []domain.Recipe, state domain.FilterState, dim Dimension) map[string]int {
	masked := withoutOwnSelection(state, dim)
	counts := make(map[string]int)
	for _, r := range recipes {
		v := dim.value(r)
		if v == "" || !Matches(r, masked) {
			continue
		}
		counts[v]++
	}
	return counts
}

// RepairSelection drops selected values that are no longer in the
// available set, preserving selection order. Selections are never left
// stuck on values that can't produce results anymore.
func RepairSelection(selected, available []string) []string {
	if len(selected) == 0 {
		return selected
	}
	ok := make(map[string]bool, len(available))
	for _, v := range available {
		ok[v] = true
	}
	out := selected[:0:0]
	for _, v := range selected {
		if ok[v] {
			out = append(out, v)
		}
	}
	return out
}
