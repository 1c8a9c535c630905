package catalog

import (
	"fmt"
	"strings"

	"forgottenflavors/internal/domain"
)

// Quick-filter display labels, shared with the toolbar chips.
const (
	LabelFast     = "45 min or less"
	LabelKitReady = "Kit-ready only"
)

// Facet bundles one dimension's selectable values and per-value match
// counts for rendering.
type Facet struct {
	Values []string
	Counts map[string]int
}

// View is the derived state the presentation layer renders: one page of
// filtered, sorted recipes plus the numbers and facet data around it.
// It is recomputed wholesale from (recipes, state) on every input.
type View struct {
	Recipes       []domain.Recipe // current page only
	Page          int             // clamped
	TotalPages    int
	FilteredCount int
	TotalCount    int
	Cultures      Facet
	Eras          Facet
	ActiveFilters []string // human-readable chips, e.g. "Search: bread"
}

// BuildView runs the full pipeline for the given state.
func BuildView(recipes []domain.Recipe, state domain.FilterState) View {
	matches := SortRecipes(Filter(recipes, state), state.Sort)
	page, pageNum := Paginate(matches, state.Page)

	return View{
		Recipes:       page,
		Page:          pageNum,
		TotalPages:    TotalPages(len(matches)),
		FilteredCount: len(matches),
		TotalCount:    len(recipes),
		Cultures: Facet{
			Values: FacetValues(recipes, state, DimCulture),
			Counts: FacetCounts(recipes, state, DimCulture),
		},
		Eras: Facet{
			Values: FacetValues(recipes, state, DimEra),
			Counts: FacetCounts(recipes, state, DimEra),
		},
		ActiveFilters: activeFilterLabels(state),
	}
}

// activeFilterLabels summarizes the active filters as short chips.
func activeFilterLabels(state domain.FilterState) []string {
	var labels []string
	if q := strings.TrimSpace(state.Query); q != "" {
		labels = append(labels, "Search: "+q)
	}
	if len(state.Cultures) > 0 {
		labels = append(labels, "Culture: "+strings.Join(state.Cultures, ", "))
	}
	if len(state.Eras) > 0 {
		labels = append(labels, "Era: "+strings.Join(state.Eras, ", "))
	}
	if state.Quick.Fast {
		labels = append(labels, LabelFast)
	}
	if state.Quick.KitReady {
		labels = append(labels, LabelKitReady)
	}
	return labels
}

// FormatSelected summarizes a multi-select for a collapsed control:
// the empty label, the single value, or "N selected".
func FormatSelected(selected []string, emptyLabel string) string {
	switch len(selected) {
	case 0:
		return emptyLabel
	case 1:
		return selected[0]
	default:
		return fmt.Sprintf("%d selected", len(selected))
	}
}

// RangeLabel renders the "Showing x-y of n" line for a view.
func (v View) RangeLabel() string {
	if v.FilteredCount == 0 {
		return "Showing 0-0 of 0"
	}
	first := (v.Page-1)*PageSize + 1
	last := v.Page * PageSize
	if last > v.FilteredCount {
		last = v.FilteredCount
	}
	return fmt.Sprintf("Showing %d-%d of %d", first, last, v.FilteredCount)
}
