package domain

// SortKey selects the result ordering.
type SortKey string

const (
	// SortFeatured is the default ordering. There is no curated
	// featured ranking yet; it orders by name.
	SortFeatured SortKey = "featured"
	// SortName orders by recipe name, ascending.
	SortName SortKey = "name"
	// SortTime orders by estimated total minutes, ascending. Recipes
	// without any usable duration data sort last.
	SortTime SortKey = "time"
)

// Label returns the human-readable sort label.
func (k SortKey) Label() string {
	switch k {
	case SortName:
		return "Name (A-Z)"
	case SortTime:
		return "Prep time"
	default:
		return "Featured"
	}
}

// QuickFilters are the one-tap toggles above the result grid.
type QuickFilters struct {
	Fast     bool // estimated total time of 45 minutes or less
	KitReady bool // has at least one derived kit item
}

// FilterState is the complete, explicit browse state. It is passed
// through the catalog pipeline functions rather than living as ambient
// state, so the pipeline stays purely functional.
type FilterState struct {
	Query    string
	Cultures []string
	Eras     []string
	Quick    QuickFilters
	Sort     SortKey
	Page     int // 1-based
}

// NewFilterState returns the default state: no filters, featured sort,
// first page.
func NewFilterState() FilterState {
	return FilterState{Sort: SortFeatured, Page: 1}
}
