// Package engine drives a browse session: it owns the loaded catalog
// and the filter state, recomputes the derived view on every input,
// and mediates cart and variation actions for the UI.
package engine

import (
	"forgottenflavors/internal/cart"
	"forgottenflavors/internal/catalog"
	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/logger"
	"forgottenflavors/internal/variation"
)

// Engine holds the session state. All methods run on the UI's single
// event loop; derived values are recomputed, never cached.
type Engine struct {
	recipes    []domain.Recipe
	state      domain.FilterState
	cart       *cart.Store
	variations *variation.Store
	log        *logger.Logger
}

// New creates a browse engine over an empty catalog. Call SetRecipes
// once the catalog has loaded.
func New(cartStore *cart.Store, variations *variation.Store, log *logger.Logger) *Engine {
	return &Engine{
		state:      domain.NewFilterState(),
		cart:       cartStore,
		variations: variations,
		log:        log,
	}
}

// SetRecipes installs the loaded catalog.
func (e *Engine) SetRecipes(recipes []domain.Recipe) {
	e.recipes = recipes
	e.log.Info("catalog ready: %d recipes", len(recipes))
}

// State returns a copy of the current filter state.
func (e *Engine) State() domain.FilterState {
	return e.state
}

// View repairs the selections against current availability, clamps the
// page, and returns the derived view for rendering.
func (e *Engine) View() catalog.View {
	e.repairSelections()
	v := catalog.BuildView(e.recipes, e.state)
	e.state.Page = v.Page
	return v
}

// repairSelections silently drops selected facet values that can no
// longer produce results under the other active filters.
func (e *Engine) repairSelections() {
	cultures := catalog.FacetValues(e.recipes, e.state, catalog.DimCulture)
	if repaired := catalog.RepairSelection(e.state.Cultures, cultures); len(repaired) != len(e.state.Cultures) {
		e.log.Debug("dropped %d stale culture selections", len(e.state.Cultures)-len(repaired))
		e.state.Cultures = repaired
	}
	eras := catalog.FacetValues(e.recipes, e.state, catalog.DimEra)
	if repaired := catalog.RepairSelection(e.state.Eras, eras); len(repaired) != len(e.state.Eras) {
		e.log.Debug("dropped %d stale era selections", len(e.state.Eras)-len(repaired))
		e.state.Eras = repaired
	}
}

// SetQuery replaces the search text and returns to the first page.
func (e *Engine) SetQuery(query string) {
	e.state.Query = query
	e.state.Page = 1
}

// ToggleCulture adds or removes a culture from the selection.
func (e *Engine) ToggleCulture(value string) {
	e.state.Cultures = toggle(e.state.Cultures, value)
	e.state.Page = 1
}

// ToggleEra adds or removes an era from the selection.
func (e *Engine) ToggleEra(value string) {
	e.state.Eras = toggle(e.state.Eras, value)
	e.state.Page = 1
}

func toggle(selected []string, value string) []string {
	for i, v := range selected {
		if v == value {
			return append(selected[:i:i], selected[i+1:]...)
		}
	}
	return append(selected, value)
}

// ToggleFast flips the "45 min or less" quick filter.
func (e *Engine) ToggleFast() {
	e.state.Quick.Fast = !e.state.Quick.Fast
	e.state.Page = 1
}

// ToggleKitReady flips the "kit-ready only" quick filter.
func (e *Engine) ToggleKitReady() {
	e.state.Quick.KitReady = !e.state.Quick.KitReady
	e.state.Page = 1
}

// SetSort changes the result ordering and returns to the first page.
func (e *Engine) SetSort(key domain.SortKey) {
	e.state.Sort = key
	e.state.Page = 1
}

// CycleSort steps featured -> name -> time -> featured.
func (e *Engine) CycleSort() {
	switch e.state.Sort {
	case domain.SortFeatured:
		e.SetSort(domain.SortName)
	case domain.SortName:
		e.SetSort(domain.SortTime)
	default:
		e.SetSort(domain.SortFeatured)
	}
}

// NextPage advances one page, staying within bounds.
func (e *Engine) NextPage() {
	e.setPage(e.state.Page + 1)
}

// PrevPage goes back one page, staying within bounds.
func (e *Engine) PrevPage() {
	e.setPage(e.state.Page - 1)
}

func (e *Engine) setPage(page int) {
	n := len(catalog.Filter(e.recipes, e.state))
	e.state.Page = catalog.ClampPage(page, n)
}

// Reset restores the default filter state.
func (e *Engine) Reset() {
	e.state = domain.NewFilterState()
	e.log.Debug("filters reset")
}

// Recipe looks a recipe up by ID.
func (e *Engine) Recipe(id domain.ID) (domain.Recipe, error) {
	for _, r := range e.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Recipe{}, domain.ErrNotFound
}

// Detail is the bundle the detail view renders.
type Detail struct {
	Recipe          domain.Recipe
	Minutes         float64
	HasMinutes      bool
	IngredientLines []string
	Substitutions   []string
	KitItems        []string
	KitPrices       []float64 // parallel to KitItems
	Variations      []domain.Variation
}

// Detail assembles the full detail bundle for a recipe.
func (e *Engine) Detail(id domain.ID) (*Detail, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return nil, err
	}

	d := &Detail{
		Recipe:        r,
		Substitutions: catalog.Substitutions(r),
		KitItems:      catalog.KitItems(r),
		Variations:    e.variations.ListFor(r.ID),
	}
	d.Minutes, d.HasMinutes = catalog.EstimateMinutes(r)

	d.IngredientLines = make([]string, len(r.Ingredients))
	for i, item := range r.Ingredients {
		d.IngredientLines[i] = catalog.IngredientLine(item)
	}

	d.KitPrices = make([]float64, len(d.KitItems))
	for i, item := range d.KitItems {
		d.KitPrices[i] = cart.MockPrice(item)
	}
	return d, nil
}

// AddCartItem puts one unit of a kit item in the cart.
func (e *Engine) AddCartItem(id domain.ID, itemName string) error {
	r, err := e.Recipe(id)
	if err != nil {
		return err
	}
	e.cart.AddItem(r, itemName)
	return nil
}

// AddKitToCart adds the recipe's entire kit. Returns how many entries
// were added; 0 means the recipe has no kit and the cart is untouched.
func (e *Engine) AddKitToCart(id domain.ID) (int, error) {
	r, err := e.Recipe(id)
	if err != nil {
		return 0, err
	}
	return e.cart.AddKit(r), nil
}

// SaveVariation stores a personal twist on the recipe. Reports whether
// anything was saved.
func (e *Engine) SaveVariation(id domain.ID, name, notes string) bool {
	_, ok := e.variations.Save(id, name, notes)
	return ok
}

// Variations returns the saved variations for a recipe.
func (e *Engine) Variations(id domain.ID) []domain.Variation {
	return e.variations.ListFor(id)
}

// Cart exposes the cart store for rendering.
func (e *Engine) Cart() *cart.Store {
	return e.cart
}
