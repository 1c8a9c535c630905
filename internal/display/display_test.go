package display

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"forgottenflavors/internal/cart"
	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/engine"
	"forgottenflavors/internal/logger"
	"forgottenflavors/internal/variation"
)

func newTestUI(recipes []domain.Recipe) UI {
	log := logger.New(logger.LevelOff, io.Discard)
	eng := engine.New(cart.NewStore(log), variation.NewStore(log), log)
	ui := New(eng, nil, log)

	m, _ := ui.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m, _ = m.Update(recipesLoadedMsg(recipes))
	return m.(UI)
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func displayRecipes() []domain.Recipe {
	return []domain.Recipe{
		{
			ID: "bread", Name: "Herbed Hearth Bread", Summary: "A dense rosemary loaf.",
			Culture: "Italian", Era: "Medieval",
			Ingredients: []domain.Ingredient{{Name: "Flour"}, {Name: "Salt"}},
			Steps:       []domain.Step{{Order: 1, Instruction: "Mix.", DurationMinutes: 100}},
			History:     domain.History{Context: "Feast-day bread."},
		},
		{
			ID: "lentils", Name: "Feast Day Lentils",
			Culture: "Roman", Era: "Ancient",
			Ingredients: []domain.Ingredient{{Name: "Lentils"}},
			Commerce:    domain.Commerce{IngredientLinks: []string{"Lentil Kit", "Amphora Garum"}},
		},
	}
}

func TestBrowseRendersLoadedRecipes(t *testing.T) {
	ui := newTestUI(displayRecipes())

	view := ui.View()
	for _, want := range []string{"Forgotten Flavors", "Herbed Hearth Bread", "Feast Day Lentils", "Showing 1-2 of 2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("browse view missing %q", want)
		}
	}
}

func TestLoadFailureScreen(t *testing.T) {
	log := logger.New(logger.LevelOff, io.Discard)
	eng := engine.New(cart.NewStore(log), variation.NewStore(log), log)
	ui := New(eng, nil, log)

	m, _ := ui.Update(loadFailedMsg{err: io.ErrUnexpectedEOF})
	view := m.(UI).View()
	if !strings.Contains(view, "Could not load recipes.") {
		t.Fatalf("error screen not shown:\n%s", view)
	}
}

func TestQuickFilterKeyNarrowsResults(t *testing.T) {
	ui := newTestUI(displayRecipes())

	m, _ := ui.Update(key("f"))
	view := m.(UI).View()
	if strings.Contains(view, "Herbed Hearth Bread") {
		t.Fatalf("100-minute recipe survived the fast filter:\n%s", view)
	}
	if !strings.Contains(view, "No recipes match") && !strings.Contains(view, "Feast Day Lentils") {
		t.Fatalf("unexpected fast-filter view:\n%s", view)
	}
}

func TestCulturePickerToggles(t *testing.T) {
	ui := newTestUI(displayRecipes())

	m, _ := ui.Update(key("c"))
	view := m.(UI).View()
	if !strings.Contains(view, "Cultures") || !strings.Contains(view, "Italian") {
		t.Fatalf("picker not shown:\n%s", view)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	view = m.(UI).View()
	if strings.Contains(view, "Feast Day Lentils") {
		t.Fatalf("culture filter not applied:\n%s", view)
	}
	if !strings.Contains(view, "Culture: Italian") {
		t.Fatalf("active filter chip missing:\n%s", view)
	}
}

func TestOpenDetailAndAddKit(t *testing.T) {
	ui := newTestUI(displayRecipes())

	// Name sort puts Feast Day Lentils first on the default view.
	m, _ := ui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view := m.(UI).View()
	if !strings.Contains(view, "[Recipe]") {
		t.Fatalf("detail page not opened:\n%s", view)
	}

	// Switch to the kit tab and add the whole kit, which jumps to the cart.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m, _ = m.Update(key("a"))
	view = m.(UI).View()
	if !strings.Contains(view, "Added 2 kit items") {
		t.Fatalf("kit add status missing:\n%s", view)
	}
	if !strings.Contains(view, "Subtotal (2 items)") {
		t.Fatalf("cart subtotal missing:\n%s", view)
	}
}

func TestEmptyHistoryTabNotice(t *testing.T) {
	ui := newTestUI(displayRecipes())

	// Feast Day Lentils is first under the name sort and has no history.
	m, _ := ui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	view := m.(UI).View()
	if !strings.Contains(view, "No history available for this recipe.") {
		t.Fatalf("empty history notice missing:\n%s", view)
	}
}

func TestSaveVariationFromDetail(t *testing.T) {
	ui := newTestUI(displayRecipes())

	m, _ := ui.Update(tea.KeyMsg{Type: tea.KeyEnter})
	for i := 0; i < 3; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	view := m.(UI).View()
	if !strings.Contains(view, "No variations saved yet") {
		t.Fatalf("empty variations tab missing:\n%s", view)
	}

	m, _ = m.Update(key("n"))
	for _, r := range "Extra mint" {
		m, _ = m.Update(key(string(r)))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	view = m.(UI).View()
	if !strings.Contains(view, "Variation saved.") || !strings.Contains(view, "Extra mint") {
		t.Fatalf("variation not saved:\n%s", view)
	}
}
