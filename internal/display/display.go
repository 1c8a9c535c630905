// Package display renders the terminal UI with Bubble Tea.
//
// The UI is a full-screen, three-page app: the browse page (search,
// facet pickers, quick filters, paginated results), the recipe detail
// page (tabbed: recipe / history / kit / variations), and the cart
// page. All recipe math lives in the engine; this package only maps
// key presses to engine calls and renders the resulting snapshots.
package display

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"forgottenflavors/internal/catalog"
	"forgottenflavors/internal/domain"
	"forgottenflavors/internal/engine"
	"forgottenflavors/internal/logger"
)

// ── Pages ────────────────────────────────────────────────────────

type page int

const (
	pageBrowse page = iota
	pageDetail
	pageCart
)

type pickerDim int

const (
	pickerNone pickerDim = iota
	pickerCulture
	pickerEra
)

// Detail tabs.
const (
	tabRecipe = iota
	tabHistory
	tabKit
	tabVariations
	tabCount
)

// ── Messages ─────────────────────────────────────────────────────

type recipesLoadedMsg []domain.Recipe

type loadFailedMsg struct{ err error }

// ── Model ────────────────────────────────────────────────────────

// UI is the Bubble Tea model for the whole app.
type UI struct {
	eng *engine.Engine
	src domain.RecipeSource
	log *logger.Logger

	page   page
	width  int
	height int

	loading bool
	loadErr error
	spin    spinner.Model

	search    textinput.Model
	searching bool

	view   catalog.View
	cursor int

	picker       pickerDim
	pickerCursor int

	detail    *engine.Detail
	tab       int
	kitCursor int

	editingVar bool
	varFocus   int
	varName    textinput.Model
	varNotes   textinput.Model

	cartCursor int
	status     string
}

// New creates the UI. Call Run to start the event loop.
func New(eng *engine.Engine, src domain.RecipeSource, log *logger.Logger) UI {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = accentStyle

	search := textinput.New()
	search.Prompt = "search> "
	search.PromptStyle = promptStyle
	search.Placeholder = "name, summary, region, era, culture"
	search.CharLimit = 120

	name := textinput.New()
	name.Prompt = "name>  "
	name.PromptStyle = promptStyle
	name.CharLimit = 80

	notes := textinput.New()
	notes.Prompt = "notes> "
	notes.PromptStyle = promptStyle
	notes.CharLimit = 200

	return UI{
		eng:      eng,
		src:      src,
		log:      log,
		loading:  true,
		spin:     sp,
		search:   search,
		varName:  name,
		varNotes: notes,
	}
}

// Run starts the event loop in the alternate screen. Blocks until quit.
func (u UI) Run() error {
	_, err := tea.NewProgram(u, tea.WithAltScreen()).Run()
	return err
}

func (u UI) loadRecipes() tea.Msg {
	recipes, err := u.src.Load(context.Background())
	if err != nil {
		return loadFailedMsg{err}
	}
	return recipesLoadedMsg(recipes)
}

func (u UI) Init() tea.Cmd {
	return tea.Batch(u.spin.Tick, u.loadRecipes, textinput.Blink)
}

// refresh pulls a fresh view from the engine and keeps the row cursor
// inside the current page.
func (u *UI) refresh() {
	u.view = u.eng.View()
	if u.cursor >= len(u.view.Recipes) {
		u.cursor = len(u.view.Recipes) - 1
	}
	if u.cursor < 0 {
		u.cursor = 0
	}
}

func (u UI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		u.width = msg.Width
		u.height = msg.Height
		u.search.Width = msg.Width - 12
		return u, nil

	case spinner.TickMsg:
		if !u.loading {
			return u, nil
		}
		var cmd tea.Cmd
		u.spin, cmd = u.spin.Update(msg)
		return u, cmd

	case recipesLoadedMsg:
		u.loading = false
		u.eng.SetRecipes(msg)
		u.refresh()
		return u, nil

	case loadFailedMsg:
		u.loading = false
		u.loadErr = msg.err
		u.log.Error("loading recipes: %v", msg.err)
		return u, nil

	case tea.KeyMsg:
		return u.handleKey(msg)
	}
	return u, nil
}

func (u UI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return u, tea.Quit
	}
	if u.loading {
		return u, nil
	}
	if u.loadErr != nil {
		if msg.String() == "q" {
			return u, tea.Quit
		}
		return u, nil
	}

	u.status = ""

	if u.searching {
		return u.updateSearch(msg)
	}
	if u.picker != pickerNone {
		return u.updatePicker(msg)
	}
	if u.editingVar {
		return u.updateVariationForm(msg)
	}

	switch u.page {
	case pageBrowse:
		return u.updateBrowse(msg)
	case pageDetail:
		return u.updateDetail(msg)
	default:
		return u.updateCart(msg)
	}
}

// updateSearch feeds keystrokes to the search box and re-filters live.
func (u UI) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		u.searching = false
		u.search.Blur()
		u.search.SetValue("")
		u.eng.SetQuery("")
		u.refresh()
		return u, nil
	case tea.KeyEnter:
		u.searching = false
		u.search.Blur()
		return u, nil
	}

	var cmd tea.Cmd
	u.search, cmd = u.search.Update(msg)
	u.eng.SetQuery(u.search.Value())
	u.refresh()
	return u, cmd
}

func (u UI) View() string {
	if u.loading {
		return "\n  " + u.spin.View() + secondaryStyle.Render("Gathering recipes from the archives...") + "\n"
	}
	if u.loadErr != nil {
		return "\n  " + urgentStyle.Render("Could not load recipes.") + "\n\n  " +
			secondaryStyle.Render(u.loadErr.Error()) + "\n\n  " +
			secondaryStyle.Render("q: quit") + "\n"
	}

	switch u.page {
	case pageDetail:
		return u.viewDetail()
	case pageCart:
		return u.viewCart()
	default:
		return u.viewBrowse()
	}
}
