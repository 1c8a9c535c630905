package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"forgottenflavors/internal/catalog"
	"forgottenflavors/internal/domain"
)

// ── Browse page ──────────────────────────────────────────────────

func (u UI) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return u, tea.Quit
	case "/":
		u.searching = true
		u.search.Focus()
		return u, nil
	case "c":
		u.picker = pickerCulture
		u.pickerCursor = 0
		return u, nil
	case "e":
		u.picker = pickerEra
		u.pickerCursor = 0
		return u, nil
	case "f":
		u.eng.ToggleFast()
		u.refresh()
	case "k":
		u.eng.ToggleKitReady()
		u.refresh()
	case "s":
		u.eng.CycleSort()
		u.refresh()
	case "r":
		u.eng.Reset()
		u.search.SetValue("")
		u.refresh()
	case "up":
		if u.cursor > 0 {
			u.cursor--
		}
	case "down":
		if u.cursor < len(u.view.Recipes)-1 {
			u.cursor++
		}
	case "left", "h":
		u.eng.PrevPage()
		u.cursor = 0
		u.refresh()
	case "right", "l":
		u.eng.NextPage()
		u.cursor = 0
		u.refresh()
	case "b":
		u.page = pageCart
		u.cartCursor = 0
	case "enter":
		if len(u.view.Recipes) > 0 {
			return u.openDetail(u.view.Recipes[u.cursor].ID)
		}
	}
	return u, nil
}

func (u UI) openDetail(id domain.ID) (tea.Model, tea.Cmd) {
	d, err := u.eng.Detail(id)
	if err != nil {
		u.log.Warn("opening detail for %q: %v", id, err)
		u.status = "Recipe not found."
		return u, nil
	}
	u.detail = d
	u.page = pageDetail
	u.tab = tabRecipe
	u.kitCursor = 0
	return u, nil
}

// ── Facet picker overlay ─────────────────────────────────────────

func (u UI) pickerFacet() catalog.Facet {
	if u.picker == pickerCulture {
		return u.view.Cultures
	}
	return u.view.Eras
}

func (u UI) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	values := u.pickerFacet().Values

	switch msg.String() {
	case "esc", "q", "c", "e":
		u.picker = pickerNone
	case "up":
		if u.pickerCursor > 0 {
			u.pickerCursor--
		}
	case "down":
		if u.pickerCursor < len(values)-1 {
			u.pickerCursor++
		}
	case " ", "enter":
		if u.pickerCursor < len(values) {
			if u.picker == pickerCulture {
				u.eng.ToggleCulture(values[u.pickerCursor])
			} else {
				u.eng.ToggleEra(values[u.pickerCursor])
			}
			u.refresh()
			// Availability may have shrunk under the new selection.
			if n := len(u.pickerFacet().Values); u.pickerCursor >= n && n > 0 {
				u.pickerCursor = n - 1
			}
		}
	}
	return u, nil
}

func (u UI) viewPicker() string {
	facet := u.pickerFacet()
	state := u.eng.State()
	selected := state.Cultures
	title := "Cultures"
	if u.picker == pickerEra {
		selected = state.Eras
		title = "Eras"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render(title) + "\n\n")

	if len(facet.Values) == 0 {
		b.WriteString("  " + secondaryStyle.Render("Nothing to pick under the current filters.") + "\n")
	}
	for i, v := range facet.Values {
		mark := "[ ]"
		style := primaryStyle
		for _, s := range selected {
			if s == v {
				mark = "[x]"
				style = tagStyle
				break
			}
		}
		line := fmt.Sprintf("%s %s %s", mark, v, secondaryStyle.Render(fmt.Sprintf("(%d)", facet.Counts[v])))
		if i == u.pickerCursor {
			b.WriteString("  " + accentStyle.Render("> ") + style.Render(line) + "\n")
		} else {
			b.WriteString("    " + style.Render(line) + "\n")
		}
	}

	b.WriteString("\n  " + secondaryStyle.Render("space: toggle  esc: close") + "\n")
	return b.String()
}

// ── Rendering ────────────────────────────────────────────────────

func (u UI) viewBrowse() string {
	if u.picker != pickerNone {
		return u.viewPicker()
	}

	var b strings.Builder
	state := u.eng.State()

	b.WriteString("  " + titleStyle.Render("Forgotten Flavors") + "  " +
		secondaryStyle.Render(fmt.Sprintf("%d recipes from %d cultures", u.view.TotalCount, len(u.view.Cultures.Values))) + "\n\n")

	if u.searching || u.search.Value() != "" {
		b.WriteString("  " + u.search.View() + "\n")
	}

	b.WriteString("  " + u.toolbar(state) + "\n")

	if chips := u.view.ActiveFilters; len(chips) > 0 {
		b.WriteString("  " + tagStyle.Render(strings.Join(chips, sepStyle.Render("  │  "))) + "\n")
	}
	b.WriteByte('\n')

	if len(u.view.Recipes) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No recipes match. Press r to clear the filters.") + "\n")
	}
	for i, r := range u.view.Recipes {
		b.WriteString(u.recipeRow(r, i == u.cursor))
	}

	b.WriteByte('\n')
	b.WriteString("  " + secondaryStyle.Render(fmt.Sprintf("%s  ·  page %d/%d", u.view.RangeLabel(), u.view.Page, u.view.TotalPages)) + "\n")
	if u.status != "" {
		b.WriteString("  " + urgentStyle.Render(u.status) + "\n")
	}
	b.WriteString(u.helpBar("/: search  c: cultures  e: eras  f/k: quick filters  s: sort  r: reset  enter: open  b: cart  q: quit"))
	return b.String()
}

func (u UI) toolbar(state domain.FilterState) string {
	fast := tagOffStyle
	if state.Quick.Fast {
		fast = tagStyle
	}
	kit := tagOffStyle
	if state.Quick.KitReady {
		kit = tagStyle
	}

	parts := []string{
		secondaryStyle.Render("Culture: ") + primaryStyle.Render(catalog.FormatSelected(state.Cultures, "All cultures")),
		secondaryStyle.Render("Era: ") + primaryStyle.Render(catalog.FormatSelected(state.Eras, "All eras")),
		fast.Render(catalog.LabelFast),
		kit.Render(catalog.LabelKitReady),
		secondaryStyle.Render("Sort: ") + primaryStyle.Render(state.Sort.Label()),
	}
	return strings.Join(parts, sepStyle.Render("  │  "))
}

func (u UI) recipeRow(r domain.Recipe, selected bool) string {
	name := primaryStyle
	marker := "  "
	if selected {
		name = accentStyle
		marker = accentStyle.Render("> ")
	}

	meta := []string{}
	if r.Culture != "" {
		meta = append(meta, r.Culture)
	}
	if r.Era != "" {
		meta = append(meta, r.Era)
	}
	if minutes, ok := catalog.EstimateMinutes(r); ok {
		meta = append(meta, "~"+catalog.FormatMinutes(minutes)+" min")
	} else {
		meta = append(meta, "time unknown")
	}
	if catalog.KitReady(r) {
		meta = append(meta, tagStyle.Render("kit"))
	}

	line := "  " + marker + name.Render(r.Name) + "  " + secondaryStyle.Render(strings.Join(meta, " · ")) + "\n"
	if selected && r.Summary != "" {
		line += "      " + secondaryStyle.Render(truncate(r.Summary, u.width-8)) + "\n"
	}
	return line
}

func (u UI) helpBar(text string) string {
	w := u.width
	if w <= 0 {
		w = 80
	}
	return statusBarStyle.Width(w).Render(" " + text)
}

func truncate(s string, max int) string {
	if max < 8 {
		max = 8
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
