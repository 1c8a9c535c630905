package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"forgottenflavors/internal/catalog"
)

// ── Detail page ──────────────────────────────────────────────────

var tabNames = [tabCount]string{"Recipe", "History", "Kit", "Variations"}

func (u UI) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return u, tea.Quit
	case "esc":
		u.page = pageBrowse
		u.detail = nil
	case "tab", "right", "l":
		u.tab = (u.tab + 1) % tabCount
		u.kitCursor = 0
	case "shift+tab", "left", "h":
		u.tab = (u.tab + tabCount - 1) % tabCount
		u.kitCursor = 0
	case "b":
		u.page = pageCart
		u.cartCursor = 0
	case "up":
		if u.tab == tabKit && u.kitCursor > 0 {
			u.kitCursor--
		}
	case "down":
		if u.tab == tabKit && u.kitCursor < len(u.detail.KitItems)-1 {
			u.kitCursor++
		}
	case "enter":
		if u.tab == tabKit && u.kitCursor < len(u.detail.KitItems) {
			item := u.detail.KitItems[u.kitCursor]
			if err := u.eng.AddCartItem(u.detail.Recipe.ID, item); err == nil {
				u.status = fmt.Sprintf("Added %s to the cart.", item)
			}
		}
	case "a":
		if u.tab == tabKit {
			added, err := u.eng.AddKitToCart(u.detail.Recipe.ID)
			switch {
			case err != nil:
				u.status = "Could not add the kit."
			case added == 0:
				u.status = "This recipe has no kit."
			default:
				// A whole-kit add jumps straight to the cart.
				u.status = fmt.Sprintf("Added %d kit items to the cart.", added)
				u.page = pageCart
				u.cartCursor = 0
			}
		}
	case "n":
		if u.tab == tabVariations {
			u.editingVar = true
			u.varFocus = 0
			u.varName.SetValue("")
			u.varNotes.SetValue("")
			u.varName.Focus()
			u.varNotes.Blur()
			return u, textinput.Blink
		}
	}
	return u, nil
}

// updateVariationForm drives the two-field save form on the
// variations tab.
func (u UI) updateVariationForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		u.editingVar = false
		u.varName.Blur()
		u.varNotes.Blur()
		return u, nil
	case tea.KeyTab, tea.KeyShiftTab:
		u.varFocus = 1 - u.varFocus
		if u.varFocus == 0 {
			u.varName.Focus()
			u.varNotes.Blur()
		} else {
			u.varNotes.Focus()
			u.varName.Blur()
		}
		return u, nil
	case tea.KeyEnter:
		u.editingVar = false
		u.varName.Blur()
		u.varNotes.Blur()
		if u.eng.SaveVariation(u.detail.Recipe.ID, u.varName.Value(), u.varNotes.Value()) {
			u.status = "Variation saved."
			if d, err := u.eng.Detail(u.detail.Recipe.ID); err == nil {
				u.detail = d
			}
		} else {
			u.status = "Nothing to save."
		}
		return u, nil
	}

	var cmd tea.Cmd
	if u.varFocus == 0 {
		u.varName, cmd = u.varName.Update(msg)
	} else {
		u.varNotes, cmd = u.varNotes.Update(msg)
	}
	return u, cmd
}

// ── Rendering ────────────────────────────────────────────────────

func (u UI) viewDetail() string {
	d := u.detail
	var b strings.Builder

	b.WriteString("  " + titleStyle.Render(d.Recipe.Name) + "\n")

	meta := []string{}
	if d.Recipe.Culture != "" {
		meta = append(meta, d.Recipe.Culture)
	}
	if d.Recipe.Era != "" {
		meta = append(meta, d.Recipe.Era)
	}
	if d.Recipe.Region != "" {
		meta = append(meta, d.Recipe.Region)
	}
	if d.HasMinutes {
		meta = append(meta, "~"+catalog.FormatMinutes(d.Minutes)+" min total")
	}
	b.WriteString("  " + secondaryStyle.Render(strings.Join(meta, " · ")) + "\n\n")

	b.WriteString("  " + u.renderTabs() + "\n\n")

	switch u.tab {
	case tabHistory:
		u.renderHistory(&b)
	case tabKit:
		u.renderKit(&b)
	case tabVariations:
		u.renderVariations(&b)
	default:
		u.renderRecipe(&b)
	}

	b.WriteByte('\n')
	if u.status != "" {
		b.WriteString("  " + tagStyle.Render(u.status) + "\n")
	}
	help := "tab: switch  esc: back  b: cart  q: quit"
	if u.tab == tabKit && len(d.KitItems) > 0 {
		help = "enter: add item  a: add entire kit  " + help
	}
	if u.tab == tabVariations && !u.editingVar {
		help = "n: new variation  " + help
	}
	b.WriteString(u.helpBar(help))
	return b.String()
}

func (u UI) renderTabs() string {
	parts := make([]string, tabCount)
	for i, name := range tabNames {
		if i == u.tab {
			parts[i] = accentStyle.Render("[" + name + "]")
		} else {
			parts[i] = secondaryStyle.Render(" " + name + " ")
		}
	}
	return strings.Join(parts, " ")
}

func (u UI) renderRecipe(b *strings.Builder) {
	d := u.detail
	if d.Recipe.Summary != "" {
		b.WriteString("  " + primaryStyle.Render(d.Recipe.Summary) + "\n\n")
	}

	b.WriteString("  " + accentStyle.Render("Ingredients") + "\n")
	if len(d.IngredientLines) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No ingredients recorded.") + "\n")
	}
	for _, line := range d.IngredientLines {
		b.WriteString("    " + primaryStyle.Render("- "+line) + "\n")
	}

	if len(d.Substitutions) > 0 {
		b.WriteString("\n  " + accentStyle.Render("Substitutions") + "\n")
		b.WriteString("    " + secondaryStyle.Render(strings.Join(d.Substitutions, ", ")) + "\n")
	}

	b.WriteString("\n  " + accentStyle.Render("Steps") + "\n")
	if len(d.Recipe.Steps) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No steps recorded.") + "\n")
	}
	for _, step := range d.Recipe.Steps {
		dur := ""
		if m := float64(step.DurationMinutes); m > 0 {
			dur = secondaryStyle.Render(fmt.Sprintf(" (~%s min)", catalog.FormatMinutes(m)))
		}
		b.WriteString(fmt.Sprintf("    %s %s%s\n",
			tagStyle.Render(fmt.Sprintf("%d.", step.Order)),
			primaryStyle.Render(step.Instruction), dur))
		for _, tip := range step.TutorialTips {
			b.WriteString("       " + secondaryStyle.Render("tip: "+tip) + "\n")
		}
	}
}

func (u UI) renderHistory(b *strings.Builder) {
	d := u.detail
	if d.Recipe.History.Context == "" && len(d.Recipe.History.Sources) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No history available for this recipe.") + "\n")
		return
	}
	if d.Recipe.History.Context != "" {
		b.WriteString("  " + primaryStyle.Render(d.Recipe.History.Context) + "\n")
	}
	if len(d.Recipe.History.Sources) > 0 {
		b.WriteString("\n  " + accentStyle.Render("Sources") + "\n")
		for _, s := range d.Recipe.History.Sources {
			b.WriteString("    " + secondaryStyle.Render("- "+s) + "\n")
		}
	}
}

func (u UI) renderKit(b *strings.Builder) {
	d := u.detail
	if len(d.KitItems) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No kit available for this recipe.") + "\n")
		return
	}

	var kitTotal float64
	for i, item := range d.KitItems {
		marker := "  "
		style := primaryStyle
		if i == u.kitCursor {
			marker = accentStyle.Render("> ")
			style = accentStyle
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", marker, style.Render(item),
			priceStyle.Render(fmt.Sprintf("$%.2f", d.KitPrices[i]))))
		kitTotal += d.KitPrices[i]
	}
	b.WriteString("\n  " + secondaryStyle.Render("Full kit: ") + priceStyle.Render(fmt.Sprintf("$%.2f", kitTotal)) + "\n")
}

func (u UI) renderVariations(b *strings.Builder) {
	d := u.detail
	if u.editingVar {
		b.WriteString("  " + accentStyle.Render("Save a variation") + "\n\n")
		b.WriteString("  " + u.varName.View() + "\n")
		b.WriteString("  " + u.varNotes.View() + "\n\n")
		b.WriteString("  " + secondaryStyle.Render("tab: next field  enter: save  esc: cancel") + "\n")
		return
	}

	if len(d.Variations) == 0 {
		b.WriteString("  " + secondaryStyle.Render("No variations saved yet. Press n to add your own twist.") + "\n")
		return
	}
	for _, v := range d.Variations {
		b.WriteString("  " + primaryStyle.Render(v.Name) + "\n")
		b.WriteString("    " + secondaryStyle.Render(v.Notes) + "\n")
	}
}
