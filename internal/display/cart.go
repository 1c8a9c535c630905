package display

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// ── Cart page ────────────────────────────────────────────────────

func (u UI) updateCart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := u.eng.Cart().Items()

	switch msg.String() {
	case "q":
		return u, tea.Quit
	case "esc", "b":
		if u.detail != nil {
			u.page = pageDetail
		} else {
			u.page = pageBrowse
		}
	case "up":
		if u.cartCursor > 0 {
			u.cartCursor--
		}
	case "down":
		if u.cartCursor < len(items)-1 {
			u.cartCursor++
		}
	case "+", "=":
		if u.cartCursor < len(items) {
			u.eng.Cart().UpdateQuantity(items[u.cartCursor].ID, 1)
		}
	case "-":
		if u.cartCursor < len(items) {
			u.eng.Cart().UpdateQuantity(items[u.cartCursor].ID, -1)
			u.clampCartCursor()
		}
	case "x", "delete", "backspace":
		if u.cartCursor < len(items) {
			u.eng.Cart().RemoveItem(items[u.cartCursor].ID)
			u.clampCartCursor()
		}
	}
	return u, nil
}

func (u *UI) clampCartCursor() {
	if n := len(u.eng.Cart().Items()); u.cartCursor >= n {
		u.cartCursor = n - 1
	}
	if u.cartCursor < 0 {
		u.cartCursor = 0
	}
}

func (u UI) viewCart() string {
	items := u.eng.Cart().Items()

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Cart") + "\n\n")

	if len(items) == 0 {
		b.WriteString("  " + secondaryStyle.Render("The cart is empty. Add kit items from a recipe's Kit tab.") + "\n")
		b.WriteByte('\n')
		b.WriteString(u.helpBar("esc: back  q: quit"))
		return b.String()
	}

	for i, item := range items {
		marker := "  "
		style := primaryStyle
		if i == u.cartCursor {
			marker = accentStyle.Render("> ")
			style = accentStyle
		}
		b.WriteString(fmt.Sprintf("  %s%s  %s\n", marker, style.Render(item.ItemName),
			secondaryStyle.Render("for "+item.RecipeName)))
		b.WriteString(fmt.Sprintf("      %s %s\n",
			secondaryStyle.Render(fmt.Sprintf("x%d @ $%.2f", item.Quantity, item.UnitPrice)),
			priceStyle.Render(fmt.Sprintf("$%.2f", float64(item.Quantity)*item.UnitPrice))))
	}

	b.WriteByte('\n')
	if u.status != "" {
		b.WriteString("  " + tagStyle.Render(u.status) + "\n")
	}
	b.WriteString("  " + primaryStyle.Render(fmt.Sprintf("Subtotal (%d items): ", u.eng.Cart().ItemCount())) +
		priceStyle.Render(fmt.Sprintf("$%.2f", u.eng.Cart().Subtotal())) + "\n")
	b.WriteString("  " + secondaryStyle.Render("Mock prices for demonstration only.") + "\n\n")
	b.WriteString(u.helpBar("+/-: quantity  x: remove  esc: back  q: quit"))
	return b.String()
}
