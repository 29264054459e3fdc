package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/product"
)

// productList is the cursor-driven listing shared by the catalog pages. It
// owns no data fetching; pages hand it items and forward movement keys.
type productList struct {
	items  []product.Product
	cursor int
}

func (l *productList) set(items []product.Product) {
	l.items = items
	if l.cursor >= len(items) {
		l.cursor = 0
	}
}

func (l *productList) move(delta int) {
	if len(l.items) == 0 {
		return
	}
	l.cursor += delta
	if l.cursor < 0 {
		l.cursor = 0
	}
	if l.cursor >= len(l.items) {
		l.cursor = len(l.items) - 1
	}
}

func (l *productList) selected() (product.Product, bool) {
	if l.cursor < 0 || l.cursor >= len(l.items) {
		return product.Product{}, false
	}
	return l.items[l.cursor], true
}

// handleKey consumes movement and selection keys, returning the navigation
// command for enter. Unrecognized keys are ignored.
func (l *productList) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "up", "k":
		l.move(-1)
	case "down", "j":
		l.move(1)
	case "enter":
		if p, ok := l.selected(); ok {
			return m.openDetail(p.ID)
		}
	}
	return nil
}

func (l *productList) view(m *Model) string {
	if len(l.items) == 0 {
		return m.styles.Subtle.Render("No products to show")
	}
	var b strings.Builder
	for i, p := range l.items {
		line := fmt.Sprintf("%-34s %s  %s",
			truncate(p.Name, 34),
			m.styles.Price.Render(fmt.Sprintf("$%.2f", p.Price)),
			m.styles.Rating.Render(fmt.Sprintf("%.1f★ (%d)", p.Rating, p.Reviews)))
		if i == l.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
