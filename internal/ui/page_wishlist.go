package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/notify"
	"github.com/smartbuyr/storefront/internal/wishlist"
)

// wishlistPage lists saved products and lets the user move one into the cart
// or drop it from the list.
type wishlistPage struct {
	entries []wishlist.Entry
	cursor  int
	seq     int
	loading bool
}

func (p *wishlistPage) enter(m *Model) tea.Cmd {
	p.loading = true
	return p.refetch(m)
}

func (p *wishlistPage) refetch(m *Model) tea.Cmd {
	p.seq = m.nextSeq()
	return m.loadWishlistCmd(p.seq, m.token())
}

func (p *wishlistPage) onLoaded(m *Model, msg wishlistLoadedMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	if msg.err != nil {
		m.notices.Show(reasonOrFallback(msg.err, "Failed to load wishlist"), notify.Error)
		return
	}
	p.entries = msg.entries
	if p.cursor >= len(p.entries) {
		p.cursor = 0
	}
}

func (p *wishlistPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.entries)-1 {
			p.cursor++
		}
	case "d", "backspace":
		if p.cursor < len(p.entries) {
			entry := p.entries[p.cursor]
			return m.requireSession(func() tea.Cmd {
				return m.removeFromWishlistCmd(m.token(), entry.ID)
			})
		}
	case "b":
		if p.cursor < len(p.entries) {
			entry := p.entries[p.cursor]
			return m.requireSession(func() tea.Cmd {
				return m.addToCartCmd(m.token(), entry.Product.ID, 1)
			})
		}
	case "enter":
		if p.cursor < len(p.entries) {
			return m.openDetail(p.entries[p.cursor].Product.ID)
		}
	}
	return nil
}

func (p *wishlistPage) view(m *Model) string {
	head := m.styles.Title.Render("Your wishlist") + "\n\n"
	if p.loading {
		return head + m.styles.Subtle.Render("Loading…")
	}
	if len(p.entries) == 0 {
		return head + m.styles.Subtle.Render("Nothing saved yet") + "\n\n" +
			m.styles.Help.Render("s browse the shop")
	}

	var b strings.Builder
	b.WriteString(head)
	for i, e := range p.entries {
		line := fmt.Sprintf("%-34s %s  %s",
			truncate(e.Product.Name, 34),
			m.styles.Price.Render(fmt.Sprintf("$%.2f", e.Product.Price)),
			m.styles.Rating.Render(fmt.Sprintf("%.1f★", e.Product.Rating)))
		if i == p.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("↑/↓ select  b add to cart  d remove  enter view"))
	return b.String()
}
