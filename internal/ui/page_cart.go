package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/cart"
	"github.com/smartbuyr/storefront/internal/notify"
)

// cartPage renders the server's view of the cart. Every mutation is followed
// by a refetch; nothing is patched locally.
type cartPage struct {
	c       cart.Cart
	cursor  int
	seq     int
	loading bool
	failure string
}

func (p *cartPage) enter(m *Model) tea.Cmd {
	p.loading = true
	return p.refetch(m)
}

func (p *cartPage) refetch(m *Model) tea.Cmd {
	p.seq = m.nextSeq()
	p.failure = ""
	return m.loadCartCmd(p.seq, m.token())
}

func (p *cartPage) onLoaded(m *Model, msg cartLoadedMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	if msg.err != nil {
		// the previously shown cart stays on screen; only the notice changes
		m.notices.Show(reasonOrFallback(msg.err, "Failed to load cart"), notify.Error)
		return
	}
	p.c = msg.c
	if p.cursor >= len(p.c.Items) {
		p.cursor = 0
	}
}

func (p *cartPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "up", "k":
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		if p.cursor < len(p.c.Items)-1 {
			p.cursor++
		}
	case "d", "backspace":
		if p.cursor < len(p.c.Items) {
			line := p.c.Items[p.cursor]
			return m.requireSession(func() tea.Cmd {
				return m.removeFromCartCmd(m.token(), line.ID)
			})
		}
	case "enter":
		if p.cursor < len(p.c.Items) {
			return m.openDetail(p.c.Items[p.cursor].Product.ID)
		}
	}
	return nil
}

func (p *cartPage) view(m *Model) string {
	head := m.styles.Title.Render("Your cart") + "\n\n"
	if p.loading {
		return head + m.styles.Subtle.Render("Loading…")
	}
	if len(p.c.Items) == 0 {
		return head + m.styles.Subtle.Render("Your cart is empty") + "\n\n" +
			m.styles.Help.Render("s browse the shop")
	}

	var b strings.Builder
	b.WriteString(head)
	for i, it := range p.c.Items {
		line := fmt.Sprintf("%-34s ×%-3d %s",
			truncate(it.Product.Name, 34), it.Quantity,
			m.styles.Price.Render(fmt.Sprintf("$%.2f", it.Product.Price*float64(it.Quantity))))
		if i == p.cursor {
			b.WriteString(m.styles.Cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n" + m.styles.Title.Render(fmt.Sprintf("Total: $%.2f", p.c.Total)) + "\n\n")
	b.WriteString(m.styles.Help.Render("↑/↓ select  d remove  enter view product"))
	return b.String()
}
