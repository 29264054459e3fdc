package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const shopCount = 12

// shopPage is the storefront window: a fixed-size cut of the catalog.
type shopPage struct {
	list    productList
	seq     int
	loading bool
	failure string
}

func (p *shopPage) enter(m *Model) tea.Cmd {
	p.seq = m.nextSeq()
	p.loading = true
	p.failure = ""
	return m.loadProductsCmd(p.seq, 1)
}

func (p *shopPage) onProducts(m *Model, msg productsLoadedMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	if msg.err != nil {
		p.failure = reasonOrFallback(msg.err, "Failed to load products")
		return
	}
	items := msg.page.Items
	if len(items) > shopCount {
		items = items[:shopCount]
	}
	p.list.set(items)
}

func (p *shopPage) handleKey(m *Model, key string) tea.Cmd {
	return p.list.handleKey(m, key)
}

func (p *shopPage) view(m *Model) string {
	head := m.styles.Title.Render("Shop") + "\n\n"
	if p.loading {
		return head + m.styles.Subtle.Render("Loading…")
	}
	if p.failure != "" {
		return head + m.styles.NotifyErr.Render(p.failure)
	}
	return head + p.list.view(m) +
		"\n" + m.styles.Help.Render("↑/↓ browse  enter view  p full catalog")
}
