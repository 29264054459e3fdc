package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const featuredCount = 8

// homePage shows the hero banner and a featured slice of the catalog.
type homePage struct {
	list    productList
	seq     int
	loading bool
	failure string
}

func (p *homePage) enter(m *Model) tea.Cmd {
	p.seq = m.nextSeq()
	p.loading = true
	p.failure = ""
	return m.loadProductsCmd(p.seq, 1)
}

func (p *homePage) onProducts(m *Model, msg productsLoadedMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	if msg.err != nil {
		p.failure = reasonOrFallback(msg.err, "Failed to load products")
		return
	}
	items := msg.page.Items
	if len(items) > featuredCount {
		items = items[:featuredCount]
	}
	p.list.set(items)
}

func (p *homePage) handleKey(m *Model, key string) tea.Cmd {
	return p.list.handleKey(m, key)
}

func (p *homePage) view(m *Model) string {
	hero := m.styles.Header.Render("Shop smarter. Buy better.") + "\n" +
		m.styles.Subtle.Render("Electronics, accessories and more, delivered to your door.") + "\n\n"

	if p.loading {
		return hero + m.styles.Subtle.Render("Loading featured products…")
	}
	if p.failure != "" {
		return hero + m.styles.NotifyErr.Render(p.failure)
	}
	return hero + m.styles.Title.Render("Featured products") + "\n\n" + p.list.view(m) +
		"\n" + m.styles.Help.Render("↑/↓ browse  enter view")
}
