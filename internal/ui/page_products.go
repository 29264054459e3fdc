package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// productsPage pages through the whole catalog using the backend's paging.
type productsPage struct {
	list    productList
	page    int
	hasMore bool
	seq     int
	loading bool
	failure string
}

func (p *productsPage) enter(m *Model) tea.Cmd {
	if p.page == 0 {
		p.page = 1
	}
	return p.fetch(m)
}

func (p *productsPage) fetch(m *Model) tea.Cmd {
	p.seq = m.nextSeq()
	p.loading = true
	p.failure = ""
	return m.loadProductsCmd(p.seq, p.page)
}

func (p *productsPage) onProducts(m *Model, msg productsLoadedMsg) {
	if msg.seq != p.seq {
		return
	}
	p.loading = false
	if msg.err != nil {
		p.failure = reasonOrFallback(msg.err, "Failed to load products")
		return
	}
	p.hasMore = msg.page.HasMore
	p.list.set(msg.page.Items)
}

func (p *productsPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "n", "right":
		if p.hasMore && !p.loading {
			p.page++
			return p.fetch(m)
		}
		return nil
	case "b", "left":
		if p.page > 1 && !p.loading {
			p.page--
			return p.fetch(m)
		}
		return nil
	}
	return p.list.handleKey(m, key)
}

func (p *productsPage) view(m *Model) string {
	head := m.styles.Title.Render(fmt.Sprintf("All products — page %d", p.page)) + "\n\n"
	if p.loading {
		return head + m.styles.Subtle.Render("Loading…")
	}
	if p.failure != "" {
		return head + m.styles.NotifyErr.Render(p.failure)
	}
	help := "↑/↓ browse  enter view"
	if p.hasMore {
		help += "  n next page"
	}
	if p.page > 1 {
		help += "  b previous page"
	}
	return head + p.list.view(m) + "\n" + m.styles.Help.Render(help)
}
