package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/product"
)

// detailPage shows one product with a quantity picker and the add-to-cart /
// save-to-wishlist actions. Both actions require a session.
type detailPage struct {
	id      int
	p       product.Product
	qty     int
	recs    []product.Product
	seq     int
	recSeq  int
	loading bool
	failure string
}

func (p *detailPage) enter(m *Model, id int) tea.Cmd {
	p.id = id
	p.qty = 1
	p.recs = nil
	p.loading = true
	p.failure = ""
	p.seq = m.nextSeq()
	p.recSeq = m.nextSeq()
	return tea.Batch(
		m.loadDetailCmd(p.seq, id),
		m.loadRecommendationsCmd(p.recSeq, id),
	)
}

func (p *detailPage) onLoaded(m *Model, msg detailLoadedMsg) tea.Cmd {
	if msg.seq != p.seq {
		return nil
	}
	p.loading = false
	if msg.err != nil {
		p.failure = reasonOrFallback(msg.err, "Failed to load product")
		return nil
	}
	p.p = msg.p
	return nil
}

func (p *detailPage) onRecommendations(m *Model, msg recommendationsLoadedMsg) {
	if msg.seq != p.recSeq {
		return
	}
	if msg.err != nil {
		m.log.Debug("recommendations unavailable")
		return
	}
	p.recs = msg.items
}

func (p *detailPage) handleKey(m *Model, key string) tea.Cmd {
	switch key {
	case "+", "=", "right":
		if p.qty < 99 {
			p.qty++
		}
	case "-", "left":
		if p.qty > 1 {
			p.qty--
		}
	case "b", "enter":
		if p.failure != "" || p.loading {
			return nil
		}
		return m.requireSession(func() tea.Cmd {
			return m.addToCartCmd(m.token(), p.id, p.qty)
		})
	case "v":
		if p.failure != "" || p.loading {
			return nil
		}
		return m.requireSession(func() tea.Cmd {
			return m.addToWishlistCmd(m.token(), p.id)
		})
	case "esc":
		return m.goTo(pageShop)
	}
	return nil
}

func (p *detailPage) view(m *Model) string {
	if p.loading {
		return m.styles.Subtle.Render("Loading…")
	}
	if p.failure != "" {
		return m.styles.NotifyErr.Render(p.failure) + "\n\n" +
			m.styles.Help.Render("esc back to shop")
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(p.p.Name) + "\n")
	b.WriteString(m.styles.Price.Render(fmt.Sprintf("$%.2f", p.p.Price)) + "  ")
	b.WriteString(m.styles.Rating.Render(fmt.Sprintf("%.1f★ (%d reviews)", p.p.Rating, p.p.Reviews)) + "\n\n")
	if p.p.Description != "" {
		b.WriteString(p.p.Description + "\n\n")
	}
	b.WriteString(fmt.Sprintf("Quantity: %s\n\n", m.styles.Cursor.Render(fmt.Sprintf("‹ %d ›", p.qty))))

	if len(p.recs) > 0 {
		b.WriteString(m.styles.Title.Render("You might also like") + "\n")
		for _, r := range p.recs {
			b.WriteString(fmt.Sprintf("  %s %s\n", truncate(r.Name, 34),
				m.styles.Price.Render(fmt.Sprintf("$%.2f", r.Price))))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render("-/+ quantity  b add to cart  v save to wishlist  esc back"))
	return b.String()
}
