package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/smartbuyr/storefront/internal/product"
)

// searchPage fetches raw matches from the backend and refines them locally:
// price range, minimum rating and ordering are applied on the client without
// another round trip.
type searchPage struct {
	input  textinput.Model
	filter product.FilterConfig

	raw  []product.Product
	list productList
	recs []product.Product

	seq      int
	recSeq   int
	loading  bool
	searched bool
	failure  string
}

func newSearchPage() searchPage {
	ti := textinput.New()
	ti.Placeholder = "Search products…"
	ti.CharLimit = 80
	ti.Width = 40
	return searchPage{
		input:  ti,
		filter: product.DefaultFilter(),
	}
}

func (p *searchPage) enter(m *Model) tea.Cmd {
	p.input.Focus()
	return textinput.Blink
}

func (p *searchPage) capturing() bool {
	return p.input.Focused()
}

func (p *searchPage) handleKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	if p.input.Focused() {
		switch msg.String() {
		case "enter":
			q := p.input.Value()
			if q == "" {
				return nil
			}
			p.input.Blur()
			p.seq = m.nextSeq()
			p.loading = true
			p.searched = true
			p.failure = ""
			return m.searchCmd(p.seq, q, 1)
		case "esc":
			p.input.Blur()
			return nil
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "/", "e":
		p.input.Focus()
		return textinput.Blink
	case "1":
		p.filter.Sort = product.SortRelevance
	case "2":
		p.filter.Sort = product.SortPriceLow
	case "3":
		p.filter.Sort = product.SortPriceHigh
	case "4":
		p.filter.Sort = product.SortRating
	case "r":
		p.filter.MinRating++
		if p.filter.MinRating > 4 {
			p.filter.MinRating = 0
		}
	case ",":
		if p.filter.PriceMax >= 1000 {
			p.filter.PriceMax -= 1000
		}
	case ".":
		p.filter.PriceMax += 1000
	case "0":
		p.filter = product.DefaultFilter()
	default:
		return p.list.handleKey(m, msg.String())
	}
	p.applyFilter()
	return nil
}

func (p *searchPage) applyFilter() {
	p.list.set(product.Derive(p.raw, p.filter))
}

func (p *searchPage) onResults(m *Model, msg searchLoadedMsg) tea.Cmd {
	if msg.seq != p.seq {
		return nil
	}
	p.loading = false
	if msg.err != nil {
		p.failure = reasonOrFallback(msg.err, "Search failed")
		return nil
	}
	p.raw = msg.page.Items
	p.applyFilter()

	// recommendations follow the top raw hit and load on their own; a failure
	// there never disturbs the results already on screen
	if len(p.raw) == 0 {
		p.recs = nil
		return nil
	}
	p.recSeq = m.nextSeq()
	return m.loadRecommendationsCmd(p.recSeq, p.raw[0].ID)
}

func (p *searchPage) onRecommendations(m *Model, msg recommendationsLoadedMsg) {
	if msg.seq != p.recSeq {
		return
	}
	if msg.err != nil {
		m.log.Debug("recommendations unavailable")
		return
	}
	p.recs = msg.items
}

func (p *searchPage) view(m *Model) string {
	s := m.styles.Title.Render("Search") + "\n\n" +
		m.styles.Input.Render(p.input.View()) + "\n\n" +
		m.styles.Subtle.Render(p.filterSummary()) + "\n\n"

	switch {
	case p.loading:
		s += m.styles.Subtle.Render("Searching…")
	case p.failure != "":
		s += m.styles.NotifyErr.Render(p.failure)
	case !p.searched:
		s += m.styles.Subtle.Render("Type a query and press enter")
	case len(p.list.items) == 0:
		s += m.styles.Subtle.Render("No products match your search and filters")
	default:
		s += p.list.view(m)
	}

	if len(p.recs) > 0 {
		s += "\n" + m.styles.Title.Render("You might also like") + "\n"
		for _, r := range p.recs {
			s += fmt.Sprintf("  %s %s\n", truncate(r.Name, 34),
				m.styles.Price.Render(fmt.Sprintf("$%.2f", r.Price)))
		}
	}

	s += "\n" + m.styles.Help.Render(
		"/ edit query  1-4 sort  r min rating  ,/. price cap  0 reset  enter view")
	return s
}

func (p *searchPage) filterSummary() string {
	sort := map[product.SortKey]string{
		product.SortRelevance: "relevance",
		product.SortPriceLow:  "price ↑",
		product.SortPriceHigh: "price ↓",
		product.SortRating:    "rating",
	}[p.filter.Sort]
	return fmt.Sprintf("price $%.0f–$%.0f  ·  rating ≥ %.0f  ·  sort: %s",
		p.filter.PriceMin, p.filter.PriceMax, p.filter.MinRating, sort)
}
