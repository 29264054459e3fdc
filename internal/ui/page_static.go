package ui

type staticKind int

const (
	staticAbout staticKind = iota
	staticContact
	staticSizeGuide
)

// staticPage renders fixed informational content. It has no state beyond
// which document is open.
type staticPage struct {
	kind staticKind
}

func (p *staticPage) handleKey(m *Model, key string) {}

func (p *staticPage) view(m *Model) string {
	switch p.kind {
	case staticContact:
		return m.styles.Title.Render("Contact us") + "\n\n" +
			"Email:  support@smartbuyr.example\n" +
			"Phone:  +1 (555) 010-0199\n" +
			"Hours:  Mon–Fri, 9am–6pm\n\n" +
			m.styles.Subtle.Render("We answer most messages within one business day.")
	case staticSizeGuide:
		return m.styles.Title.Render("Size guide") + "\n\n" +
			"Apparel sizes run true to the US standard.\n\n" +
			"  Size   Chest (in)   Waist (in)\n" +
			"  S      34–36        28–30\n" +
			"  M      38–40        32–34\n" +
			"  L      42–44        36–38\n" +
			"  XL     46–48        40–42\n\n" +
			m.styles.Subtle.Render("Between sizes? We recommend sizing up.")
	default:
		return m.styles.Title.Render("About SmartBuyr") + "\n\n" +
			"SmartBuyr curates electronics and everyday gear at honest prices.\n" +
			"Every product is hand-checked before it reaches the catalog, and\n" +
			"our recommendations come from what shoppers actually buy together.\n\n" +
			m.styles.Subtle.Render("Founded 2021 · Portland, OR")
	}
}
