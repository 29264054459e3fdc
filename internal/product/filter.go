package product

import "sort"

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortRelevance keeps the server-determined order untouched.
	SortRelevance SortKey = "relevance"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
)

// FilterConfig narrows and orders an already-fetched result set. Bounds are
// inclusive and applied independently, so an inverted range is allowed and
// simply yields nothing.
type FilterConfig struct {
	PriceMin  float64
	PriceMax  float64
	MinRating float64
	Sort      SortKey
}

// DefaultFilter returns the open configuration every page starts from.
func DefaultFilter() FilterConfig {
	return FilterConfig{PriceMin: 0, PriceMax: 25000, MinRating: 0, Sort: SortRelevance}
}

// Derive computes the displayed list from a raw result set. It is pure: the
// input slice is never modified, so the config can change repeatedly without
// refetching. All sorts are stable; ties keep their relative input order.
func Derive(raw []Product, cfg FilterConfig) []Product {
	out := make([]Product, 0, len(raw))
	for _, p := range raw {
		if p.Price < cfg.PriceMin || p.Price > cfg.PriceMax {
			continue
		}
		if cfg.MinRating > 0 && p.Rating < cfg.MinRating {
			continue
		}
		out = append(out, p)
	}

	switch cfg.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}
