package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(list []Product) []int {
	out := make([]int, 0, len(list))
	for _, p := range list {
		out = append(out, p.ID)
	}
	return out
}

func TestDeriveEmptyInput(t *testing.T) {
	assert.Empty(t, Derive(nil, DefaultFilter()))
	assert.Empty(t, Derive([]Product{}, FilterConfig{PriceMax: 10, Sort: SortRating}))
}

func TestDerivePriceRange(t *testing.T) {
	raw := []Product{
		{ID: 1, Price: 50},
		{ID: 2, Price: 150},
		{ID: 3, Price: 90},
	}
	cfg := FilterConfig{PriceMin: 0, PriceMax: 100, Sort: SortRelevance}

	got := Derive(raw, cfg)
	assert.Equal(t, []int{1, 3}, ids(got), "relevance keeps input order")
}

func TestDerivePriceBoundsInclusive(t *testing.T) {
	raw := []Product{{ID: 1, Price: 10}, {ID: 2, Price: 20}, {ID: 3, Price: 30}}
	got := Derive(raw, FilterConfig{PriceMin: 10, PriceMax: 30})
	assert.Len(t, got, 3)
}

func TestDeriveMinRating(t *testing.T) {
	raw := []Product{
		{ID: 1, Rating: 5},
		{ID: 2, Rating: 3},
		{ID: 3, Rating: 4},
	}
	got := Derive(raw, FilterConfig{PriceMax: 25000, MinRating: 4})
	assert.Equal(t, []int{1, 3}, ids(got))
}

func TestDeriveZeroRatingMeansNoFilter(t *testing.T) {
	raw := []Product{{ID: 1, Rating: 0}, {ID: 2, Rating: 2}}
	got := Derive(raw, DefaultFilter())
	assert.Len(t, got, 2)
}

func TestDeriveSortStability(t *testing.T) {
	raw := []Product{
		{ID: 1, Price: 100, Rating: 4},
		{ID: 2, Price: 50, Rating: 4},
		{ID: 3, Price: 100, Rating: 5},
		{ID: 4, Price: 75, Rating: 4},
	}
	cfg := DefaultFilter()

	cfg.Sort = SortPriceLow
	assert.Equal(t, []int{2, 4, 1, 3}, ids(Derive(raw, cfg)), "equal prices keep input order")

	cfg.Sort = SortPriceHigh
	assert.Equal(t, []int{1, 3, 4, 2}, ids(Derive(raw, cfg)))

	cfg.Sort = SortRating
	assert.Equal(t, []int{3, 1, 2, 4}, ids(Derive(raw, cfg)), "equal ratings keep input order")
}

func TestDeriveIdempotent(t *testing.T) {
	raw := []Product{
		{ID: 1, Price: 120, Rating: 3.5},
		{ID: 2, Price: 40, Rating: 4.8},
		{ID: 3, Price: 40, Rating: 4.1},
		{ID: 4, Price: 990, Rating: 2},
	}
	for _, key := range []SortKey{SortRelevance, SortPriceLow, SortPriceHigh, SortRating} {
		cfg := FilterConfig{PriceMin: 30, PriceMax: 500, MinRating: 3, Sort: key}
		once := Derive(raw, cfg)
		twice := Derive(once, cfg)
		require.Equal(t, once, twice, "derive must be idempotent under %s", key)
	}
}

func TestDeriveDoesNotMutateInput(t *testing.T) {
	raw := []Product{{ID: 3, Price: 30}, {ID: 1, Price: 10}, {ID: 2, Price: 20}}
	Derive(raw, FilterConfig{PriceMax: 100, Sort: SortPriceLow})
	assert.Equal(t, []int{3, 1, 2}, ids(raw))
}

func TestDeriveInvertedRangeYieldsEmpty(t *testing.T) {
	// priceMin > priceMax is allowed by the UI; the result is simply empty.
	raw := []Product{{ID: 1, Price: 50}}
	assert.Empty(t, Derive(raw, FilterConfig{PriceMin: 100, PriceMax: 10}))
}
