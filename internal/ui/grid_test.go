package ui

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncateCountsRunes(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))
	assert.Equal(t, "long…", truncate("longer", 5))

	// multi-byte names must never be cut mid-rune
	got := truncate("Kaffeemaschine Größe XL ☕☕☕", 24)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, 24, len([]rune(got)))
	assert.Equal(t, "Kaffeemaschine Größe XL…", got)

	got = truncate("ééééé", 3)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "éé…", got)
}
