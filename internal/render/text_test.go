package render

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exactly-10", truncate("exactly-10", 10))
	assert.Equal(t, "too long …", truncate("too long indeed", 10))
}

func TestTruncate_CutsOnRuneBoundaries(t *testing.T) {
	s := strings.Repeat("café crème brûlée ", 4)

	cut := truncate(s, 20)

	assert.True(t, utf8.ValidString(cut), "truncation must not split a multi-byte rune")
	assert.Equal(t, 20, utf8.RuneCountInString(cut))
	assert.True(t, strings.HasSuffix(cut, "…"))
}

func TestTextSurface_AccentedNotesStayValidUTF8(t *testing.T) {
	surface := NewTextSurface(ThemeClassic)
	surface.SetText(SlotNotes, strings.Repeat("Paiement sous 14 jours. Merci été ", 4))

	assert.True(t, utf8.ValidString(surface.String()))
}
