package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

const previewWidth = 62

// Theme is a presentation-only style selection for the terminal surface.
// It lives outside the Document; switching themes does not touch state.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemeMono    Theme = "mono"
)

// TextSurface renders the preview as a bordered terminal pane. Slot writes
// only update internal state; String composes the pane on demand, so the
// same slot state always yields the same output.
type TextSurface struct {
	theme   Theme
	texts   map[TextSlot]string
	images  map[ImageSlot]string
	visible map[ImageSlot]bool
	rows    []ItemRow
}

func NewTextSurface(theme Theme) *TextSurface {
	return &TextSurface{
		theme:   theme,
		texts:   make(map[TextSlot]string),
		images:  make(map[ImageSlot]string),
		visible: make(map[ImageSlot]bool),
	}
}

func (t *TextSurface) SetText(slot TextSlot, value string) { t.texts[slot] = value }

func (t *TextSurface) SetImage(slot ImageSlot, src string) { t.images[slot] = src }

func (t *TextSurface) SetImageVisible(slot ImageSlot, visible bool) { t.visible[slot] = visible }

func (t *TextSurface) SetItems(rows []ItemRow) {
	t.rows = append(t.rows[:0], rows...)
}

// SetTheme switches the presentation style for subsequent String calls.
func (t *TextSurface) SetTheme(theme Theme) { t.theme = theme }

func (t *TextSurface) accent() lipgloss.Style {
	if t.theme == ThemeMono {
		return lipgloss.NewStyle().Bold(true)
	}

	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
}

func (t *TextSurface) faint() lipgloss.Style {
	return lipgloss.NewStyle().Faint(true)
}

// String builds the full preview pane from the current slot state.
func (t *TextSurface) String() string {
	var b strings.Builder

	accent := t.accent()
	faint := t.faint()

	b.WriteString(accent.Render("INVOICE") + "  " + t.texts[SlotInvoiceNumber] + "\n")
	b.WriteString(faint.Render("Date: "+t.texts[SlotDate]) + "\n")

	if t.visible[ImageLogo] {
		b.WriteString(faint.Render(imageMarker("logo", t.images[ImageLogo])) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(accent.Render("From") + "\n")
	b.WriteString(t.texts[SlotSenderName] + "\n")
	writeNonEmpty(&b, t.texts[SlotSenderEmail])
	writeNonEmpty(&b, t.texts[SlotSenderAddress])

	b.WriteString("\n")
	b.WriteString(accent.Render("Bill To") + "\n")
	b.WriteString(t.texts[SlotClientName] + "\n")
	writeNonEmpty(&b, t.texts[SlotClientEmail])
	writeNonEmpty(&b, t.texts[SlotClientAddress])

	b.WriteString("\n")
	b.WriteString(accent.Render("Items") + "\n")

	for _, row := range t.rows {
		b.WriteString(fmt.Sprintf("%-30s %6s  %10s  %10s\n",
			truncate(row.Name, 30), row.Quantity, row.UnitPrice, row.LineTotal))

		if row.SubDescription != "" {
			b.WriteString(faint.Render("  "+truncate(row.SubDescription, 56)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%-40s %s\n", "Subtotal", t.texts[SlotSubtotal]))
	b.WriteString(fmt.Sprintf("%-40s %s\n", "Tax ("+t.texts[SlotTaxRate]+"%)", t.texts[SlotTaxAmount]))
	b.WriteString(accent.Render(fmt.Sprintf("%-40s %s", "Total", t.texts[SlotTotal])) + "\n")

	b.WriteString("\n")
	b.WriteString(accent.Render("Payment") + "\n")

	if upi := t.texts[SlotUPIID]; upi != "" {
		b.WriteString("UPI: " + upi + "\n")
	}

	if t.visible[ImageQR] {
		b.WriteString(faint.Render(imageMarker("qr", t.images[ImageQR])) + "\n")
	}

	if t.texts[SlotNotes] != "" {
		b.WriteString("\n" + faint.Render(truncate(t.texts[SlotNotes], previewWidth)) + "\n")
	}

	return lipgloss.NewStyle().
		Width(previewWidth).
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(b.String())
}

// imageMarker summarizes an image source without dumping a whole data URI
// into the terminal.
func imageMarker(label, src string) string {
	if src == "" {
		return "[" + label + "]"
	}

	if strings.HasPrefix(src, "data:") {
		head, _, _ := strings.Cut(src, ";")
		return fmt.Sprintf("[%s: %s, %d bytes]", label, strings.TrimPrefix(head, "data:"), len(src))
	}

	return fmt.Sprintf("[%s: %s]", label, src)
}

func writeNonEmpty(b *strings.Builder, s string) {
	if s != "" {
		b.WriteString(s + "\n")
	}
}

// truncate counts runes, not bytes, so accented text never gets cut through
// a multi-byte sequence.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}

	runes := []rune(s)

	return string(runes[:max-1]) + "…"
}
