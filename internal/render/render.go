package render

import (
	"strconv"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/money"
)

//go:generate mockgen -source=render.go -destination=surface_mock.go -package=render

// TextSlot addresses one scalar text position on a preview surface.
type TextSlot int

const (
	SlotInvoiceNumber TextSlot = iota
	SlotDate
	SlotSenderName
	SlotSenderEmail
	SlotSenderAddress
	SlotClientName
	SlotClientEmail
	SlotClientAddress
	SlotNotes
	SlotTaxRate
	SlotUPIID
	SlotSubtotal
	SlotTaxAmount
	SlotTotal
)

// ImageSlot addresses one image position on a preview surface.
type ImageSlot int

const (
	ImageLogo ImageSlot = iota
	ImageQR
)

// ItemRow is one fully formatted line-item row. SubDescription is empty
// when the row has none; surfaces omit the element in that case.
type ItemRow struct {
	Name           string
	SubDescription string
	Quantity       string
	UnitPrice      string
	LineTotal      string
}

// Surface is a render target with settable text, image and visibility
// slots. Implementations must apply updates synchronously and without
// failure.
type Surface interface {
	SetText(slot TextSlot, value string)
	SetImage(slot ImageSlot, src string)
	SetImageVisible(slot ImageSlot, visible bool)
	SetItems(rows []ItemRow)
}

// Pipeline projects Document state onto every attached surface. A render is
// always complete: images, scalars, item rows and totals are written in one
// synchronous pass, so no surface can observe stale totals next to fresh
// items.
type Pipeline struct {
	formatter *money.Formatter
	surfaces  []Surface
}

func NewPipeline(formatter *money.Formatter, surfaces ...Surface) *Pipeline {
	return &Pipeline{formatter: formatter, surfaces: surfaces}
}

// Attach adds another surface to subsequent renders.
func (p *Pipeline) Attach(s Surface) {
	p.surfaces = append(p.surfaces, s)
}

// Render re-materializes the full preview from the given document. Given
// the same document state it produces identical output every time.
func (p *Pipeline) Render(doc *invoice.Document) {
	totals := invoice.ComputeTotals(doc.Items, doc.TaxRatePercent)

	for _, s := range p.surfaces {
		p.renderTo(s, doc, totals)
	}
}

func (p *Pipeline) renderTo(s Surface, doc *invoice.Document, totals invoice.Totals) {
	// Logo is shown only when present.
	if doc.LogoImage != "" {
		s.SetImage(ImageLogo, doc.LogoImage)
		s.SetImageVisible(ImageLogo, true)
	} else {
		s.SetImage(ImageLogo, "")
		s.SetImageVisible(ImageLogo, false)
	}

	// Payment block; the QR always has a presentable reference.
	s.SetText(SlotUPIID, doc.Payment.UPIID)
	s.SetImage(ImageQR, doc.Payment.QRImage)
	s.SetImageVisible(ImageQR, true)

	// Scalar fields. Party names fall back to placeholders; every other
	// field shows its raw value, empty string included.
	s.SetText(SlotInvoiceNumber, doc.InvoiceNumber)
	s.SetText(SlotDate, doc.Date)
	s.SetText(SlotSenderName, fallback(doc.Sender.Name, "Company Name"))
	s.SetText(SlotSenderEmail, doc.Sender.Email)
	s.SetText(SlotSenderAddress, doc.Sender.Address)
	s.SetText(SlotClientName, fallback(doc.Client.Name, "Client Name"))
	s.SetText(SlotClientEmail, doc.Client.Email)
	s.SetText(SlotClientAddress, doc.Client.Address)
	s.SetText(SlotNotes, doc.Notes)
	s.SetText(SlotTaxRate, FormatNumber(doc.TaxRatePercent))

	// Item rows are rebuilt wholesale from the current sequence.
	rows := make([]ItemRow, len(doc.Items))
	for i, it := range doc.Items {
		rows[i] = ItemRow{
			Name:           fallback(it.Description, "Item"),
			SubDescription: it.SubDescription,
			Quantity:       FormatNumber(it.Quantity),
			UnitPrice:      p.formatter.Format(it.UnitPrice, doc.Currency),
			LineTotal:      p.formatter.Format(it.Quantity*it.UnitPrice, doc.Currency),
		}
	}
	s.SetItems(rows)

	// Totals last, from the same snapshot as the rows above.
	s.SetText(SlotSubtotal, p.formatter.Format(totals.Subtotal, doc.Currency))
	s.SetText(SlotTaxAmount, p.formatter.Format(totals.TaxAmount, doc.Currency))
	s.SetText(SlotTotal, p.formatter.Format(totals.Total, doc.Currency))
}

// FormatNumber renders a plain (non-monetary) number the way it was typed,
// without trailing zeros.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func fallback(value, placeholder string) string {
	if value == "" {
		return placeholder
	}

	return value
}
