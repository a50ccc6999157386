package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Party identifies one side of the invoice. It has no identity of its own
// beyond being contained in a Document.
type Party struct {
	Name    string
	Email   string
	Address string
}

// Payment holds the payment details shown on the invoice. QRImage always
// carries a presentable reference: clearing it reverts to DefaultQRImage
// rather than leaving it absent.
type Payment struct {
	UPIID          string
	QRImage        string
	DefaultQRImage string
}

// LineItem is one billable row. IDs are unique for the lifetime of the
// Document and are never reused, even after the item is removed.
type LineItem struct {
	ID             int
	Description    string
	SubDescription string
	Quantity       float64
	UnitPrice      float64
}

// Document is the complete in-memory invoice state for one editing session.
// It is owned by a single session controller and mutated in place; it is
// never persisted.
type Document struct {
	ID             uuid.UUID
	InvoiceNumber  string
	Date           string // ISO date (YYYY-MM-DD)
	Currency       string // ISO 4217 code
	LogoImage      string // data URI; empty means absent
	Payment        Payment
	Sender         Party
	Client         Party
	Items          []LineItem
	TaxRatePercent float64
	Notes          string

	nextItemID int
}

// Defaults seeds a fresh Document. Values typically come from configuration.
type Defaults struct {
	Currency       string
	TaxRatePercent float64
	UPIID          string
	QRImage        string
	Notes          string
}

// NewDocument builds the Document a new session starts from, pre-filled with
// two sample items so the preview is populated immediately.
func NewDocument(d Defaults) *Document {
	doc := &Document{
		ID:            uuid.New(),
		InvoiceNumber: "INV-001",
		Date:          time.Now().Format(time.DateOnly),
		Currency:      d.Currency,
		Payment: Payment{
			UPIID:          d.UPIID,
			QRImage:        d.QRImage,
			DefaultQRImage: d.QRImage,
		},
		TaxRatePercent: d.TaxRatePercent,
		Notes:          d.Notes,
		nextItemID:     1,
	}

	first := doc.AddItem()
	first.Description = "Web Design Project"
	first.SubDescription = "Homepage and Landing Page Design"
	first.UnitPrice = 1500

	second := doc.AddItem()
	second.Description = "SEO Optimization"
	second.SubDescription = "Keyword research and on-page optimization"
	second.Quantity = 5
	second.UnitPrice = 100

	return doc
}
