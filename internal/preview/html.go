package preview

import (
	"fmt"
	"html/template"
	"io"
	"sync"

	"github.com/techbeamdesigns/invoicer/internal/render"
)

// HTMLSurface projects the preview slots onto a printable HTML page served
// by the embedded preview server. The TUI event loop is the only writer;
// HTTP handlers only read rendered snapshots, hence the lock.
type HTMLSurface struct {
	mu      sync.RWMutex
	theme   string
	texts   map[render.TextSlot]string
	images  map[render.ImageSlot]string
	visible map[render.ImageSlot]bool
	rows    []render.ItemRow
}

func NewHTMLSurface(theme string) *HTMLSurface {
	return &HTMLSurface{
		theme:   theme,
		texts:   make(map[render.TextSlot]string),
		images:  make(map[render.ImageSlot]string),
		visible: make(map[render.ImageSlot]bool),
	}
}

func (h *HTMLSurface) SetText(slot render.TextSlot, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.texts[slot] = value
}

func (h *HTMLSurface) SetImage(slot render.ImageSlot, src string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.images[slot] = src
}

func (h *HTMLSurface) SetImageVisible(slot render.ImageSlot, visible bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible[slot] = visible
}

func (h *HTMLSurface) SetItems(rows []render.ItemRow) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = append(h.rows[:0], rows...)
}

// SetTheme switches the page's CSS class. Presentation only, no document
// state involved.
func (h *HTMLSurface) SetTheme(theme string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.theme = theme
}

type pageData struct {
	Theme         string
	InvoiceNumber string
	Date          string
	LogoVisible   bool
	LogoSrc       template.URL
	SenderName    string
	SenderEmail   string
	SenderAddress string
	ClientName    string
	ClientEmail   string
	ClientAddress string
	Rows          []render.ItemRow
	Subtotal      string
	TaxRate       string
	TaxAmount     string
	Total         string
	UPIID         string
	QRSrc         template.URL
	Notes         string
}

// WriteTo renders the current snapshot as a full HTML page.
func (h *HTMLSurface) WriteTo(w io.Writer) error {
	h.mu.RLock()
	data := pageData{
		Theme:         h.theme,
		InvoiceNumber: h.texts[render.SlotInvoiceNumber],
		Date:          h.texts[render.SlotDate],
		LogoVisible:   h.visible[render.ImageLogo],
		LogoSrc:       template.URL(h.images[render.ImageLogo]),
		SenderName:    h.texts[render.SlotSenderName],
		SenderEmail:   h.texts[render.SlotSenderEmail],
		SenderAddress: h.texts[render.SlotSenderAddress],
		ClientName:    h.texts[render.SlotClientName],
		ClientEmail:   h.texts[render.SlotClientEmail],
		ClientAddress: h.texts[render.SlotClientAddress],
		Rows:          append([]render.ItemRow(nil), h.rows...),
		Subtotal:      h.texts[render.SlotSubtotal],
		TaxRate:       h.texts[render.SlotTaxRate],
		TaxAmount:     h.texts[render.SlotTaxAmount],
		Total:         h.texts[render.SlotTotal],
		UPIID:         h.texts[render.SlotUPIID],
		QRSrc:         template.URL(h.images[render.ImageQR]),
		Notes:         h.texts[render.SlotNotes],
	}
	h.mu.RUnlock()

	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("rendering preview page: %w", err)
	}

	return nil
}

var pageTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Invoice {{.InvoiceNumber}}</title>
<style>
body { font-family: sans-serif; max-width: 52rem; margin: 2rem auto; color: #222; }
body.mono { font-family: monospace; color: #000; }
header { display: flex; justify-content: space-between; align-items: flex-start; }
header img { max-height: 5rem; }
table { width: 100%; border-collapse: collapse; margin: 1.5rem 0; }
th, td { text-align: left; padding: 0.4rem 0.6rem; border-bottom: 1px solid #ddd; }
td.num, th.num { text-align: right; }
.sub { font-size: 0.8rem; color: #777; }
.totals { margin-left: auto; width: 16rem; }
.totals .grand { font-weight: bold; border-top: 2px solid #222; }
.payment img { max-height: 7rem; }
.notes { font-style: italic; color: #555; margin-top: 2rem; }
@media print { body { margin: 0; } }
</style>
</head>
<body class="{{.Theme}}">
<header>
  <div>
    <h1>INVOICE</h1>
    <p>{{.InvoiceNumber}}<br>{{.Date}}</p>
  </div>
  {{if .LogoVisible}}<img src="{{.LogoSrc}}" alt="logo">{{end}}
</header>
<section>
  <h3>From</h3>
  <p>{{.SenderName}}<br>{{.SenderEmail}}<br>{{.SenderAddress}}</p>
  <h3>Bill To</h3>
  <p>{{.ClientName}}<br>{{.ClientEmail}}<br>{{.ClientAddress}}</p>
</section>
<table>
  <tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Total</th></tr>
  {{range .Rows}}
  <tr>
    <td>{{.Name}}{{if .SubDescription}}<br><span class="sub">{{.SubDescription}}</span>{{end}}</td>
    <td class="num">{{.Quantity}}</td>
    <td class="num">{{.UnitPrice}}</td>
    <td class="num">{{.LineTotal}}</td>
  </tr>
  {{end}}
</table>
<table class="totals">
  <tr><td>Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
  <tr><td>Tax ({{.TaxRate}}%)</td><td class="num">{{.TaxAmount}}</td></tr>
  <tr class="grand"><td>Total</td><td class="num">{{.Total}}</td></tr>
</table>
<section class="payment">
  <h3>Payment</h3>
  <p>UPI: <span class="upi">{{.UPIID}}</span></p>
  <img src="{{.QRSrc}}" alt="payment QR">
</section>
{{if .Notes}}<p class="notes">{{.Notes}}</p>{{end}}
<script>
(function () {
  var ws = new WebSocket("ws://" + location.host + "/ws");
  ws.onmessage = function () { location.reload(); };
})();
</script>
</body>
</html>
`))
