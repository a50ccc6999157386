package render

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/jung-kurt/gofpdf"

	"github.com/techbeamdesigns/invoicer/internal/imageio"
)

// PDFSurface accumulates the same slots as every other surface and
// materializes an A4 invoice on demand. It backs the opaque print action.
// Output may be called from outside the editor loop, so slot state is
// guarded.
type PDFSurface struct {
	mu      sync.RWMutex
	texts   map[TextSlot]string
	images  map[ImageSlot]string
	visible map[ImageSlot]bool
	rows    []ItemRow
}

func NewPDFSurface() *PDFSurface {
	return &PDFSurface{
		texts:   make(map[TextSlot]string),
		images:  make(map[ImageSlot]string),
		visible: make(map[ImageSlot]bool),
	}
}

func (s *PDFSurface) SetText(slot TextSlot, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.texts[slot] = value
}

func (s *PDFSurface) SetImage(slot ImageSlot, src string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.images[slot] = src
}

func (s *PDFSurface) SetImageVisible(slot ImageSlot, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.visible[slot] = visible
}

func (s *PDFSurface) SetItems(rows []ItemRow) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows = append(s.rows[:0], rows...)
}

// Output writes the current slot state as a PDF document.
func (s *PDFSurface) Output(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice "+s.texts[SlotInvoiceNumber], true)
	pdf.AddPage()

	if s.visible[ImageLogo] {
		s.placeImage(pdf, ImageLogo, "logo", 150, 12, 40)
	}

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, s.texts[SlotInvoiceNumber])
	pdf.Ln(6)
	pdf.Cell(0, 6, "Date: "+s.texts[SlotDate])
	pdf.Ln(12)

	s.partyBlock(pdf, "From", SlotSenderName, SlotSenderEmail, SlotSenderAddress)
	s.partyBlock(pdf, "Bill To", SlotClientName, SlotClientEmail, SlotClientAddress)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(90, 8, "Item", "B", 0, "L", false, 0, "")
	pdf.CellFormat(20, 8, "Qty", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Price", "B", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Total", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)

	for _, row := range s.rows {
		pdf.CellFormat(90, 7, row.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, row.Quantity, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row.UnitPrice, "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row.LineTotal, "", 1, "R", false, 0, "")

		if row.SubDescription != "" {
			pdf.SetFont("Helvetica", "I", 8)
			pdf.CellFormat(90, 5, row.SubDescription, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 10)
		}
	}

	pdf.Ln(6)
	s.totalLine(pdf, "Subtotal", s.texts[SlotSubtotal], false)
	s.totalLine(pdf, fmt.Sprintf("Tax (%s%%)", s.texts[SlotTaxRate]), s.texts[SlotTaxAmount], false)
	s.totalLine(pdf, "Total", s.texts[SlotTotal], true)

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Payment")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)

	if upi := s.texts[SlotUPIID]; upi != "" {
		pdf.Cell(0, 5, "UPI: "+upi)
		pdf.Ln(5)
	}

	if s.visible[ImageQR] {
		s.placeImage(pdf, ImageQR, "qr", pdf.GetX()+2, pdf.GetY()+2, 30)
		pdf.Ln(34)
	}

	if notes := s.texts[SlotNotes]; notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.MultiCell(0, 5, notes, "", "L", false)
	}

	return pdf.Output(w)
}

func (s *PDFSurface) partyBlock(pdf *gofpdf.Fpdf, title string, name, email, address TextSlot) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, title)
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)

	for _, slot := range []TextSlot{name, email, address} {
		if v := s.texts[slot]; v != "" {
			pdf.Cell(0, 5, v)
			pdf.Ln(5)
		}
	}

	pdf.Ln(6)
}

func (s *PDFSurface) totalLine(pdf *gofpdf.Fpdf, label, value string, bold bool) {
	style := ""
	if bold {
		style = "B"
	}

	pdf.SetFont("Helvetica", style, 10)
	pdf.CellFormat(150, 7, label, "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, value, "", 1, "R", false, 0, "")
}

// placeImage embeds a data-URI image. Plain references (like the default QR
// file name) cannot be embedded and are rendered as text instead.
func (s *PDFSurface) placeImage(pdf *gofpdf.Fpdf, slot ImageSlot, name string, x, y, w float64) {
	src := s.images[slot]

	contentType, data, err := imageio.Decode(src)
	if err != nil {
		pdf.SetFont("Helvetica", "I", 8)
		pdf.Text(x, y+4, "["+src+"]")

		return
	}

	var imageType string

	switch contentType {
	case "image/png":
		imageType = "PNG"
	case "image/jpeg":
		imageType = "JPG"
	case "image/gif":
		imageType = "GIF"
	default:
		return
	}

	opts := gofpdf.ImageOptions{ImageType: imageType}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, 0, false, opts, 0, "")
}
