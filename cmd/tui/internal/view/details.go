package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
	"github.com/techbeamdesigns/invoicer/internal/render"
	"github.com/techbeamdesigns/invoicer/internal/session"
)

// DetailsModel edits the scalar invoice fields. Every keystroke that
// changes a bound value is applied to the session immediately so the
// preview tracks the edit, not the form completion.
type DetailsModel struct {
	CommonModel
	sess *session.Session

	form    *huh.Form
	applied map[string]string
}

const (
	keyInvoiceNumber = "invoice_number"
	keyDate          = "date"
	keyCurrency      = "currency"
	keyTaxRate       = "tax_rate"
	keyUPIID         = "upi_id"
	keyNotes         = "notes"
)

func NewDetailsModel(sess *session.Session) DetailsModel {
	doc := sess.Document()

	initial := map[string]string{
		keyInvoiceNumber: doc.InvoiceNumber,
		keyDate:          doc.Date,
		keyCurrency:      doc.Currency,
		keyTaxRate:       render.FormatNumber(doc.TaxRatePercent),
		keyUPIID:         doc.Payment.UPIID,
		keyNotes:         doc.Notes,
	}

	invoiceNumber := initial[keyInvoiceNumber]
	date := initial[keyDate]
	currencyCode := initial[keyCurrency]
	taxRate := initial[keyTaxRate]
	upiID := initial[keyUPIID]
	notes := initial[keyNotes]

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key(keyInvoiceNumber).
				Title("Invoice Number").
				Value(&invoiceNumber),

			huh.NewInput().
				Key(keyDate).
				Title("Date (YYYY-MM-DD)").
				Value(&date),

			huh.NewSelect[string]().
				Key(keyCurrency).
				Title("Currency").
				Options(huh.NewOptions("USD", "EUR", "GBP", "INR", "JPY", "AUD")...).
				Value(&currencyCode),

			huh.NewInput().
				Key(keyTaxRate).
				Title("Tax Rate (%)").
				Value(&taxRate),

			huh.NewInput().
				Key(keyUPIID).
				Title("UPI ID").
				Value(&upiID),

			huh.NewText().
				Key(keyNotes).
				Title("Notes").
				Value(&notes),
		),
	).WithWidth(46).WithShowHelp(false)

	return DetailsModel{
		sess:    sess,
		form:    form,
		applied: initial,
	}
}

func (m DetailsModel) Title() string { return "Invoice Details" }

func (m DetailsModel) ShortHelp() string { return "Enter/Tab: next field | Esc: back" }

func (m DetailsModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m DetailsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	m.syncChanges()

	if m.form.State == huh.StateCompleted {
		return m, Back
	}

	return m, cmd
}

// syncChanges diffs the form values against what was last applied and
// routes each change through its field command.
func (m DetailsModel) syncChanges() {
	for key, apply := range detailCommands {
		value := m.form.GetString(key)
		if value == m.applied[key] {
			continue
		}

		m.sess.Apply(apply(value))
		m.applied[key] = value
	}
}

var detailCommands = map[string]func(string) invoice.Command{
	keyInvoiceNumber: func(v string) invoice.Command { return invoice.SetInvoiceNumber{Value: v} },
	keyDate:          func(v string) invoice.Command { return invoice.SetDate{Value: v} },
	keyCurrency:      func(v string) invoice.Command { return invoice.SetCurrency{Value: v} },
	keyTaxRate:       func(v string) invoice.Command { return invoice.SetTaxRate{Raw: v} },
	keyUPIID:         func(v string) invoice.Command { return invoice.SetUPIID{Value: v} },
	keyNotes:         func(v string) invoice.Command { return invoice.SetNotes{Value: v} },
}

func (m DetailsModel) View() string {
	return lipgloss.NewStyle().Padding(1).Render(
		m.form.View() + "\n" + faintStyle().Render(m.ShortHelp()),
	)
}
