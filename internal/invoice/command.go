package invoice

// Command is one field-set mutation. Each addressable field has its own
// variant carrying a typed payload; everything dispatches through
// Document.Apply. Commands cannot fail: degenerate input resolves to a
// defined default instead of an error.
type Command interface {
	apply(d *Document)
}

// Apply executes a single mutation command against the document.
func (d *Document) Apply(cmd Command) {
	cmd.apply(d)
}

// PartyRole selects which Party a party command targets.
type PartyRole string

const (
	RoleSender PartyRole = "sender"
	RoleClient PartyRole = "client"
)

func (d *Document) party(role PartyRole) *Party {
	if role == RoleClient {
		return &d.Client
	}

	return &d.Sender
}

type SetInvoiceNumber struct{ Value string }

func (c SetInvoiceNumber) apply(d *Document) { d.InvoiceNumber = c.Value }

type SetDate struct{ Value string }

func (c SetDate) apply(d *Document) { d.Date = c.Value }

type SetCurrency struct{ Value string }

func (c SetCurrency) apply(d *Document) { d.Currency = c.Value }

type SetNotes struct{ Value string }

func (c SetNotes) apply(d *Document) { d.Notes = c.Value }

type SetUPIID struct{ Value string }

func (c SetUPIID) apply(d *Document) { d.Payment.UPIID = c.Value }

// SetTaxRate carries the raw text from the tax rate field; it coerces
// permissively like every numeric edit.
type SetTaxRate struct{ Raw string }

func (c SetTaxRate) apply(d *Document) { d.TaxRatePercent = ParseNumber(c.Raw) }

type SetPartyName struct {
	Role  PartyRole
	Value string
}

func (c SetPartyName) apply(d *Document) { d.party(c.Role).Name = c.Value }

type SetPartyEmail struct {
	Role  PartyRole
	Value string
}

func (c SetPartyEmail) apply(d *Document) { d.party(c.Role).Email = c.Value }

type SetPartyAddress struct {
	Role  PartyRole
	Value string
}

func (c SetPartyAddress) apply(d *Document) { d.party(c.Role).Address = c.Value }

type SetLogoImage struct{ Source string }

func (c SetLogoImage) apply(d *Document) { d.LogoImage = c.Source }

// ClearLogo removes the logo entirely; the preview hides the logo element.
type ClearLogo struct{}

func (c ClearLogo) apply(d *Document) { d.LogoImage = "" }

type SetQRImage struct{ Source string }

func (c SetQRImage) apply(d *Document) { d.Payment.QRImage = c.Source }

// ResetQR reverts the payment QR to its configured default reference. The
// QR is asymmetric to the logo: it always has a presentable value.
type ResetQR struct{}

func (c ResetQR) apply(d *Document) { d.Payment.QRImage = d.Payment.DefaultQRImage }
