package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders monetary amounts for one display locale. Only monetary
// values are localized; the rest of the document shows raw field values.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter builds a formatter for the given BCP 47 locale tag, falling
// back to en-US when the tag does not parse.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}

	return &Formatter{printer: message.NewPrinter(tag)}
}

// Format renders an amount in the given ISO 4217 currency. Unknown codes
// fall back to USD rather than failing; output is deterministic per
// (amount, code) pair.
func (f *Formatter) Format(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		unit = currency.USD
	}

	// Pre-round to the currency's cash convention so float artifacts never
	// reach the rendered string.
	scale, _ := currency.Cash.Rounding(unit)
	rounded, _ := decimal.NewFromFloat(amount).Round(int32(scale)).Float64()

	return f.printer.Sprint(currency.Symbol(unit.Amount(rounded)))
}
