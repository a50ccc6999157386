package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techbeamdesigns/invoicer/internal/money"
)

func TestFormat_Deterministic(t *testing.T) {
	f := money.NewFormatter("en-US")

	first := f.Format(2200, "USD")
	second := f.Format(2200, "USD")

	assert.Equal(t, first, second)
	assert.Contains(t, first, "2,200")
}

func TestFormat_UnknownCurrencyFallsBackToUSD(t *testing.T) {
	f := money.NewFormatter("en-US")

	assert.Equal(t, f.Format(10, "USD"), f.Format(10, "ZZZ"))
}

func TestFormat_RoundsFloatArtifacts(t *testing.T) {
	f := money.NewFormatter("en-US")

	// 0.1 + 0.2 must render identically to 0.3.
	assert.Equal(t, f.Format(0.3, "USD"), f.Format(0.1+0.2, "USD"))
}

func TestNewFormatter_BadLocaleFallsBack(t *testing.T) {
	broken := money.NewFormatter("not a locale")
	enUS := money.NewFormatter("en-US")

	assert.Equal(t, enUS.Format(1234.56, "USD"), broken.Format(1234.56, "USD"))
}

func TestFormat_PerCurrency(t *testing.T) {
	f := money.NewFormatter("en-US")

	usd := f.Format(99.5, "USD")
	eur := f.Format(99.5, "EUR")

	assert.NotEqual(t, usd, eur, "different currencies render differently")
	assert.Contains(t, usd, "99.50")
}
