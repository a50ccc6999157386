package invoice

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseNumber coerces raw field input into a float64. Malformed or empty
// input degrades to 0 instead of failing; edits must never reject a
// keystroke.
func ParseNumber(raw string) float64 {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}

	f, _ := d.Float64()

	return f
}
