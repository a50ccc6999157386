package csvitems

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount accepts both plain decimals ("1500", "12.50") and European
// formatting ("1.234,56").
func parseAmount(s string) (float64, error) {
	clean := strings.TrimSpace(s)

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	f, _ := d.Float64()

	return f, nil
}
