package invoice

// Totals are derived from the current items and tax rate. They are never
// stored; every render recomputes them in full.
type Totals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// ComputeTotals derives subtotal, tax amount and total. Negative or zero
// quantities and prices are accepted and propagate arithmetically; the
// editor is deliberately permissive about them.
func ComputeTotals(items []LineItem, taxRatePercent float64) Totals {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}

	tax := subtotal * taxRatePercent / 100

	return Totals{
		Subtotal:  subtotal,
		TaxAmount: tax,
		Total:     subtotal + tax,
	}
}
