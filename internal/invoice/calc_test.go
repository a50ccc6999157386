package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
)

func TestComputeTotals(t *testing.T) {
	type testCase struct {
		name    string
		items   []invoice.LineItem
		taxRate float64
		want    invoice.Totals
	}

	tests := []testCase{
		{
			name: "TwoItemsWithTax",
			items: []invoice.LineItem{
				{ID: 1, Quantity: 1, UnitPrice: 1500},
				{ID: 2, Quantity: 5, UnitPrice: 100},
			},
			taxRate: 10,
			want:    invoice.Totals{Subtotal: 2000, TaxAmount: 200, Total: 2200},
		},
		{
			name:    "EmptyItems",
			items:   nil,
			taxRate: 10,
			want:    invoice.Totals{},
		},
		{
			name: "ZeroTaxRate",
			items: []invoice.LineItem{
				{ID: 1, Quantity: 2, UnitPrice: 49.5},
			},
			taxRate: 0,
			want:    invoice.Totals{Subtotal: 99, TaxAmount: 0, Total: 99},
		},
		{
			name: "NegativeQuantityPropagates",
			items: []invoice.LineItem{
				{ID: 1, Quantity: -2, UnitPrice: 100},
				{ID: 2, Quantity: 1, UnitPrice: 300},
			},
			taxRate: 10,
			want:    invoice.Totals{Subtotal: 100, TaxAmount: 10, Total: 110},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := invoice.ComputeTotals(tt.items, tt.taxRate)

			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.TaxAmount, got.TaxAmount, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestComputeTotals_Invariant(t *testing.T) {
	items := []invoice.LineItem{
		{ID: 1, Quantity: 3, UnitPrice: 19.99},
		{ID: 2, Quantity: 0.5, UnitPrice: 240},
		{ID: 3, Quantity: 7, UnitPrice: 0},
	}

	got := invoice.ComputeTotals(items, 23)

	var subtotal float64
	for _, it := range items {
		subtotal += it.Quantity * it.UnitPrice
	}

	assert.InDelta(t, subtotal, got.Subtotal, 1e-9)
	assert.InDelta(t, subtotal*0.23, got.TaxAmount, 1e-9)
	assert.InDelta(t, got.Subtotal+got.TaxAmount, got.Total, 1e-9)
}
