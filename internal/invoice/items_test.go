package invoice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
)

func newDocument() *invoice.Document {
	return invoice.NewDocument(invoice.Defaults{
		Currency:       "USD",
		TaxRatePercent: 10,
		QRImage:        "qr-code.jpg",
	})
}

func TestAddItem_AllocatesMonotonicIDs(t *testing.T) {
	doc := newDocument()
	require.Len(t, doc.Items, 2) // seeded sample items

	item := doc.AddItem()
	assert.Equal(t, 3, item.ID)
	assert.Equal(t, float64(1), item.Quantity)
	assert.Zero(t, item.UnitPrice)
	assert.Empty(t, item.Description)
}

func TestRemoveItem_DoesNotFreeIDs(t *testing.T) {
	doc := newDocument()

	third := doc.AddItem().ID
	require.Equal(t, 3, third)

	before := append([]invoice.LineItem(nil), doc.Items[:2]...)

	// Removing the highest id must not make it available again.
	require.True(t, doc.RemoveItem(third))
	assert.Equal(t, before, doc.Items)

	next := doc.AddItem()
	assert.Equal(t, 4, next.ID)
}

func TestRemoveItem_KeepsOrderAndIDs(t *testing.T) {
	doc := newDocument()
	doc.AddItem()

	require.True(t, doc.RemoveItem(2))

	ids := make([]int, len(doc.Items))
	for i, it := range doc.Items {
		ids[i] = it.ID
	}

	assert.Equal(t, []int{1, 3}, ids)
	assert.False(t, doc.RemoveItem(2), "second removal is a no-op")
}

func TestUpdateItemField(t *testing.T) {
	type testCase struct {
		name  string
		field invoice.ItemField
		raw   string
		check func(t *testing.T, it invoice.LineItem)
	}

	tests := []testCase{
		{
			name:  "Description",
			field: invoice.FieldDescription,
			raw:   "Consulting",
			check: func(t *testing.T, it invoice.LineItem) {
				assert.Equal(t, "Consulting", it.Description)
			},
		},
		{
			name:  "Quantity",
			field: invoice.FieldQuantity,
			raw:   "2.5",
			check: func(t *testing.T, it invoice.LineItem) {
				assert.Equal(t, 2.5, it.Quantity)
			},
		},
		{
			name:  "MalformedQuantityDegradesToZero",
			field: invoice.FieldQuantity,
			raw:   "abc",
			check: func(t *testing.T, it invoice.LineItem) {
				assert.Zero(t, it.Quantity)
			},
		},
		{
			name:  "EmptyPriceDegradesToZero",
			field: invoice.FieldUnitPrice,
			raw:   "",
			check: func(t *testing.T, it invoice.LineItem) {
				assert.Zero(t, it.UnitPrice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := newDocument()
			require.True(t, doc.UpdateItemField(1, tt.field, tt.raw))
			tt.check(t, doc.Items[0])
		})
	}
}

func TestUpdateItemField_MissingIDIsNoOp(t *testing.T) {
	doc := newDocument()
	before := append([]invoice.LineItem(nil), doc.Items...)

	assert.False(t, doc.UpdateItemField(999, invoice.FieldQuantity, "5"))
	assert.Equal(t, before, doc.Items)
}
