package invoice

// ItemField addresses one editable field of a line item.
type ItemField string

const (
	FieldDescription    ItemField = "description"
	FieldSubDescription ItemField = "sub_description"
	FieldQuantity       ItemField = "quantity"
	FieldUnitPrice      ItemField = "unit_price"
)

// AddItem appends a fresh line item and returns a pointer to it. The id
// comes from a monotonic counter so an id freed by RemoveItem is never
// handed out again.
func (d *Document) AddItem() *LineItem {
	item := LineItem{
		ID:       d.nextItemID,
		Quantity: 1,
	}
	d.nextItemID++
	d.Items = append(d.Items, item)

	return &d.Items[len(d.Items)-1]
}

// UpdateItemField writes a raw field edit into the item with the given id.
// An unknown id is a silent no-op (the row may have just been removed) and
// reports false so callers can skip re-rendering. Quantity and unit price
// coerce via ParseNumber.
func (d *Document) UpdateItemField(id int, field ItemField, raw string) bool {
	item := d.item(id)
	if item == nil {
		return false
	}

	switch field {
	case FieldDescription:
		item.Description = raw
	case FieldSubDescription:
		item.SubDescription = raw
	case FieldQuantity:
		item.Quantity = ParseNumber(raw)
	case FieldUnitPrice:
		item.UnitPrice = ParseNumber(raw)
	}

	return true
}

// RemoveItem filters the item out by id, keeping the remaining order and
// ids untouched. Reports whether anything was removed.
func (d *Document) RemoveItem(id int) bool {
	kept := d.Items[:0]
	removed := false

	for _, it := range d.Items {
		if it.ID == id {
			removed = true
			continue
		}

		kept = append(kept, it)
	}

	d.Items = kept

	return removed
}

func (d *Document) item(id int) *LineItem {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}

	return nil
}
