package invoice

// ItemParams carries the fields of a line item that has not been given an
// id yet, e.g. one parsed from an imported file.
type ItemParams struct {
	Description    string
	SubDescription string
	Quantity       float64
	UnitPrice      float64
}
