package importer

import (
	"io"

	"github.com/techbeamdesigns/invoicer/internal/invoice"
)

// Format names a supported item-file layout.
type Format string

const (
	FormatCSV Format = "csv"
)

type Parser interface {
	// Parse reads every usable row, reporting how many malformed rows were
	// skipped. Malformed rows are never fatal.
	Parse(r io.Reader) (items []invoice.ItemParams, skipped int, err error)
}
