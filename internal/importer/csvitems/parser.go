// Package csvitems parses semicolon-separated item files of the form
//
//	description;sub-description;quantity;unit price
//
// with an optional header row. Files may arrive in legacy charsets, so the
// content is decoded to UTF-8 before parsing.
package csvitems

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/techbeamdesigns/invoicer/internal/encoding"
	"github.com/techbeamdesigns/invoicer/internal/invoice"
)

type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]invoice.ItemParams, int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("reading item file: %w", err)
	}

	decoded, err := encoding.DecodeUTF8(raw)
	if err != nil {
		return nil, 0, err
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var items []invoice.ItemParams

	skipped := 0

	for i := 0; ; i++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}

		if err != nil {
			skipped++
			continue
		}

		item, ok := parseRecord(record)
		if !ok {
			// The first unusable row is usually a header, not data.
			if i > 0 {
				skipped++
			}

			continue
		}

		items = append(items, item)
	}

	return items, skipped, nil
}

func parseRecord(record []string) (invoice.ItemParams, bool) {
	if len(record) < 4 {
		return invoice.ItemParams{}, false
	}

	qty, err := parseAmount(record[2])
	if err != nil {
		return invoice.ItemParams{}, false
	}

	price, err := parseAmount(record[3])
	if err != nil {
		return invoice.ItemParams{}, false
	}

	desc := strings.TrimSpace(record[0])
	if desc == "" {
		return invoice.ItemParams{}, false
	}

	return invoice.ItemParams{
		Description:    desc,
		SubDescription: strings.TrimSpace(record[1]),
		Quantity:       qty,
		UnitPrice:      price,
	}, true
}
