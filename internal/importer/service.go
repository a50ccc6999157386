package importer

import (
	"fmt"
	"io"

	"github.com/techbeamdesigns/invoicer/internal/importer/csvitems"
	"github.com/techbeamdesigns/invoicer/internal/invoice"
)

type Service struct {
	csvParser Parser
}

func NewService() *Service {
	return &Service{
		csvParser: csvitems.New(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]invoice.ItemParams, int, error) {
	var parser Parser

	switch format {
	case FormatCSV:
		parser = s.csvParser
	default:
		return nil, 0, fmt.Errorf("unknown format: %s", format)
	}

	return parser.Parse(r)
}
