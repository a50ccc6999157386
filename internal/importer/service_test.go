package importer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/importer"
)

func TestImport_CSV(t *testing.T) {
	svc := importer.NewService()

	items, skipped, err := svc.Import(importer.FormatCSV, strings.NewReader("Design;;1;1500\n"))
	require.NoError(t, err)

	assert.Zero(t, skipped)
	require.Len(t, items, 1)
	assert.Equal(t, "Design", items[0].Description)
}

func TestImport_UnknownFormat(t *testing.T) {
	svc := importer.NewService()

	_, _, err := svc.Import(importer.Format("xlsx"), strings.NewReader(""))

	assert.ErrorContains(t, err, "unknown format")
}
