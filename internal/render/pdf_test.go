package render_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/money"
	"github.com/techbeamdesigns/invoicer/internal/render"
)

func TestPDFSurface_Output(t *testing.T) {
	surface := render.NewPDFSurface()
	render.NewPipeline(money.NewFormatter("en-US"), surface).Render(newDocument())

	var buf bytes.Buffer
	require.NoError(t, surface.Output(&buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output is a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestPDFSurface_OutputIsRepeatable(t *testing.T) {
	surface := render.NewPDFSurface()
	render.NewPipeline(money.NewFormatter("en-US"), surface).Render(newDocument())

	var first, second bytes.Buffer
	require.NoError(t, surface.Output(&first))
	require.NoError(t, surface.Output(&second))

	assert.Equal(t, first.Len(), second.Len(), "slot state is not consumed by Output")
}
