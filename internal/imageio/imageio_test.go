package imageio_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/imageio"
)

// Minimal valid PNG signature plus a few payload bytes; enough for content
// type sniffing.
var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
}

func TestIngest(t *testing.T) {
	payload := imageio.Ingest(pngBytes)

	assert.True(t, strings.HasPrefix(payload, "data:image/png;base64,"), payload)
}

func TestIngest_EmptyInputIsNoOp(t *testing.T) {
	assert.Empty(t, imageio.Ingest(nil))
	assert.Empty(t, imageio.Ingest([]byte{}))
}

func TestDecode_RoundTrip(t *testing.T) {
	payload := imageio.Ingest(pngBytes)

	contentType, data, err := imageio.Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, "image/png", contentType)
	assert.Equal(t, pngBytes, data)
}

func TestDecode_RejectsPlainReferences(t *testing.T) {
	_, _, err := imageio.Decode("qr-code.jpg")
	assert.Error(t, err)

	_, _, err = imageio.Decode("data:image/png;base64")
	assert.Error(t, err, "missing payload separator")
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o644))

	payload, err := imageio.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, imageio.Ingest(pngBytes), payload)
}

func TestFromFile_EmptyPathIsNoOp(t *testing.T) {
	payload, err := imageio.FromFile("")

	require.NoError(t, err)
	assert.Empty(t, payload)
}

func TestFromFile_MissingFile(t *testing.T) {
	_, err := imageio.FromFile(filepath.Join(t.TempDir(), "nope.png"))
	assert.Error(t, err)
}
