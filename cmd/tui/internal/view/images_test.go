package view

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{
	0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
	0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52,
}

func TestIngestCmd_TagsEachRequest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(path, pngBytes, 0o644))

	first, ok := ingestCmd(targetLogo, path)().(ingestedMsg)
	require.True(t, ok)

	second, ok := ingestCmd(targetQR, path)().(ingestedMsg)
	require.True(t, ok)

	// Concurrent ingestions race last-write-wins; distinct request ids keep
	// the interleaving attributable in logs.
	assert.NotEqual(t, uuid.Nil, first.requestID)
	assert.NotEqual(t, uuid.Nil, second.requestID)
	assert.NotEqual(t, first.requestID, second.requestID)

	require.NoError(t, first.err)
	assert.Equal(t, targetLogo, first.target)
	assert.True(t, strings.HasPrefix(first.payload, "data:image/png;base64,"), first.payload)
	assert.Equal(t, targetQR, second.target)
}

func TestIngestCmd_MissingFileCarriesError(t *testing.T) {
	msg, ok := ingestCmd(targetLogo, filepath.Join(t.TempDir(), "nope.png"))().(ingestedMsg)
	require.True(t, ok)

	assert.Error(t, msg.err)
	assert.NotEqual(t, uuid.Nil, msg.requestID)
}
