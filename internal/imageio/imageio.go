// Package imageio converts binary image files into self-contained
// text-encoded payloads that preview surfaces can use directly as an image
// source.
package imageio

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Ingest encodes raw image bytes as a data URI. Empty input returns an
// empty payload; callers treat that as "nothing selected" rather than an
// error. Any non-empty input encodes, the content type is sniffed.
func Ingest(data []byte) string {
	if len(data) == 0 {
		return ""
	}

	contentType := mimetype.Detect(data).String()

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// FromFile reads and ingests the file at path. An empty path is a no-op.
func FromFile(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading image file: %w", err)
	}

	return Ingest(data), nil
}

// Decode splits a data URI back into its content type and raw bytes. It
// fails for plain references like a bare file name.
func Decode(dataURI string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI: %q", dataURI)
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("malformed data URI")
	}

	contentType := strings.TrimSuffix(meta, ";base64")

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decoding image payload: %w", err)
	}

	return contentType, data, nil
}
