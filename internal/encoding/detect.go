package encoding

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DecodeUTF8 converts file content of unknown charset to UTF-8. Item files
// come from spreadsheets and legacy exports, so Windows-1252 is the common
// non-UTF-8 case.
//
// Detection order:
//  1. BOM (UTF-8 BOM stripped; UTF-16 LE/BE decoded)
//  2. content already valid UTF-8
//  3. heuristic detection via chardet
//  4. fallback to Windows-1252
func DecodeUTF8(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return data[len(bomUTF8):], nil
	}

	if bytes.HasPrefix(data, bomUTF16LE) {
		return decodeWith(data, unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder())
	}

	if bytes.HasPrefix(data, bomUTF16BE) {
		return decodeWith(data, unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewDecoder())
	}

	if utf8.Valid(data) {
		return data, nil
	}

	detector := chardet.NewTextDetector()

	result, err := detector.DetectBest(data)
	if err == nil {
		switch result.Charset {
		case "UTF-8":
			return data, nil
		case "ISO-8859-9":
			return decodeWith(data, charmap.ISO8859_9.NewDecoder())
		}
	}

	return decodeWith(data, charmap.Windows1252.NewDecoder())
}

func decodeWith(data []byte, t transform.Transformer) ([]byte, error) {
	out, _, err := transform.Bytes(t, data)
	if err != nil {
		return nil, fmt.Errorf("decoding to UTF-8: %w", err)
	}

	return out, nil
}
