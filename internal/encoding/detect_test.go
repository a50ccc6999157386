package encoding_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbeamdesigns/invoicer/internal/encoding"
)

func TestDecodeUTF8(t *testing.T) {
	type testCase struct {
		name string
		data []byte
		want string
	}

	tests := []testCase{
		{
			name: "PlainASCII",
			data: []byte("Web Design;Landing page;1;1500"),
			want: "Web Design;Landing page;1;1500",
		},
		{
			name: "ValidUTF8PassesThrough",
			data: []byte("Hébergement;forfait année;12;20"),
			want: "Hébergement;forfait année;12;20",
		},
		{
			name: "UTF8BOMIsStripped",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("Design;;1;1500")...),
			want: "Design;;1;1500",
		},
		{
			name: "UTF16LittleEndian",
			data: []byte{0xFF, 0xFE, 'a', 0x00, ';', 0x00, 'b', 0x00},
			want: "a;b",
		},
		{
			name: "UTF16BigEndian",
			data: []byte{0xFE, 0xFF, 0x00, 'a', 0x00, ';', 0x00, 'b'},
			want: "a;b",
		},
		{
			name: "Windows1252Fallback",
			data: []byte("Caf\xe9 cr\xe8me;d\xe9tails du forfait;2;4,50"),
			want: "Café crème;détails du forfait;2;4,50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := encoding.DecodeUTF8(tt.data)

			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecodeUTF8_EmptyInput(t *testing.T) {
	got, err := encoding.DecodeUTF8(nil)

	require.NoError(t, err)
	assert.Empty(t, got)
}
