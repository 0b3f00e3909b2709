package color_test

import (
	"fmt"
	"testing"

	"color-api/core/color"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  color.RGB
	}{
		{"Long form", "FF5733", color.RGB{R: 255, G: 87, B: 51}},
		{"Long form with hash", "#FFFFFF", color.RGB{R: 255, G: 255, B: 255}},
		{"Black", "000000", color.RGB{R: 0, G: 0, B: 0}},
		{"Lowercase", "ff5733", color.RGB{R: 255, G: 87, B: 51}},
		{"Mixed case", "Ff5733", color.RGB{R: 255, G: 87, B: 51}},
		{"Shorthand", "F0F", color.RGB{R: 255, G: 0, B: 255}},
		{"Shorthand with hash", "#03F", color.RGB{R: 0, G: 51, B: 255}},
		{"Green", "00FF00", color.RGB{R: 0, G: 255, B: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := color.ParseHex(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHex_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty", ""},
		{"Hash only", "#"},
		{"Non hex digits", "GGGGGG"},
		{"Too short", "FF"},
		{"Four digits", "FFFF"},
		{"Five digits", "FFFFF"},
		{"Seven digits", "FFFFFFF"},
		{"Double hash", "##FFFFFF"},
		{"Double hash shorthand", "##FFF"},
		{"Embedded dash", "FF-733"},
		{"Embedded space", "FF 733"},
		{"Leading space", " FFFFFF"},
		{"Trailing newline", "FFF\n"},
		{"Non ASCII", "FFé"},
		{"Word", "INVALID"},
		{"Hash in middle", "FFF#FF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := color.ParseHex(tt.input)
			assert.ErrorIs(t, err, color.ErrInvalidHex)
			assert.Equal(t, color.RGB{}, got)
			assert.False(t, color.IsValidHex(tt.input))
		})
	}
}

func TestParseHex_ShorthandMatchesLongForm(t *testing.T) {
	short, err := color.ParseHex("03F")
	require.NoError(t, err)
	long, err := color.ParseHex("0033FF")
	require.NoError(t, err)

	assert.Equal(t, long, short)
	assert.Equal(t, color.RGB{R: 0, G: 51, B: 255}, short)
}

func TestParseHex_AllChannelValues(t *testing.T) {
	for v := 0; v < 256; v++ {
		input := fmt.Sprintf("%02x%02X%02x", v, v, 255-v)
		got, err := color.ParseHex(input)
		require.NoError(t, err, input)
		assert.Equal(t, uint8(v), got.R)
		assert.Equal(t, uint8(v), got.G)
		assert.Equal(t, uint8(255-v), got.B)
	}
}

func TestRGB_CSS(t *testing.T) {
	assert.Equal(t, "rgb(255, 87, 51)", color.RGB{R: 255, G: 87, B: 51}.CSS())
	assert.Equal(t, "rgb(0, 0, 0)", color.RGB{}.CSS())
}

func TestNormalizeHex(t *testing.T) {
	assert.Equal(t, "#FF5733", color.NormalizeHex("FF5733"))
	assert.Equal(t, "#FF5733", color.NormalizeHex("#FF5733"))
	assert.Equal(t, "#f0f", color.NormalizeHex("f0f"))
	assert.Equal(t, color.NormalizeHex("abc"), color.NormalizeHex(color.NormalizeHex("abc")))
}
