package color

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidHex is returned when a candidate is not a 3 or 6 digit hex color code.
var ErrInvalidHex = errors.New("invalid hex color code")

// RGB holds the red, green and blue channels of a color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// CSS renders the color as a CSS rgb() function, e.g. "rgb(255, 87, 51)".
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex decodes a hex color code into its RGB channels.
// At most one leading '#' is stripped, so "##FFFFFF" is rejected.
func ParseHex(candidate string) (RGB, error) {
	h := strings.TrimPrefix(candidate, "#")

	var digits [6]byte
	switch len(h) {
	case 6:
		for i := 0; i < 6; i++ {
			v, ok := nibble(h[i])
			if !ok {
				return RGB{}, ErrInvalidHex
			}
			digits[i] = v
		}
	case 3:
		// Shorthand: each digit is duplicated, "03F" -> "0033FF".
		for i := 0; i < 3; i++ {
			v, ok := nibble(h[i])
			if !ok {
				return RGB{}, ErrInvalidHex
			}
			digits[2*i] = v
			digits[2*i+1] = v
		}
	default:
		return RGB{}, ErrInvalidHex
	}

	return RGB{
		R: digits[0]<<4 | digits[1],
		G: digits[2]<<4 | digits[3],
		B: digits[4]<<4 | digits[5],
	}, nil
}

// IsValidHex reports whether ParseHex would accept the candidate.
func IsValidHex(candidate string) bool {
	_, err := ParseHex(candidate)
	return err == nil
}

// NormalizeHex returns the candidate with exactly one leading '#' added when missing.
// Digits are echoed as supplied.
func NormalizeHex(candidate string) string {
	if strings.HasPrefix(candidate, "#") {
		return candidate
	}
	return "#" + candidate
}

// nibble decodes a single ASCII hex digit.
func nibble(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	default:
		return 0, false
	}
}
