// Package color converts hexadecimal color codes into their red, green and blue components.
//
// Two shapes are accepted, each optionally preceded by a single '#':
//   - Long form: six hex digits (e.g. "FF5733").
//   - Short form: three hex digits, each duplicated on expansion (e.g. "03F" -> "0033FF").
//
// Digits are case-insensitive. Anything else is rejected with ErrInvalidHex.
//
// # Usage
//
//	rgb, err := color.ParseHex("#F0F")
//	if errors.Is(err, color.ErrInvalidHex) {
//	    // reject the input
//	}
//	fmt.Println(rgb.CSS()) // rgb(255, 0, 255)
//
// All functions are pure and safe for concurrent use.
package color
