// Package color provides the color sample value type: a hex color string
// together with the RGB, HSV and CIELAB representations derived from it.
package color

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseError reports an input string that failed hex color normalization.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid hex color %q: must be #RGB or #RRGGBB", e.Input)
}

// RGB holds 8-bit color channels.
type RGB struct {
	R, G, B uint8
}

// HSV holds a cylindrical representation of an RGB color.
// H is in degrees [0, 360); S and V are in [0, 1], the convention of the
// go-colorful conversion this package delegates to.
type HSV struct {
	H, S, V float64
}

// LAB holds CIELAB coordinates in the standard ranges: L in [0, 100],
// A and B roughly in [-128, 127]. go-colorful reports L*a*b* scaled down
// by 100; the constructor scales back up.
type LAB struct {
	L, A, B float64
}

// Color bundles a hex color string with its derived representations.
// All fields are set at construction and never mutated afterwards, so
// values are safe to share between goroutines.
type Color struct {
	Original string // input as supplied
	Hex      string // normalized 6-digit form, case preserved
	RGB      RGB
	HSV      HSV
	LAB      LAB
}

// New builds a Color from a hex string like "#abc" or "#AABBCC". The
// shorthand form expands by digit duplication. Any other input fails
// with a *ParseError; no partially converted Color is ever returned.
func New(input string) (Color, error) {
	hex, ok := normalizeHex(input)
	if !ok {
		return Color{}, &ParseError{Input: input}
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, &ParseError{Input: input}
	}

	r, g, b := c.RGB255()
	h, s, v := c.Hsv()
	labL, labA, labB := c.Lab()

	return Color{
		Original: input,
		Hex:      hex,
		RGB:      RGB{R: r, G: g, B: b},
		HSV:      HSV{H: h, S: s, V: v},
		LAB:      LAB{L: labL * 100, A: labA * 100, B: labB * 100},
	}, nil
}

// normalizeHex validates a #RRGGBB or #RGB string. The long form passes
// through unchanged; the short form expands each digit by duplication
// (#abc -> #aabbcc). Digit case is preserved either way.
func normalizeHex(s string) (string, bool) {
	if len(s) == 0 || s[0] != '#' {
		return "", false
	}
	digits := s[1:]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return "", false
		}
	}
	switch len(digits) {
	case 6:
		return s, true
	case 3:
		b := make([]byte, 0, 7)
		b = append(b, '#')
		for i := 0; i < 3; i++ {
			b = append(b, digits[i], digits[i])
		}
		return string(b), true
	default:
		return "", false
	}
}

func isHexDigit(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
