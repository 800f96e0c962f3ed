package colour

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)

	// The grammar accepts groups above 255; New rejects them.
	rgbPattern = regexp.MustCompile(`^([0-9]{1,3},){3}[0-9]{1,3}$`)
)

// IsHex reports whether code has the shape of a hex colour code.
func IsHex(code string) bool {
	return hexPattern.MatchString(code)
}

// IsRGB reports whether code has the shape of an "r,g,b,a" colour code.
func IsRGB(code string) bool {
	return rgbPattern.MatchString(code)
}

// FromHex parses a hex colour code: an optional '#' followed by 3, 6 or 8 hex
// digits. Short codes are expanded by doubling each digit ("f0a" -> "ff00aa").
// Without an alpha pair the colour is fully opaque.
func FromHex(code string) (Color, error) {
	if !IsHex(code) {
		return Color{}, fmt.Errorf("%q is not a hex colour code: %w", code, ErrInvalidFormat)
	}

	digits := strings.ToLower(strings.TrimPrefix(code, "#"))
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	if len(digits) == 6 {
		digits += "ff"
	}

	var ch [4]int
	for i := range ch {
		v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", code, ErrInvalidFormat)
		}
		ch[i] = int(v)
	}

	return New(ch[0], ch[1], ch[2], ch[3])
}

// FromRGBString parses "r,g,b,a" where each group is one to three decimal digits.
// A group above 255 passes the grammar and fails with ErrOutOfRange.
func FromRGBString(code string) (Color, error) {
	if !IsRGB(code) {
		return Color{}, fmt.Errorf("%q is not an RGB colour code: %w", code, ErrInvalidFormat)
	}

	parts := strings.Split(code, ",")
	var ch [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Color{}, fmt.Errorf("%q: %w", code, ErrInvalidFormat)
		}
		ch[i] = v
	}

	return New(ch[0], ch[1], ch[2], ch[3])
}

// Parse accepts either a hex or an RGB colour code, trying hex first.
func Parse(code string) (Color, error) {
	switch {
	case IsHex(code):
		return FromHex(code)
	case IsRGB(code):
		return FromRGBString(code)
	default:
		return Color{}, fmt.Errorf("%q in wrong format: %w", code, ErrInvalidFormat)
	}
}
