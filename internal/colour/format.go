package colour

import (
	"fmt"
	"strings"
)

// Hex returns the colour as "#rrggbbaa". Alpha is always included.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Tuple returns the channels as "(r,g,b,a)".
func (c Color) Tuple() string {
	return fmt.Sprintf("(%d,%d,%d,%d)", c.R, c.G, c.B, c.A)
}

// String returns the multi-line report used by the text output.
func (c Color) String() string {
	hsl := c.HSL()

	var sb strings.Builder
	sb.WriteString("Color:\n")
	fmt.Fprintf(&sb, "\tRGBA: %s\n", c.Tuple())
	fmt.Fprintf(&sb, "\tHEX: %s\n", c.Hex())
	fmt.Fprintf(&sb, "\tHue: %.2f\n", hsl.H)
	fmt.Fprintf(&sb, "\tSaturation: %.4f\n", hsl.S)
	fmt.Fprintf(&sb, "\tLightness: %.4f", hsl.L)
	return sb.String()
}
