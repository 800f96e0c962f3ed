package colour

import (
	"fmt"
	"math"
)

// HSL is a colour in the hue/saturation/lightness space.
// H is in degrees [0, 360), S and L are in [0, 1].
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// HSL converts the RGB channels to HSL. Alpha is ignored.
// The result is recomputed on every call.
func (c Color) HSL() HSL {
	r := float64(c.R) / MaxChannel
	g := float64(c.G) / MaxChannel
	b := float64(c.B) / MaxChannel

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	// Lightness.
	l := (maxVal + minVal) / 2

	// Saturation.
	var s float64
	switch {
	case l == 0 || l == 1:
		s = 0
	case l <= 0.5:
		s = delta / (2 * l)
	default:
		s = delta / (2 * (1 - l))
	}

	// Hue. Red wins ties with green and blue, green wins ties with blue.
	var h float64
	if delta != 0 {
		switch maxVal {
		case r:
			h = math.Mod((g-b)/delta, 6)
			if h < 0 {
				h += 6
			}
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
		h *= 60
		if h >= 360 {
			h -= 360
		}
	}

	return HSL{H: h, S: s, L: l}
}

// WithSaturation returns a copy of c whose saturation is replaced by s while
// hue, lightness and alpha are taken from c. Channels are truncated toward
// zero, not rounded. A saturation outside [0, 1] can push a channel out of
// bounds, in which case the error wraps ErrOutOfRange.
func (c Color) WithSaturation(s float64) (Color, error) {
	hsl := c.HSL()

	chroma := (1 - math.Abs(2*hsl.L-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(hsl.H/60, 2)-1))
	m := hsl.L - chroma/2

	r, g, b := sectorComponents(hsl.H, chroma, x)

	out, err := New(
		int(MaxChannel*(r+m)),
		int(MaxChannel*(g+m)),
		int(MaxChannel*(b+m)),
		int(c.A),
	)
	if err != nil {
		return Color{}, fmt.Errorf("saturation %g: %w", s, err)
	}
	return out, nil
}

// sectorComponents picks the pre-offset RGB triple for the 60 degree hue
// sector containing h. Anything from 300 upwards falls into the last sector.
func sectorComponents(h, chroma, x float64) (r, g, b float64) {
	switch {
	case h < 60:
		return chroma, x, 0
	case h < 120:
		return x, chroma, 0
	case h < 180:
		return 0, chroma, x
	case h < 240:
		return 0, x, chroma
	case h < 300:
		return x, 0, chroma
	default:
		return chroma, 0, x
	}
}
