package mix

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/colormix/internal/colour"
)

var (
	// ErrNoColours is returned when an aggregation is asked to combine nothing.
	ErrNoColours = errors.New("no colours to combine")

	// ErrInsufficientInputs is returned by MixSaturate when fewer than two
	// colours are given. It is informational; the input is returned unchanged.
	ErrInsufficientInputs = errors.New("not enough colours")
)

// Result is the outcome of Apply.
type Result struct {
	// Colours is the input list, with the last slot replaced for ModeMixSaturate.
	Colours []colour.Color
	// New is the derived colour for modes where Mode.ProducesNew is true.
	New *colour.Color
}

// Apply combines colours according to mode. The input slice is never modified.
// For ModeMixSaturate with a single colour, the returned error wraps
// ErrInsufficientInputs and Result.Colours still holds a copy of the input.
func Apply(mode Mode, colours []colour.Color) (Result, error) {
	if len(colours) == 0 {
		return Result{}, ErrNoColours
	}

	var (
		derived colour.Color
		err     error
	)
	switch mode {
	case ModeMix:
		derived, err = Mix(colours)
	case ModeLowest:
		derived, err = Lowest(colours)
	case ModeHighest:
		derived, err = Highest(colours)
	case ModeMixSaturate:
		out, satErr := MixSaturate(colours)
		return Result{Colours: out}, satErr
	default:
		derived, err = Mix(colours)
	}
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", mode, err)
	}

	return Result{Colours: clone(colours), New: &derived}, nil
}

// Mix returns the per-channel integer average of colours.
func Mix(colours []colour.Color) (colour.Color, error) {
	if len(colours) == 0 {
		return colour.Color{}, ErrNoColours
	}

	var r, g, b, a int
	for _, c := range colours {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
		a += int(c.A)
	}
	n := len(colours)
	return colour.New(r/n, g/n, b/n, a/n)
}

// Lowest returns the per-channel minimum of colours. The result need not be
// one of the inputs.
func Lowest(colours []colour.Color) (colour.Color, error) {
	return reduce(colours, func(x, y uint8) uint8 { return min(x, y) })
}

// Highest returns the per-channel maximum of colours.
func Highest(colours []colour.Color) (colour.Color, error) {
	return reduce(colours, func(x, y uint8) uint8 { return max(x, y) })
}

func reduce(colours []colour.Color, pick func(x, y uint8) uint8) (colour.Color, error) {
	if len(colours) == 0 {
		return colour.Color{}, ErrNoColours
	}

	out := colours[0]
	for _, c := range colours[1:] {
		out.R = pick(out.R, c.R)
		out.G = pick(out.G, c.G)
		out.B = pick(out.B, c.B)
		out.A = pick(out.A, c.A)
	}
	return colour.New(int(out.R), int(out.G), int(out.B), int(out.A))
}

// MixSaturate returns a copy of colours whose last element has its saturation
// replaced by the mean saturation of all preceding elements. Hue, lightness
// and alpha of the last element are kept.
func MixSaturate(colours []colour.Color) ([]colour.Color, error) {
	out := clone(colours)
	if len(colours) < 2 {
		return out, fmt.Errorf("mix-saturate needs at least 2 colours, got %d: %w", len(colours), ErrInsufficientInputs)
	}

	head := colours[:len(colours)-1]
	var total float64
	for _, c := range head {
		total += c.HSL().S
	}
	avg := total / float64(len(head))

	last, err := colours[len(colours)-1].WithSaturation(avg)
	if err != nil {
		return nil, fmt.Errorf("mix-saturate: %w", err)
	}
	out[len(out)-1] = last
	return out, nil
}

func clone(colours []colour.Color) []colour.Color {
	out := make([]colour.Color, len(colours))
	copy(out, colours)
	return out
}
