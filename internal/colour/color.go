// Package colour provides the RGBA colour value used by colormix, together with
// its parsers, formatters and RGB/HSL conversions.
package colour

import (
	"errors"
	"fmt"
)

// Channel bounds. Every channel of a Color lies in [MinChannel, MaxChannel].
const (
	MinChannel = 0
	MaxChannel = 255
)

var (
	// ErrOutOfRange is returned when a channel value falls outside [0, 255].
	ErrOutOfRange = errors.New("channel value out of range")

	// ErrInvalidFormat is returned when a colour code matches neither the hex
	// nor the RGB grammar.
	ErrInvalidFormat = errors.New("invalid colour format")
)

// RangeError reports which channel failed the bounds check at construction.
type RangeError struct {
	Channel string
	Value   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s value %d must be within range [%d, %d]", e.Channel, e.Value, MinChannel, MaxChannel)
}

// Unwrap allows errors.Is(err, ErrOutOfRange).
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// Color is a four channel colour. The zero value is transparent black.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// New validates the four channels and returns the colour they describe.
// Channels are checked in red, green, blue, alpha order and the first
// failure is reported.
func New(red, green, blue, alpha int) (Color, error) {
	channels := []struct {
		name  string
		value int
	}{
		{"red", red},
		{"green", green},
		{"blue", blue},
		{"alpha", alpha},
	}
	for _, ch := range channels {
		if ch.value < MinChannel || ch.value > MaxChannel {
			return Color{}, &RangeError{Channel: ch.name, Value: ch.value}
		}
	}

	return Color{R: uint8(red), G: uint8(green), B: uint8(blue), A: uint8(alpha)}, nil
}

// MustNew is like New but panics on invalid input. Intended for literals.
func MustNew(red, green, blue, alpha int) Color {
	c, err := New(red, green, blue, alpha)
	if err != nil {
		panic(err)
	}
	return c
}

// Channels returns the channels as plain integers.
func (c Color) Channels() (r, g, b, a int) {
	return int(c.R), int(c.G), int(c.B), int(c.A)
}
