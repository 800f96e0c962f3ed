package colour

import (
	"encoding/json"
)

// Palette is an ordered list of colours.
type Palette struct {
	Colours []Color
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colours []Color) *Palette {
	return &Palette{
		Colours: colours,
	}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colours)
}

// ColourJSON represents a colour in JSON output format.
type ColourJSON struct {
	Hex  string `json:"hex"`
	RGBA Color  `json:"rgba"`
	HSL  HSL    `json:"hsl"`
}

// NewColourJSON builds the JSON view of c.
func NewColourJSON(c Color) ColourJSON {
	return ColourJSON{Hex: c.Hex(), RGBA: c, HSL: c.HSL()}
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count   int          `json:"count"`
	Colours []ColourJSON `json:"colours"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	return json.MarshalIndent(p.JSON(), "", "  ")
}

// JSON returns the palette's JSON view without encoding it.
func (p *Palette) JSON() PaletteJSON {
	colours := make([]ColourJSON, len(p.Colours))
	for i, c := range p.Colours {
		colours[i] = NewColourJSON(c)
	}
	return PaletteJSON{
		Count:   len(p.Colours),
		Colours: colours,
	}
}
