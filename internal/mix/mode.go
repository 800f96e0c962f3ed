// Package mix derives new colours from a list of input colours.
package mix

// Mode selects how a list of colours is combined.
type Mode int

const (
	// ModeMix averages every channel, truncating toward zero.
	ModeMix Mode = iota
	// ModeLowest takes the per-channel minimum.
	ModeLowest
	// ModeHighest takes the per-channel maximum.
	ModeHighest
	// ModeMixSaturate rewrites the last colour's saturation to the mean
	// saturation of the colours before it.
	ModeMixSaturate
)

// DefaultMode is used when a mode name is not recognised.
const DefaultMode = ModeMix

var modeNames = map[Mode]string{
	ModeMix:         "mix",
	ModeLowest:      "lowest",
	ModeHighest:     "highest",
	ModeMixSaturate: "mix-saturate",
}

// String returns the mode name as accepted by ParseMode.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return modeNames[DefaultMode]
}

// ProducesNew reports whether the mode yields a colour distinct from the inputs.
// ModeMixSaturate replaces the last input instead.
func (m Mode) ProducesNew() bool {
	return m != ModeMixSaturate
}

// ParseMode maps a name to a Mode. Matching is exact and case-sensitive;
// anything unrecognised falls back to DefaultMode without an error.
func ParseMode(name string) Mode {
	switch name {
	case "mix":
		return ModeMix
	case "lowest":
		return ModeLowest
	case "highest":
		return ModeHighest
	case "mix-saturate":
		return ModeMixSaturate
	default:
		return DefaultMode
	}
}

// Modes returns every mode in declaration order.
func Modes() []Mode {
	return []Mode{ModeMix, ModeLowest, ModeHighest, ModeMixSaturate}
}
