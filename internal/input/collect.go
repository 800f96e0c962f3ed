// Package input turns raw colour codes into colours.
package input

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/colormix/internal/colour"
)

// Failure records a code that could not be turned into a colour.
type Failure struct {
	Code string
	Err  error
}

// Collect parses every code in order. Codes that fail are skipped, logged at
// warn level and returned as failures; they never abort the rest.
func Collect(codes []string, logger hclog.Logger) ([]colour.Color, []Failure) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	colours := make([]colour.Color, 0, len(codes))
	var failures []Failure
	for _, code := range codes {
		c, err := colour.Parse(code)
		if err != nil {
			logger.Warn("cannot load colour", "code", code, "error", err)
			failures = append(failures, Failure{Code: code, Err: err})
			continue
		}
		logger.Debug("loaded colour", "code", code, "hex", c.Hex())
		colours = append(colours, c)
	}
	return colours, failures
}
