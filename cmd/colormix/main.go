// colormix - create a new colour from a list of colour codes
//
// colormix reads hex and "r,g,b,a" colour codes from its arguments and from a
// sidecar text file, then mixes them into a new colour.
package main

import (
	"os"

	"github.com/jmylchreest/colormix/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
