// Package file reads colour codes from a line-delimited text file.
package file

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// DefaultPath is the sidecar file read when no other path is configured.
const DefaultPath = "colors.txt"

// Source reads colour codes from a text file, one code per line.
type Source struct {
	path string
}

// New creates a Source for path. An empty path means DefaultPath.
func New(path string) *Source {
	if path == "" {
		path = DefaultPath
	}
	return &Source{path: path}
}

// Name returns the source name.
func (s *Source) Name() string {
	return "file"
}

// Path returns the file the source reads.
func (s *Source) Path() string {
	return s.path
}

// Load returns the non-blank lines of the file. A missing file yields no
// codes and no error.
func (s *Source) Load() ([]string, error) {
	data, err := os.ReadFile(s.path) // #nosec G304 - User-specified input file, intended to be read
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read colour file: %w", err)
	}

	return parseLines(string(data)), nil
}

// ReadCodes returns the non-blank lines of r with surrounding whitespace removed.
// Lines have no length limit; validating them is left to the caller.
func ReadCodes(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parseLines(string(data)), nil
}

func parseLines(content string) []string {
	var codes []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		codes = append(codes, line)
	}
	return codes
}
