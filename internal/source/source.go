// Package source loads the file to be parsed into an in-memory buffer.
package source

import (
	"fmt"
	"os"
)

// Buffer holds the complete contents of one input file together with the
// name it was loaded from. It is created once per run and never mutated.
type Buffer struct {
	Name string
	Src  []byte
}

// Load reads the file at path fully into memory. The benchmark is
// meaningless without its input, so callers treat a failure here as fatal.
func Load(path string) (*Buffer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return &Buffer{Name: path, Src: src}, nil
}
