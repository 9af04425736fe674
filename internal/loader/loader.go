// Package loader handles program file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/machine"
)

// ErrEmptyProgram is returned for program files without content.
var ErrEmptyProgram = errors.New("empty program")

// Target receives the loaded program.
type Target interface {
	LoadProgram(program []byte) error
}

// Loader handles loading program files from disk.
type Loader struct{}

// New creates a new program loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the program file and loads it into the target.
func (l *Loader) Load(fileName string, target Target) error {
	file, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("opening file %s: %w", fileName, err)
	}
	defer func() { _ = file.Close() }()

	// read one byte more than fits to detect oversized programs
	data, err := io.ReadAll(io.LimitReader(file, machine.MaxProgramSize+1))
	if err != nil {
		return fmt.Errorf("reading file %s: %w", fileName, err)
	}
	return l.LoadFromBytes(data, target)
}

// LoadFromBytes loads an in-memory program into the target.
func (l *Loader) LoadFromBytes(data []byte, target Target) error {
	if len(data) == 0 {
		return ErrEmptyProgram
	}
	if err := target.LoadProgram(data); err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	return nil
}
