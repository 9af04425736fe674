// Package screen renders the machine display buffer as text.
package screen

import (
	"bytes"
	"fmt"
	"io"

	"github.com/retroenv/retrochip8/internal/machine"
)

// Display is the pixel source that gets rendered.
type Display interface {
	Pixel(x, y int) bool
}

// Options of the writer.
type Options struct {
	On     byte // character for set pixels
	Off    byte // character for unset pixels
	Border bool // draw a frame around the display
}

// DefaultOptions returns the default text rendering options.
func DefaultOptions() Options {
	return Options{
		On:     '#',
		Off:    '.',
		Border: true,
	}
}

// Writer writes text frames of a display.
type Writer struct {
	options Options
	writer  io.Writer
}

// New creates a new screen writer.
func New(writer io.Writer, options Options) *Writer {
	return &Writer{
		options: options,
		writer:  writer,
	}
}

// Write renders a single frame of the display.
func (w Writer) Write(display Display) error {
	var buf bytes.Buffer

	if w.options.Border {
		w.writeBorder(&buf)
	}
	for y := 0; y < machine.DisplayHeight; y++ {
		if w.options.Border {
			buf.WriteByte('|')
		}
		for x := 0; x < machine.DisplayWidth; x++ {
			if display.Pixel(x, y) {
				buf.WriteByte(w.options.On)
			} else {
				buf.WriteByte(w.options.Off)
			}
		}
		if w.options.Border {
			buf.WriteByte('|')
		}
		buf.WriteByte('\n')
	}
	if w.options.Border {
		w.writeBorder(&buf)
	}

	if _, err := w.writer.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

func (w Writer) writeBorder(buf *bytes.Buffer) {
	buf.WriteByte('+')
	buf.Write(bytes.Repeat([]byte{'-'}, machine.DisplayWidth))
	buf.WriteString("+\n")
}
