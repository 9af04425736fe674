package screen

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/assert"
)

// mockDisplay has only the pixels in the map set.
type mockDisplay map[[2]int]bool

func (d mockDisplay) Pixel(x, y int) bool {
	return d[[2]int{x, y}]
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, Options{On: 'X', Off: ' '})

	err := w.Write(mockDisplay{{0, 0}: true, {63, 31}: true})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, machine.DisplayHeight)
	assert.Equal(t, "X"+strings.Repeat(" ", machine.DisplayWidth-1), lines[0])
	assert.Equal(t, strings.Repeat(" ", machine.DisplayWidth-1)+"X", lines[machine.DisplayHeight-1])
}

func TestWrite_Border(t *testing.T) {
	var buf bytes.Buffer
	w := New(&buf, DefaultOptions())

	err := w.Write(mockDisplay{{1, 0}: true})
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	assert.Len(t, lines, machine.DisplayHeight+2)

	frame := "+" + strings.Repeat("-", machine.DisplayWidth) + "+"
	assert.Equal(t, frame, lines[0])
	assert.Equal(t, frame, lines[len(lines)-1])
	assert.Equal(t, "|.#"+strings.Repeat(".", machine.DisplayWidth-2)+"|", lines[1])
}

func TestWrite_MachineDisplay(t *testing.T) {
	m := machine.New(machine.Dependencies{})
	// glyph 0 of the built-in font at the top left corner
	m.SetI(machine.FontAddress)
	_, err := m.Apply(instruction.Drw{X: instruction.V0, Y: instruction.V0, N: machine.FontGlyphSize})
	assert.NoError(t, err)

	var buf bytes.Buffer
	w := New(&buf, Options{On: '#', Off: '.'})
	assert.NoError(t, w.Write(m.Display()))

	lines := strings.Split(buf.String(), "\n")
	assert.Equal(t, "####....", lines[0][:8])
	assert.Equal(t, "#..#....", lines[1][:8])
	assert.Equal(t, "####....", lines[4][:8])
	assert.Equal(t, "........", lines[5][:8])
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}

func TestWrite_Error(t *testing.T) {
	w := New(failingWriter{}, DefaultOptions())

	err := w.Write(mockDisplay{})
	assert.True(t, errors.Is(err, errWrite))
}
