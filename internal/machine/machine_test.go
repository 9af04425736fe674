package machine

import (
	"errors"
	"testing"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New(Dependencies{})

	assert.NotNil(t, m.keypad)
	assert.NotNil(t, m.random)
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, 0, m.StackDepth())
	assert.False(t, m.AwaitingKey())

	glyph, err := m.ReadMemory(FontAddress, FontGlyphSize)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xF0, 0x90, 0x90, 0x90, 0xF0}, glyph)
}

func TestReset(t *testing.T) {
	m, _, _ := newTestMachine()
	m.SetV(instruction.V3, 7)
	m.SetI(0x300)
	m.SetPC(0x400)
	loadWords(t, m, 0x200, 0x00E0)
	_, err := m.Apply(instruction.LdDtVx{X: instruction.V3})
	assert.NoError(t, err)

	m.Reset()

	assert.Equal(t, uint8(0), m.V(instruction.V3))
	assert.Equal(t, uint16(0), m.I())
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, uint8(0), m.DelayTimer())

	data, err := m.ReadMemory(ProgramStart, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0}, data)
}

func TestLoadProgram(t *testing.T) {
	m, _, _ := newTestMachine()

	assert.NoError(t, m.LoadProgram([]byte{0x12, 0x34}))
	word, err := m.Fetch()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x1234), word)

	assert.NoError(t, m.LoadProgram(make([]byte, MaxProgramSize)))

	err = m.LoadProgram(make([]byte, MaxProgramSize+1))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestFetch_OutOfBounds(t *testing.T) {
	m, _, _ := newTestMachine()

	m.SetPC(MemorySize - 2)
	_, err := m.Fetch()
	assert.NoError(t, err)

	m.SetPC(MemorySize - 1)
	_, err = m.Fetch()
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
}

func TestMemoryAccess_OutOfBounds(t *testing.T) {
	m, _, _ := newTestMachine()

	err := m.WriteMemory(MemorySize-1, []byte{1, 2})
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))

	_, err = m.ReadMemory(MemorySize-1, 2)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))

	_, err = m.ReadMemory(0, -1)
	assert.True(t, errors.Is(err, ErrMemoryOutOfBounds))
}

func TestTickTimers(t *testing.T) {
	m, _, _ := newTestMachine()
	m.SetV(instruction.V0, 2)
	m.SetV(instruction.V1, 1)

	_, err := m.Apply(instruction.LdDtVx{X: instruction.V0})
	assert.NoError(t, err)
	_, err = m.Apply(instruction.LdSt{X: instruction.V1})
	assert.NoError(t, err)
	assert.True(t, m.SoundActive())

	m.TickTimers()
	assert.Equal(t, uint8(1), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())
	assert.False(t, m.SoundActive())

	m.TickTimers()
	m.TickTimers()
	assert.Equal(t, uint8(0), m.DelayTimer())
	assert.Equal(t, uint8(0), m.SoundTimer())

	_, err = m.Apply(instruction.LdVxDt{X: instruction.V2})
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), m.V(instruction.V2))
}

func TestPseudoRandom(t *testing.T) {
	a := NewPseudoRandom(42)
	b := NewPseudoRandom(42)

	for range 16 {
		assert.Equal(t, a.Byte(), b.Byte())
	}
}
