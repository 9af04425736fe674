// Package machine implements the CHIP-8 execution state machine.
//
// A Machine owns all CPU state: the general purpose registers, the address
// register, the timers, the program counter, the call stack, the memory and
// the display. It applies one decoded instruction at a time. Fetching,
// decoding, advancing the program counter and pacing the timers are left to
// the driving loop:
//
//	word, err := m.Fetch()
//	ins, err := instruction.Decode(word)
//	m.Advance()
//	effects, err := m.Apply(ins)
//
// The machine is not safe for concurrent use.
package machine

import (
	"fmt"
	"time"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Memory layout constants.
const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 0x1000
	// ProgramStart is the address that programs are loaded to and executed from.
	ProgramStart = 0x200
	// MaxProgramSize is the maximum size of a program in bytes.
	MaxProgramSize = MemorySize - ProgramStart
	// FontAddress is the address of the built-in hexadecimal font.
	FontAddress = 0x000
	// FontGlyphSize is the size of a single font glyph in bytes.
	FontGlyphSize = 5
)

// font contains the glyphs for the hexadecimal digits 0-F, each glyph is
// 4 pixels wide and 5 rows high.
var font = [16 * FontGlyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// Machine contains the complete state of a CHIP-8 virtual machine.
type Machine struct {
	v          [instruction.RegisterCount]uint8
	i          uint16
	pc         uint16
	delayTimer uint8
	soundTimer uint8

	stack   stack
	memory  [MemorySize]byte
	display Display

	keypad Keypad
	random RandomSource
	wait   keyWait
}

// keyWait is the state of a pending wait for a key press.
type keyWait struct {
	active bool
	held   [KeyCount]bool // keys held down since the wait started
}

// SideEffects describes the observable effects of an applied instruction.
type SideEffects struct {
	// DisplayChanged is set when the display buffer was modified.
	DisplayChanged bool
	// ProgramCounterSet is set when the instruction replaced the default
	// advance of the program counter by a jump, call, return or skip.
	ProgramCounterSet bool
	// WaitingForKey is set while a wait for a key press is pending. The
	// program counter points to the waiting instruction again so that the
	// next cycle re-evaluates it.
	WaitingForKey bool
}

// New returns a new machine in its reset state.
func New(deps Dependencies) *Machine {
	m := &Machine{
		keypad: deps.Keypad,
		random: deps.Random,
	}
	if m.keypad == nil {
		m.keypad = releasedKeypad{}
	}
	if m.random == nil {
		m.random = NewPseudoRandom(uint64(time.Now().UnixNano()))
	}
	m.Reset()
	return m
}

// Reset clears all state, loads the font and sets the program counter to
// the program start. The collaborators are kept.
func (m *Machine) Reset() {
	m.v = [instruction.RegisterCount]uint8{}
	m.i = 0
	m.pc = ProgramStart
	m.delayTimer = 0
	m.soundTimer = 0
	m.stack.reset()
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontAddress:], font[:])
	m.display.Clear()
	m.wait = keyWait{}
}

// LoadProgram copies the program into memory at the program start.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) > MaxProgramSize {
		return fmt.Errorf("%w: %d bytes exceed the maximum of %d bytes", ErrProgramTooLarge, len(program), MaxProgramSize)
	}
	copy(m.memory[ProgramStart:], program)
	return nil
}

// WriteMemory copies data into memory starting at the given address.
func (m *Machine) WriteMemory(address uint16, data []byte) error {
	mem, err := m.memoryRange(address, len(data))
	if err != nil {
		return err
	}
	copy(mem, data)
	return nil
}

// ReadMemory returns a copy of size bytes of memory starting at the given address.
func (m *Machine) ReadMemory(address uint16, size int) ([]byte, error) {
	mem, err := m.memoryRange(address, size)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	copy(data, mem)
	return data, nil
}

// Fetch returns the instruction word at the program counter.
func (m *Machine) Fetch() (uint16, error) {
	mem, err := m.memoryRange(m.pc, instruction.Size)
	if err != nil {
		return 0, fmt.Errorf("fetching instruction: %w", err)
	}
	return uint16(instruction.NewWord(mem[0], mem[1])), nil
}

// Advance moves the program counter to the next instruction.
func (m *Machine) Advance() {
	m.pc += instruction.Size
}

// TickTimers decrements the delay and sound timers if they are not zero.
// It is called by the driving loop at a fixed rate of 60 Hz.
func (m *Machine) TickTimers() {
	if m.delayTimer > 0 {
		m.delayTimer--
	}
	if m.soundTimer > 0 {
		m.soundTimer--
	}
}

// V returns the value of a general purpose register.
func (m *Machine) V(r instruction.Register) uint8 {
	return m.v[r&0xF]
}

// SetV sets the value of a general purpose register.
func (m *Machine) SetV(r instruction.Register, value uint8) {
	m.v[r&0xF] = value
}

// I returns the address register.
func (m *Machine) I() uint16 { return m.i }

// SetI sets the address register.
func (m *Machine) SetI(address uint16) { m.i = address }

// PC returns the program counter.
func (m *Machine) PC() uint16 { return m.pc }

// SetPC sets the program counter.
func (m *Machine) SetPC(address uint16) { m.pc = address }

// DelayTimer returns the delay timer register.
func (m *Machine) DelayTimer() uint8 { return m.delayTimer }

// SoundTimer returns the sound timer register.
func (m *Machine) SoundTimer() uint8 { return m.soundTimer }

// SoundActive returns whether a tone should be played.
func (m *Machine) SoundActive() bool { return m.soundTimer > 0 }

// StackDepth returns the number of return addresses on the call stack.
func (m *Machine) StackDepth() int { return m.stack.sp }

// Display returns the display buffer.
func (m *Machine) Display() *Display { return &m.display }

// AwaitingKey returns whether the machine waits for a key press.
func (m *Machine) AwaitingKey() bool { return m.wait.active }

// memoryRange returns the memory slice of size bytes starting at address.
func (m *Machine) memoryRange(address uint16, size int) ([]byte, error) {
	end := int(address) + size
	if size < 0 || end > MemorySize {
		return nil, fmt.Errorf("%w: %d bytes at address $%04X", ErrMemoryOutOfBounds, size, address)
	}
	return m.memory[address:end], nil
}
