package machine

import (
	"golang.org/x/exp/rand"
)

// KeyCount is the number of keys of the hexadecimal keypad.
const KeyCount = 16

// Keypad provides the current state of the hexadecimal keypad.
type Keypad interface {
	// Pressed returns whether the key 0x0-0xF is currently held down.
	Pressed(key uint8) bool
}

// RandomSource provides the random bytes for the rnd instruction.
type RandomSource interface {
	// Byte returns a uniformly distributed random byte.
	Byte() uint8
}

// Dependencies contains the collaborators of the machine.
// Nil fields are replaced by defaults: a keypad without any pressed key
// and a time seeded pseudo random source.
type Dependencies struct {
	Keypad Keypad
	Random RandomSource
}

type releasedKeypad struct{}

func (releasedKeypad) Pressed(uint8) bool { return false }

// PseudoRandom is a RandomSource backed by a seeded pseudo random generator.
type PseudoRandom struct {
	rnd *rand.Rand
}

// NewPseudoRandom returns a pseudo random source using the given seed.
func NewPseudoRandom(seed uint64) *PseudoRandom {
	return &PseudoRandom{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// Byte returns the next pseudo random byte.
func (p *PseudoRandom) Byte() uint8 {
	return uint8(p.rnd.Uint32())
}
