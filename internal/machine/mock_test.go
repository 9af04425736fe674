package machine

import (
	"testing"

	"github.com/retroenv/retrochip8/internal/instruction"
	"github.com/retroenv/retrogolib/assert"
)

// mockKeypad is a keypad with keys set by the test.
type mockKeypad struct {
	keys [KeyCount]bool
}

func (k *mockKeypad) Pressed(key uint8) bool {
	return k.keys[key&0xF]
}

// fixedRandom returns the same byte for every request.
type fixedRandom struct {
	value uint8
	calls int
}

func (r *fixedRandom) Byte() uint8 {
	r.calls++
	return r.value
}

func newTestMachine() (*Machine, *mockKeypad, *fixedRandom) {
	keypad := &mockKeypad{}
	random := &fixedRandom{value: 0xFF}
	m := New(Dependencies{
		Keypad: keypad,
		Random: random,
	})
	return m, keypad, random
}

// loadWords writes the instruction words to memory starting at the address.
func loadWords(t *testing.T, m *Machine, address uint16, words ...uint16) {
	t.Helper()
	data := make([]byte, 0, len(words)*instruction.Size)
	for _, w := range words {
		data = append(data, byte(w>>8), byte(w))
	}
	assert.NoError(t, m.WriteMemory(address, data))
}

// step runs a single fetch, decode, advance and apply cycle.
func step(t *testing.T, m *Machine) (SideEffects, error) {
	t.Helper()
	word, err := m.Fetch()
	assert.NoError(t, err)
	ins, err := instruction.Decode(word)
	assert.NoError(t, err)
	m.Advance()
	return m.Apply(ins)
}
