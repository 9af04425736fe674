// Package keypad provides a scripted keypad for headless machine runs.
package keypad

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retroenv/retrogolib/set"
)

// ErrInvalidPress is returned for key press definitions that can not be parsed.
var ErrInvalidPress = errors.New("invalid key press")

// Press defines a key that is held down for a range of cycles.
type Press struct {
	Key  uint8  // key 0x0-0xF
	At   uint64 // first cycle that the key is held down
	Hold uint64 // number of cycles the key is held down, 0 holds it forever
}

// active returns whether the press holds the key down in the given cycle.
func (p Press) active(cycle uint64) bool {
	if cycle < p.At {
		return false
	}
	return p.Hold == 0 || cycle-p.At < p.Hold
}

// Scripted is a keypad that presses keys at predefined cycles.
type Scripted struct {
	presses []Press
	held    set.Set[uint8]
}

// NewScripted returns a keypad that replays the given key presses.
func NewScripted(presses []Press) *Scripted {
	s := &Scripted{
		presses: presses,
	}
	s.SetCycle(0)
	return s
}

// SetCycle updates the held keys for the given cycle.
func (s *Scripted) SetCycle(cycle uint64) {
	held := set.New[uint8]()
	for _, p := range s.presses {
		if p.active(cycle) {
			held.Add(p.Key)
		}
	}
	s.held = held
}

// Pressed returns whether the key is held down in the current cycle.
func (s *Scripted) Pressed(key uint8) bool {
	return s.held.Contains(key)
}

// ParsePresses parses a comma separated list of key presses.
// Every entry has the format key[@cycle][+hold], the key is a hexadecimal
// digit, cycle and hold are decimal cycle counts. For example "5,a@100+30"
// holds key 5 from the start and key A for 30 cycles starting at cycle 100.
func ParsePresses(s string) ([]Press, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var presses []Press
	for _, entry := range strings.Split(s, ",") {
		press, err := parsePress(strings.TrimSpace(entry))
		if err != nil {
			return nil, err
		}
		presses = append(presses, press)
	}
	return presses, nil
}

func parsePress(entry string) (Press, error) {
	var press Press

	rest, hold, hasHold := strings.Cut(entry, "+")
	if hasHold {
		n, err := strconv.ParseUint(hold, 10, 64)
		if err != nil || n == 0 {
			return Press{}, fmt.Errorf("%w '%s': hold duration must be a positive number", ErrInvalidPress, entry)
		}
		press.Hold = n
	}

	key, at, hasAt := strings.Cut(rest, "@")
	if hasAt {
		n, err := strconv.ParseUint(at, 10, 64)
		if err != nil {
			return Press{}, fmt.Errorf("%w '%s': start cycle must be a number", ErrInvalidPress, entry)
		}
		press.At = n
	}

	if len(key) != 1 {
		return Press{}, fmt.Errorf("%w '%s': key must be a single hexadecimal digit", ErrInvalidPress, entry)
	}
	k, err := strconv.ParseUint(key, 16, 8)
	if err != nil {
		return Press{}, fmt.Errorf("%w '%s': key must be a single hexadecimal digit", ErrInvalidPress, entry)
	}
	press.Key = uint8(k)

	return press, nil
}
