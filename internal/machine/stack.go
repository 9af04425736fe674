package machine

import "fmt"

// StackSize is the number of return addresses the call stack can hold.
const StackSize = 16

// stack is a fixed capacity call stack, sp is always in [0, StackSize].
type stack struct {
	entries [StackSize]uint16
	sp      int
}

func (s *stack) push(addr uint16) error {
	if s.sp == StackSize {
		return fmt.Errorf("%w: call to subroutine with %d return addresses stored", ErrStackOverflow, s.sp)
	}
	s.entries[s.sp] = addr
	s.sp++
	return nil
}

func (s *stack) pop() (uint16, error) {
	if s.sp == 0 {
		return 0, fmt.Errorf("%w: return without active subroutine", ErrStackUnderflow)
	}
	s.sp--
	return s.entries[s.sp], nil
}

func (s *stack) reset() {
	*s = stack{}
}
