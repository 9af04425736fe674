package machine

import "errors"

var (
	// ErrStackOverflow is returned by a call with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned by a return with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnsupportedInstruction is returned for instructions that have no
	// defined effect on this machine, like native machine code calls.
	ErrUnsupportedInstruction = errors.New("unsupported instruction")
	// ErrMemoryOutOfBounds is returned when an instruction addresses memory
	// outside of the memory store.
	ErrMemoryOutOfBounds = errors.New("memory access out of bounds")
	// ErrInvalidRegister is returned for instructions with a register
	// operand outside of V0-VF.
	ErrInvalidRegister = errors.New("invalid register")
	// ErrProgramTooLarge is returned when a program does not fit into the
	// program area of the memory.
	ErrProgramTooLarge = errors.New("program too large")
)
