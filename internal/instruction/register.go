package instruction

import "fmt"

// Register is the index of one of the 16 general purpose registers V0-VF.
type Register uint8

// General purpose registers.
const (
	V0 Register = iota
	V1
	V2
	V3
	V4
	V5
	V6
	V7
	V8
	V9
	VA
	VB
	VC
	VD
	VE
	VF
)

// Flag is the register that carry, borrow, shift and collision results are written to.
const Flag = VF

// RegisterCount is the number of general purpose registers.
const RegisterCount = 16

// String returns the assembler name of the register.
func (r Register) String() string {
	return fmt.Sprintf("V%X", uint8(r))
}
