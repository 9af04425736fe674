package instruction

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Size is the size of a CHIP-8 instruction in bytes.
const Size = 2

// ErrUnknownOpcode is returned for instruction words that match no opcode family.
var ErrUnknownOpcode = errors.New("unknown opcode")

// DecodeError describes an instruction word that could not be decoded.
type DecodeError struct {
	Word uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s $%04X", ErrUnknownOpcode, e.Word)
}

func (e *DecodeError) Unwrap() error {
	return ErrUnknownOpcode
}

// Word is a raw big endian 16-bit instruction word.
type Word uint16

// NewWord returns the instruction word made of the two given memory bytes.
func NewWord(high, low byte) Word {
	return Word(high)<<8 | Word(low)
}

// Op returns the opcode family nibble (bits 12-15).
func (w Word) Op() uint8 { return uint8(w >> 12) }

// X returns the first register operand (bits 8-11).
func (w Word) X() Register { return Register((w >> 8) & 0xF) }

// Y returns the second register operand (bits 4-7).
func (w Word) Y() Register { return Register((w >> 4) & 0xF) }

// N returns the lowest nibble (bits 0-3).
func (w Word) N() uint8 { return uint8(w & 0xF) }

// KK returns the immediate byte (bits 0-7).
func (w Word) KK() uint8 { return uint8(w & 0xFF) }

// NNN returns the 12-bit address (bits 0-11).
func (w Word) NNN() uint16 { return uint16(w & 0x0FFF) }

// builders maps the opcode values of the CPU opcode table to the
// constructors of the instruction variants.
var builders = map[uint16]func(w Word) Instruction{
	chip8.Opcode00E0.Value: func(Word) Instruction { return Cls{} },
	chip8.Opcode00EE.Value: func(Word) Instruction { return Ret{} },
	chip8.Opcode1000.Value: func(w Word) Instruction { return Jp{Addr: w.NNN()} },
	chip8.Opcode2000.Value: func(w Word) Instruction { return Call{Addr: w.NNN()} },
	chip8.Opcode3000.Value: func(w Word) Instruction { return SeImm{X: w.X(), KK: w.KK()} },
	chip8.Opcode4000.Value: func(w Word) Instruction { return SneImm{X: w.X(), KK: w.KK()} },
	chip8.Opcode5000.Value: func(w Word) Instruction { return SeReg{X: w.X(), Y: w.Y()} },
	chip8.Opcode6000.Value: func(w Word) Instruction { return LdImm{X: w.X(), KK: w.KK()} },
	chip8.Opcode7000.Value: func(w Word) Instruction { return AddImm{X: w.X(), KK: w.KK()} },
	chip8.Opcode8000.Value: func(w Word) Instruction { return LdReg{X: w.X(), Y: w.Y()} },
	chip8.Opcode8001.Value: func(w Word) Instruction { return Or{X: w.X(), Y: w.Y()} },
	chip8.Opcode8002.Value: func(w Word) Instruction { return And{X: w.X(), Y: w.Y()} },
	chip8.Opcode8003.Value: func(w Word) Instruction { return Xor{X: w.X(), Y: w.Y()} },
	chip8.Opcode8004.Value: func(w Word) Instruction { return AddReg{X: w.X(), Y: w.Y()} },
	chip8.Opcode8005.Value: func(w Word) Instruction { return Sub{X: w.X(), Y: w.Y()} },
	chip8.Opcode8006.Value: func(w Word) Instruction { return Shr{X: w.X()} },
	chip8.Opcode8007.Value: func(w Word) Instruction { return Subn{X: w.X(), Y: w.Y()} },
	chip8.Opcode800E.Value: func(w Word) Instruction { return Shl{X: w.X()} },
	chip8.Opcode9000.Value: func(w Word) Instruction { return SneReg{X: w.X(), Y: w.Y()} },
	chip8.OpcodeA000.Value: func(w Word) Instruction { return LdI{Addr: w.NNN()} },
	chip8.OpcodeB000.Value: func(w Word) Instruction { return JpV0{Addr: w.NNN()} },
	chip8.OpcodeC000.Value: func(w Word) Instruction { return Rnd{X: w.X(), KK: w.KK()} },
	chip8.OpcodeD000.Value: func(w Word) Instruction { return Drw{X: w.X(), Y: w.Y(), N: w.N()} },
	chip8.OpcodeE09E.Value: func(w Word) Instruction { return Skp{X: w.X()} },
	chip8.OpcodeE0A1.Value: func(w Word) Instruction { return Sknp{X: w.X()} },
	chip8.OpcodeF007.Value: func(w Word) Instruction { return LdVxDt{X: w.X()} },
	chip8.OpcodeF00A.Value: func(w Word) Instruction { return LdK{X: w.X()} },
	chip8.OpcodeF015.Value: func(w Word) Instruction { return LdDtVx{X: w.X()} },
	chip8.OpcodeF018.Value: func(w Word) Instruction { return LdSt{X: w.X()} },
	chip8.OpcodeF01E.Value: func(w Word) Instruction { return AddI{X: w.X()} },
	chip8.OpcodeF029.Value: func(w Word) Instruction { return LdF{X: w.X()} },
	chip8.OpcodeF033.Value: func(w Word) Instruction { return LdB{X: w.X()} },
	chip8.OpcodeF055.Value: func(w Word) Instruction { return StoreRegs{X: w.X()} },
	chip8.OpcodeF065.Value: func(w Word) Instruction { return ReadRegs{X: w.X()} },
}

// Decode returns the instruction encoded by the given word.
// The word is matched against the opcodes of its first nibble in the CPU
// opcode table, remaining 0nnn words are machine code calls.
// Words that match no opcode family return a *DecodeError.
func Decode(word uint16) (Instruction, error) {
	w := Word(word)
	for _, op := range chip8.Opcodes[int(w.Op())] {
		if op.Info.Mask&word != op.Info.Value {
			continue
		}
		build, ok := builders[op.Info.Value]
		if !ok {
			break
		}
		return build(w), nil
	}

	if w.Op() == 0 {
		return Sys{Addr: w.NNN()}, nil
	}
	return nil, &DecodeError{Word: word}
}
