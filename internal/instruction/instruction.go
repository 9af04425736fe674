// Package instruction contains the CHIP-8 instruction set and its decoder.
package instruction

import "github.com/retroenv/retrogolib/arch/cpu/chip8"

// Instruction represents a decoded CHIP-8 instruction.
// The set of implementations is closed, every opcode family of the
// instruction set is represented by exactly one struct type of this package.
type Instruction interface {
	// Name returns the assembler mnemonic of the instruction.
	Name() string

	isInstruction()
}

// Sys calls a native machine code routine at Addr (0nnn).
type Sys struct{ Addr uint16 }

// Cls clears the display (00E0).
type Cls struct{}

// Ret returns from a subroutine (00EE).
type Ret struct{}

// Jp jumps to Addr (1nnn).
type Jp struct{ Addr uint16 }

// Call calls the subroutine at Addr (2nnn).
type Call struct{ Addr uint16 }

// SeImm skips the next instruction if Vx == KK (3xkk).
type SeImm struct {
	X  Register
	KK uint8
}

// SneImm skips the next instruction if Vx != KK (4xkk).
type SneImm struct {
	X  Register
	KK uint8
}

// SeReg skips the next instruction if Vx == Vy (5xy0).
type SeReg struct{ X, Y Register }

// LdImm sets Vx = KK (6xkk).
type LdImm struct {
	X  Register
	KK uint8
}

// AddImm sets Vx = Vx + KK without touching the flag register (7xkk).
type AddImm struct {
	X  Register
	KK uint8
}

// LdReg sets Vx = Vy (8xy0).
type LdReg struct{ X, Y Register }

// Or sets Vx = Vx | Vy (8xy1).
type Or struct{ X, Y Register }

// And sets Vx = Vx & Vy (8xy2).
type And struct{ X, Y Register }

// Xor sets Vx = Vx ^ Vy (8xy3).
type Xor struct{ X, Y Register }

// AddReg sets Vx = Vx + Vy, VF = carry (8xy4).
type AddReg struct{ X, Y Register }

// Sub sets Vx = Vx - Vy, VF = not borrow (8xy5).
type Sub struct{ X, Y Register }

// Shr sets Vx = Vx >> 1, VF = shifted out bit (8xy6).
type Shr struct{ X Register }

// Subn sets Vx = Vy - Vx, VF = not borrow (8xy7).
type Subn struct{ X, Y Register }

// Shl sets Vx = Vx << 1, VF = shifted out bit (8xyE).
type Shl struct{ X Register }

// SneReg skips the next instruction if Vx != Vy (9xy0).
type SneReg struct{ X, Y Register }

// LdI sets I = Addr (Annn).
type LdI struct{ Addr uint16 }

// JpV0 jumps to Addr + V0 (Bnnn).
type JpV0 struct{ Addr uint16 }

// Rnd sets Vx = random byte & KK (Cxkk).
type Rnd struct {
	X  Register
	KK uint8
}

// Drw draws an N byte sprite from memory at I to (Vx, Vy), VF = collision (Dxyn).
type Drw struct {
	X, Y Register
	N    uint8
}

// Skp skips the next instruction if the key with the value of Vx is pressed (Ex9E).
type Skp struct{ X Register }

// Sknp skips the next instruction if the key with the value of Vx is not pressed (ExA1).
type Sknp struct{ X Register }

// LdVxDt sets Vx = delay timer (Fx07).
type LdVxDt struct{ X Register }

// LdK waits for a key press and stores the key in Vx (Fx0A).
type LdK struct{ X Register }

// LdDtVx sets delay timer = Vx (Fx15).
type LdDtVx struct{ X Register }

// LdSt sets sound timer = Vx (Fx18).
type LdSt struct{ X Register }

// AddI sets I = I + Vx (Fx1E).
type AddI struct{ X Register }

// LdF sets I to the address of the font glyph for the digit in Vx (Fx29).
type LdF struct{ X Register }

// LdB stores the decimal digits of Vx at I, I+1 and I+2 (Fx33).
type LdB struct{ X Register }

// StoreRegs stores V0 through Vx in memory starting at I (Fx55).
type StoreRegs struct{ X Register }

// ReadRegs reads V0 through Vx from memory starting at I (Fx65).
type ReadRegs struct{ X Register }

func (Sys) Name() string       { return "sys" }
func (Cls) Name() string       { return chip8.ClsName }
func (Ret) Name() string       { return chip8.RetName }
func (Jp) Name() string        { return chip8.JpName }
func (Call) Name() string      { return chip8.CallName }
func (SeImm) Name() string     { return chip8.SeName }
func (SneImm) Name() string    { return chip8.SneName }
func (SeReg) Name() string     { return chip8.SeName }
func (LdImm) Name() string     { return chip8.LdName }
func (AddImm) Name() string    { return chip8.AddName }
func (LdReg) Name() string     { return chip8.LdName }
func (Or) Name() string        { return chip8.OrName }
func (And) Name() string       { return chip8.AndName }
func (Xor) Name() string       { return chip8.XorName }
func (AddReg) Name() string    { return chip8.AddName }
func (Sub) Name() string       { return chip8.SubName }
func (Shr) Name() string       { return chip8.ShrName }
func (Subn) Name() string      { return chip8.SubnName }
func (Shl) Name() string       { return chip8.ShlName }
func (SneReg) Name() string    { return chip8.SneName }
func (LdI) Name() string       { return chip8.LdName }
func (JpV0) Name() string      { return chip8.JpName }
func (Rnd) Name() string       { return chip8.RndName }
func (Drw) Name() string       { return chip8.DrwName }
func (Skp) Name() string       { return chip8.SkpName }
func (Sknp) Name() string      { return chip8.SknpName }
func (LdVxDt) Name() string    { return chip8.LdName }
func (LdK) Name() string       { return chip8.LdName }
func (LdDtVx) Name() string    { return chip8.LdName }
func (LdSt) Name() string      { return chip8.LdName }
func (AddI) Name() string      { return chip8.AddName }
func (LdF) Name() string       { return chip8.LdName }
func (LdB) Name() string       { return chip8.LdName }
func (StoreRegs) Name() string { return chip8.LdName }
func (ReadRegs) Name() string  { return chip8.LdName }

func (Sys) isInstruction()       {}
func (Cls) isInstruction()       {}
func (Ret) isInstruction()       {}
func (Jp) isInstruction()        {}
func (Call) isInstruction()      {}
func (SeImm) isInstruction()     {}
func (SneImm) isInstruction()    {}
func (SeReg) isInstruction()     {}
func (LdImm) isInstruction()     {}
func (AddImm) isInstruction()    {}
func (LdReg) isInstruction()     {}
func (Or) isInstruction()        {}
func (And) isInstruction()       {}
func (Xor) isInstruction()       {}
func (AddReg) isInstruction()    {}
func (Sub) isInstruction()       {}
func (Shr) isInstruction()       {}
func (Subn) isInstruction()      {}
func (Shl) isInstruction()       {}
func (SneReg) isInstruction()    {}
func (LdI) isInstruction()       {}
func (JpV0) isInstruction()      {}
func (Rnd) isInstruction()       {}
func (Drw) isInstruction()       {}
func (Skp) isInstruction()       {}
func (Sknp) isInstruction()      {}
func (LdVxDt) isInstruction()    {}
func (LdK) isInstruction()       {}
func (LdDtVx) isInstruction()    {}
func (LdSt) isInstruction()      {}
func (AddI) isInstruction()      {}
func (LdF) isInstruction()       {}
func (LdB) isInstruction()       {}
func (StoreRegs) isInstruction() {}
func (ReadRegs) isInstruction()  {}
