package instruction

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		word uint16
		want Instruction
	}{
		{"sys", 0x0123, Sys{Addr: 0x123}},
		{"cls", 0x00E0, Cls{}},
		{"ret", 0x00EE, Ret{}},
		{"jp", 0x1234, Jp{Addr: 0x234}},
		{"call", 0x2300, Call{Addr: 0x300}},
		{"se vx, byte", 0x3A12, SeImm{X: VA, KK: 0x12}},
		{"sne vx, byte", 0x4112, SneImm{X: V1, KK: 0x12}},
		{"se vx, vy", 0x5230, SeReg{X: V2, Y: V3}},
		{"ld vx, byte", 0x6BFF, LdImm{X: VB, KK: 0xFF}},
		{"add vx, byte", 0x7C01, AddImm{X: VC, KK: 0x01}},
		{"ld vx, vy", 0x8DE0, LdReg{X: VD, Y: VE}},
		{"or", 0x8121, Or{X: V1, Y: V2}},
		{"and", 0x8342, And{X: V3, Y: V4}},
		{"xor", 0x8563, Xor{X: V5, Y: V6}},
		{"add vx, vy", 0x8F04, AddReg{X: VF, Y: V0}},
		{"sub", 0x8785, Sub{X: V7, Y: V8}},
		{"shr", 0x89A6, Shr{X: V9}},
		{"subn", 0x8AB7, Subn{X: VA, Y: VB}},
		{"shl", 0x8CDE, Shl{X: VC}},
		{"sne vx, vy", 0x9EF0, SneReg{X: VE, Y: VF}},
		{"ld i, addr", 0xA2F0, LdI{Addr: 0x2F0}},
		{"jp v0, addr", 0xBFFF, JpV0{Addr: 0xFFF}},
		{"rnd", 0xC30F, Rnd{X: V3, KK: 0x0F}},
		{"drw", 0xD125, Drw{X: V1, Y: V2, N: 5}},
		{"skp", 0xE49E, Skp{X: V4}},
		{"sknp", 0xE5A1, Sknp{X: V5}},
		{"ld vx, dt", 0xF607, LdVxDt{X: V6}},
		{"ld vx, k", 0xF70A, LdK{X: V7}},
		{"ld dt, vx", 0xF815, LdDtVx{X: V8}},
		{"ld st, vx", 0xF918, LdSt{X: V9}},
		{"add i, vx", 0xFA1E, AddI{X: VA}},
		{"ld f, vx", 0xFB29, LdF{X: VB}},
		{"ld b, vx", 0xFC33, LdB{X: VC}},
		{"ld [i], vx", 0xFD55, StoreRegs{X: VD}},
		{"ld vx, [i]", 0xFE65, ReadRegs{X: VE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_Unknown(t *testing.T) {
	words := []uint16{
		0xFFFF, // no F family low byte FF
		0x5231, // se vx, vy requires low nibble 0
		0x9231, // sne vx, vy requires low nibble 0
		0x8008, // unassigned arithmetic variant
		0x800F,
		0xE000,
		0xE09F,
		0xF000,
		0xF066,
	}

	for _, word := range words {
		got, err := Decode(word)
		assert.Nil(t, got)
		assert.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnknownOpcode))

		var decodeErr *DecodeError
		assert.True(t, errors.As(err, &decodeErr))
		assert.Equal(t, word, decodeErr.Word)
	}
}

func TestDecode_AllWords(t *testing.T) {
	var decoded int
	for word := 0; word <= 0xFFFF; word++ {
		ins, err := Decode(uint16(word))
		if err != nil {
			assert.True(t, errors.Is(err, ErrUnknownOpcode))
			continue
		}
		assert.NotNil(t, ins)
		decoded++
	}

	// the whole 0 family, 10 families selected by the top nibble only,
	// 11 patterns with a fixed low nibble and 11 with a fixed low byte
	expected := 4096 + 10*4096 + 11*256 + 11*16
	assert.Equal(t, expected, decoded)
}

func TestDecode_OpcodeTable(t *testing.T) {
	var entries int
	for nibble, opcodes := range chip8.Opcodes {
		for _, op := range opcodes {
			entries++
			_, ok := builders[op.Info.Value]
			assert.True(t, ok, "missing instruction for opcode", op.Info.Value)

			ins, err := Decode(op.Info.Value)
			assert.NoError(t, err)
			assert.Equal(t, op.Instruction.Name, ins.Name())
			assert.Equal(t, nibble, int(Word(op.Info.Value).Op()))
		}
	}
	assert.Equal(t, len(builders), entries)
}

func TestWordFields(t *testing.T) {
	w := NewWord(0xD7, 0x3A)

	assert.Equal(t, Word(0xD73A), w)
	assert.Equal(t, uint8(0xD), w.Op())
	assert.Equal(t, V7, w.X())
	assert.Equal(t, V3, w.Y())
	assert.Equal(t, uint8(0xA), w.N())
	assert.Equal(t, uint8(0x3A), w.KK())
	assert.Equal(t, uint16(0x73A), w.NNN())
}

func TestDecode_RegisterFieldsUseHighNibbles(t *testing.T) {
	// the low byte differs from the register nibbles so that extracting
	// x and y from the wrong bit positions is detected
	got, err := Decode(0x8AB4)
	assert.NoError(t, err)
	var want Instruction = AddReg{X: VA, Y: VB}
	assert.Equal(t, want, got)

	got, err = Decode(0x5C90)
	assert.NoError(t, err)
	want = SeReg{X: VC, Y: V9}
	assert.Equal(t, want, got)
}

func TestRegister_String(t *testing.T) {
	assert.Equal(t, "V0", V0.String())
	assert.Equal(t, "VF", Flag.String())
}
