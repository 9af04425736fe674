package machine

import (
	"fmt"

	"github.com/retroenv/retrochip8/internal/instruction"
)

// Apply applies the effect of a single instruction to the machine state.
// The driving loop has to advance the program counter past the instruction
// before calling Apply, instructions that set the program counter override
// that advance.
func (m *Machine) Apply(ins instruction.Instruction) (SideEffects, error) {
	if err := checkRegisters(ins); err != nil {
		return SideEffects{}, err
	}

	if _, ok := ins.(instruction.LdK); !ok {
		m.wait = keyWait{}
	}

	switch i := ins.(type) {
	case instruction.Sys:
		return SideEffects{}, fmt.Errorf("%w: native call to $%03X", ErrUnsupportedInstruction, i.Addr)

	case instruction.Cls:
		m.display.Clear()
		return SideEffects{DisplayChanged: true}, nil

	case instruction.Ret:
		addr, err := m.stack.pop()
		if err != nil {
			return SideEffects{}, err
		}
		return m.jump(addr), nil

	case instruction.Jp:
		return m.jump(i.Addr), nil

	case instruction.Call:
		if err := m.stack.push(m.pc); err != nil {
			return SideEffects{}, err
		}
		return m.jump(i.Addr), nil

	case instruction.JpV0:
		target := i.Addr + uint16(m.v[instruction.V0])
		if int(target)+instruction.Size > MemorySize {
			return SideEffects{}, fmt.Errorf("%w: jump to $%04X", ErrMemoryOutOfBounds, target)
		}
		return m.jump(target), nil

	case instruction.SeImm:
		return m.skipIf(m.v[i.X] == i.KK), nil
	case instruction.SneImm:
		return m.skipIf(m.v[i.X] != i.KK), nil
	case instruction.SeReg:
		return m.skipIf(m.v[i.X] == m.v[i.Y]), nil
	case instruction.SneReg:
		return m.skipIf(m.v[i.X] != m.v[i.Y]), nil
	case instruction.Skp:
		return m.skipIf(m.keypad.Pressed(m.v[i.X]&0xF)), nil
	case instruction.Sknp:
		return m.skipIf(!m.keypad.Pressed(m.v[i.X] & 0xF)), nil

	case instruction.LdImm:
		m.v[i.X] = i.KK
	case instruction.AddImm:
		m.v[i.X] += i.KK
	case instruction.LdReg:
		m.v[i.X] = m.v[i.Y]
	case instruction.Or:
		m.v[i.X] |= m.v[i.Y]
	case instruction.And:
		m.v[i.X] &= m.v[i.Y]
	case instruction.Xor:
		m.v[i.X] ^= m.v[i.Y]

	case instruction.AddReg:
		sum := uint16(m.v[i.X]) + uint16(m.v[i.Y])
		m.setFlagAndResult(i.X, sum > 0xFF, uint8(sum))
	case instruction.Sub:
		x, y := m.v[i.X], m.v[i.Y]
		m.setFlagAndResult(i.X, x >= y, x-y)
	case instruction.Subn:
		x, y := m.v[i.X], m.v[i.Y]
		m.setFlagAndResult(i.X, y >= x, y-x)
	case instruction.Shr:
		x := m.v[i.X]
		m.setFlagAndResult(i.X, x&0x01 != 0, x>>1)
	case instruction.Shl:
		x := m.v[i.X]
		m.setFlagAndResult(i.X, x&0x80 != 0, x<<1)

	case instruction.LdI:
		m.i = i.Addr
	case instruction.AddI:
		m.i += uint16(m.v[i.X])
	case instruction.LdF:
		m.i = FontAddress + uint16(m.v[i.X]&0xF)*FontGlyphSize

	case instruction.Rnd:
		m.v[i.X] = m.random.Byte() & i.KK

	case instruction.Drw:
		return m.draw(i)

	case instruction.LdVxDt:
		m.v[i.X] = m.delayTimer
	case instruction.LdDtVx:
		m.delayTimer = m.v[i.X]
	case instruction.LdSt:
		m.soundTimer = m.v[i.X]
	case instruction.LdK:
		return m.waitForKey(i.X), nil

	case instruction.LdB:
		mem, err := m.memoryRange(m.i, 3)
		if err != nil {
			return SideEffects{}, fmt.Errorf("storing decimal digits: %w", err)
		}
		value := m.v[i.X]
		mem[0] = value / 100
		mem[1] = value / 10 % 10
		mem[2] = value % 10

	case instruction.StoreRegs:
		mem, err := m.memoryRange(m.i, int(i.X)+1)
		if err != nil {
			return SideEffects{}, fmt.Errorf("storing registers: %w", err)
		}
		copy(mem, m.v[:int(i.X)+1])
	case instruction.ReadRegs:
		mem, err := m.memoryRange(m.i, int(i.X)+1)
		if err != nil {
			return SideEffects{}, fmt.Errorf("reading registers: %w", err)
		}
		copy(m.v[:int(i.X)+1], mem)

	default:
		return SideEffects{}, fmt.Errorf("%w: %T", ErrUnsupportedInstruction, ins)
	}

	return SideEffects{}, nil
}

// checkRegisters returns an error if a register operand of the instruction
// does not address one of the general purpose registers.
func checkRegisters(ins instruction.Instruction) error {
	var x, y instruction.Register
	switch i := ins.(type) {
	case instruction.SeImm:
		x = i.X
	case instruction.SneImm:
		x = i.X
	case instruction.LdImm:
		x = i.X
	case instruction.AddImm:
		x = i.X
	case instruction.Rnd:
		x = i.X
	case instruction.SeReg:
		x, y = i.X, i.Y
	case instruction.SneReg:
		x, y = i.X, i.Y
	case instruction.LdReg:
		x, y = i.X, i.Y
	case instruction.Or:
		x, y = i.X, i.Y
	case instruction.And:
		x, y = i.X, i.Y
	case instruction.Xor:
		x, y = i.X, i.Y
	case instruction.AddReg:
		x, y = i.X, i.Y
	case instruction.Sub:
		x, y = i.X, i.Y
	case instruction.Subn:
		x, y = i.X, i.Y
	case instruction.Drw:
		x, y = i.X, i.Y
	case instruction.Shr:
		x = i.X
	case instruction.Shl:
		x = i.X
	case instruction.Skp:
		x = i.X
	case instruction.Sknp:
		x = i.X
	case instruction.LdVxDt:
		x = i.X
	case instruction.LdK:
		x = i.X
	case instruction.LdDtVx:
		x = i.X
	case instruction.LdSt:
		x = i.X
	case instruction.AddI:
		x = i.X
	case instruction.LdF:
		x = i.X
	case instruction.LdB:
		x = i.X
	case instruction.StoreRegs:
		x = i.X
	case instruction.ReadRegs:
		x = i.X
	}

	for _, r := range [...]instruction.Register{x, y} {
		if r >= instruction.RegisterCount {
			return fmt.Errorf("%w: %s in %T", ErrInvalidRegister, r, ins)
		}
	}
	return nil
}

// jump sets the program counter to the given address.
func (m *Machine) jump(address uint16) SideEffects {
	m.pc = address
	return SideEffects{ProgramCounterSet: true}
}

// skipIf skips the next instruction if the condition is true.
func (m *Machine) skipIf(condition bool) SideEffects {
	if !condition {
		return SideEffects{}
	}
	m.pc += instruction.Size
	return SideEffects{ProgramCounterSet: true}
}

// setFlagAndResult writes the flag register first and the result second,
// the result wins if the destination is the flag register itself.
func (m *Machine) setFlagAndResult(x instruction.Register, flag bool, result uint8) {
	if flag {
		m.v[instruction.Flag] = 1
	} else {
		m.v[instruction.Flag] = 0
	}
	m.v[x] = result
}

func (m *Machine) draw(i instruction.Drw) (SideEffects, error) {
	sprite, err := m.memoryRange(m.i, int(i.N))
	if err != nil {
		return SideEffects{}, fmt.Errorf("reading sprite: %w", err)
	}

	collision := m.display.drawSprite(m.v[i.X], m.v[i.Y], sprite)
	if collision {
		m.v[instruction.Flag] = 1
	} else {
		m.v[instruction.Flag] = 0
	}
	return SideEffects{DisplayChanged: true}, nil
}

// waitForKey completes when a key is pressed that was not already held
// down when the wait started. Until then the program counter is moved back
// to the waiting instruction.
func (m *Machine) waitForKey(x instruction.Register) SideEffects {
	if !m.wait.active {
		m.wait.active = true
		for key := range m.wait.held {
			m.wait.held[key] = m.keypad.Pressed(uint8(key))
		}
	}

	for key := range m.wait.held {
		pressed := m.keypad.Pressed(uint8(key))
		if pressed && !m.wait.held[key] {
			m.v[x] = uint8(key)
			m.wait = keyWait{}
			return SideEffects{}
		}
		m.wait.held[key] = pressed
	}

	m.pc -= instruction.Size
	return SideEffects{ProgramCounterSet: true, WaitingForKey: true}
}
