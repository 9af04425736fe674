package instruction

import "fmt"

// Format returns the instruction in assembler syntax, for example "ld V1, $12".
func Format(ins Instruction) string {
	if params := formatParams(ins); params != "" {
		return fmt.Sprintf("%s %s", ins.Name(), params)
	}
	return ins.Name()
}

// formatParams returns the formatted operands of the instruction.
func formatParams(ins Instruction) string {
	switch i := ins.(type) {
	case Cls, Ret:
		return ""
	case Sys:
		return formatAddress(i.Addr)
	case Jp:
		return formatAddress(i.Addr)
	case Call:
		return formatAddress(i.Addr)
	case JpV0:
		return fmt.Sprintf("V0, %s", formatAddress(i.Addr))
	case LdI:
		return fmt.Sprintf("I, %s", formatAddress(i.Addr))

	case SeImm:
		return formatRegisterByte(i.X, i.KK)
	case SneImm:
		return formatRegisterByte(i.X, i.KK)
	case LdImm:
		return formatRegisterByte(i.X, i.KK)
	case AddImm:
		return formatRegisterByte(i.X, i.KK)
	case Rnd:
		return formatRegisterByte(i.X, i.KK)

	case SeReg:
		return formatRegisters(i.X, i.Y)
	case SneReg:
		return formatRegisters(i.X, i.Y)
	case LdReg:
		return formatRegisters(i.X, i.Y)
	case Or:
		return formatRegisters(i.X, i.Y)
	case And:
		return formatRegisters(i.X, i.Y)
	case Xor:
		return formatRegisters(i.X, i.Y)
	case AddReg:
		return formatRegisters(i.X, i.Y)
	case Sub:
		return formatRegisters(i.X, i.Y)
	case Subn:
		return formatRegisters(i.X, i.Y)

	case Shr:
		return i.X.String()
	case Shl:
		return i.X.String()
	case Skp:
		return i.X.String()
	case Sknp:
		return i.X.String()

	case Drw:
		return fmt.Sprintf("%s, %s, $%X", i.X, i.Y, i.N)

	case LdVxDt:
		return fmt.Sprintf("%s, DT", i.X)
	case LdK:
		return fmt.Sprintf("%s, K", i.X)
	case LdDtVx:
		return fmt.Sprintf("DT, %s", i.X)
	case LdSt:
		return fmt.Sprintf("ST, %s", i.X)
	case AddI:
		return fmt.Sprintf("I, %s", i.X)
	case LdF:
		return fmt.Sprintf("F, %s", i.X)
	case LdB:
		return fmt.Sprintf("B, %s", i.X)
	case StoreRegs:
		return fmt.Sprintf("[I], %s", i.X)
	case ReadRegs:
		return fmt.Sprintf("%s, [I]", i.X)
	}
	return ""
}

func formatAddress(addr uint16) string {
	return fmt.Sprintf("$%03X", addr)
}

func formatRegisterByte(x Register, kk uint8) string {
	return fmt.Sprintf("%s, $%02X", x, kk)
}

func formatRegisters(x, y Register) string {
	return fmt.Sprintf("%s, %s", x, y)
}
