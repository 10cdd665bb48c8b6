package mips

func init() {
	registerFunct(functADD, "add", opADD)
	registerFunct(functADDU, "addu", opADDU)
	registerFunct(functSUB, "sub", opSUB)
	registerFunct(functSUBU, "subu", opSUBU)
	registerOp(opADDI, "addi", opADDI)
	registerOp(opADDIU, "addiu", opADDIU)
}

// addSub is the common body for ADD/ADDU/SUB/SUBU: SUB(U) negates the
// second operand and reuses the ADD(U) path. trapOnOverflow selects
// ADD/SUB's signed-overflow check; ADDU/SUBU wrap silently.
func addSub(c *CPU, rd, a, b uint32, negate, trapOnOverflow bool) Status {
	if negate {
		b = uint32(-int32(b))
	}
	result := a + b

	if trapOnOverflow && signedAddOverflows(b, a, result) {
		return StatusArithmeticOverflow
	}

	c.setReg(rd, result)
	c.advance()
	return StatusSuccess
}

func opADD(c *CPU, in inst) Status {
	return addSub(c, in.rd(), c.getReg(in.rs()), c.getReg(in.rt()), false, true)
}

func opADDU(c *CPU, in inst) Status {
	return addSub(c, in.rd(), c.getReg(in.rs()), c.getReg(in.rt()), false, false)
}

func opSUB(c *CPU, in inst) Status {
	return addSub(c, in.rd(), c.getReg(in.rs()), c.getReg(in.rt()), true, true)
}

func opSUBU(c *CPU, in inst) Status {
	return addSub(c, in.rd(), c.getReg(in.rs()), c.getReg(in.rt()), true, false)
}

// opADDI: rt = rs + sign_extend(imm), trapping on signed overflow. The
// destination register is left untouched when overflow is detected —
// validation happens before the write.
func opADDI(c *CPU, in inst) Status {
	return addSub(c, in.rt(), c.getReg(in.rs()), uint32(in.immS()), false, true)
}

// opADDIU wraps modulo 2^32; despite the name it never traps, matching
// real MIPS-I (the "U" here means "does not trap", not "unsigned operand" —
// the immediate is still sign-extended).
func opADDIU(c *CPU, in inst) Status {
	return addSub(c, in.rt(), c.getReg(in.rs()), uint32(in.immS()), false, false)
}
