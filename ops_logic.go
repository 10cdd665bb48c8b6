package mips

func init() {
	registerFunct(functAND, "and", opAND)
	registerFunct(functOR, "or", opOR)
	registerFunct(functXOR, "xor", opXOR)
	registerFunct(functNOR, "nor", opNOR)
	registerOp(opANDI, "andi", opANDI)
	registerOp(opORI, "ori", opORI)
	registerOp(opXORI, "xori", opXORI)
	registerOp(opLUI, "lui", opLUI)
}

func opAND(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.getReg(in.rs())&c.getReg(in.rt()))
	c.advance()
	return StatusSuccess
}

func opOR(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.getReg(in.rs())|c.getReg(in.rt()))
	c.advance()
	return StatusSuccess
}

func opXOR(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.getReg(in.rs())^c.getReg(in.rt()))
	c.advance()
	return StatusSuccess
}

func opNOR(c *CPU, in inst) Status {
	c.setReg(in.rd(), ^(c.getReg(in.rs()) | c.getReg(in.rt())))
	c.advance()
	return StatusSuccess
}

// opANDI, opORI, opXORI: the immediate is zero-extended, unlike ADDI's
// sign-extended immediate.
func opANDI(c *CPU, in inst) Status {
	c.setReg(in.rt(), c.getReg(in.rs())&in.immU())
	c.advance()
	return StatusSuccess
}

func opORI(c *CPU, in inst) Status {
	c.setReg(in.rt(), c.getReg(in.rs())|in.immU())
	c.advance()
	return StatusSuccess
}

func opXORI(c *CPU, in inst) Status {
	c.setReg(in.rt(), c.getReg(in.rs())^in.immU())
	c.advance()
	return StatusSuccess
}

// opLUI loads imm into the upper halfword of rt and zeros the lower half.
func opLUI(c *CPU, in inst) Status {
	c.setReg(in.rt(), in.immU()<<16)
	c.advance()
	return StatusSuccess
}
