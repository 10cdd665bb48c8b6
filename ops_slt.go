package mips

func init() {
	registerFunct(functSLT, "slt", opSLT)
	registerFunct(functSLTU, "sltu", opSLTU)
	registerOp(opSLTI, "slti", opSLTI)
	registerOp(opSLTIU, "sltiu", opSLTIU)
}

func boolReg(cond bool) uint32 {
	if cond {
		return 1
	}
	return 0
}

func opSLT(c *CPU, in inst) Status {
	cond := int32(c.getReg(in.rs())) < int32(c.getReg(in.rt()))
	c.setReg(in.rd(), boolReg(cond))
	c.advance()
	return StatusSuccess
}

func opSLTU(c *CPU, in inst) Status {
	cond := c.getReg(in.rs()) < c.getReg(in.rt())
	c.setReg(in.rd(), boolReg(cond))
	c.advance()
	return StatusSuccess
}

func opSLTI(c *CPU, in inst) Status {
	cond := int32(c.getReg(in.rs())) < in.immS()
	c.setReg(in.rt(), boolReg(cond))
	c.advance()
	return StatusSuccess
}

// opSLTIU sign-extends the immediate first, then compares as unsigned —
// the sign-extension still happens even though the comparison doesn't
// treat either side as signed.
func opSLTIU(c *CPU, in inst) Status {
	cond := c.getReg(in.rs()) < uint32(in.immS())
	c.setReg(in.rt(), boolReg(cond))
	c.advance()
	return StatusSuccess
}
