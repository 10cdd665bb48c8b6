package mips

func init() {
	registerFunct(functSLL, "sll", opSLL)
	registerFunct(functSRL, "srl", opSRL)
	registerFunct(functSRA, "sra", opSRA)
	registerFunct(functSLLV, "sllv", opSLLV)
	registerFunct(functSRLV, "srlv", opSRLV)
	registerFunct(functSRAV, "srav", opSRAV)
}

func opSLL(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.getReg(in.rt())<<in.shamt())
	c.advance()
	return StatusSuccess
}

func opSRL(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.getReg(in.rt())>>in.shamt())
	c.advance()
	return StatusSuccess
}

// opSRA performs an arithmetic (sign-preserving) right shift on the
// signed view of rt.
func opSRA(c *CPU, in inst) Status {
	c.setReg(in.rd(), uint32(int32(c.getReg(in.rt()))>>in.shamt()))
	c.advance()
	return StatusSuccess
}

func opSLLV(c *CPU, in inst) Status {
	shamt := c.getReg(in.rs()) & 0x1F
	c.setReg(in.rd(), c.getReg(in.rt())<<shamt)
	c.advance()
	return StatusSuccess
}

func opSRLV(c *CPU, in inst) Status {
	shamt := c.getReg(in.rs()) & 0x1F
	c.setReg(in.rd(), c.getReg(in.rt())>>shamt)
	c.advance()
	return StatusSuccess
}

func opSRAV(c *CPU, in inst) Status {
	shamt := c.getReg(in.rs()) & 0x1F
	c.setReg(in.rd(), uint32(int32(c.getReg(in.rt()))>>shamt))
	c.advance()
	return StatusSuccess
}
