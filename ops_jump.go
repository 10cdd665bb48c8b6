package mips

func init() {
	registerOp(opJ, "j", opJ)
	registerOp(opJAL, "jal", opJAL)
	registerFunct(functJR, "jr", opJR)
	registerFunct(functJALR, "jalr", opJALR)
}

func opJ(c *CPU, in inst) Status {
	c.setBranchDelay(jumpTarget(c.pc, in.target()))
	return StatusSuccess
}

func opJAL(c *CPU, in inst) Status {
	c.setReg(31, linkAddress(c.pc))
	c.setBranchDelay(jumpTarget(c.pc, in.target()))
	return StatusSuccess
}

// opJR jumps to the value in rs. The target must be 4-byte aligned;
// misalignment is checked before any PC update, per the pre-write
// discipline for faulting instructions.
func opJR(c *CPU, in inst) Status {
	target := c.getReg(in.rs())
	if target&0x3 != 0 {
		return StatusInvalidAlignment
	}
	c.setBranchDelay(target)
	return StatusSuccess
}

// opJALR jumps to rs and links the return address into rd. An rd field
// encoded as 0 selects register 31 as the link register instead.
func opJALR(c *CPU, in inst) Status {
	target := c.getReg(in.rs())
	if target&0x3 != 0 {
		return StatusInvalidAlignment
	}
	rd := in.rd()
	if rd == 0 {
		rd = 31
	}
	c.setReg(rd, linkAddress(c.pc))
	c.setBranchDelay(target)
	return StatusSuccess
}
