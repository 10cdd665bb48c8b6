package mips

func init() {
	registerOp(opBEQ, "beq", opBEQ)
	registerOp(opBNE, "bne", opBNE)
	registerOp(opBLEZ, "blez", opBLEZ)
	registerOp(opBGTZ, "bgtz", opBGTZ)
}

// branch is the common body for every conditional branch: on a taken
// condition it schedules the delay slot via setBranchDelay; on an untaken
// condition it just advances past the branch itself. Neither path ever
// faults, so branches always succeed.
func branch(c *CPU, in inst, taken bool) Status {
	if taken {
		c.setBranchDelay(branchTarget(c.pc, in.immS()))
	} else {
		c.advance()
	}
	return StatusSuccess
}

func opBEQ(c *CPU, in inst) Status {
	return branch(c, in, c.getReg(in.rs()) == c.getReg(in.rt()))
}

func opBNE(c *CPU, in inst) Status {
	return branch(c, in, c.getReg(in.rs()) != c.getReg(in.rt()))
}

func opBLEZ(c *CPU, in inst) Status {
	return branch(c, in, int32(c.getReg(in.rs())) <= 0)
}

func opBGTZ(c *CPU, in inst) Status {
	return branch(c, in, int32(c.getReg(in.rs())) > 0)
}

// opBLTZ, opBGEZ, opBLTZAL, opBGEZAL are REGIMM sub-opcodes (selected by
// rt) rather than entries in opcodeTable/functTable; dispatchRegimm in
// cpu.go routes to them directly.

func opBLTZ(c *CPU, in inst) Status {
	return branch(c, in, int32(c.getReg(in.rs())) < 0)
}

func opBGEZ(c *CPU, in inst) Status {
	return branch(c, in, int32(c.getReg(in.rs())) >= 0)
}

// opBLTZAL and opBGEZAL link unconditionally — reg 31 is written to the
// return address regardless of whether the branch itself is taken —
// while the branch is only taken on the condition.
func opBLTZAL(c *CPU, in inst) Status {
	c.setReg(31, linkAddress(c.pc))
	return branch(c, in, int32(c.getReg(in.rs())) < 0)
}

func opBGEZAL(c *CPU, in inst) Status {
	c.setReg(31, linkAddress(c.pc))
	return branch(c, in, int32(c.getReg(in.rs())) >= 0)
}
