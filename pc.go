package mips

// advance is the non-control-transfer PC update: the instruction at pc
// has already executed, so pc takes the value staged in pcNext and
// pcNext moves one word further.
func (c *CPU) advance() {
	c.pc = c.pcNext
	c.pcNext = c.pc + 4
}

// setBranchDelay is the control-transfer PC update used by every taken
// branch and jump. pc takes the staged pcNext value — the delay slot,
// which Step will execute next — and pcNext becomes target. Control does
// not actually reach target until the delay slot instruction has run.
func (c *CPU) setBranchDelay(target uint32) {
	c.pc = c.pcNext
	c.pcNext = target
}

// branchTarget computes a PC-relative branch target: pc+4 (the address
// after the branch) plus the sign-extended, word-shifted immediate.
func branchTarget(pc uint32, imm int32) uint32 {
	return uint32(int32(pc+4) + (imm << 2))
}

// jumpTarget computes a J/JAL absolute target: the top 4 bits of pc+4
// combined with the 26-bit target field shifted left two bits.
func jumpTarget(pc uint32, target26 uint32) uint32 {
	return ((pc + 4) & 0xF0000000) | (target26 << 2)
}

// linkAddress is the return address written by JAL/JALR/BLTZAL/BGEZAL:
// the instruction following the delay slot.
func linkAddress(pc uint32) uint32 {
	return pc + 8
}
