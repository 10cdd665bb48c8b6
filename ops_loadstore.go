package mips

func init() {
	registerOp(opLB, "lb", opLB)
	registerOp(opLBU, "lbu", opLBU)
	registerOp(opLH, "lh", opLH)
	registerOp(opLHU, "lhu", opLHU)
	registerOp(opLW, "lw", opLW)
	registerOp(opLWL, "lwl", opLWL)
	registerOp(opLWR, "lwr", opLWR)
	registerOp(opSB, "sb", opSB)
	registerOp(opSH, "sh", opSH)
	registerOp(opSW, "sw", opSW)
	registerOp(opSWL, "swl", opSWL)
	registerOp(opSWR, "swr", opSWR)
}

// effAddr computes the standard MIPS-I load/store effective address:
// rs + sign_extend(imm).
func effAddr(c *CPU, in inst) uint32 {
	return c.getReg(in.rs()) + uint32(in.immS())
}

func opLB(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 1, 1)
	if st != StatusSuccess {
		return st
	}
	c.setReg(in.rt(), uint32(int32(int8(buf[0]))))
	c.advance()
	return StatusSuccess
}

func opLBU(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 1, 1)
	if st != StatusSuccess {
		return st
	}
	c.setReg(in.rt(), uint32(buf[0]))
	c.advance()
	return StatusSuccess
}

func opLH(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 2, 2)
	if st != StatusSuccess {
		return st
	}
	c.setReg(in.rt(), uint32(int32(int16(beUint16(buf)))))
	c.advance()
	return StatusSuccess
}

func opLHU(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 2, 2)
	if st != StatusSuccess {
		return st
	}
	c.setReg(in.rt(), uint32(beUint16(buf)))
	c.advance()
	return StatusSuccess
}

func opLW(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 4, 4)
	if st != StatusSuccess {
		return st
	}
	c.setReg(in.rt(), beUint32(buf))
	c.advance()
	return StatusSuccess
}

// opLWL and opLWR fold a 16-bit halfword (not the 1-4 byte merge the MIPS
// architecture manual specifies) into one half of rt, leaving the other
// half of rt untouched. This is a deliberate deviation from the manual.
func opLWL(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf, st := loadAligned(c.mem, addr, 2, 1)
	if st != StatusSuccess {
		return st
	}
	rt := c.getReg(in.rt())
	merged := uint32(beUint16(buf))<<16 | (rt & 0xFFFF)
	c.setReg(in.rt(), merged)
	c.advance()
	return StatusSuccess
}

func opLWR(c *CPU, in inst) Status {
	addr := effAddr(c, in) - 1
	buf, st := loadAligned(c.mem, addr, 2, 1)
	if st != StatusSuccess {
		return st
	}
	rt := c.getReg(in.rt())
	merged := (rt &^ 0xFFFF) | uint32(beUint16(buf))
	c.setReg(in.rt(), merged)
	c.advance()
	return StatusSuccess
}

func opSB(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	buf := [1]byte{byte(c.getReg(in.rt()))}
	if st := storeAligned(c.mem, addr, buf[:], 1); st != StatusSuccess {
		return st
	}
	c.advance()
	return StatusSuccess
}

func opSH(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	var buf [2]byte
	putBeUint16(buf[:], uint16(c.getReg(in.rt())))
	if st := storeAligned(c.mem, addr, buf[:], 2); st != StatusSuccess {
		return st
	}
	c.advance()
	return StatusSuccess
}

func opSW(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	var buf [4]byte
	putBeUint32(buf[:], c.getReg(in.rt()))
	if st := storeAligned(c.mem, addr, buf[:], 4); st != StatusSuccess {
		return st
	}
	c.advance()
	return StatusSuccess
}

// opSWL and opSWR are the store-side mirror of opLWL/opLWR's 16-bit
// convention: SWL writes the upper half of rt as 2 bytes at addr; SWR
// writes the lower half as 2 bytes at addr-1.
func opSWL(c *CPU, in inst) Status {
	addr := effAddr(c, in)
	var buf [2]byte
	putBeUint16(buf[:], uint16(c.getReg(in.rt())>>16))
	if st := storeAligned(c.mem, addr, buf[:], 1); st != StatusSuccess {
		return st
	}
	c.advance()
	return StatusSuccess
}

func opSWR(c *CPU, in inst) Status {
	addr := effAddr(c, in) - 1
	var buf [2]byte
	putBeUint16(buf[:], uint16(c.getReg(in.rt())))
	if st := storeAligned(c.mem, addr, buf[:], 1); st != StatusSuccess {
		return st
	}
	c.advance()
	return StatusSuccess
}
