package mips

func init() {
	registerFunct(functMULT, "mult", opMULT)
	registerFunct(functMULTU, "multu", opMULTU)
	registerFunct(functDIV, "div", opDIV)
	registerFunct(functDIVU, "divu", opDIVU)
	registerFunct(functMFHI, "mfhi", opMFHI)
	registerFunct(functMFLO, "mflo", opMFLO)
	registerFunct(functMTHI, "mthi", opMTHI)
	registerFunct(functMTLO, "mtlo", opMTLO)
}

// opMULT writes the 64-bit signed product of rs*rt to the (hi,lo)
// composite, hi holding the high half.
func opMULT(c *CPU, in inst) Status {
	product := int64(int32(c.getReg(in.rs()))) * int64(int32(c.getReg(in.rt())))
	c.SetHiLo(uint64(product))
	c.advance()
	return StatusSuccess
}

func opMULTU(c *CPU, in inst) Status {
	product := uint64(c.getReg(in.rs())) * uint64(c.getReg(in.rt()))
	c.SetHiLo(product)
	c.advance()
	return StatusSuccess
}

// opDIV writes the signed quotient to lo and the remainder to hi.
// Division by zero and the INT_MIN/-1 overflow case are architecturally
// undefined; this implementation deterministically zeros both halves for
// both rather than faulting or panicking on the division.
func opDIV(c *CPU, in inst) Status {
	divisor := int32(c.getReg(in.rt()))
	dividend := int32(c.getReg(in.rs()))

	if divisor == 0 || (dividend == -2147483648 && divisor == -1) {
		c.hi = 0
		c.lo = 0
		c.advance()
		return StatusSuccess
	}

	c.lo = uint32(dividend / divisor)
	c.hi = uint32(dividend % divisor)
	c.advance()
	return StatusSuccess
}

func opDIVU(c *CPU, in inst) Status {
	divisor := c.getReg(in.rt())
	dividend := c.getReg(in.rs())

	if divisor == 0 {
		c.hi = 0
		c.lo = 0
		c.advance()
		return StatusSuccess
	}

	c.lo = dividend / divisor
	c.hi = dividend % divisor
	c.advance()
	return StatusSuccess
}

func opMFHI(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.hi)
	c.advance()
	return StatusSuccess
}

func opMFLO(c *CPU, in inst) Status {
	c.setReg(in.rd(), c.lo)
	c.advance()
	return StatusSuccess
}

func opMTHI(c *CPU, in inst) Status {
	c.hi = c.getReg(in.rs())
	c.advance()
	return StatusSuccess
}

func opMTLO(c *CPU, in inst) Status {
	c.lo = c.getReg(in.rs())
	c.advance()
	return StatusSuccess
}
