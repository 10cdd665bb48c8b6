package mips

func init() {
	registerOp(opCOP0, "cop0", makeCopExec(0))
	registerOp(opCOP1, "cop1", makeCopExec(1))
	registerOp(opCOP2, "cop2", makeCopExec(2))
	registerOp(opCOP3, "cop3", makeCopExec(3))
	registerOp(opLWC0, "lwc0", makeCopLoad(0))
	registerOp(opLWC1, "lwc1", makeCopLoad(1))
	registerOp(opLWC2, "lwc2", makeCopLoad(2))
	registerOp(opLWC3, "lwc3", makeCopLoad(3))
	registerOp(opSWC0, "swc0", makeCopStore(0))
	registerOp(opSWC1, "swc1", makeCopStore(1))
	registerOp(opSWC2, "swc2", makeCopStore(2))
	registerOp(opSWC3, "swc3", makeCopStore(3))
}

// makeCopExec dispatches the main COPz instruction to the installed
// coprocessor's Exec hook for the given unit. Absent slots (no hook
// installed for this unit, or the unit's Exec field left nil) raise
// StatusNotImplemented — the core ships no coprocessor semantics itself,
// per the dispatch-hooks-only scope in the package doc. PC advances only
// when the hook reports success.
func makeCopExec(unit int) opHandler {
	return func(c *CPU, in inst) Status {
		cop := c.coprocessor[unit]
		if cop == nil || cop.Exec == nil {
			return StatusNotImplemented
		}
		if st := cop.Exec(c, uint32(in)); st != StatusSuccess {
			return st
		}
		c.advance()
		return StatusSuccess
	}
}

// makeCopLoad implements LWCz: it reads an aligned 32-bit word from
// memory, then hands the loaded value to the coprocessor's LoadWord
// hook. The hook's presence is confirmed before the read, so a missing
// hook never touches memory.
func makeCopLoad(unit int) opHandler {
	return func(c *CPU, in inst) Status {
		cop := c.coprocessor[unit]
		if cop == nil || cop.LoadWord == nil {
			return StatusNotImplemented
		}
		addr := effAddr(c, in)
		buf, st := loadAligned(c.mem, addr, 4, 4)
		if st != StatusSuccess {
			return st
		}
		cop.LoadWord(uint8(in.rt()), beUint32(buf))
		c.advance()
		return StatusSuccess
	}
}

// makeCopStore implements SWCz: the coprocessor's StoreWord hook supplies
// the value, which is then written through the standard aligned 32-bit
// memory path.
func makeCopStore(unit int) opHandler {
	return func(c *CPU, in inst) Status {
		cop := c.coprocessor[unit]
		if cop == nil || cop.StoreWord == nil {
			return StatusNotImplemented
		}
		val := cop.StoreWord(uint8(in.rt()))
		addr := effAddr(c, in)
		var buf [4]byte
		putBeUint32(buf[:], val)
		if st := storeAligned(c.mem, addr, buf[:], 4); st != StatusSuccess {
			return st
		}
		c.advance()
		return StatusSuccess
	}
}
