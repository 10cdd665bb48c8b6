package mips

import "testing"

func TestShiftFamily(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x00011900) // SLL $3,$1,4
	c.SetRegister(1, 1)
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SLL step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 16 {
		t.Fatalf("$3 after SLL = %d, want 16", v)
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x00011843) // SRA $3,$1,1
	c.SetRegister(1, 0xFFFFFFFE) // -2
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SRA step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); int32(v) != -1 {
		t.Fatalf("$3 after SRA = %d, want -1", int32(v))
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x00221804) // SLLV $3,$2,$1
	c.SetRegister(1, 2)          // shift amount
	c.SetRegister(2, 1)          // value
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SLLV step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 4 {
		t.Fatalf("$3 after SLLV = %d, want 4", v)
	}
}

func TestSetLessThanFamily(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x0022182A) // SLT $3,$1,$2
	c.SetRegister(1, 0xFFFFFFFF) // -1
	c.SetRegister(2, 1)
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SLT step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 1 {
		t.Fatalf("$3 after SLT(-1,1) = %d, want 1", v)
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x0022182B) // SLTU $3,$1,$2
	c.SetRegister(1, 0xFFFFFFFF)
	c.SetRegister(2, 1)
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SLTU step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 0 {
		t.Fatalf("$3 after SLTU(0xFFFFFFFF,1) = %d, want 0 (unsigned compare)", v)
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x2823FFFF) // SLTI $3,$1,-1
	c.SetRegister(1, 0xFFFFFFFE) // -2
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SLTI step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 1 {
		t.Fatalf("$3 after SLTI(-2,-1) = %d, want 1", v)
	}
}

func TestMulDivFamily(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x00220018) // MULT $1,$2
	c.SetRegister(1, 0xFFFFFFFF) // -1
	c.SetRegister(2, 5)
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("MULT step = %v, want success", st)
	}
	if got := int64(c.GetHiLo()); got != -5 {
		t.Fatalf("GetHiLo() after MULT(-1,5) = %d, want -5", got)
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x0022001A) // DIV $1,$2
	c.SetRegister(1, 7)
	c.SetRegister(2, 2)
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("DIV step = %v, want success", st)
	}
	if v, _ := c.GetRegister(0); v != 0 {
		t.Fatalf("sanity: $0 should stay 0")
	}

	bus.storeWord(4, 0x00001812) // MFLO $3
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("MFLO step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 3 {
		t.Fatalf("$3 after MFLO(7/2) = %d, want 3", v)
	}

	bus.storeWord(8, 0x00001810) // MFHI $3
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("MFHI step = %v, want success", st)
	}
	if v, _ := c.GetRegister(3); v != 1 {
		t.Fatalf("$3 after MFHI(7%%2) = %d, want 1", v)
	}
}

func TestJumpFamily(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x08000008)  // J 0x20
	bus.storeWord(4, 0x00000021)  // ADDU $0,$0,$0 (delay slot NOP)
	bus.storeWord(0x20, 0x00000021) // landing pad

	if st := c.Step(); st != StatusSuccess { // J
		t.Fatalf("J step = %v, want success", st)
	}
	if st := c.Step(); st != StatusSuccess { // delay slot
		t.Fatalf("delay slot step = %v, want success", st)
	}
	if pc := c.GetPC(); pc != 0x20 {
		t.Fatalf("PC after J + delay slot = %x, want 20", pc)
	}

	c, bus = newTestCPU()
	bus.storeWord(0, 0x00202009) // JALR $4,$1
	c.SetRegister(1, 0x40)
	bus.storeWord(4, 0x00000021) // delay slot NOP
	bus.storeWord(0x40, 0x00000021)

	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("JALR step = %v, want success", st)
	}
	if v, _ := c.GetRegister(4); v != 8 {
		t.Fatalf("$4 after JALR = %x, want 8 (link address)", v)
	}
	if st := c.Step(); st != StatusSuccess { // delay slot
		t.Fatalf("delay slot step = %v, want success", st)
	}
	if pc := c.GetPC(); pc != 0x40 {
		t.Fatalf("PC after JALR + delay slot = %x, want 40", pc)
	}
}

func TestJumpRegisterRequiresAlignment(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x00202009) // JALR $4,$1
	c.SetRegister(1, 0x41)       // misaligned target

	if st := c.Step(); st != StatusInvalidAlignment {
		t.Fatalf("JALR to misaligned target = %v, want invalid-alignment", st)
	}
	if pc := c.GetPC(); pc != 0 {
		t.Fatalf("PC after faulting JALR = %x, want 0 (unchanged)", pc)
	}
}

func TestCoprocessorHooks(t *testing.T) {
	c, bus := newTestCPU()

	var execSeen uint32
	var loaded uint32
	var storeRequestedReg uint8

	cop := &Coprocessor{
		Exec: func(c *CPU, in uint32) Status {
			execSeen = in
			return StatusSuccess
		},
		LoadWord: func(rt uint8, value uint32) {
			loaded = value
		},
		StoreWord: func(rt uint8) uint32 {
			storeRequestedReg = rt
			return 0xCAFEF00D
		},
	}
	if st := c.SetCoprocessor(0, cop); st != StatusSuccess {
		t.Fatalf("SetCoprocessor = %v, want success", st)
	}

	bus.storeWord(0, 0x40814000) // COP0 with rs=4, rt=1, rd=8
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("COP0 exec step = %v, want success", st)
	}
	if execSeen != 0x40814000 {
		t.Fatalf("Exec hook saw %x, want the raw instruction word", execSeen)
	}

	bus.storeWord(0x100, 0xDEADBEEF)
	bus.storeWord(4, 0xC0220004) // LWC0 rt=2, base=$1, offset 4
	c.SetRegister(1, 0xFC)       // 0xFC + 4 = 0x100
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("LWC0 step = %v, want success", st)
	}
	if loaded != 0xDEADBEEF {
		t.Fatalf("LoadWord hook saw %x, want DEADBEEF", loaded)
	}

	bus.storeWord(8, 0xE0220004) // SWC0 rt=2, base=$1, offset 4
	if st := c.Step(); st != StatusSuccess {
		t.Fatalf("SWC0 step = %v, want success", st)
	}
	if storeRequestedReg != 2 {
		t.Fatalf("StoreWord hook got rt=%d, want 2", storeRequestedReg)
	}
	var readBack [4]byte
	bus.Read(0x100, 4, readBack[:])
	if beUint32(readBack[:]) != 0xCAFEF00D {
		t.Fatalf("memory at 0x100 after SWC0 = %x, want CAFEF00D", readBack)
	}
}

func TestCoprocessorMissingHookIsNotImplemented(t *testing.T) {
	c, bus := newTestCPU()
	bus.storeWord(0, 0x40814000) // COP0, no coprocessor installed

	if st := c.Step(); st != StatusNotImplemented {
		t.Fatalf("COP0 with no installed unit = %v, want not-implemented", st)
	}
}
