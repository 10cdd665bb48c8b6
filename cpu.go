// Package mips implements a single-hart, little-endian-host MIPS-I
// instruction set interpreter.
//
// The MIPS-I architecture modeled here has:
//   - Thirty-two 32-bit general-purpose registers, $0 hardwired to zero
//   - A HI/LO register pair for multiply/divide results
//   - A 32-bit program counter with a one-instruction branch-delay slot
//   - Four coprocessor unit slots, dispatched through caller-installed hooks
//
// The CPU owns no memory of its own: it is bound to an externally supplied
// Bus at creation and every load/store crosses that interface. This makes
// the core embeddable behind the C-style handle API in capi.go, the shape
// a harness written in another language would expect.
package mips

import (
	"fmt"
	"io"
	"log"
)

// Coprocessor is the hook set an embedder installs for one of the four
// coprocessor unit slots (0-3). Any of the three functions may be nil; a
// nil Exec makes the unit's main COPz opcode raise StatusNotImplemented,
// and nil LoadWord/StoreWord do the same for LWCz/SWCz targeting that
// unit. The core ships no coprocessor implementations of its own — TLB,
// FPU, and privileged-mode state are explicitly out of scope.
type Coprocessor struct {
	// Exec handles the main COPz instruction (op 0x10-0x13). It receives
	// the raw 32-bit instruction word, undecoded.
	Exec func(c *CPU, in uint32) Status

	// LoadWord is called by LWCz after the core reads an aligned 32-bit
	// word from memory; it hands the loaded value to the coprocessor's
	// register rt.
	LoadWord func(rt uint8, value uint32)

	// StoreWord is called by SWCz to obtain the value of coprocessor
	// register rt before the core writes it to memory.
	StoreWord func(rt uint8) uint32
}

// CPU is a single MIPS-I hart.
type CPU struct {
	mem Bus

	reg [32]uint32
	hi  uint32
	lo  uint32

	pc     uint32 // address of the instruction about to execute
	pcNext uint32 // address (or branch target) that follows it
	prevPC uint32 // pc at the start of the most recent Step, for diagnostics

	coprocessor [4]*Coprocessor

	debugLevel int
	debugSink  io.Writer
}

// New creates a CPU bound to mem. All registers, HI/LO, and PC start at
// zero, with pcNext initialized to 4 (the instruction after PC 0).
func New(mem Bus) *CPU {
	c := &CPU{mem: mem}
	c.Reset()
	return c
}

// Reset restores the zero state defined for a freshly created CPU:
// registers, HI/LO, and PC all zero, pcNext set to 4. The memory binding,
// debug settings, and installed coprocessors are preserved.
func (c *CPU) Reset() {
	c.reg = [32]uint32{}
	c.hi = 0
	c.lo = 0
	c.pc = 0
	c.pcNext = 4
	c.prevPC = 0
}

// getReg reads general-purpose register i. Reads of $0 always yield zero
// regardless of what (if anything) has ever been stored there.
func (c *CPU) getReg(i uint32) uint32 {
	if i == 0 {
		return 0
	}
	return c.reg[i]
}

// setReg is the only path that may mutate a general-purpose register; it
// silently discards writes to $0. Every instruction handler that writes a
// register must go through this, never c.reg[i] directly.
func (c *CPU) setReg(i uint32, v uint32) {
	if i == 0 {
		return
	}
	c.reg[i] = v
}

// Step fetches, decodes, and executes exactly one instruction, honoring
// the branch-delay-slot protocol in pc.go. On a non-success Status, PC and
// every register hold the same values they held immediately before this
// call — handlers validate before they mutate.
func (c *CPU) Step() Status {
	c.prevPC = c.pc

	word, st := loadAligned(c.mem, c.pc, 4, 4)
	if st != StatusSuccess {
		return st
	}
	in := inst(beUint32(word))

	st = c.dispatch(in)

	if c.debugLevel > 0 {
		c.trace(in, st)
	}

	return st
}

// dispatch routes a decoded instruction to its handler, indirecting
// through functTable for SPECIAL (R-type) and through the REGIMM switch
// for BLTZ/BGEZ/BLTZAL/BGEZAL, both of which share one major opcode
// across several unrelated operations.
func (c *CPU) dispatch(in inst) Status {
	op := in.op()

	if op == opRegimm {
		return c.dispatchRegimm(in)
	}

	h := opcodeTable[op]
	if h == nil {
		return StatusInvalidInstruction
	}
	return h(c, in)
}

// dispatchRegimm handles the REGIMM major opcode, whose rt field selects
// among BLTZ, BGEZ, BLTZAL, and BGEZAL.
func (c *CPU) dispatchRegimm(in inst) Status {
	switch in.rt() {
	case regimmBLTZ:
		return opBLTZ(c, in)
	case regimmBGEZ:
		return opBGEZ(c, in)
	case regimmBLTZAL:
		return opBLTZAL(c, in)
	case regimmBGEZAL:
		return opBGEZAL(c, in)
	}
	return StatusInvalidInstruction
}

// trace writes a debug line for the instruction just executed, per the
// verbosity level: 1 logs exceptions only, 2 adds the mnemonic for every
// instruction, 3 adds a register/PC snapshot. Each line is formatted
// straight onto the writer; nothing is buffered or retained across calls.
func (c *CPU) trace(in inst, st Status) {
	w := c.debugSink
	if w == nil {
		w = log.Writer()
	}

	if c.debugLevel == 1 {
		if st == StatusSuccess {
			return
		}
		fmt.Fprintf(w, "mips: pc=%08x %s\n", c.prevPC, st)
		return
	}

	fmt.Fprintf(w, "mips: pc=%08x %-8s status=%s", c.prevPC, mnemonicFor(in), st)
	if c.debugLevel >= 3 {
		fmt.Fprintf(w, " hi=%08x lo=%08x next_pc=%08x", c.hi, c.lo, c.pc)
	}
	fmt.Fprintln(w)
}

// SetDebugLevel sets the trace verbosity (0-3). A nil sink falls back to
// whatever writer is already installed via SetDebugHandler, or the
// platform default (log.Writer()) if none has ever been installed.
func (c *CPU) SetDebugLevel(level int, sink io.Writer) Status {
	if level < 0 || level > 3 {
		return StatusInvalidArgument
	}
	c.debugLevel = level
	if sink != nil {
		c.debugSink = sink
	}
	return StatusSuccess
}

// SetDebugHandler installs the byte-writer the debug sink writes to. The
// core never closes a writer installed this way — ownership always stays
// with the caller, including across Free.
func (c *CPU) SetDebugHandler(w io.Writer) Status {
	c.debugSink = w
	return StatusSuccess
}

// SetCoprocessor installs (or clears, with a nil cop) the hook set for
// coprocessor unit index (0-3).
func (c *CPU) SetCoprocessor(index int, cop *Coprocessor) Status {
	if index < 0 || index > 3 {
		return StatusInvalidArgument
	}
	c.coprocessor[index] = cop
	return StatusSuccess
}

// GetRegister reads general-purpose register index (0-31).
func (c *CPU) GetRegister(index int) (uint32, Status) {
	if index < 0 || index > 31 {
		return 0, StatusInvalidArgument
	}
	return c.getReg(uint32(index)), StatusSuccess
}

// SetRegister writes general-purpose register index (0-31). Writes to
// register 0 are accepted and silently discarded, per the register file
// discipline in setReg.
func (c *CPU) SetRegister(index int, value uint32) Status {
	if index < 0 || index > 31 {
		return StatusInvalidArgument
	}
	c.setReg(uint32(index), value)
	return StatusSuccess
}

// GetHiLo reads the HI/LO register pair as a 64-bit composite, hi in the
// high half.
func (c *CPU) GetHiLo() uint64 {
	return uint64(c.hi)<<32 | uint64(c.lo)
}

// SetHiLo writes the HI/LO register pair from a 64-bit composite.
func (c *CPU) SetHiLo(v uint64) {
	c.hi = uint32(v >> 32)
	c.lo = uint32(v)
}

// GetPC reads the address of the instruction currently at the head of the
// pipeline (the one Step will execute next).
func (c *CPU) GetPC() uint32 {
	return c.pc
}

// SetPC sets PC directly and sets pcNext to pc+4, as if no branch were
// pending. It does not execute anything.
func (c *CPU) SetPC(pc uint32) {
	c.pc = pc
	c.pcNext = pc + 4
}
