package mips

import (
	"io"
	"sync"
)

// Handle is an opaque reference to a CPU instance, in the shape a harness
// written in C (or any language without first-class pointers into this
// package) would expect: an integer token, never a raw *CPU.
type Handle int32

var (
	registryMu sync.Mutex
	registry   = map[Handle]*CPU{}
	nextHandle Handle = 1
)

func lookup(h Handle) (*CPU, Status) {
	registryMu.Lock()
	defer registryMu.Unlock()
	c, ok := registry[h]
	if !ok {
		return nil, StatusInvalidHandle
	}
	return c, StatusSuccess
}

// Create allocates a CPU bound to mem and returns a handle to it.
func Create(mem Bus) (Handle, Status) {
	if mem == nil {
		return 0, StatusInvalidArgument
	}

	c := New(mem)

	registryMu.Lock()
	defer registryMu.Unlock()
	h := nextHandle
	nextHandle++
	registry[h] = c
	return h, StatusSuccess
}

// ResetHandle restores the CPU behind h to its zero state. Memory
// binding, debug settings, and installed coprocessors are preserved.
func ResetHandle(h Handle) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	c.Reset()
	return StatusSuccess
}

// GetRegisterHandle reads general-purpose register index (0-31) of h.
func GetRegisterHandle(h Handle, index int) (uint32, Status) {
	c, st := lookup(h)
	if st != StatusSuccess {
		return 0, st
	}
	return c.GetRegister(index)
}

// SetRegisterHandle writes general-purpose register index (0-31) of h.
func SetRegisterHandle(h Handle, index int, value uint32) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	return c.SetRegister(index, value)
}

// GetPCHandle reads the PC of h.
func GetPCHandle(h Handle) (uint32, Status) {
	c, st := lookup(h)
	if st != StatusSuccess {
		return 0, st
	}
	return c.GetPC(), StatusSuccess
}

// SetPCHandle sets the PC of h directly; pcNext becomes value+4 and
// nothing executes.
func SetPCHandle(h Handle, value uint32) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	c.SetPC(value)
	return StatusSuccess
}

// StepHandle executes a single instruction on h.
func StepHandle(h Handle) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	return c.Step()
}

// SetDebugLevelHandle sets the debug verbosity (0-3) and, if sink is
// non-nil, the writer the debug sink writes to.
func SetDebugLevelHandle(h Handle, level int, sink io.Writer) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	return c.SetDebugLevel(level, sink)
}

// SetDebugHandlerHandle installs the byte-writer the debug sink writes
// to, without touching verbosity. The core never closes it.
func SetDebugHandlerHandle(h Handle, w io.Writer) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	return c.SetDebugHandler(w)
}

// SetCoprocessorHandle installs the hook set for coprocessor unit index
// (0-3) of h.
func SetCoprocessorHandle(h Handle, index int, cop *Coprocessor) Status {
	c, st := lookup(h)
	if st != StatusSuccess {
		return st
	}
	return c.SetCoprocessor(index, cop)
}

// Free releases the handle. It is idempotent: freeing an unknown or
// already-freed handle is a no-op that reports success, since there is
// nothing observable left to fail. It never closes a caller-installed
// debug sink — ownership of that writer was never transferred.
func Free(h Handle) Status {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, h)
	return StatusSuccess
}
