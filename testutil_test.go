package mips

// testBus is a flat 1MB byte-array bus for testing. Addresses are used
// directly with no masking; out-of-range accesses return
// StatusInvalidAddress, and misaligned accesses are honored naturally
// (this fixture accepts any address/length, so the widened-window
// fallback in mem.go is never exercised by it — see alignFaultBus below
// for that).
type testBus struct {
	mem [1024 * 1024]byte
}

func (b *testBus) Read(addr uint32, length int, buf []byte) Status {
	if uint64(addr)+uint64(length) > uint64(len(b.mem)) {
		return StatusInvalidAddress
	}
	copy(buf[:length], b.mem[addr:addr+uint32(length)])
	return StatusSuccess
}

func (b *testBus) Write(addr uint32, length int, buf []byte) Status {
	if uint64(addr)+uint64(length) > uint64(len(b.mem)) {
		return StatusInvalidAddress
	}
	copy(b.mem[addr:addr+uint32(length)], buf[:length])
	return StatusSuccess
}

// storeWord writes a big-endian 32-bit instruction or data word directly
// into the backing array, bypassing Write, for test setup convenience.
func (b *testBus) storeWord(addr uint32, word uint32) {
	putBeUint32(b.mem[addr:addr+4], word)
}

// alignFaultBus wraps testBus but reports StatusInvalidAlignment for any
// access not aligned to 4 bytes, modeling a coarse-grained memory backend
// that only accepts word-aligned transfers. Used to exercise the widened
// read-modify-write fallback in mem.go.
type alignFaultBus struct {
	testBus
}

func (b *alignFaultBus) Read(addr uint32, length int, buf []byte) Status {
	if addr%4 != 0 {
		return StatusInvalidAlignment
	}
	return b.testBus.Read(addr, length, buf)
}

func (b *alignFaultBus) Write(addr uint32, length int, buf []byte) Status {
	if addr%4 != 0 {
		return StatusInvalidAlignment
	}
	return b.testBus.Write(addr, length, buf)
}
