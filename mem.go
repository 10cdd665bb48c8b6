package mips

// Bus is the opaque memory backend the CPU is bound to. It is never owned
// by the CPU — only borrowed — and never freed by Free. Addresses and
// lengths are in bytes; data crossing the bus is in MIPS big-endian wire
// order (the CPU byte-reverses to/from host order around every call).
type Bus interface {
	Read(addr uint32, length int, buf []byte) Status
	Write(addr uint32, length int, buf []byte) Status
}

// ceilUp4 rounds addr up to the next multiple of 4.
func ceilUp4(addr uint32) uint32 {
	return (addr + 3) &^ 3
}

// busRead issues a natural-length read through the memory helper. If the
// bus reports invalid alignment — meaning the backend itself only accepts
// coarse, 4-byte-aligned transfers, not that the ISA requires alignment
// here — the helper widens the window to a padded, 4-byte-aligned range
// and extracts the requested slice. ISA-mandated alignment (LH/LHU/LW/
// SH/SW) is enforced by the caller before this is reached; this fallback
// exists purely to tolerate a coarse-grained bus.
func busRead(mem Bus, addr uint32, length int, out []byte) Status {
	st := mem.Read(addr, length, out)
	if st != StatusInvalidAlignment {
		return st
	}
	return widenedRead(mem, addr, length, out)
}

// busWrite is the store counterpart of busRead: on misalignment it widens
// the window, issues a read-modify-write, and writes the whole padded
// range back. This is the one path in the core where a failed call may
// leave partial effects — the read half of the read-modify-write can
// succeed while the write half faults.
func busWrite(mem Bus, addr uint32, length int, in []byte) Status {
	st := mem.Write(addr, length, in)
	if st != StatusInvalidAlignment {
		return st
	}
	return widenedWrite(mem, addr, length, in)
}

// widenedRead performs the padded read-and-extract fallback described in
// the memory-access helper design: read [addr-delta, ceil_up_4(addr+len))
// up to 8 bytes, then slice out the requested range.
func widenedRead(mem Bus, addr uint32, length int, out []byte) Status {
	start, end, delta, ok := widenedWindow(addr, length)
	if !ok {
		return StatusInvalidAlignment
	}
	var window [8]byte
	buf := window[:end-start]
	if st := mem.Read(start, len(buf), buf); st != StatusSuccess {
		return st
	}
	copy(out[:length], buf[delta:delta+uint32(length)])
	return StatusSuccess
}

// widenedWrite performs the padded read-modify-write fallback.
func widenedWrite(mem Bus, addr uint32, length int, in []byte) Status {
	start, end, delta, ok := widenedWindow(addr, length)
	if !ok {
		return StatusInvalidAlignment
	}
	var window [8]byte
	buf := window[:end-start]
	if st := mem.Read(start, len(buf), buf); st != StatusSuccess {
		return st
	}
	copy(buf[delta:delta+uint32(length)], in[:length])
	return mem.Write(start, len(buf), buf)
}

// widenedWindow computes the padded [start, end) window around addr/length
// and the offset of addr within it. Returns ok=false if the widened window
// would exceed 8 bytes, in which case the original alignment error stands.
func widenedWindow(addr uint32, length int) (start, end, delta uint32, ok bool) {
	start = addr &^ 3
	delta = addr - start
	end = ceilUp4(addr + uint32(length))
	if end-start > 8 {
		return 0, 0, 0, false
	}
	return start, end, delta, true
}

// loadAligned reads length bytes at addr, requiring strict ISA alignment
// (align must divide addr) before ever reaching the bus. The bytes are
// returned in big-endian wire order, exactly as stored.
func loadAligned(mem Bus, addr uint32, length int, align uint32) ([]byte, Status) {
	if align > 1 && addr%align != 0 {
		return nil, StatusInvalidAlignment
	}
	buf := make([]byte, length)
	if st := busRead(mem, addr, length, buf); st != StatusSuccess {
		return nil, st
	}
	return buf, StatusSuccess
}

// storeAligned writes data at addr, requiring strict ISA alignment first.
func storeAligned(mem Bus, addr uint32, data []byte, align uint32) Status {
	if align > 1 && addr%align != 0 {
		return StatusInvalidAlignment
	}
	return busWrite(mem, addr, len(data), data)
}
