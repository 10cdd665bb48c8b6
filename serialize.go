package mips

import (
	"encoding/binary"
	"errors"
)

// cpuSerializeVersion is incremented whenever the binary layout changes.
const cpuSerializeVersion = 1

// cpuSerializeSize is the number of bytes produced by CPU.Serialize.
// Update this constant whenever the binary layout changes.
const cpuSerializeSize = 1 + 32*4 + 4 + 4 + 4 + 4 + 4

// SerializeSize returns the number of bytes needed for Serialize.
func (c *CPU) SerializeSize() int { return cpuSerializeSize }

// Serialize writes the full CPU state into buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small.
// The bus binding, debug settings, and installed coprocessors are not
// included — a harness restoring a snapshot is expected to rebind those
// itself.
func (c *CPU) Serialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("mips: serialize buffer too small")
	}

	buf[0] = cpuSerializeVersion
	be := binary.BigEndian
	off := 1

	for i := 0; i < 32; i++ {
		be.PutUint32(buf[off:], c.reg[i])
		off += 4
	}

	be.PutUint32(buf[off:], c.hi)
	off += 4
	be.PutUint32(buf[off:], c.lo)
	off += 4
	be.PutUint32(buf[off:], c.pc)
	off += 4
	be.PutUint32(buf[off:], c.pcNext)
	off += 4
	be.PutUint32(buf[off:], c.prevPC)
	return nil
}

// Deserialize restores CPU state from buf, which must be at least
// SerializeSize() bytes. Returns an error if the buffer is too small or
// the version does not match. The bus, debug settings, and installed
// coprocessors are left unchanged.
func (c *CPU) Deserialize(buf []byte) error {
	if len(buf) < cpuSerializeSize {
		return errors.New("mips: deserialize buffer too small")
	}
	if buf[0] != cpuSerializeVersion {
		return errors.New("mips: unsupported serialize version")
	}

	be := binary.BigEndian
	off := 1

	for i := 0; i < 32; i++ {
		c.reg[i] = be.Uint32(buf[off:])
		off += 4
	}

	c.hi = be.Uint32(buf[off:])
	off += 4
	c.lo = be.Uint32(buf[off:])
	off += 4
	c.pc = be.Uint32(buf[off:])
	off += 4
	c.pcNext = be.Uint32(buf[off:])
	off += 4
	c.prevPC = be.Uint32(buf[off:])
	return nil
}
