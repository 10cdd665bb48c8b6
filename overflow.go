package mips

// signedAddOverflows reports whether dst+src overflows the signed 32-bit
// range: overflow occurs when both operands share a sign and the
// result's sign differs from theirs.
func signedAddOverflows(src, dst, result uint32) bool {
	const msb = 0x80000000
	return (src^result)&(dst^result)&msb != 0
}

// signedSubOverflows reports whether dst-src overflows the signed 32-bit
// range: operands differ in sign and the result's sign differs from dst.
func signedSubOverflows(src, dst, result uint32) bool {
	const msb = 0x80000000
	return (src^dst)&(result^dst)&msb != 0
}
