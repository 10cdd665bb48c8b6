package mips

func init() {
	registerFunct(functSYSCALL, "syscall", opSYSCALL)
	registerFunct(functBREAK, "break", opBREAK)
}

// opSYSCALL and opBREAK return their architectural exception without
// advancing PC — the trapping instruction stays at pc so a harness that
// resumes execution (e.g. after servicing a syscall by hand) can decide
// whether to advance past it or redirect control itself.
func opSYSCALL(c *CPU, in inst) Status {
	return StatusSystemCall
}

func opBREAK(c *CPU, in inst) Status {
	return StatusBreak
}
