// Command mipsstep loads a raw big-endian MIPS-I binary into flat memory
// and runs it instruction-by-instruction, reporting the final register
// file and the Status that stopped it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/user-none/go-chip-mips"
)

// flatBus is a simple fixed-size little-effort memory implementation for
// the demo CLI: a single contiguous byte array, out-of-range accesses
// reported as StatusInvalidAddress. It places no alignment restriction
// of its own beyond what the core already enforces.
type flatBus struct {
	data []byte
}

func newFlatBus(size int) *flatBus {
	return &flatBus{data: make([]byte, size)}
}

func (b *flatBus) Read(addr uint32, length int, buf []byte) mips.Status {
	if uint64(addr)+uint64(length) > uint64(len(b.data)) {
		return mips.StatusInvalidAddress
	}
	copy(buf[:length], b.data[addr:int(addr)+length])
	return mips.StatusSuccess
}

func (b *flatBus) Write(addr uint32, length int, buf []byte) mips.Status {
	if uint64(addr)+uint64(length) > uint64(len(b.data)) {
		return mips.StatusInvalidAddress
	}
	copy(b.data[addr:int(addr)+length], buf[:length])
	return mips.StatusSuccess
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "mipsstep",
		Short: "Step a raw MIPS-I binary image instruction by instruction",
	}

	var maxSteps int
	var memSize int
	var entry uint32
	var debugLevel int

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load image at address 0 and step until it faults or the step budget is exhausted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}
			if len(img) > memSize {
				return fmt.Errorf("image (%d bytes) exceeds memory size (%d bytes)", len(img), memSize)
			}

			bus := newFlatBus(memSize)
			copy(bus.data, img)

			c := mips.New(bus)
			c.SetPC(entry)
			if st := c.SetDebugLevel(debugLevel, os.Stderr); st != mips.StatusSuccess {
				return fmt.Errorf("invalid debug level: %s", st)
			}

			var status mips.Status
			steps := 0
			for ; steps < maxSteps; steps++ {
				status = c.Step()
				if status != mips.StatusSuccess {
					break
				}
			}

			fmt.Printf("stopped after %d step(s): %s\n", steps, status)
			fmt.Printf("pc=%08x\n", c.GetPC())
			for i := 1; i < 32; i++ {
				v, _ := c.GetRegister(i)
				if v != 0 {
					fmt.Printf("  $%-2d = %08x\n", i, v)
				}
			}

			if status.IsException() || status == mips.StatusSuccess {
				return nil
			}
			return fmt.Errorf("host error: %s", status)
		},
	}
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 10000, "Maximum instructions to execute")
	runCmd.Flags().IntVar(&memSize, "mem-size", 1<<20, "Flat memory size in bytes")
	runCmd.Flags().Uint32Var(&entry, "entry", 0, "Initial program counter")
	runCmd.Flags().IntVar(&debugLevel, "debug-level", 0, "Trace verbosity (0-3)")

	rootCmd.AddCommand(runCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
