package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binaccess/binaccess"
	"github.com/binaccess/binaccess/internal/pathbuilder"
)

func newDumpCmd() *cobra.Command {
	var offset uint64
	var length uint64

	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex-dump a window of a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := length
			if size == 0 {
				size = binaccess.UntilEnd
			}

			a, err := binaccess.OpenReadingFile("", args[0], pathbuilder.Options{}, offset, size)
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer binaccess.Close(a)

			buf, err := binaccess.ReadAllocatedBytes(a, int(a.WindowSize()))
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			hexDump(os.Stdout, buf, offset)
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&offset, "offset", "o", 0, "byte offset into the file to start at")
	cmd.Flags().Uint64VarP(&length, "length", "l", 0, "number of bytes to dump (0 means to end of file)")
	return cmd
}

// hexDump writes a 16-bytes-per-line hex dump with an ASCII sidebar,
// labelling each line with its absolute offset from base.
func hexDump(w *os.File, buf []byte, base uint64) {
	const width = 16
	for i := 0; i < len(buf); i += width {
		end := i + width
		if end > len(buf) {
			end = len(buf)
		}
		line := buf[i:end]

		fmt.Fprintf(w, "%08x  ", base+uint64(i))
		for j := 0; j < width; j++ {
			if j < len(line) {
				fmt.Fprintf(w, "%02x ", line[j])
			} else {
				fmt.Fprint(w, "   ")
			}
			if j == 7 {
				fmt.Fprint(w, " ")
			}
		}

		fmt.Fprint(w, " |")
		for _, b := range line {
			if b >= 0x20 && b < 0x7f {
				fmt.Fprintf(w, "%c", b)
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w, "|")
	}
}
