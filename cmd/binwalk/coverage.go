package main

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/binaccess/binaccess"
	"github.com/binaccess/binaccess/internal/errs"
	"github.com/binaccess/binaccess/internal/pathbuilder"
)

// spinnerThreshold is the record count above which summarising the
// coverage log gets a progress spinner; below it the sort-and-merge is
// fast enough that a spinner would only flicker.
const spinnerThreshold = 4096

func newCoverageCmd() *cobra.Command {
	var stride uint64

	cmd := &cobra.Command{
		Use:   "coverage <file>",
		Short: "Walk a file in fixed-size strides and print the summarised coverage log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := binaccess.OpenReadingFile("", args[0], pathbuilder.Options{}, 0, binaccess.UntilEnd)
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer binaccess.Close(a)

			a.Coverage().Allow(true)
			a.Coverage().SetUsage(0, "walk")

			for {
				n := stride
				if remaining := a.AvailableBytes(); remaining < n {
					n = remaining
				}
				if n == 0 {
					break
				}
				if _, err := binaccess.ReadAllocatedBytes(a, int(n)); err != nil {
					if status, ok := errs.StatusOf(err); ok && status == errs.BeyondEnd {
						break
					}
					return fmt.Errorf("walk %s: %w", args[0], err)
				}
			}

			rec := a.Coverage()
			if rec.Len() > spinnerThreshold {
				s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
				s.Prefix = fmt.Sprintf("summarising %d records... ", rec.Len())
				s.Start()
				rec.Summarize(nil, nil)
				s.Stop()
			} else {
				rec.Summarize(nil, nil)
			}

			for _, r := range rec.Records() {
				fmt.Printf("%08x  %8d bytes  usage=%v\n", r.Offset, r.Size, r.Usage2)
			}
			return nil
		},
	}

	cmd.Flags().Uint64VarP(&stride, "stride", "s", 65536, "number of bytes read per walk step")
	return cmd
}
