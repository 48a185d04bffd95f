// Command binwalk opens a file through an accessor and prints either a
// hex dump of a window or a summarised coverage log of a sequential
// walk over it.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binaccess/binaccess"
)

func main() {
	root := &cobra.Command{
		Use:   "binwalk",
		Short: "Inspect binary files through a binaccess cursor",
	}

	root.AddCommand(newDumpCmd())
	root.AddCommand(newCoverageCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
