// Command caelix extracts structured outlines (title plus H1-H3
// headings) from PDF documents and writes them as JSON.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "caelix",
		Short: "Extract structured outlines from PDF documents",
	}

	root.AddCommand(extractCmd())
	root.AddCommand(batchCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
