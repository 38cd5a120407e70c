package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "reflow",
		Short: "Reconstruct reading order from positioned page text",
	}

	root.AddCommand(extractCmd())
	root.AddCommand(blocksCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
