package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sectiond",
	Short: "Section content pipeline and serving daemon",
	Long: `sectiond extracts hand-authored section documents into a normalized
tab/group content model, serves the result over HTTP, and filters it
per viewer profile through the context policy engine.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
