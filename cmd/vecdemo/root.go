package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	noColor bool
	locale  string
)

var rootCmd = &cobra.Command{
	Use:   "vecdemo",
	Short: "Exercise the veckit growable-array container",
	Long: `vecdemo walks a Vector through its public operations: construction
from a literal list, single and ranged erase, resizing in both directions,
and reassignment, printing size, capacity and contents after each step.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&locale, "locale", "en", "BCP 47 tag used to format counters")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}
