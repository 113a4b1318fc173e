package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"birview/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "birview",
	Short: "Inspect extracted borrow-aware IR crates",
	Long:  `birview renders .bir crate files into deterministic, human-readable listings`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize diagnostics (auto|on|off)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
