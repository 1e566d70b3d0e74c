package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	mapped  bool
	seed    int64
)

var rootCmd = &cobra.Command{
	Use:   "vecstress",
	Short: "Soak and growth testing for veckit vectors",
	Long: `vecstress drives veckit's sequence container through randomized
operation sequences, cross-checking every step against a plain-slice
reference model, and reports allocation and relocation behavior.

It is a verification and profiling aid, not part of the library API.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&mapped, "mapped", false, "Use mapped (anonymous mmap) storage")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 1, "Random seed")
}

// newLogger builds the run logger. Quiet by default; --verbose lowers the
// level to debug.
func newLogger() *slog.Logger {
	lvl := slog.LevelWarn
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
