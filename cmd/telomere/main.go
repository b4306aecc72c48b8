// Command telomere compresses and decompresses files with the Telomere
// hash-seed codec.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/telomere-project/telomere"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "telomere",
		Short:         "Deterministic hash-seed compression codec",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

// configureLogging wires --status into the package-level logger: a
// console writer on stderr at debug level, which shows the pass driver's
// per-pass state and size lines. No per-block lines are emitted.
func configureLogging(status bool) {
	if status {
		telomere.Log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().Timestamp().Logger().Level(zerolog.DebugLevel)
	}
}
