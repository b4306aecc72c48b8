package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telomere-project/telomere"
)

func newDecompressCmd() *cobra.Command {
	f := &compressFlags{}
	cmd := &cobra.Command{
		Use:     "decompress",
		Aliases: []string{"d"},
		Short:   "Decompress a Telomere-compressed file",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && f.input == "" {
				f.input = args[0]
			}
			return runDecompress(f)
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&f.input, "input", "", "input file path")
	flags.StringVar(&f.output, "output", "", "output file path")
	flags.BoolVar(&f.status, "status", false, "log diagnostics to stderr (decompression emits no progress lines)")
	flags.BoolVar(&f.json, "json", false, "emit a single JSON summary on completion")
	flags.BoolVar(&f.dryRun, "dry-run", false, "run decompression but do not write the output")
	flags.BoolVar(&f.force, "force", false, "overwrite existing output files")
	return cmd
}

func runDecompress(f *compressFlags) error {
	configureLogging(f.status)

	data, err := os.ReadFile(f.input)
	if err != nil {
		return fmt.Errorf("telomere: reading input: %w", err)
	}

	out, err := telomere.Decompress(data)
	if err != nil {
		return fmt.Errorf("telomere: decompress: %w", err)
	}

	if !f.dryRun {
		if err := writeOutput(f.output, out, f.force); err != nil {
			return err
		}
	}

	if f.json {
		enc := json.NewEncoder(os.Stdout)
		return enc.Encode(compressSummary{
			InputBytes:  len(data),
			OutputBytes: len(out),
			OutputPath:  f.output,
		})
	}
	return nil
}
