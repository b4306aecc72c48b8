package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/telomere-project/telomere"
)

type compressFlags struct {
	input      string
	output     string
	blockSize  int
	passes     int
	maxSeedLen int
	status     bool
	json       bool
	dryRun     bool
	force      bool
}

type compressSummary struct {
	InputBytes  int    `json:"input_bytes"`
	OutputBytes int    `json:"output_bytes"`
	OutputPath  string `json:"output_path,omitempty"`
}

func newCompressCmd() *cobra.Command {
	f := &compressFlags{}
	cmd := &cobra.Command{
		Use:     "compress",
		Aliases: []string{"c"},
		Short:   "Compress a file with the Telomere codec",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && f.input == "" {
				f.input = args[0]
			}
			return runCompress(f)
		},
	}
	bindCommonFlags(cmd, f)
	return cmd
}

func bindCommonFlags(cmd *cobra.Command, f *compressFlags) {
	flags := cmd.Flags()
	flags.StringVar(&f.input, "input", f.input, "input file path")
	flags.StringVar(&f.output, "output", f.output, "output file path")
	flags.IntVar(&f.blockSize, "block-size", 3, "partition block size in bytes")
	flags.IntVar(&f.passes, "passes", 10, "maximum compression passes")
	flags.IntVar(&f.maxSeedLen, "max-seed-len", 3, "maximum seed byte length")
	flags.BoolVar(&f.status, "status", false, "emit human-readable per-pass progress lines on stderr (no per-block lines)")
	flags.BoolVar(&f.json, "json", false, "emit a single JSON summary on completion")
	flags.BoolVar(&f.dryRun, "dry-run", false, "run compression but do not write the output")
	flags.BoolVar(&f.force, "force", false, "overwrite existing output files")
}

func runCompress(f *compressFlags) error {
	configureLogging(f.status)

	data, err := os.ReadFile(f.input)
	if err != nil {
		return fmt.Errorf("telomere: reading input: %w", err)
	}

	cfg := telomere.Config{
		BlockSize:  f.blockSize,
		MaxPasses:  f.passes,
		MaxSeedLen: f.maxSeedLen,
		MaxArity:   5,
	}
	out, err := telomere.Compress(context.Background(), data, cfg)
	if err != nil {
		return fmt.Errorf("telomere: compress: %w", err)
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

func writeOutput(path string, data []byte, force bool) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("telomere: output %q already exists (use --force to overwrite)", path)
		}
	}
	return os.WriteFile(path, data, 0o644)
}
