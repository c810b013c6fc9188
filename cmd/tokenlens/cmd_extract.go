package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenlens/internal/extract"
)

var outDir string

// extractCmd writes decoded content items to disk
var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Decode output and write each content item to a file",
	Long: `Decodes function output or a harness log (auto-detected by the
<NFT_OUTPUT> sentinel) and writes every content item into the output
directory: data-URL payloads as decoded bytes, HTML markup verbatim, and
links as one-line .url stubs.

Example:
  tokenlens extract --out rendered harness.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&outDir, "out", "", "output directory (default: config out_dir)")
	extractCmd.Flags().Int64Var(&gas, "gas", 0, "gas cost to attach when input is raw function output")
}

func runExtract(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}

	out, err := parseAny(input)
	if err != nil {
		return err
	}

	dir := outDir
	if dir == "" {
		dir = cfg.OutDir
	}

	paths, err := extract.WriteAll(out, dir)
	if err != nil {
		return err
	}

	logger.Info("extracted content items", zap.Int("count", len(paths)), zap.String("dir", dir))
	for _, p := range paths {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
