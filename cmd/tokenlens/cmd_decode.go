package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenlens/internal/render"
)

var (
	gas     int64
	jsonOut bool
)

// decodeCmd parses raw function output
var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode raw tokenURI/render function output",
	Long: `Decodes the raw string returned by a contract render function.

Reads from the given file, or from stdin when no file (or "-") is given.
JSON-in-data-URL envelopes are expanded into one item per media attribute
(image, image_data, animation_url); any other input decodes as one item.

Example:
  tokenlens decode tokenuri.txt
  cast call $CONTRACT "tokenURI(uint256)" 1 | tokenlens decode --gas 48211`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

// harnessCmd parses sentinel-wrapped test harness logs
var harnessCmd = &cobra.Command{
	Use:   "harness [file]",
	Short: "Decode a test-harness log with <NFT_GAS>/<NFT_OUTPUT> sentinels",
	Long: `Decodes a test-run log produced by the harness contract, which wraps
gas cost and render output in <NFT_GAS>...</NFT_GAS> and
<NFT_OUTPUT>...</NFT_OUTPUT> sentinel markers.

Example:
  forge test -vv | tokenlens harness -`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHarness,
}

func init() {
	decodeCmd.Flags().Int64Var(&gas, "gas", 0, "gas cost to attach to the result")
	decodeCmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw decoded result as JSON")
	harnessCmd.Flags().BoolVar(&jsonOut, "json", false, "print the raw decoded result as JSON")
}

func runDecode(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	logger.Debug("decoding function output", zap.Int("bytes", len(input)))

	out, err := render.ParseFunctionOutput(input, gas, effectiveTrimSize())
	if err != nil {
		return err
	}
	return printOutput(cmd, out)
}

func runHarness(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	logger.Debug("decoding harness output", zap.Int("bytes", len(input)))

	out, err := render.ParseTestOutput(input)
	if err != nil {
		return err
	}
	return printOutput(cmd, out)
}

// parseAny decodes input as a harness log when the sentinel markers are
// present, and as raw function output otherwise. Used by the commands that
// accept either form (extract, watch).
func parseAny(input string) (render.ParsedOutput, error) {
	if strings.Contains(input, "<NFT_OUTPUT>") {
		return render.ParseTestOutput(input)
	}
	return render.ParseFunctionOutput(input, gas, effectiveTrimSize())
}

func printOutput(cmd *cobra.Command, out render.ParsedOutput) error {
	if jsonOut {
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(out))
	return nil
}
