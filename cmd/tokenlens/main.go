// Command tokenlens decodes smart-contract render output (tokenURI-style
// strings or sentinel-wrapped test harness logs) into renderable media items.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tokenlens/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string
	trimSize   int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "tokenlens",
	Short: "tokenlens - decode on-chain token render output",
	Long: `tokenlens decodes the textual output of a smart-contract render call
(a tokenURI-style function, or a test-harness log wrapping gas and output in
<NFT_GAS>/<NFT_OUTPUT> sentinels) into a normalized set of renderable media
items: canonical base64 data URLs, decoded HTML markup, or untouched links.

Examples:
  tokenlens decode tokenuri.txt
  cat harness.log | tokenlens harness -
  tokenlens extract --out rendered harness.log
  tokenlens watch harness.log`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if verbose || cfg.Verbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFileName, "path to config file")
	rootCmd.PersistentFlags().IntVar(&trimSize, "trim-size", 0, "display truncation threshold for metadata attributes (0 = config default)")

	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(harnessCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(watchCmd)
}

// effectiveTrimSize resolves the --trim-size flag against the config.
func effectiveTrimSize() int {
	if trimSize > 0 {
		return trimSize
	}
	return cfg.TrimSize
}

// readInput reads the raw input string from the file named by args[0],
// or from stdin when no argument (or "-") is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return strings.TrimSpace(string(data)), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
