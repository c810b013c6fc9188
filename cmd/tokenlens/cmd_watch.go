package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tokenlens/internal/watch"
)

// watchCmd re-decodes a harness log whenever it changes
var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Watch a harness log and re-decode on every change",
	Long: `Watches the given file and re-runs the decoder whenever it changes,
printing a fresh summary. Rapid saves are debounced. Stop with Ctrl-C.

Example:
  tokenlens watch harness.log`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]

	redecode := func(p string) {
		data, err := os.ReadFile(p)
		if err != nil {
			logger.Error("failed to read watched file", zap.String("path", p), zap.Error(err))
			return
		}
		out, err := parseAny(string(data))
		if err != nil {
			logger.Warn("decode failed", zap.Error(err))
			fmt.Fprintln(cmd.OutOrStdout(), renderError(err))
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderSummary(out))
	}

	debounce := time.Duration(cfg.WatchDebounceMs) * time.Millisecond
	w, err := watch.New(path, debounce, logger, redecode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Stop()

	// Decode once up front so the first summary doesn't wait for a save.
	redecode(path)

	<-ctx.Done()
	return nil
}
