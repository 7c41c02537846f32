package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"strcalc/internal/batch"
	"strcalc/internal/logging"

	"github.com/spf13/cobra"
)

var batchConcurrency int

// batchCmd evaluates a YAML suite of inputs
var batchCmd = &cobra.Command{
	Use:   "batch <suite.yaml>",
	Short: "Evaluate a YAML suite of inputs",
	Long: `Evaluates every case of a suite file concurrently and prints one line
per case. Exits non-zero when any case fails.

Suite format:
  version: 1
  cases:
    - id: defaults
      input: "1\n2,3"
      expect: 6
    - id: negatives
      input: "-1,-2"
      expect_error: "negatives not allowed"`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	suite, err := batch.LoadSuite(args[0])
	if err != nil {
		return fmt.Errorf("failed to load suite: %w", err)
	}

	opts := batch.Options{Concurrency: batchConcurrency}
	if cfg != nil {
		if opts.Concurrency <= 0 {
			opts.Concurrency = cfg.Batch.Concurrency
		}
		opts.Timeout = cfg.GetBatchTimeout()
	}

	results, err := batch.Evaluate(ctx, suite, opts)
	if err != nil {
		return err
	}

	passed, failed := batch.Summary(results)
	logging.WithRequestID(logging.CategoryBatch, requestID).
		WithField("passed", passed).
		WithField("failed", failed).
		Info("suite %s evaluated", args[0])

	if outputMode() == "json" {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return err
		}
	} else {
		renderResults(cmd.OutOrStdout(), results, passed, failed)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	return nil
}
