package main

import (
	"fmt"
	"os"

	"strcalc/internal/config"
	"strcalc/internal/logging"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	verbose      bool
	configPath   string
	outputFormat string

	// Resolved at startup
	cfg       *config.Config
	logger    *zap.Logger
	requestID string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "strcalc",
	Short: "strcalc - sum delimited strings of numbers",
	Long: `strcalc adds up the integers in a delimited string.

Numbers are separated by commas or newlines. A first line of the form
"//;" or "//[***][%%]" declares custom delimiters instead. Negative
numbers are rejected and numbers above 1000 are ignored.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if outputFormat != "" {
			loaded.Output.Format = outputFormat
			if err := loaded.Validate(); err != nil {
				return err
			}
		}
		cfg = loaded

		logger, err = logging.Initialize(cfg.Logging, verbose)
		if err != nil {
			return err
		}
		requestID = uuid.NewString()
		logging.BootDebug("config=%s output=%s req=%s", configPath, cfg.Output.Format, requestID)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logging.Sync()
		}
	},
}

// versionCmd prints the build version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the strcalc version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "strcalc %s\n", version)
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file path")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "Output format: text or json (overrides config)")

	// Input flags
	for _, c := range []*cobra.Command{sumCmd, explainCmd} {
		c.Flags().BoolVar(&rawInput, "raw", false, `Do not decode \n, \t and \\ escapes in the argument`)
	}

	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "Cases evaluated in parallel (default from config)")
	configInitCmd.Flags().BoolVar(&forceWrite, "force", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)

	// Add commands to root
	rootCmd.AddCommand(sumCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "strcalc: %v\n", err)
		os.Exit(1)
	}
}
