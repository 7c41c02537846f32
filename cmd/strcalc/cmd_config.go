package main

import (
	"fmt"
	"os"

	"strcalc/internal/config"
	"strcalc/internal/logging"

	"github.com/spf13/cobra"
)

var forceWrite bool

// configCmd groups config file commands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the strcalc config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default config file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}

	if _, err := os.Stat(path); err == nil && !forceWrite {
		return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logging.Config("wrote default config to %s", path)
	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", successStyle.Render("✓"), path)
	return nil
}
