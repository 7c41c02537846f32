package main

import (
	"fmt"
	"io"
	"strings"

	"strcalc/internal/calculator"
	"strcalc/internal/logging"

	"github.com/spf13/cobra"
)

var rawInput bool

// sumCmd prints the sum of its input
var sumCmd = &cobra.Command{
	Use:   "sum [input]",
	Short: "Sum a delimited string of numbers",
	Long: `Sums the numbers in the input. Without an argument the input is read
from stdin.

Examples:
  strcalc sum "1,2,3"
  strcalc sum '//[**][%%]\n1**2%%3'
  printf '1\n2,3' | strcalc sum`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSum,
}

// explainCmd prints every stage of the calculation
var explainCmd = &cobra.Command{
	Use:   "explain [input]",
	Short: "Show delimiters, parsed numbers and ignored values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExplain,
}

func runSum(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	sum, err := calculator.Sum(input)
	reqLog := logging.WithRequestID(logging.CategoryCalc, requestID).WithField("input_len", len(input))
	if err != nil {
		reqLog.Debug("sum failed: %v", err)
		return err
	}
	reqLog.Debug("sum=%d", sum)

	if outputMode() == "json" {
		return writeJSON(cmd.OutOrStdout(), map[string]int{"sum": sum})
	}
	fmt.Fprintln(cmd.OutOrStdout(), sum)
	return nil
}

func runExplain(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	b, err := calculator.Parse(input)
	if err != nil {
		logging.WithRequestID(logging.CategoryCalc, requestID).Debug("explain failed: %v", err)
		return err
	}

	if outputMode() == "json" {
		return writeJSON(cmd.OutOrStdout(), b)
	}
	renderBreakdown(cmd.OutOrStdout(), b)
	return nil
}

// readInput takes the positional argument, or all of stdin when none is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		if rawInput {
			return args[0], nil
		}
		return decodeEscapes(args[0]), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

var escapeReplacer = strings.NewReplacer(`\\`, `\`, `\n`, "\n", `\t`, "\t", `\r`, "\r")

// decodeEscapes turns the two-character sequences \n, \t, \r and \\ into the
// characters they name, so shell arguments can carry newlines.
func decodeEscapes(s string) string {
	return escapeReplacer.Replace(s)
}

func outputMode() string {
	if cfg == nil {
		return "text"
	}
	return cfg.Output.Format
}
