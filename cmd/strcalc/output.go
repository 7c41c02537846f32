package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"strcalc/internal/batch"
	"strcalc/internal/calculator"

	"github.com/charmbracelet/lipgloss"
)

var (
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(12)
	valueStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#e53935"))
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func renderBreakdown(w io.Writer, b calculator.Breakdown) {
	source := "default"
	if b.Custom {
		source = "header"
	}
	quoted := make([]string, len(b.Delimiters))
	for i, d := range b.Delimiters {
		quoted[i] = strconv.Quote(d)
	}

	fmt.Fprintf(w, "%s%s (%s)\n", labelStyle.Render("delimiters"), strings.Join(quoted, " "), source)
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render("numbers"), joinInts(b.Numbers))
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render("ignored"), joinInts(b.Ignored))
	fmt.Fprintf(w, "%s%s\n", labelStyle.Render("sum"), valueStyle.Render(strconv.Itoa(b.Sum)))
}

func renderResults(w io.Writer, results []batch.Result, passed, failed int) {
	for _, r := range results {
		if r.Success {
			fmt.Fprintf(w, "%s %s = %d\n", successStyle.Render("PASS"), r.CaseID, r.Sum)
			continue
		}
		reason := r.Error
		if r.Detail != "" {
			if reason != "" {
				reason += "; "
			}
			reason += r.Detail
		}
		fmt.Fprintf(w, "%s %s: %s\n", failStyle.Render("FAIL"), r.CaseID, reason)
	}
	fmt.Fprintf(w, "\n%d passed, %d failed\n", passed, failed)
}

func joinInts(values []int) string {
	if len(values) == 0 {
		return "-"
	}
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
