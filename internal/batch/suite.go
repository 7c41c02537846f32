// Package batch evaluates YAML-defined suites of calculator inputs.
// Cases are independent, so they run concurrently; results keep suite order.
package batch

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"strcalc/internal/calculator"
	"strcalc/internal/logging"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Suite is a collection of cases.
type Suite struct {
	Version int    `yaml:"version"`
	Cases   []Case `yaml:"cases"`
}

// Case is a single input with an optional expectation. Without an
// expectation a case succeeds when the input sums without error.
type Case struct {
	ID          string `yaml:"id"`
	Input       string `yaml:"input"`
	Expect      *int   `yaml:"expect,omitempty"`
	ExpectError string `yaml:"expect_error,omitempty"` // substring of the error message
}

// Result captures the outcome of one case.
type Result struct {
	CaseID     string `json:"id"`
	Input      string `json:"input"`
	Sum        int    `json:"sum"`
	Error      string `json:"error,omitempty"`
	Success    bool   `json:"success"`
	Detail     string `json:"detail,omitempty"` // why an expectation was not met
	DurationNs int64  `json:"duration_ns"`
}

// Options bounds an evaluation.
type Options struct {
	Concurrency int           // max cases in flight; <1 means 1
	Timeout     time.Duration // zero means no deadline
}

// LoadSuite reads a YAML suite file from disk.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse suite YAML: %w", err)
	}
	for i := range s.Cases {
		if s.Cases[i].ID == "" {
			s.Cases[i].ID = fmt.Sprintf("case-%d", i+1)
		}
		if s.Cases[i].Expect != nil && s.Cases[i].ExpectError != "" {
			return nil, fmt.Errorf("case %s: expect and expect_error are mutually exclusive", s.Cases[i].ID)
		}
	}
	return &s, nil
}

// Evaluate runs every case of s. It returns an error only when ctx is done
// before all cases finish.
func Evaluate(ctx context.Context, s *Suite, opts Options) ([]Result, error) {
	if s == nil || len(s.Cases) == 0 {
		return nil, nil
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}
	limit := opts.Concurrency
	if limit < 1 {
		limit = 1
	}

	timer := logging.StartTimer(logging.CategoryBatch, "evaluate")
	defer timer.Stop()
	logging.Batch("evaluating %d cases (concurrency=%d)", len(s.Cases), limit)

	results := make([]Result, len(s.Cases))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, c := range s.Cases {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = runCase(c)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("batch evaluation aborted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch evaluation aborted: %w", err)
	}
	return results, nil
}

func runCase(c Case) Result {
	start := time.Now()
	sum, err := calculator.Sum(c.Input)
	res := Result{
		CaseID:     c.ID,
		Input:      c.Input,
		Sum:        sum,
		DurationNs: time.Since(start).Nanoseconds(),
	}
	if err != nil {
		res.Error = err.Error()
	}

	switch {
	case c.ExpectError != "":
		res.Success = err != nil && strings.Contains(err.Error(), c.ExpectError)
		if !res.Success {
			res.Detail = fmt.Sprintf("expected error containing %q", c.ExpectError)
		}
	case c.Expect != nil:
		res.Success = err == nil && sum == *c.Expect
		if !res.Success {
			res.Detail = fmt.Sprintf("expected sum %d", *c.Expect)
		}
	default:
		res.Success = err == nil
	}

	if !res.Success {
		logging.BatchDebug("case %s failed: %s %s", c.ID, res.Error, res.Detail)
	}
	return res
}

// Summary counts passed and failed results.
func Summary(results []Result) (passed, failed int) {
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
