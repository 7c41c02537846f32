package logging

import (
	"testing"
	"time"

	"strcalc/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, cfg config.LoggingConfig) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	Install(zap.New(core), cfg)
	t.Cleanup(func() { Install(zap.NewNop(), config.LoggingConfig{}) })
	return logs
}

func TestCategoryLoggersAreNamed(t *testing.T) {
	logs := observe(t, config.LoggingConfig{})

	Calc("sum=%d", 6)
	Batch("cases=%d", 2)
	BootDebug("starting")

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].LoggerName != "calc" || entries[0].Message != "sum=6" {
		t.Errorf("unexpected calc entry: %+v", entries[0])
	}
	if entries[1].LoggerName != "batch" {
		t.Errorf("expected batch logger, got %q", entries[1].LoggerName)
	}
	if entries[2].Level != zapcore.DebugLevel {
		t.Errorf("expected debug level, got %v", entries[2].Level)
	}
}

func TestDisabledCategoryIsSilent(t *testing.T) {
	logs := observe(t, config.LoggingConfig{Categories: map[string]bool{"calc": false}})

	Calc("hidden")
	Batch("shown")

	if logs.FilterLoggerName("calc").Len() != 0 {
		t.Error("calc category should be disabled")
	}
	if logs.FilterLoggerName("batch").Len() != 1 {
		t.Error("batch category should log")
	}
}

func TestRequestLoggerAddsFields(t *testing.T) {
	logs := observe(t, config.LoggingConfig{})

	WithRequestID(CategoryCalc, "req-1").WithField("input_len", 5).Info("done")

	entries := logs.FilterField(zap.String("req", "req-1")).All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry with req field, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["input_len"] != int64(5) {
		t.Errorf("expected input_len=5, got %v", ctx["input_len"])
	}
}

func TestTimerStopWithThreshold(t *testing.T) {
	logs := observe(t, config.LoggingConfig{})

	StartTimer(CategoryBatch, "evaluate").StopWithThreshold(time.Hour)
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 0 {
		t.Error("fast operation should not warn")
	}

	timer := StartTimer(CategoryBatch, "evaluate")
	timer.start = time.Now().Add(-time.Second)
	timer.StopWithThreshold(time.Millisecond)
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Error("slow operation should warn")
	}
}

func TestBuild(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := Build(config.LoggingConfig{Level: "warn", Format: format}, false)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", format, err)
		}
		if logger.Core().Enabled(zapcore.InfoLevel) {
			t.Errorf("%s: info should be disabled at warn level", format)
		}
	}

	logger, err := Build(config.LoggingConfig{Level: "error", Format: "json"}, true)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !logger.Core().Enabled(zapcore.DebugLevel) {
		t.Error("verbose should force debug level")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
