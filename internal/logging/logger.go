// Package logging provides categorized structured logging for strcalc.
// Every category is a named child of one zap logger; categories can be
// switched off individually through config.
package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"strcalc/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot   Category = "boot"   // CLI startup, config loading
	CategoryConfig Category = "config" // Config file writes
	CategoryCalc   Category = "calc"   // Single calculations
	CategoryBatch  Category = "batch"  // Batch evaluation
)

var (
	mu       sync.RWMutex
	base     = zap.NewNop()
	settings config.LoggingConfig
)

// Build constructs a zap logger from cfg. verbose forces debug level.
func Build(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = cfg.Format
	if cfg.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Initialize builds the process logger and installs it.
func Initialize(cfg config.LoggingConfig, verbose bool) (*zap.Logger, error) {
	logger, err := Build(cfg, verbose)
	if err != nil {
		return nil, err
	}
	Install(logger, cfg)
	return logger, nil
}

// Install replaces the process logger. Tests use it with zap.NewNop or an
// observer core.
func Install(logger *zap.Logger, cfg config.LoggingConfig) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil {
		logger = zap.NewNop()
	}
	base = logger
	settings = cfg
}

// Sync flushes buffered entries.
func Sync() {
	mu.RLock()
	l := base
	mu.RUnlock()
	_ = l.Sync()
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return settings.IsCategoryEnabled(string(category))
}

// Get returns the logger for category, or a no-op logger if the category is
// disabled.
func Get(category Category) *zap.SugaredLogger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop().Sugar()
	}
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(string(category)).Sugar()
}

// =============================================================================
// CONVENIENCE FUNCTIONS
// =============================================================================

func Boot(format string, args ...interface{})      { Get(CategoryBoot).Infof(format, args...) }
func BootDebug(format string, args ...interface{}) { Get(CategoryBoot).Debugf(format, args...) }
func BootWarn(format string, args ...interface{})  { Get(CategoryBoot).Warnf(format, args...) }

func Config(format string, args ...interface{}) { Get(CategoryConfig).Infof(format, args...) }

func Calc(format string, args ...interface{})      { Get(CategoryCalc).Infof(format, args...) }
func CalcDebug(format string, args ...interface{}) { Get(CategoryCalc).Debugf(format, args...) }
func CalcWarn(format string, args ...interface{})  { Get(CategoryCalc).Warnf(format, args...) }

func Batch(format string, args ...interface{})      { Get(CategoryBatch).Infof(format, args...) }
func BatchDebug(format string, args ...interface{}) { Get(CategoryBatch).Debugf(format, args...) }
func BatchWarn(format string, args ...interface{})  { Get(CategoryBatch).Warnf(format, args...) }

// =============================================================================
// REQUEST ID TRACING
// =============================================================================

// RequestLogger tags every entry with a correlation ID.
type RequestLogger struct {
	category  Category
	requestID string
	fields    []interface{}
}

// WithRequestID creates a request-scoped logger.
func WithRequestID(category Category, requestID string) *RequestLogger {
	return &RequestLogger{category: category, requestID: requestID}
}

// WithField adds a field to the request logger
func (r *RequestLogger) WithField(key string, value interface{}) *RequestLogger {
	r.fields = append(r.fields, key, value)
	return r
}

func (r *RequestLogger) sugar() *zap.SugaredLogger {
	return Get(r.category).With(append([]interface{}{"req", r.requestID}, r.fields...)...)
}

func (r *RequestLogger) Debug(format string, args ...interface{}) { r.sugar().Debugf(format, args...) }
func (r *RequestLogger) Info(format string, args ...interface{})  { r.sugar().Infof(format, args...) }
func (r *RequestLogger) Warn(format string, args ...interface{})  { r.sugar().Warnf(format, args...) }
func (r *RequestLogger) Error(format string, args ...interface{}) { r.sugar().Errorf(format, args...) }

// =============================================================================
// TIMING HELPERS
// =============================================================================

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warnw(t.op+" slow", "elapsed", elapsed, "threshold", threshold)
	} else {
		Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	}
	return elapsed
}
