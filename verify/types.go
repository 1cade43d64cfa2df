package verify

import (
	"errors"
	"io"
	"log/slog"
	"runtime"
)

// ErrInvalidConfig indicates a Config that failed validation.
var ErrInvalidConfig = errors.New("verify: invalid config")

// DefaultCacheSize is the number of graph instances a Verifier keeps.
const DefaultCacheSize = 16

// Config describes one verification run.
//
// Exactly one of ColoringText and ColoringPath must be set. ExpectedK == 0
// means no color-count expectation. TruncateExtra drops colors beyond the
// graph's vertex count instead of failing with a length mismatch.
type Config struct {
	GraphPath     string `yaml:"graph_path" validate:"required"`
	ColoringText  string `yaml:"coloring_text" validate:"required_without=ColoringPath,excluded_with=ColoringPath"`
	ColoringPath  string `yaml:"coloring_path" validate:"required_without=ColoringText"`
	ExpectedK     int    `yaml:"expected_k" validate:"gte=0"`
	TruncateExtra bool   `yaml:"truncate_extra"`
	PreviewLimit  int    `yaml:"preview_limit" validate:"gte=0"`
}

// Option configures a Verifier.
type Option func(*options)

type options struct {
	logger      *slog.Logger
	concurrency int
	cacheSize   int
}

func defaultOptions() options {
	return options{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.GOMAXPROCS(0),
		cacheSize:   DefaultCacheSize,
	}
}

// WithLogger sets the logger used for stage and outcome records.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("verify: WithLogger(nil)")
	}
	return func(o *options) { o.logger = l }
}

// WithConcurrency bounds how many runs RunBatch executes at once.
// n < 1 keeps the default (GOMAXPROCS).
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.concurrency = n
		}
	}
}

// WithCacheSize sets how many loaded graphs the Verifier keeps.
// n < 1 keeps DefaultCacheSize.
func WithCacheSize(n int) Option {
	return func(o *options) {
		if n >= 1 {
			o.cacheSize = n
		}
	}
}
