package scanner

import (
	"time"

	"github.com/theopenlane/mailaudit/internal/types"
)

// ScanOptions configures the coordinator and the default evaluator
type ScanOptions struct {
	// Workers bounds the number of concurrent domain evaluations
	Workers int
	// Nameserver overrides the DNS server, empty for the default
	Nameserver string
	// QueryTimeout bounds every individual DNS query
	QueryTimeout time.Duration
	// Selectors is the ordered DKIM selector candidate list; nil means the
	// default set, an explicitly empty slice forces DKIM to Unknown
	Selectors []string
	// OnProgress, when set, observes every completed evaluation
	OnProgress func(types.Progress)
	// Evaluator overrides the DNS-backed evaluator, used by tests
	Evaluator Evaluator
}

// ScanOption is a functional option for configuring the scanner
type ScanOption func(*ScanOptions)

// defaultWorkers is the worker-pool size when none is configured
const defaultWorkers = 10

// defaultQueryTimeout bounds each DNS query when none is configured
const defaultQueryTimeout = 3 * time.Second

// DefaultScanOptions returns default coordinator options
func DefaultScanOptions() *ScanOptions {
	return &ScanOptions{
		Workers:      defaultWorkers,
		QueryTimeout: defaultQueryTimeout,
	}
}

// WithWorkers sets the worker-pool size
func WithWorkers(workers int) ScanOption {
	return func(o *ScanOptions) {
		if workers > 0 {
			o.Workers = workers
		}
	}
}

// WithNameserver sets a custom DNS nameserver
func WithNameserver(server string) ScanOption {
	return func(o *ScanOptions) {
		o.Nameserver = server
	}
}

// WithQueryTimeout sets the per-query DNS timeout
func WithQueryTimeout(timeout time.Duration) ScanOption {
	return func(o *ScanOptions) {
		if timeout > 0 {
			o.QueryTimeout = timeout
		}
	}
}

// WithSelectors sets the ordered DKIM selector candidates
func WithSelectors(selectors []string) ScanOption {
	return func(o *ScanOptions) {
		o.Selectors = selectors
	}
}

// WithProgress registers an observer called after every completed evaluation
func WithProgress(fn func(types.Progress)) ScanOption {
	return func(o *ScanOptions) {
		o.OnProgress = fn
	}
}

// WithEvaluator injects a custom evaluator implementation
func WithEvaluator(e Evaluator) ScanOption {
	return func(o *ScanOptions) {
		o.Evaluator = e
	}
}
