package scanner

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"

	"github.com/theopenlane/mailaudit/internal/emailauth"
	"github.com/theopenlane/mailaudit/internal/resolver"
	"github.com/theopenlane/mailaudit/internal/types"
)

const percentFactor = 100

// Scanner coordinates concurrent domain evaluations across a bounded worker
// pool. Evaluations are independent; results are drained by a single
// consumer, so no task's failure can abort or short-circuit the scan.
type Scanner struct {
	options   *ScanOptions
	evaluator Evaluator
}

// New creates a scan coordinator with the given options
func New(opts ...ScanOption) (*Scanner, error) {
	options := DefaultScanOptions()
	for _, opt := range opts {
		opt(options)
	}

	evaluator := options.Evaluator
	if evaluator == nil {
		resolverOpts := []resolver.Option{
			resolver.WithTimeout(options.QueryTimeout),
		}
		if options.Nameserver != "" {
			resolverOpts = append(resolverOpts, resolver.WithServer(options.Nameserver))
		}

		evalOpts := []emailauth.EvaluatorOption{
			emailauth.WithResolver(resolver.New(resolverOpts...)),
		}
		if options.Selectors != nil {
			evalOpts = append(evalOpts, emailauth.WithSelectors(options.Selectors))
		}

		evaluator = emailauth.NewEvaluator(evalOpts...)
	}

	return &Scanner{
		options:   options,
		evaluator: evaluator,
	}, nil
}

// Scan evaluates every domain in the list and returns the complete report.
// The input may contain duplicates; each entry is evaluated and reported
// independently. Output order follows completion order, which is
// nondeterministic; only one-result-per-input is guaranteed.
func (s *Scanner) Scan(ctx context.Context, domains []string) (*types.ScanReport, error) {
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	report := &types.ScanReport{
		ScanID:    ulid.Make().String(),
		StartedAt: time.Now(),
		Results:   make([]types.DomainResult, 0, len(domains)),
	}

	jobs := make(chan string, len(domains))
	results := make(chan types.DomainResult, len(domains))

	var wg sync.WaitGroup

	workers := s.options.Workers
	if workers > len(domains) {
		workers = len(domains)
	}

	for range workers {
		wg.Go(func() {
			for domain := range jobs {
				results <- s.evaluate(ctx, domain)
			}
		})
	}

	for _, domain := range domains {
		jobs <- domain
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	total := len(domains)
	completed := 0

	for result := range results {
		report.Results = append(report.Results, result)
		completed++

		if s.options.OnProgress != nil {
			s.options.OnProgress(types.Progress{
				Domain:    result.Domain,
				Completed: completed,
				Total:     total,
				Percent:   float64(completed) / float64(total) * percentFactor,
			})
		}
	}

	report.CompletedAt = time.Now()
	report.DurationSeconds = report.CompletedAt.Sub(report.StartedAt).Seconds()

	return report, nil
}

// evaluate runs one evaluation, converting an evaluator-fatal error into the
// synthesized all-Error result for that domain only
func (s *Scanner) evaluate(ctx context.Context, domain string) types.DomainResult {
	result, err := s.evaluator.CheckDomain(ctx, domain)
	if err != nil {
		log.Error().Err(err).Str("domain", domain).Msg("domain evaluation failed")
		return types.ErrorResult(domain)
	}

	return result
}
