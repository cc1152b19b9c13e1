package emailauth

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/theopenlane/mailaudit/internal/resolver"
	"github.com/theopenlane/mailaudit/internal/types"
)

const dmarcPrefix = "_dmarc."

// DefaultSelectors are the DKIM selector candidates probed when none are configured
var DefaultSelectors = []string{"default", "selector1", "selector2", "mail"}

// Resolver is the DNS query surface the evaluator depends on
type Resolver interface {
	QueryTXT(ctx context.Context, name string) resolver.TXTResult
	QueryA(ctx context.Context, name string) resolver.Outcome
}

// Evaluator runs the full per-domain check sequence: SPF, DMARC, the DKIM
// selector sweep, spoofing derivation, and the dangling-record heuristic.
// Each sub-check degrades only its own field; DNS-level failures never
// escalate past the sub-check that hit them.
type Evaluator struct {
	resolver  Resolver
	selectors []string
}

// EvaluatorOption configures the Evaluator
type EvaluatorOption func(*Evaluator)

// WithResolver overrides the DNS client used for lookups
func WithResolver(r Resolver) EvaluatorOption {
	return func(e *Evaluator) {
		if r != nil {
			e.resolver = r
		}
	}
}

// WithSelectors sets the ordered DKIM selector candidate list. An explicitly
// empty list forces the DKIM verdict to Unknown for every domain.
func WithSelectors(selectors []string) EvaluatorOption {
	return func(e *Evaluator) {
		e.selectors = selectors
	}
}

// NewEvaluator creates a domain evaluator
func NewEvaluator(opts ...EvaluatorOption) *Evaluator {
	e := &Evaluator{
		resolver:  resolver.New(),
		selectors: DefaultSelectors,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CheckDomain evaluates one domain and returns its fully populated result.
// A returned error marks the whole evaluation as failed; the caller is
// expected to substitute an all-Error result.
func (e *Evaluator) CheckDomain(ctx context.Context, domain string) (types.DomainResult, error) {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		return types.DomainResult{}, ErrEmptyDomain
	}

	result := types.DomainResult{
		Domain:                     domain,
		SPF:                        types.StatusFail,
		DKIM:                       types.StatusFail,
		DMARC:                      types.StatusFail,
		VulnerableToSpoofing:       types.StatusYes,
		PotentialSubdomainTakeover: types.StatusUnknown,
	}

	result.SPF = e.checkTXT(ctx, domain, IsValidSPF)
	result.DMARC = e.checkTXT(ctx, dmarcPrefix+domain, IsValidDMARC)
	result.DKIM = e.checkDKIM(ctx, domain)

	if result.SPF == types.StatusPass && result.DMARC == types.StatusPass {
		result.VulnerableToSpoofing = types.StatusNo
	}

	result.PotentialSubdomainTakeover = e.checkTakeover(ctx, domain)

	return result, nil
}

// checkTXT queries TXT records at name and applies valid to each answer.
// Any absence or failure classification collapses to Fail for record checks.
func (e *Evaluator) checkTXT(ctx context.Context, name string, valid func(string) bool) types.Status {
	res := e.resolver.QueryTXT(ctx, name)
	if res.Outcome != resolver.OutcomeFound {
		log.Debug().Str("name", name).Stringer("outcome", res.Outcome).Msg("no qualifying TXT answer")
		return types.StatusFail
	}

	for _, record := range res.Records {
		if valid(record) {
			return types.StatusPass
		}
	}

	return types.StatusFail
}

// checkDKIM sweeps the configured selectors in order, stopping at the first
// selector that publishes a valid-looking key. Selector order is the
// tie-break when several would match.
func (e *Evaluator) checkDKIM(ctx context.Context, domain string) types.Status {
	if len(e.selectors) == 0 {
		return types.StatusUnknown
	}

	for _, selector := range e.selectors {
		name := fmt.Sprintf("%s._domainkey.%s", selector, domain)
		if e.checkTXT(ctx, name, IsValidDKIM) == types.StatusPass {
			return types.StatusPass
		}
	}

	return types.StatusFail
}

// checkTakeover applies the dangling-record heuristic to the apex A record.
// Only a definitive NXDOMAIN flags the domain; a timeout or an empty answer
// leaves the verdict at Unknown. CNAME chains to third-party endpoints are
// deliberately not inspected.
func (e *Evaluator) checkTakeover(ctx context.Context, domain string) types.Status {
	switch e.resolver.QueryA(ctx, domain) {
	case resolver.OutcomeFound:
		return types.StatusNo
	case resolver.OutcomeNXDomain:
		return types.StatusYes
	default:
		return types.StatusUnknown
	}
}
