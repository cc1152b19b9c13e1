package scanner

import (
	"context"

	"github.com/theopenlane/mailaudit/internal/types"
)

// Evaluator is the per-domain check contract the coordinator dispatches onto
// the worker pool. Implementations must populate every field of the result;
// a returned error marks the whole evaluation as failed.
type Evaluator interface {
	CheckDomain(ctx context.Context, domain string) (types.DomainResult, error)
}
