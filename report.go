package eolfetch

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// OutcomeKind classifies the result of fetching a single product.
type OutcomeKind int

// Possible fetch outcomes.
const (
	KindSuccess OutcomeKind = iota
	KindNotFound
	KindRateLimited
	KindNetworkError
)

// String returns the human-readable name of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindNotFound:
		return "not found"
	case KindRateLimited:
		return "rate limited"
	default:
		return "network error"
	}
}

// Process exit codes. Single-product failure modes map directly; multi-product
// failures aggregate to ExitPartial unless zero products succeed.
const (
	ExitOK          = 0
	ExitPartial     = 5
	ExitNotFound    = 10
	ExitNetwork     = 11
	ExitWrite       = 12
	ExitRateLimited = 13
)

// Outcome records what happened for one product.
type Outcome struct {
	Err     error
	Product string
	Cycles  []json.RawMessage
	Kind    OutcomeKind
}

// BatchReport accumulates per-product outcomes. Outcomes appear in input order.
type BatchReport struct {
	Outcomes []Outcome
}

func (r *BatchReport) add(o Outcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Succeeded returns the successful results, in input order.
func (r *BatchReport) Succeeded() (results []ProductResult) {
	for _, o := range r.Outcomes {
		if o.Kind == KindSuccess {
			results = append(results, ProductResult{Product: o.Product, Cycles: o.Cycles})
		}
	}

	return
}

// Failed returns the failed outcomes, in input order.
func (r *BatchReport) Failed() (failed []Outcome) {
	for _, o := range r.Outcomes {
		if o.Kind != KindSuccess {
			failed = append(failed, o)
		}
	}

	return
}

// ExitCode computes the aggregate process exit code for the batch: ExitOK when
// everything succeeded, ExitPartial when some products succeeded and some
// failed, and the failure kind's own code when nothing succeeded. An all-failure
// batch with mixed failure kinds maps to ExitNetwork.
func (r *BatchReport) ExitCode() int {
	failed := r.Failed()

	switch {
	case len(failed) == 0:
		return ExitOK
	case len(failed) < len(r.Outcomes):
		return ExitPartial
	}

	kind := failed[0].Kind
	for _, o := range failed[1:] {
		if o.Kind != kind {
			return ExitNetwork
		}
	}

	return kind.exitCode()
}

func (k OutcomeKind) exitCode() int {
	switch k {
	case KindNotFound:
		return ExitNotFound
	case KindRateLimited:
		return ExitRateLimited
	default:
		return ExitNetwork
	}
}

// kindOf maps a fetch error to its outcome kind.
func kindOf(err error) OutcomeKind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrRateLimited):
		return KindRateLimited
	default:
		return KindNetworkError
	}
}
