package eolfetch

import "github.com/cockroachdb/errors"

// Failure kinds surfaced by fetching and writing. Fetch and write errors are
// marked with one of these sentinels; classify with errors.Is.
var (
	ErrNotFound    = errors.New("product not found")
	ErrRateLimited = errors.New("rate limited")
	ErrNetwork     = errors.New("network or API error")
	ErrWrite       = errors.New("file write error")
)
