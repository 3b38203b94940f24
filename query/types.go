// File: types.go
// Role: Compute's functional options, resolved against a private options
// struct exactly as dag.Option/belief.Option/condition.Option are.
package query

import (
	"io"

	"github.com/Temi-Tory/ipm/belief"
	"github.com/Temi-Tory/ipm/condition"
	"github.com/Temi-Tory/ipm/prob"
)

// Option configures Compute.
type Option func(*options)

type options struct {
	kind          prob.Kind
	verbose       bool
	verboseOut    io.Writer
	warnThreshold int
	onWarning     func(node string, contributions int)
	parallel      bool
	cacheCapacity int
}

func defaultOptions() options {
	return options{
		kind:          prob.KindScalar,
		warnThreshold: belief.DefaultWarnThreshold,
		cacheCapacity: condition.CacheCapacity,
	}
}

// WithKind pins the probability representation every node prior and edge
// probability must already be expressed in (spec.md §6's uncertainty_mode:
// scalar, interval, or p_box). Defaults to prob.KindScalar.
func WithKind(k prob.Kind) Option {
	return func(o *options) { o.kind = k }
}

// WithVerbose enables per-query diagnostics logging (spec.md §7: "logs
// diagnostics only when verbose is enabled and never to any global sink"),
// writing to w. A nil w defaults to os.Stderr.
func WithVerbose(w io.Writer) Option {
	return func(o *options) {
		o.verbose = true
		o.verboseOut = w
	}
}

// WithWarnThreshold overrides belief.DefaultWarnThreshold for the
// large-contribution-count diagnostic of spec.md §9.
func WithWarnThreshold(n int) Option {
	return func(o *options) { o.warnThreshold = n }
}

// WithOnWarning registers a callback invoked (in addition to the verbose
// logger, if enabled) whenever a node's contribution count exceeds the
// warn threshold. It never alters the computed beliefs.
func WithOnWarning(fn func(node string, contributions int)) Option {
	return func(o *options) { o.onWarning = fn }
}

// WithParallelConditioning enables the optional fan-out of spec.md §5
// across a diamond's 2^k conditioning states.
func WithParallelConditioning() Option {
	return func(o *options) { o.parallel = true }
}

// WithCacheCapacity overrides condition.CacheCapacity for this query's
// diamond-conditioning memoization cache.
func WithCacheCapacity(n int) Option {
	return func(o *options) { o.cacheCapacity = n }
}
