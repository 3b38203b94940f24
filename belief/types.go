// File: types.go
// Role: Compute's functional options and the Conditioner injection point
// that lets package condition recurse back into this engine without an
// import cycle (condition imports belief; belief only holds a function type).
package belief

import (
	"context"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/prob"
)

// DefaultWarnThreshold is the contribution-count above which Compute invokes
// OnWarning for a node, per spec.md §9 ("any node that accumulates > ~20
// contributions should trigger a warning").
const DefaultWarnThreshold = 20

// Conditioner resolves the diamond-join contribution for d, given the outer
// graph (for original priors/edge probabilities), the beliefs computed so
// far for nodes outside d's relevant set, and the query's diamond storage
// (for recursing into d's own internal diamonds). Package condition
// supplies the concrete implementation; Compute never constructs one
// itself.
type Conditioner func(ctx context.Context, g *dag.Graph, d *diamond.Diamond, storage *diamond.Storage, beliefs map[string]prob.Value) (prob.Value, error)

// Option configures Compute.
type Option func(*options)

type options struct {
	warnThreshold int
	onWarning     func(node string, contributions int)
}

func defaultOptions() options {
	return options{warnThreshold: DefaultWarnThreshold}
}

// WithWarnThreshold overrides DefaultWarnThreshold.
func WithWarnThreshold(n int) Option {
	return func(o *options) { o.warnThreshold = n }
}

// WithOnWarning registers a non-fatal callback invoked when a node's
// contribution count exceeds the warn threshold. It never alters results.
func WithOnWarning(fn func(node string, contributions int)) Option {
	return func(o *options) { o.onWarning = fn }
}

// sourceAncestorCount returns how many of n's ancestors are graph sources.
func sourceAncestorCount(g *dag.Graph, n string) int {
	count := 0
	sources := g.SourceNodes()
	for a := range g.Ancestors(n) {
		if _, ok := sources[a]; ok {
			count++
		}
	}
	return count
}

// hasIndependentPaths reports whether n's incoming contributions must be
// kept separate for inclusion-exclusion rather than summed: true when n is
// itself a join, or when n has two or more source ancestors.
func hasIndependentPaths(g *dag.Graph, n string) bool {
	return g.IsJoin(n) || sourceAncestorCount(g, n) >= 2
}
