// File: compute.go
// Role: Compute wires dag.Build -> diamond detection/storage ->
// belief.Compute -> condition.Resolver behind one entry point, per
// SPEC_FULL.md §0's query package description.
package query

import (
	"context"
	"sort"

	"github.com/Temi-Tory/ipm/belief"
	"github.com/Temi-Tory/ipm/condition"
	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/diag"
	"github.com/Temi-Tory/ipm/memo"
	"github.com/Temi-Tory/ipm/prob"
)

// Result is Compute's output bundle (spec.md §6): every input node's
// belief, plus diagnostics that never feed back into the computation.
type Result struct {
	// Beliefs maps every node of the input graph to its computed belief.
	Beliefs map[string]prob.Value

	// QueryID is this query's correlation id, surfaced only in
	// diagnostics (spec.md §2 domain-stack table: "never semantically
	// consumed").
	QueryID string

	// CacheStats reports the diamond-conditioning cache's final hit/miss/
	// eviction counts, for testable property 8 (cache invariance).
	CacheStats memo.Stats
}

// Compute runs the full pipeline over edges/nodePriors/edgeProbs and
// returns every node's belief. The returned error, when non-nil, is always
// reachable via errors.Is/errors.As against a sentinel or error type from
// dag, diamond, belief, condition, or prob, or is the context's own error —
// Compute introduces no error types of its own.
func Compute(
	ctx context.Context,
	edges []dag.Edge,
	nodePriors map[string]prob.Value,
	edgeProbs map[dag.Edge]prob.Value,
	opts ...Option,
) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	logger := diag.New(o.verbose, o.verboseOut)

	g, err := dag.Build(edges, nodePriors, edgeProbs, dag.WithKind(o.kind))
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	lookup, roots, err := topLevelDiamonds(g)
	if err != nil {
		logger.Error(err)
		return nil, err
	}
	for j, dn := range lookup {
		if dn.Diamond == nil {
			continue
		}
		logger.DiamondDetected(j, len(dn.Diamond.ConditioningNodes), len(dn.Diamond.RelevantNodes))
		logger.ConditioningStates(j, len(dn.Diamond.ConditioningNodes))
	}

	storage, err := diamond.BuildStorage(g, roots)
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	cache := memo.New[condition.DiamondCacheKey, condition.DiamondCacheEntry](o.cacheCapacity)
	var condOpts []condition.Option
	if o.parallel {
		condOpts = append(condOpts, condition.WithParallelStates())
	}
	resolver := condition.NewResolver(cache, condOpts...)

	var beliefOpts []belief.Option
	beliefOpts = append(beliefOpts, belief.WithWarnThreshold(o.warnThreshold))
	beliefOpts = append(beliefOpts, belief.WithOnWarning(func(node string, contributions int) {
		logger.Warn(node, contributions)
		if o.onWarning != nil {
			o.onWarning(node, contributions)
		}
	}))

	beliefs, err := belief.Compute(ctx, g, lookup, storage, resolver.Resolve, beliefOpts...)
	if err != nil {
		logger.Error(err)
		return nil, err
	}

	stats := cache.Stats()
	logger.CacheStats("diamond", stats.Hits, stats.Misses, stats.Evictions)

	return &Result{Beliefs: beliefs, QueryID: logger.ID(), CacheStats: stats}, nil
}

// topLevelDiamonds detects a DiamondsAtNode for every join node of g at
// excluded=nil (the top level). Every one of them is both a lookup entry
// for belief.Compute (so Result.Beliefs is exact at every node, including
// one that also happens to sit inside another join's induced set) and a
// root passed to BuildStorage, so storage always holds a
// DiamondComputationData for any diamond the top-level conditioner
// recurses into.
//
// A join's diamond being independently rediscovered again, nested, inside
// an outer diamond's induced subgraph (with a smaller excluded set, hence
// generally a different structural hash) is redundant but not incorrect:
// package condition never reads an outer belief for a node it is about to
// solve exactly, and the two detections simply occupy distinct cache
// entries.
func topLevelDiamonds(g *dag.Graph) (map[string]*diamond.DiamondsAtNode, []*diamond.Diamond, error) {
	joins := make([]string, 0, len(g.JoinNodes()))
	for j := range g.JoinNodes() {
		joins = append(joins, j)
	}
	sort.Strings(joins)

	lookup := make(map[string]*diamond.DiamondsAtNode, len(joins))
	var roots []*diamond.Diamond
	for _, j := range joins {
		dn, err := diamond.DetectAtNode(g, j, nil)
		if err != nil {
			return nil, nil, err
		}
		if dn == nil {
			continue
		}
		lookup[j] = dn
		if dn.Diamond != nil {
			roots = append(roots, dn.Diamond)
		}
	}

	return lookup, roots, nil
}
