// File: engine.go
// Role: Compute is compute_beliefs from spec.md §4.E: the per-node
// traversal in iteration-set order that folds parent beliefs, diamond-join
// contributions, and inclusion-exclusion into a complete belief table.
package belief

import (
	"context"
	"sort"

	"github.com/Temi-Tory/ipm/dag"
	"github.com/Temi-Tory/ipm/diamond"
	"github.com/Temi-Tory/ipm/prob"
)

// Compute returns node -> ProbabilityValue for every node of g, processing
// nodes in g.IterationSets() order so every parent's belief is available
// before it is needed. diamondLookup maps a join node to its DiamondsAtNode,
// for the join nodes whose diamonds were detected at this traversal's own level;
// nodes absent from diamondLookup combine their parents by ordinary
// inclusion-exclusion. conditioner resolves a diamond's join contribution
// and is supplied by package condition; it may itself recurse into Compute
// on an induced sub-graph.
func Compute(
	ctx context.Context,
	g *dag.Graph,
	diamondLookup map[string]*diamond.DiamondsAtNode,
	storage *diamond.Storage,
	conditioner Conditioner,
	opts ...Option,
) (map[string]prob.Value, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	beliefs := make(map[string]prob.Value, len(g.Nodes()))

	for _, level := range g.IterationSets() {
		for _, n := range level {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			prior, ok := g.NodePrior(n)
			if !ok {
				return nil, &dag.MissingPriorError{Node: n}
			}
			if g.IsSource(n) {
				beliefs[n] = prior
				continue
			}

			var contributions []prob.Value

			if dn := diamondLookup[n]; dn != nil && dn.Diamond != nil {
				joinContribution, err := conditioner(ctx, g, dn.Diamond, storage, beliefs)
				if err != nil {
					return nil, err
				}
				contributions = append(contributions, joinContribution)

				nonDiamond, err := parentContributions(g, beliefs, n, dn.NonDiamondParents)
				if err != nil {
					return nil, err
				}
				contributions = appendGrouped(contributions, g, n, nonDiamond)
			} else {
				parents := sortedParents(g, n)
				parentContribs, err := parentContributions(g, beliefs, n, parents)
				if err != nil {
					return nil, err
				}
				contributions = appendGrouped(contributions, g, n, parentContribs)
			}

			if o.onWarning != nil && len(contributions) > o.warnThreshold {
				o.onWarning(n, len(contributions))
			}

			beliefs[n] = prob.Mul(prior, combine(contributions))
		}
	}

	return beliefs, nil
}

// parentContributions computes belief[p] x edge_prob[(p,n)] for each p in
// parents, in the given order.
func parentContributions(g *dag.Graph, beliefs map[string]prob.Value, n string, parents []string) ([]prob.Value, error) {
	out := make([]prob.Value, 0, len(parents))
	for _, p := range parents {
		pb, ok := beliefs[p]
		if !ok {
			return nil, &ProcessingOrderError{Node: p}
		}
		ep, ok := g.EdgeProb(dag.Edge{From: p, To: n})
		if !ok {
			return nil, &MissingEdgeProbabilityError{From: p, To: n}
		}
		out = append(out, prob.Mul(pb, ep))
	}
	return out, nil
}

// appendGrouped appends parentContribs to contributions individually when n
// needs inclusion-exclusion to see them separately (join node or >=2 source
// ancestors), or as a single folded sum otherwise.
func appendGrouped(contributions []prob.Value, g *dag.Graph, n string, parentContribs []prob.Value) []prob.Value {
	if len(parentContribs) == 0 {
		return contributions
	}
	if hasIndependentPaths(g, n) {
		return append(contributions, parentContribs...)
	}
	return append(contributions, prob.Sum(parentContribs))
}

func combine(contributions []prob.Value) prob.Value {
	switch len(contributions) {
	case 0:
		return prob.Zero()
	case 1:
		return contributions[0]
	default:
		return inclusionExclusion(contributions)
	}
}

func sortedParents(g *dag.Graph, n string) []string {
	parents := g.Incoming(n)
	out := make([]string, 0, len(parents))
	for p := range parents {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
