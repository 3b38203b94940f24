// File: types.go
// Role: Diamond, DiamondsAtNode, and DiamondComputationData — the three
// records of spec §3 "Diamond" / "DiamondsAtNode" / "DiamondComputationData".
package diamond

import (
	"sort"

	"github.com/Temi-Tory/ipm/dag"
)

// Diamond is an immutable record at a specific join node: the full set of
// nodes reachable from its conditioning set on a path to the join, the
// conditioning set itself, and the induced edgelist.
type Diamond struct {
	JoinNode          string
	RelevantNodes     map[string]struct{}
	ConditioningNodes []string // ascending lexicographic order
	Edgelist          []dag.Edge
	Hash              uint64
}

// DiamondsAtNode bundles a join node's Diamond (if it has one) with the
// parents that combine with the diamond's output by ordinary
// inclusion-exclusion instead of conditioning.
type DiamondsAtNode struct {
	JoinNode          string
	Diamond           *Diamond // nil if j has no diamond
	NonDiamondParents []string // ascending lexicographic order
}

// DiamondComputationData is the per-unique-diamond artefact bundle of
// spec §3: the induced subgraph's own adjacency, closures, iteration sets,
// and the nested DiamondsAtNode for each of its own internal join nodes.
type DiamondComputationData struct {
	Diamond *Diamond

	Outgoing map[string]map[string]struct{}
	Incoming map[string]map[string]struct{}

	Sources map[string]struct{}
	Forks   map[string]struct{}
	Joins   map[string]struct{}

	IterationSets [][]string

	// InternalDiamonds maps each of the diamond's own internal join nodes,
	// other than JoinNode itself, to its own nested DiamondsAtNode. A
	// re-detection at JoinNode that reproduces this same diamond (the
	// detector's fixpoint) is never recorded here.
	InternalDiamonds map[string]*DiamondsAtNode

	// ExcludedAtComputation is the excluded set Storage passed to the
	// detector when it discovered InternalDiamonds, preserved so Idempotent
	// can re-run the same detection and compare fixpoints.
	ExcludedAtComputation map[string]struct{}
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func union(dst, src map[string]struct{}) {
	for k := range src {
		dst[k] = struct{}{}
	}
}

func diffInto(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(a))
	for k := range a {
		if _, in := b[k]; !in {
			out[k] = struct{}{}
		}
	}
	return out
}

func intersect(a, b map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	for k := range small {
		if _, in := big[k]; in {
			out[k] = struct{}{}
		}
	}
	return out
}

func toSet(ids []string) map[string]struct{} {
	out := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}
