// File: priors.go
// Role: validatePriors checks total coverage and kind-consistency of the
// node_priors/edge_probs tables against the constructed node/edge set, per
// spec §3 ("Total functions node -> ProbabilityValue and edge ->
// ProbabilityValue; every node and every edge must be covered") and §6
// ("all probability inputs must match" the configured uncertainty_mode).
package dag

import "github.com/Temi-Tory/ipm/prob"

func validatePriors(nodes []string, edges []Edge, nodePriors map[string]prob.Value, edgeProbs map[Edge]prob.Value, o options) (prob.Kind, error) {
	kind := o.expectedKind
	pinned := o.kindPinned

	for _, n := range nodes {
		v, ok := nodePriors[n]
		if !ok {
			return 0, &MissingPriorError{Node: n}
		}
		if !prob.IsValidProbability(v) {
			return 0, &InvalidProbabilityError{Where: n, Lo: v.Lo(), Hi: v.Hi()}
		}
		if !pinned {
			kind, pinned = v.Kind(), true
		} else if v.Kind() != kind {
			return 0, &InvalidProbabilityError{Where: n, Lo: v.Lo(), Hi: v.Hi()}
		}
	}

	for _, e := range edges {
		v, ok := edgeProbs[e]
		if !ok {
			return 0, &MissingEdgeProbabilityError{From: e.From, To: e.To}
		}
		if !prob.IsValidProbability(v) {
			return 0, &InvalidProbabilityError{Where: e.From + "->" + e.To, Lo: v.Lo(), Hi: v.Hi()}
		}
		if !pinned {
			kind, pinned = v.Kind(), true
		} else if v.Kind() != kind {
			return 0, &InvalidProbabilityError{Where: e.From + "->" + e.To, Lo: v.Lo(), Hi: v.Hi()}
		}
	}

	return kind, nil
}

// IsIrrelevantSource reports whether n is a source node whose prior is
// exactly zero or exactly one (spec §3: "Sources whose prior is exactly 0
// or exactly 1 are classified as irrelevant sources"). Only meaningful
// under scalar semantics; interval/p-box sources are never irrelevant
// because their bounds carry uncertainty even at degenerate endpoints
// unless lo==hi==0 or lo==hi==1.
func (g *Graph) IsIrrelevantSource(n string) bool {
	if !g.IsSource(n) {
		return false
	}
	v, ok := g.nodePriors[n]
	if !ok {
		return false
	}
	return (v.Lo() == 0 && v.Hi() == 0) || (v.Lo() == 1 && v.Hi() == 1)
}
