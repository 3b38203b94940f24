// File: detector.go
// Role: Detect implements the per-join-node diamond detection algorithm of
// spec §4.C, steps 1-10.
package diamond

import (
	"sort"

	"github.com/Temi-Tory/ipm/dag"
)

// Detect identifies the maximal diamond subgraph (if any) ending at
// joinNode, given the global graph g and a set of nodes already pinned by
// an outer conditioning context (excluded). It returns (nil, nil) when
// joinNode has no diamond, or when every candidate conditioning node is
// already excluded (spec step 6: "abort, j is fully explained by an outer
// diamond").
func Detect(g *dag.Graph, joinNode string, excluded map[string]struct{}) (*Diamond, error) {
	irrelevant := irrelevantSources(g, excluded)

	parents := sortedKeys(g.Incoming(joinNode))
	if len(parents) < 2 {
		return nil, nil
	}

	shared := sharedForkAncestors(g, parents, irrelevant)
	// asymmetricDiamondParents's return value is unused; it is called for
	// its side effect of folding step-3 ancestor/descendant parent pairs
	// into shared. NonDiamondParents below recomputes parents of its own
	// from d.RelevantNodes and never reads this set.
	_ = asymmetricDiamondParents(g, parents, irrelevant, shared)
	if len(shared) == 0 {
		return nil, nil
	}

	relevant := seedRelevant(g, joinNode, shared)
	edgelist := inducedEdges(g, relevant)

	conditioning := conditioningCandidates(g, relevant, edgelist, excluded)
	if len(conditioning) == 0 {
		return nil, nil
	}

	iterations := 0
	for {
		iterations++
		if iterations > MaxRecursionIterations {
			return nil, &RecursionDepthExceededError{JoinNode: joinNode}
		}

		grewIntermediates, err := closeIntermediates(g, joinNode, relevant, &edgelist, excluded)
		if err != nil {
			return nil, err
		}

		grewSources, err := closeSubSourceSharing(g, joinNode, relevant, &edgelist, excluded)
		if err != nil {
			return nil, err
		}

		if !grewIntermediates && !grewSources {
			break
		}
	}

	finalConditioning := conditioningCandidates(g, relevant, edgelist, excluded)
	if len(finalConditioning) == 0 {
		return nil, nil
	}
	sort.Strings(finalConditioning)

	d := &Diamond{
		JoinNode:          joinNode,
		RelevantNodes:     relevant,
		ConditioningNodes: finalConditioning,
		Edgelist:          edgelist,
	}
	d.Hash = structuralHash(d.Edgelist, d.ConditioningNodes, d.RelevantNodes)

	return d, nil
}

// NonDiamondParents returns the parents of joinNode that are not part of
// the diamond's relevant-node set, i.e. they combine with the diamond's
// output by ordinary inclusion-exclusion rather than conditioning.
func NonDiamondParents(g *dag.Graph, joinNode string, d *Diamond) []string {
	parents := g.Incoming(joinNode)
	if d == nil {
		return sortedKeys(parents)
	}
	var out []string
	for p := range parents {
		if _, in := d.RelevantNodes[p]; !in {
			out = append(out, p)
		}
	}
	sort.Strings(out)
	return out
}

// DetectAtNode wraps Detect to build the full DiamondsAtNode record for a
// join node.
func DetectAtNode(g *dag.Graph, joinNode string, excluded map[string]struct{}) (*DiamondsAtNode, error) {
	d, err := Detect(g, joinNode, excluded)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return &DiamondsAtNode{
		JoinNode:          joinNode,
		Diamond:           d,
		NonDiamondParents: NonDiamondParents(g, joinNode, d),
	}, nil
}

// irrelevantSources is step 1: sources with a degenerate (0 or 1) prior,
// unioned with the caller's excluded set.
func irrelevantSources(g *dag.Graph, excluded map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for s := range g.SourceNodes() {
		if g.IsIrrelevantSource(s) {
			out[s] = struct{}{}
		}
	}
	union(out, excluded)
	return out
}

// sharedForkAncestors is step 2: ancestors shared by >= 2 parents of
// joinNode, restricted to fork nodes and excluding irrelevant sources.
func sharedForkAncestors(g *dag.Graph, parents []string, irrelevant map[string]struct{}) map[string]struct{} {
	count := make(map[string]int)
	for _, p := range parents {
		forkAncestors := intersect(g.Ancestors(p), g.ForkNodes())
		forkAncestors = diffInto(forkAncestors, irrelevant)
		for a := range forkAncestors {
			count[a]++
		}
	}
	shared := make(map[string]struct{})
	for a, c := range count {
		if c >= 2 {
			shared[a] = struct{}{}
		}
	}
	return shared
}

// asymmetricDiamondParents is step 3: if p1 is itself an ancestor of
// another parent p2, p1 joins the shared set and both become diamond
// parents.
func asymmetricDiamondParents(g *dag.Graph, parents []string, irrelevant, shared map[string]struct{}) map[string]struct{} {
	diamondParents := make(map[string]struct{})
	for _, p1 := range parents {
		if _, bad := irrelevant[p1]; bad {
			continue
		}
		for _, p2 := range parents {
			if p1 == p2 {
				continue
			}
			anc := g.Ancestors(p2)
			if _, ok := anc[p1]; ok {
				shared[p1] = struct{}{}
				diamondParents[p1] = struct{}{}
				diamondParents[p2] = struct{}{}
			}
		}
	}
	return diamondParents
}

// seedRelevant is step 5: shared U {j} U (descendants(a) n ancestors(j))
// for every shared ancestor a.
func seedRelevant(g *dag.Graph, joinNode string, shared map[string]struct{}) map[string]struct{} {
	relevant := make(map[string]struct{})
	union(relevant, shared)
	relevant[joinNode] = struct{}{}
	ancestorsOfJoin := g.Ancestors(joinNode)
	for a := range shared {
		between := intersect(g.Descendants(a), ancestorsOfJoin)
		union(relevant, between)
	}
	return relevant
}

// inducedEdges returns every global edge whose endpoints both lie in
// relevant, preserving the global graph's edge order.
func inducedEdges(g *dag.Graph, relevant map[string]struct{}) []dag.Edge {
	var out []dag.Edge
	for _, e := range g.Edges() {
		_, okFrom := relevant[e.From]
		_, okTo := relevant[e.To]
		if okFrom && okTo {
			out = append(out, e)
		}
	}
	return out
}

// conditioningCandidates is step 6: induced sources (nodes in relevant with
// no incoming induced edge), minus excluded.
func conditioningCandidates(g *dag.Graph, relevant map[string]struct{}, edgelist []dag.Edge, excluded map[string]struct{}) []string {
	hasIncoming := make(map[string]bool, len(relevant))
	for _, e := range edgelist {
		hasIncoming[e.To] = true
	}
	var out []string
	for n := range relevant {
		if hasIncoming[n] {
			continue
		}
		if _, ex := excluded[n]; ex {
			continue
		}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// closeIntermediates is step 7: every incoming edge (in the global graph)
// of an intermediate node must be present in the diamond's edgelist, even
// if that pulls in new nodes/edges outside the current relevant set. It
// reports whether the edgelist grew.
func closeIntermediates(g *dag.Graph, joinNode string, relevant map[string]struct{}, edgelist *[]dag.Edge, excluded map[string]struct{}) (bool, error) {
	before := len(*edgelist)
	inEdgelist := edgeSet(*edgelist)

	conditioning := toSet(conditioningCandidates(g, relevant, *edgelist, excluded))
	intermediates := diffInto(diffInto(relevant, conditioning), map[string]struct{}{joinNode: {}})

	for n := range intermediates {
		for p := range g.Incoming(n) {
			e := dag.Edge{From: p, To: n}
			if inEdgelist[e] {
				continue
			}
			*edgelist = append(*edgelist, e)
			inEdgelist[e] = true
			relevant[p] = struct{}{}
		}
	}

	return len(*edgelist) != before, nil
}

// closeSubSourceSharing is step 8: while the current induced source set
// has >= 2 members sharing a deeper ancestor (or one is an ancestor of
// another), pull in the paths from that ancestor down to joinNode.
func closeSubSourceSharing(g *dag.Graph, joinNode string, relevant map[string]struct{}, edgelist *[]dag.Edge, excluded map[string]struct{}) (bool, error) {
	grew := false
	iterations := 0
	for {
		iterations++
		if iterations > MaxRecursionIterations {
			return grew, &RecursionDepthExceededError{JoinNode: joinNode}
		}

		sources := conditioningCandidates(g, relevant, *edgelist, excluded)
		if len(sources) < 2 {
			return grew, nil
		}

		deeperShared := sharedForkAncestors(g, sources, irrelevantSources(g, excluded))
		for _, p1 := range sources {
			for _, p2 := range sources {
				if p1 == p2 {
					continue
				}
				if _, ok := g.Ancestors(p2)[p1]; ok {
					deeperShared[p1] = struct{}{}
				}
			}
		}
		// Only ancestors not already inside relevant represent genuine
		// growth; otherwise we've reached a fixpoint.
		newAncestors := diffInto(deeperShared, relevant)
		if len(newAncestors) == 0 {
			return grew, nil
		}

		ancestorsOfJoin := g.Ancestors(joinNode)
		for a := range newAncestors {
			between := intersect(g.Descendants(a), ancestorsOfJoin)
			between[a] = struct{}{}
			union(relevant, between)
		}
		*edgelist = inducedEdges(g, relevant)
		grew = true
	}
}

func edgeSet(edges []dag.Edge) map[dag.Edge]bool {
	out := make(map[dag.Edge]bool, len(edges))
	for _, e := range edges {
		out[e] = true
	}
	return out
}
