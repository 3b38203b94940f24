// File: build.go
// Role: Build is the single entry point that turns a raw edge list plus
// node/edge probability tables into an immutable Graph, per spec §4.B.
package dag

import (
	"sort"

	"github.com/Temi-Tory/ipm/prob"
)

// Build constructs a Graph from edges and their associated probability
// tables. nodePriors must cover every node mentioned by edges (plus any
// isolated node the caller wants included — pass it via nodePriors even
// with no incident edge); edgeProbs must cover every edge.
//
// Validation order (fail fast, first violation wins):
//  1. Self-loops / duplicate edges (ErrSelfLoop / ErrDuplicateEdge).
//  2. Cycles (ErrCycleDetected).
//  3. Prior/edge-probability coverage and validity (MissingPriorError,
//     MissingEdgeProbabilityError, InvalidProbabilityError).
//
// Complexity: O(V+E) plus O(V·(V+E)) worst case for the transitive
// closures.
func Build(edges []Edge, nodePriors map[string]prob.Value, edgeProbs map[Edge]prob.Value, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	nodeSet := make(map[string]struct{}, len(nodePriors))
	for n := range nodePriors {
		nodeSet[n] = struct{}{}
	}
	for _, e := range edges {
		nodeSet[e.From] = struct{}{}
		nodeSet[e.To] = struct{}{}
	}
	nodes := make([]string, 0, len(nodeSet))
	for n := range nodeSet {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)

	outgoing, incoming, err := buildIndices(nodes, edges)
	if err != nil {
		return nil, err
	}

	sets, levelOf, err := topologicalIterationSets(nodes, outgoing, incoming)
	if err != nil {
		return nil, err
	}

	kind, err := validatePriors(nodes, edges, nodePriors, edgeProbs, o)
	if err != nil {
		return nil, err
	}

	sources, forks, joins := classify(nodes, outgoing, incoming)
	ancestors, descendants := transitiveClosure(nodes, sets, outgoing, incoming)

	g := &Graph{
		nodes:         nodes,
		edges:         append([]Edge(nil), edges...),
		outgoing:      outgoing,
		incoming:      incoming,
		sourceNodes:   sources,
		forkNodes:     forks,
		joinNodes:     joins,
		iterationSets: sets,
		levelOf:       levelOf,
		ancestors:     ancestors,
		descendants:   descendants,
		nodePriors:    nodePriors,
		edgeProbs:     edgeProbs,
		kind:          kind,
	}

	return g, nil
}

// Validate runs the same structural and coverage checks as Build but
// discards the constructed Graph, for callers that only want a pre-flight
// check before investing in a full query (SPEC_FULL.md §3.1).
func Validate(edges []Edge, nodePriors map[string]prob.Value, edgeProbs map[Edge]prob.Value, opts ...Option) error {
	_, err := Build(edges, nodePriors, edgeProbs, opts...)
	return err
}
