// File: types.go
// Role: the Edge and Graph types, and Build's functional options.
package dag

import "github.com/Temi-Tory/ipm/prob"

// Edge is an ordered (parent, child) pair. It is comparable and usable as a
// map key, matching edge_probs's "mapping (parent, child) -> ProbabilityValue"
// contract from spec.md §6.
type Edge struct {
	From string
	To   string
}

// Option configures Build/Validate.
type Option func(*options)

type options struct {
	expectedKind prob.Kind
	kindPinned   bool
}

func defaultOptions() options {
	return options{expectedKind: prob.KindScalar}
}

// WithKind pins the expected prob.Kind for every node prior and edge
// probability (spec §6: "all probability inputs must match"). If not
// supplied, Build infers the kind from the first prior/edge-prob it sees
// and requires every subsequent value to match it.
func WithKind(k prob.Kind) Option {
	return func(o *options) {
		o.expectedKind = k
		o.kindPinned = true
	}
}

// Graph is the immutable-after-construction directed acyclic graph produced
// by Build. All slices/maps are safe to read concurrently; nothing mutates
// them after Build returns.
type Graph struct {
	nodes []string // lexicographically sorted node IDs
	edges []Edge   // insertion order, as supplied to Build

	outgoing map[string]map[string]struct{}
	incoming map[string]map[string]struct{}

	sourceNodes map[string]struct{}
	forkNodes   map[string]struct{}
	joinNodes   map[string]struct{}

	iterationSets [][]string
	levelOf       map[string]int // node -> index into iterationSets

	ancestors   map[string]map[string]struct{}
	descendants map[string]map[string]struct{}

	nodePriors map[string]prob.Value
	edgeProbs  map[Edge]prob.Value

	kind prob.Kind
}

// Nodes returns the sorted node ID list. Safe to range over concurrently.
func (g *Graph) Nodes() []string { return g.nodes }

// Edges returns the edge list in the order originally supplied to Build.
func (g *Graph) Edges() []Edge { return g.edges }

// Outgoing returns the set of children of n (empty if n has none; nil
// only for a node not in the graph).
func (g *Graph) Outgoing(n string) map[string]struct{} { return g.outgoing[n] }

// Incoming returns the set of parents of n (empty if n has none; nil
// only for a node not in the graph).
func (g *Graph) Incoming(n string) map[string]struct{} { return g.incoming[n] }

// IsSource reports whether n has no incoming edges.
func (g *Graph) IsSource(n string) bool { _, ok := g.sourceNodes[n]; return ok }

// IsFork reports whether n has more than one outgoing edge.
func (g *Graph) IsFork(n string) bool { _, ok := g.forkNodes[n]; return ok }

// IsJoin reports whether n has more than one incoming edge.
func (g *Graph) IsJoin(n string) bool { _, ok := g.joinNodes[n]; return ok }

// SourceNodes returns the set of source node IDs.
func (g *Graph) SourceNodes() map[string]struct{} { return g.sourceNodes }

// ForkNodes returns the set of fork node IDs.
func (g *Graph) ForkNodes() map[string]struct{} { return g.forkNodes }

// JoinNodes returns the set of join node IDs.
func (g *Graph) JoinNodes() map[string]struct{} { return g.joinNodes }

// IterationSets returns the finest topological layering: every edge (u,v)
// has u in an earlier set than v, and every node appears in exactly one set.
func (g *Graph) IterationSets() [][]string { return g.iterationSets }

// Level returns the iteration-set index of n, or -1 if n is unknown.
func (g *Graph) Level(n string) int {
	if lv, ok := g.levelOf[n]; ok {
		return lv
	}
	return -1
}

// Ancestors returns the transitive-closure ancestor set of n.
func (g *Graph) Ancestors(n string) map[string]struct{} { return g.ancestors[n] }

// Descendants returns the transitive-closure descendant set of n.
func (g *Graph) Descendants(n string) map[string]struct{} { return g.descendants[n] }

// NodePrior returns the prior of n and whether it was present.
func (g *Graph) NodePrior(n string) (prob.Value, bool) {
	v, ok := g.nodePriors[n]
	return v, ok
}

// EdgeProb returns the transmission probability of edge e and whether it
// was present.
func (g *Graph) EdgeProb(e Edge) (prob.Value, bool) {
	v, ok := g.edgeProbs[e]
	return v, ok
}

// Kind returns the prob.Kind every value in this Graph was validated
// against.
func (g *Graph) Kind() prob.Kind { return g.kind }

// isAncestorOf reports whether a is in ancestors(b) — i.e. a is a proper
// ancestor of b.
func (g *Graph) isAncestorOf(a, b string) bool {
	set := g.ancestors[b]
	if set == nil {
		return false
	}
	_, ok := set[a]
	return ok
}
