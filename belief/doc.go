// Package belief implements the belief propagation engine: the per-node
// traversal that turns a preprocessed dag.Graph plus its discovered
// diamonds into a complete node -> ProbabilityValue map.
//
// Complexity: O(V+E) node/edge visits plus, for every node with a
// DiamondsAtNode entry, whatever the injected Conditioner costs (exponential
// in the diamond's conditioning width, see package condition).
//
// Errors: ProcessingOrderError (a parent's belief was not yet computed, which
// indicates a bug in iteration-set construction rather than bad input) and
// MissingEdgeProbabilityError (an edge absent from the graph's edge_probs).
//
// Functions: Compute is the package's single entry point; everything else is
// a private helper invoked in iteration-set order.
package belief
