// File: errors.go
// Role: sentinel and structured errors for graph construction/validation,
// covering the boundary error taxonomy of spec.md §6 that originates in
// preprocessing: CycleDetected, MissingPrior, MissingEdgeProbability,
// InvalidProbability, IndexInconsistency.
//
// Error policy: sentinels for errors.Is dispatch; structured wrapper types
// for callers that want the offending node/edge/value, reachable via
// errors.As. Structured types always Unwrap() to their sentinel.
package dag

import (
	"errors"
	"fmt"
)

var (
	// ErrCycleDetected indicates Build found a back-edge: the input is not
	// a DAG.
	ErrCycleDetected = errors.New("dag: cycle detected")

	// ErrIndexInconsistency indicates an internal adjacency/closure
	// invariant was violated (a bug in Build, not in caller input).
	ErrIndexInconsistency = errors.New("dag: index inconsistency")

	// ErrMissingPrior indicates node_priors does not cover every node.
	ErrMissingPrior = errors.New("dag: missing node prior")

	// ErrMissingEdgeProbability indicates edge_probs does not cover every
	// edge.
	ErrMissingEdgeProbability = errors.New("dag: missing edge probability")

	// ErrInvalidProbability indicates a supplied prior or edge probability
	// is not a valid probability under the active prob.Kind.
	ErrInvalidProbability = errors.New("dag: invalid probability")

	// ErrDuplicateEdge indicates the same (parent, child) pair was supplied
	// more than once; spec §3 forbids duplicate edges.
	ErrDuplicateEdge = errors.New("dag: duplicate edge")

	// ErrSelfLoop indicates an edge from a node to itself; spec §3 forbids
	// self-loops.
	ErrSelfLoop = errors.New("dag: self-loop not allowed")
)

// MissingPriorError names the node missing from node_priors.
type MissingPriorError struct{ Node string }

func (e *MissingPriorError) Error() string {
	return fmt.Sprintf("dag: missing node prior for %q", e.Node)
}
func (e *MissingPriorError) Unwrap() error { return ErrMissingPrior }

// MissingEdgeProbabilityError names the edge missing from edge_probs.
type MissingEdgeProbabilityError struct{ From, To string }

func (e *MissingEdgeProbabilityError) Error() string {
	return fmt.Sprintf("dag: missing edge probability for %s->%s", e.From, e.To)
}
func (e *MissingEdgeProbabilityError) Unwrap() error { return ErrMissingEdgeProbability }

// InvalidProbabilityError reports where (a node ID, or "from->to" for an
// edge) an invalid probability value was supplied.
type InvalidProbabilityError struct {
	Where string
	Lo    float64
	Hi    float64
}

func (e *InvalidProbabilityError) Error() string {
	return fmt.Sprintf("dag: invalid probability at %s: [%g,%g]", e.Where, e.Lo, e.Hi)
}
func (e *InvalidProbabilityError) Unwrap() error { return ErrInvalidProbability }
