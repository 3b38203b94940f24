// File: errors.go
// Role: the belief engine's own slice of the boundary error taxonomy of
// spec.md §6: ProcessingOrderError and MissingEdgeProbability.
package belief

import (
	"errors"
	"fmt"
)

var (
	// ErrProcessingOrder indicates a node's belief was required before it
	// had been computed: a bug in iteration-set construction, never a
	// consequence of caller input.
	ErrProcessingOrder = errors.New("belief: processing order violated")

	// ErrMissingEdgeProbability indicates an edge has no entry in the
	// graph's edge_probs table.
	ErrMissingEdgeProbability = errors.New("belief: missing edge probability")
)

// ProcessingOrderError names the node whose belief was referenced before it
// was computed.
type ProcessingOrderError struct{ Node string }

func (e *ProcessingOrderError) Error() string {
	return fmt.Sprintf("belief: node %q referenced before its belief was computed", e.Node)
}
func (e *ProcessingOrderError) Unwrap() error { return ErrProcessingOrder }

// MissingEdgeProbabilityError names the edge absent from edge_probs.
type MissingEdgeProbabilityError struct{ From, To string }

func (e *MissingEdgeProbabilityError) Error() string {
	return fmt.Sprintf("belief: missing edge probability for %s->%s", e.From, e.To)
}
func (e *MissingEdgeProbabilityError) Unwrap() error { return ErrMissingEdgeProbability }
