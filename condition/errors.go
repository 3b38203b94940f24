// File: errors.go
// Role: condition's own defensive error for an invariant the detector
// guarantees but a caller-supplied belief table could still violate.
package condition

import (
	"errors"
	"fmt"
)

// ErrConditioningBeliefMissing indicates a diamond's conditioning node had
// no entry in the caller's belief table, which can only happen if the outer
// engine invoked Resolve before finishing the conditioning node's own
// iteration set.
var ErrConditioningBeliefMissing = errors.New("condition: conditioning node belief missing")

// ConditioningBeliefMissingError names the offending conditioning node.
type ConditioningBeliefMissingError struct{ Node string }

func (e *ConditioningBeliefMissingError) Error() string {
	return fmt.Sprintf("condition: no belief computed yet for conditioning node %q", e.Node)
}
func (e *ConditioningBeliefMissingError) Unwrap() error { return ErrConditioningBeliefMissing }
