// File: idempotent.go
// Role: Idempotent operationalizes testable property 5 (spec §8): running
// the diamond detector on its own DiamondComputationData sub-graph must
// produce a fixpoint.
package diamond

import "github.com/Temi-Tory/ipm/dag"

// Idempotent re-runs Detect over dcd's own internal join nodes using the
// same excluded set Storage used to discover them, and reports whether
// every re-detected Diamond has the same structural hash as what is
// already recorded in dcd.InternalDiamonds.
func Idempotent(g *dag.Graph, dcd *DiamondComputationData) (bool, error) {
	excluded := dcd.ExcludedAtComputation
	for j, want := range dcd.InternalDiamonds {
		got, err := DetectAtNode(g, j, excluded)
		if err != nil {
			return false, err
		}
		if (got == nil) != (want == nil) {
			return false, nil
		}
		if got == nil {
			continue
		}
		if got.Diamond == nil && want.Diamond == nil {
			continue
		}
		if (got.Diamond == nil) != (want.Diamond == nil) {
			return false, nil
		}
		if got.Diamond.Hash != want.Diamond.Hash {
			return false, nil
		}
	}
	return true, nil
}
