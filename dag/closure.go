// File: closure.go
// Role: transitiveClosure computes ancestors/descendants for every node by
// folding over each node's immediate neighbors' own closures, processed in
// an order consistent with iteration-set layering (spec §4.B).
//
// Complexity: O(V) set unions, each up to O(V) elements -> O(V^2) worst
// case, matching the resource bound documented in spec §5.
package dag

func transitiveClosure(nodes []string, sets [][]string, outgoing, incoming map[string]map[string]struct{}) (ancestors, descendants map[string]map[string]struct{}) {
	ancestors = make(map[string]map[string]struct{}, len(nodes))
	descendants = make(map[string]map[string]struct{}, len(nodes))
	for _, n := range nodes {
		ancestors[n] = make(map[string]struct{})
		descendants[n] = make(map[string]struct{})
	}

	// Ancestors: forward iteration order guarantees every parent of n is
	// finalized before n is processed.
	for _, level := range sets {
		for _, n := range level {
			for p := range incoming[n] {
				ancestors[n][p] = struct{}{}
				for a := range ancestors[p] {
					ancestors[n][a] = struct{}{}
				}
			}
		}
	}

	// Descendants: reverse iteration order guarantees every child of n is
	// finalized before n is processed.
	for i := len(sets) - 1; i >= 0; i-- {
		for _, n := range sets[i] {
			for c := range outgoing[n] {
				descendants[n][c] = struct{}{}
				for d := range descendants[c] {
					descendants[n][d] = struct{}{}
				}
			}
		}
	}

	return ancestors, descendants
}
