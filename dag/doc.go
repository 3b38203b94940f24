// Package dag is the graph preprocessor of the ipm engine (spec §4.B).
//
// What:
//
//   - Graph: an immutable-after-construction directed acyclic graph with
//     total node-prior and edge-probability tables, built once by Build and
//     read repeatedly by every downstream package (diamond, belief,
//     condition).
//   - Build computes, in one pass: incoming/outgoing adjacency, source/
//     fork/join classification, a Kahn-style iteration-set layering, and
//     the full ancestor/descendant transitive closures.
//   - Validate runs Build and discards the resulting Graph, for callers
//     that only want a pre-flight check and its error (spec-full
//     supplemental feature; see SPEC_FULL.md §3.1).
//
// Why:
//
//   - Every other package in this module needs sources/forks/joins,
//     iteration order, and ancestor/descendant sets to be computed exactly
//     once and shared read-only; recomputing them per diamond or per query
//     would be both wrong (closures must reflect the *global* graph) and
//     wasteful.
//
// Determinism:
//
//   - Node iteration order is always lexicographically sorted ascending
//     node IDs, mirroring core.Graph.Vertices()'s ordering guarantee.
//   - IterationSets is the finest Kahn layering: ties within a layer are
//     broken by ascending node ID.
//
// Complexity:
//
//   - Build: O(V+E) for indices/classification/layering, O(V·(V+E))
//     worst case for the transitive closures (spec §5 resource bounds).
//
// Errors:
//
//   - ErrCycleDetected, ErrIndexInconsistency, MissingPriorError,
//     MissingEdgeProbabilityError, InvalidProbabilityError — see errors.go.
package dag
