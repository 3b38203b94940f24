// Package query is the top-level orchestrator of spec.md: it wires
// dag.Build, diamond detection/storage, belief.Compute, and a per-query
// condition.Resolver behind a single Compute entry point, owning the
// caches spec.md §5 requires stay private to one query.
//
// What:
//   - Compute(edges, nodePriors, edgeProbs, opts...) runs the full
//     pipeline and returns every node's belief, or the first boundary
//     error encountered (spec.md §6's taxonomy: the returned error is
//     always one of dag.Err*/diamond.Err*/belief.Err*/condition's error
//     types/prob.ErrDomain or the context's own error, reachable via
//     errors.Is/errors.As — Compute defines no error types of its own).
//
// Complexity: O(V+E) preprocessing plus, per diamond, O(2^k * induced
// sub-DAG size) worst case, per spec.md §5.
//
// Concurrency: one Compute call owns one diamond.Storage and one
// condition.Resolver (its memoization cache and singleflight group); they
// are never shared with another concurrent Compute call.
package query
