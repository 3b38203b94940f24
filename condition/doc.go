// Package condition implements the diamond-join conditioner of spec.md
// §4.F: exact total-probability conditioning over the joint Bernoulli
// states of a diamond's conditioning-node set, recursing back into package
// belief on each state's induced sub-graph.
//
// Complexity: O(2^k * size(induced sub-DAG)) per diamond, where k is the
// conditioning width; exponential in k, which is expected to stay small for
// well-structured inputs (spec.md §5).
//
// Caching: DiamondCacheKey = (diamond structural hash, induced-prior vector
// hash) indexes a memo.Cache owned by the caller, so identical conditioning
// states are never recomputed within one top-level query (spec.md §4.G).
package condition
