// Package memo implements the cross-call memoization of the ipm engine
// (spec §4.G): a generic, bounded, LRU-evicting cache keyed by whatever the
// caller chooses — condition.DiamondCacheKey for the belief conditioner, or a
// plain structural hash for the diamond detector's own auxiliary
// set-intersection/edge-filter caches (spec §4.D).
//
// What:
//
//   - Cache[K, V]: a generic map+doubly-linked-list LRU, bounded by a
//     capacity supplied at construction. Eviction is least-recently-used;
//     correctness of any caller never depends on retention (spec §4.G:
//     "correctness does not depend on retention").
//   - Stats: hit/miss/eviction counters for testable property 8 (cache
//     invariance) and for diag/verbose reporting.
//
// Why:
//
//   - Every package in this module that caches anything (diamond's
//     auxiliary caches, condition's DiamondCacheEntry table) shares the
//     same bounded-LRU shape; centralizing it here avoids three divergent
//     hand-rolled implementations, matching how the teacher centralizes
//     matrix's small numeric kernels in one file instead of duplicating
//     them per caller.
//
// Concurrency:
//
//   - A Cache is owned by a single query (spec §5: "caches ... are owned
//     by the query; they are not shared across parallel queries"). It is
//     internally synchronized with a sync.Mutex so a query that chooses to
//     parallelize across diamond-conditioning states (spec §5) can share
//     one Cache across goroutines without a data race; it is NOT meant to
//     be shared across independent top-level queries.
//
// Complexity:
//
//   - Get/Put: O(1) amortized.
package memo
