// Package diamond implements the two hardest components of the ipm engine:
// diamond detection (spec §4.C) and unique-diamond storage (spec §4.D).
//
// What:
//
//   - Detect: for a single join node, finds the maximal diamond subgraph
//     (if any) via shared-fork-ancestor analysis with recursive closure,
//     iterating steps 2-9 of spec §4.C to a fixpoint (bounded at
//     MaxRecursionIterations).
//   - BuildStorage: given a set of root diamonds discovered at the top level,
//     builds a deduplicated diamond_hash -> DiamondComputationData map,
//     discovering nested sub-diamonds iteratively and reusing previously
//     stored structural shapes.
//
// Why:
//
//   - Naive inclusion-exclusion over a join's parent messages is wrong
//     whenever two parents share an ancestor; Detect finds exactly the
//     subgraph that must instead be resolved by conditioning (package
//     condition), and BuildStorage ensures that subgraph's artefacts (induced
//     adjacency, closures, iteration sets) are computed exactly once no
//     matter how many times the same structural shape recurs.
//
// Determinism:
//
//   - ConditioningNodes is always returned in ascending lexicographic
//     order (spec §4.F step 1: "ordered canonically").
//   - Edgelist lists the global graph's edges in their global order,
//     filtered; edges added by the intermediate-closure step follow them.
//
// Complexity:
//
//   - Detect: bounded by MaxRecursionIterations re-scans of the induced
//     subgraph per join node; each re-scan is O(|relevant|+|edgelist|).
//   - Store: O(D) unique diamonds processed once each, D = distinct
//     structural shapes.
//
// Errors:
//
//   - RecursionDepthExceededError if steps 8-9 of spec §4.C fail to reach
//     a fixpoint within MaxRecursionIterations.
package diamond
