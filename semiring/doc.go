// Package semiring is the hook surface for the critical-path and capacity
// subsystem that spec.md explicitly keeps out of scope for this module: it
// publishes the Combine/Propagate/Identity interface a separate collaborator
// would implement path reconstruction or bottleneck analysis against, plus
// two reference instances (MinPlus, MaxProb) as worked examples. Neither
// path reconstruction nor bottleneck traversal lives here.
package semiring
