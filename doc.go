// Package ipm is an exact probabilistic reachability and critical-path
// analysis engine on DAGs.
//
// 🚀 What is ipm?
//
//	A modern, single-process Go module that brings together:
//
//	  • prob/      — scalar, interval, and p-box probability algebra
//	  • dag/       — graph preprocessing: cycle checks, closures, iteration sets
//	  • diamond/   — diamond detection and deduplicated per-diamond storage
//	  • belief/    — the inclusion-exclusion belief propagation engine
//	  • condition/ — exact total-probability diamond-join conditioning
//	  • memo/      — a bounded, generic LRU memoization cache
//	  • query/     — the top-level Compute(...) orchestrator
//
// ✨ Why choose ipm?
//
//   - Exact        — no sampling, no approximation; inclusion-exclusion and
//     total-probability conditioning throughout
//   - Deterministic — bit-identical results across invocations
//   - Extensible    — semiring/ publishes a hook interface for a separate
//     critical-path/capacity collaborator
//
// Quick ASCII example, a symmetric diamond:
//
//	    1
//	   ╱ ╲
//	  2   3
//	   ╲ ╱
//	    4
//
// conditioning on the shared ancestor 1 and combining 2->4 and 3->4 by
// inclusion-exclusion gives the exact belief at 4.
//
// See SPEC_FULL.md and DESIGN.md for the full specification and the
// grounding behind each package's design.
//
//	go get github.com/Temi-Tory/ipm
package ipm
