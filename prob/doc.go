// Package prob implements the probability algebra of the ipm engine:
// a single tagged value type with three variants — Scalar, Interval, and
// PBox (probability box) — and a uniform, total arithmetic surface shared
// by the belief-propagation engine regardless of which variant a caller
// chooses at query time.
//
// What:
//
//   - Value: a tagged union over Scalar (one float64 in [0,1]), Interval
//     (an ordered [lo,hi] pair), and PBox (a pair of non-decreasing step
//     functions bounding an unknown distribution, represented as N
//     independent focal intervals of equal probability mass).
//   - Zero, One, Complement, Add, Sub, Mul, Sum, Product: total operations
//     (no panics) that dispatch on Value.Kind.
//   - Div: the one partial operation; division by a value whose support
//     includes exactly zero fails with ErrDomain.
//
// Why:
//
//   - The belief engine (package belief), the diamond conditioner (package
//     condition), and the top-level query (package query) are written once
//     against prob.Value and never branch on which variant is in play;
//     only this package pattern-matches the tag, per the "no subtyping, no
//     virtual dispatch" design note.
//
// Complexity:
//
//   - Scalar ops: O(1).
//   - Interval ops: O(1) (at most four corner products for Mul).
//   - PBox ops: O(N² log N) for N-focal-interval independent convolution,
//     where N is the configured box resolution (DefaultBoxResolution).
//
// Errors:
//
//   - ErrDomain: division by zero, or malformed bounds supplied to a
//     constructor (lo > hi, values outside [0,1], mismatched p-box slice
//     lengths).
//
// See PBox for the specifics of the discretized independent-convolution
// algorithm and its documented approximation guarantees.
package prob
