// File: scalar.go
// Role: ordinary scalar arithmetic. No compensation for catastrophic
// cancellation is attempted, per spec §4.A — callers get the algebraically
// tightest form (inclusion-exclusion evaluated exactly as written).
package prob

// scalarAdd and scalarSub are deliberately unclamped: inclusion-exclusion
// accumulates these left to right over bitmask subsets, and its
// intermediate partial sums legitimately range outside [0,1] (e.g. a
// running sum of 1.6 before a compensating subtraction) before the final
// term cancels back into range. Clamping here would corrupt that
// cancellation. Only the final belief value is ever projected to [0,1].
func scalarAdd(a, b float64) float64 { return a + b }
func scalarSub(a, b float64) float64 { return a - b }
func scalarMul(a, b float64) float64 { return clamp01(a * b) }
func scalarComplement(a float64) float64 { return clamp01(1 - a) }
