// File: pbox.go
// Role: probability-box representation and independent-convolution
// arithmetic.
//
// Representation:
//   - A PBox is approximated as N equal-probability-mass focal intervals
//     [left[i], right[i]], i=0..N-1, sorted so that left and right are both
//     non-decreasing in i (the discretized form of the two bounding step
//     functions from spec §3/§4.A).
//   - This is the standard Ferson-style outer-approximation used by
//     practical p-box arithmetic implementations: each focal interval
//     carries mass 1/N, and independent combination of two p-boxes is the
//     Cartesian product of their focal intervals (mass 1/N²), collapsed
//     back down to N focal intervals by taking order statistics.
//
// Guarantees:
//   - The overall support bounds (Bounds()) of the result of Add/Sub/Mul
//     exactly match Moore interval arithmetic on the operands' own bounds,
//     satisfying the "monotone-consistent with interval arithmetic at its
//     endpoints" requirement of spec §4.A. The interior breakpoints are a
//     conservative (enclosing) outer approximation, not an exact p-box
//     convolution.
//
// AI-Hints:
//   - DefaultBoxResolution keeps the N×N product tractable; callers needing
//     tighter boxes can construct with a larger N via NewPBox directly.
package prob

import "sort"

// DefaultBoxResolution is the focal-interval count used when no explicit
// resolution is requested (e.g. by helpers that synthesize a PBox from a
// scalar or interval). It balances O(N² log N) per-op cost against the
// approximation's interior tightness.
const DefaultBoxResolution = 16

// PBox is the discretized probability-box payload of a KindPBox Value.
type PBox struct {
	left  []float64 // non-decreasing, left[i] <= right[i]
	right []float64 // non-decreasing
}

// NewPBox validates and constructs a PBox from N matching focal-interval
// bounds. Returns ErrDomain if lengths mismatch, N==0, bounds fall outside
// [0,1], either slice is not non-decreasing, or left[i] > right[i] for any i.
func NewPBox(left, right []float64) (*PBox, error) {
	if len(left) == 0 || len(left) != len(right) {
		return nil, ErrDomain
	}
	for i := range left {
		if left[i] < 0 || right[i] > 1 || left[i] > right[i] {
			return nil, ErrDomain
		}
		if i > 0 && (left[i] < left[i-1] || right[i] < right[i-1]) {
			return nil, ErrDomain
		}
	}
	l := append([]float64(nil), left...)
	r := append([]float64(nil), right...)
	return &PBox{left: l, right: r}, nil
}

// degeneratePBox builds an N-focal-interval box whose every focal interval
// is [lo,hi] (a single point when lo==hi), used by widen when promoting a
// scalar/interval into p-box space for mixed arithmetic.
func degeneratePBox(lo, hi float64, n int) *PBox {
	left := make([]float64, n)
	right := make([]float64, n)
	for i := range left {
		left[i] = lo
		right[i] = hi
	}
	return &PBox{left: left, right: right}
}

// valid re-checks the invariants NewPBox enforces at construction; used by
// IsValidProbability as a defensive check.
func (b *PBox) valid() bool {
	if b == nil || len(b.left) == 0 || len(b.left) != len(b.right) {
		return false
	}
	for i := range b.left {
		if b.left[i] < 0 || b.right[i] > 1 || b.left[i] > b.right[i] {
			return false
		}
		if i > 0 && (b.left[i] < b.left[i-1] || b.right[i] < b.right[i-1]) {
			return false
		}
	}
	return true
}

// N reports the focal-interval resolution of b.
func (b *PBox) N() int { return len(b.left) }

// Bounds returns the overall support [lo,hi]: the smallest left bound and
// the largest right bound across all focal intervals.
func (b *PBox) Bounds() (lo, hi float64) {
	return b.left[0], b.right[len(b.right)-1]
}

// FocalIntervals returns copies of b's N focal-interval bounds, for callers
// (e.g. a prior-vector hash) that need the discretized bound sequence rather
// than just the overall support.
func (b *PBox) FocalIntervals() (left, right []float64) {
	return append([]float64(nil), b.left...), append([]float64(nil), b.right...)
}

// resample collapses a length-M sorted slice of combined focal bounds down
// to N order statistics by picking evenly spaced ranks, preserving the
// extremes exactly (rank 0 and rank M-1 are always kept).
func resample(sorted []float64, n int) []float64 {
	m := len(sorted)
	out := make([]float64, n)
	if n == 1 {
		out[0] = sorted[0]
		return out
	}
	for i := 0; i < n; i++ {
		idx := (i * (m - 1)) / (n - 1)
		out[i] = sorted[idx]
	}
	return out
}

// combine performs the independent Cartesian-product convolution of a.left
// (op) b.left and a.right (op) b.right, then resamples each back to
// max(a.N(), b.N()) focal intervals.
func combine(a, b *PBox, op func(x, y float64) float64) *PBox {
	n := a.N()
	if b.N() > n {
		n = b.N()
	}
	leftProd := cartesianSorted(a.left, b.left, op)
	rightProd := cartesianSorted(a.right, b.right, op)
	return &PBox{
		left:  resample(leftProd, n),
		right: resample(rightProd, n),
	}
}

// cartesianSorted returns op(x,y) for every x in xs, y in ys, sorted
// ascending. Both xs and ys are assumed sorted ascending already (focal
// bounds always are), but the product is not, so we sort once here.
func cartesianSorted(xs, ys []float64, op func(x, y float64) float64) []float64 {
	out := make([]float64, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			out = append(out, op(x, y))
		}
	}
	sort.Float64s(out)
	return out
}

// AddPBox returns the independent-convolution sum of a and b. Left
// unclamped, like intervalAdd, so inclusion-exclusion's running sums keep
// their out-of-range intermediate bounds. Endpoint-consistent with
// intervalAdd(a.Bounds(), b.Bounds()).
func AddPBox(a, b *PBox) *PBox {
	return combine(a, b, func(x, y float64) float64 { return x + y })
}

// SubPBox returns the independent-convolution difference a-b. Left
// unclamped, like intervalSub. Endpoint-consistent with intervalSub.
func SubPBox(a, b *PBox) *PBox {
	// a.left - b.right gives the result's left bound contributions and
	// a.right - b.left gives the right bound contributions, matching Moore
	// subtraction's cross-term structure.
	n := a.N()
	if b.N() > n {
		n = b.N()
	}
	leftProd := cartesianSorted(a.left, b.right, func(x, y float64) float64 { return x - y })
	rightProd := cartesianSorted(a.right, b.left, func(x, y float64) float64 { return x - y })
	return &PBox{left: resample(leftProd, n), right: resample(rightProd, n)}
}

// MulPBox returns the independent-convolution product a*b, clamped to
// [0,1]. Values are always non-negative probabilities, so the four-corner
// reduction used by interval Mul degenerates to the monotone product of
// bounds, which the Cartesian combine already computes correctly.
func MulPBox(a, b *PBox) *PBox {
	return combine(a, b, func(x, y float64) float64 { return clamp01(x * y) })
}

// ComplementPBox returns one-minus-b: left'[i] = 1-right[N-1-i],
// right'[i] = 1-left[N-1-i] (reversal keeps both slices non-decreasing).
func ComplementPBox(b *PBox) *PBox {
	n := b.N()
	left := make([]float64, n)
	right := make([]float64, n)
	for i := 0; i < n; i++ {
		left[i] = clamp01(1 - b.right[n-1-i])
		right[i] = clamp01(1 - b.left[n-1-i])
	}
	return &PBox{left: left, right: right}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
