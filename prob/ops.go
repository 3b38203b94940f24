// File: ops.go
// Role: the public, total (mostly) operation surface dispatching on
// Value.Kind, per the "tagged sum type plus a small trait of arithmetic
// operations" design note — no subtyping, no virtual dispatch hierarchies.
//
// Mixed-kind operands: when two operands differ in Kind, the lower-fidelity
// operand is widened to the higher one (Scalar < Interval < PBox) before
// combining, so binary ops are always total over any pair the engine feeds
// them. The engine does feed mixed pairs even when every input of a query
// has one kind: the scalar constants Zero() and One() seed
// inclusion-exclusion's accumulators and stand in for empty contributions.
package prob

// Zero returns the scalar 0, an additive identity for Sum.
func Zero() Value { return Value{kind: KindScalar, s: 0} }

// One returns the scalar 1, a multiplicative identity for Product.
func One() Value { return Value{kind: KindScalar, s: 1} }

// NonFixed returns an interior scalar value (0.5), useful as a neutral
// placeholder in tests and conditioner templates.
func NonFixed() Value { return Value{kind: KindScalar, s: 0.5, lo: 0.5, hi: 0.5} }

func maxKind(a, b Kind) Kind {
	if a > b {
		return a
	}
	return b
}

// widen promotes v to target Kind without loss at the endpoints.
func widen(v Value, target Kind) Value {
	if v.kind == target {
		return v
	}
	switch target {
	case KindInterval:
		return Value{kind: KindInterval, lo: v.Lo(), hi: v.Hi()}
	case KindPBox:
		n := DefaultBoxResolution
		if v.kind == KindPBox && v.box != nil {
			n = v.box.N()
		}
		b := degeneratePBox(v.Lo(), v.Hi(), n)
		return Value{kind: KindPBox, lo: v.Lo(), hi: v.Hi(), box: b}
	default:
		return v
	}
}

// Complement returns one minus v (1 - v), dispatching on Kind.
func Complement(v Value) Value {
	switch v.kind {
	case KindScalar:
		return Value{kind: KindScalar, s: scalarComplement(v.s)}
	case KindInterval:
		lo, hi := intervalComplement(v.lo, v.hi)
		return Value{kind: KindInterval, lo: lo, hi: hi}
	case KindPBox:
		b := ComplementPBox(v.box)
		lo, hi := b.Bounds()
		return Value{kind: KindPBox, lo: lo, hi: hi, box: b}
	default:
		return v
	}
}

// Add returns a+b, widening to the higher-fidelity Kind when they differ.
func Add(a, b Value) Value {
	k := maxKind(a.kind, b.kind)
	a, b = widen(a, k), widen(b, k)
	switch k {
	case KindScalar:
		return Value{kind: KindScalar, s: scalarAdd(a.s, b.s)}
	case KindInterval:
		lo, hi := intervalAdd(a.lo, a.hi, b.lo, b.hi)
		return Value{kind: KindInterval, lo: lo, hi: hi}
	case KindPBox:
		box := AddPBox(a.box, b.box)
		lo, hi := box.Bounds()
		return Value{kind: KindPBox, lo: lo, hi: hi, box: box}
	default:
		return Value{}
	}
}

// Sub returns a-b, widening as Add does.
func Sub(a, b Value) Value {
	k := maxKind(a.kind, b.kind)
	a, b = widen(a, k), widen(b, k)
	switch k {
	case KindScalar:
		return Value{kind: KindScalar, s: scalarSub(a.s, b.s)}
	case KindInterval:
		lo, hi := intervalSub(a.lo, a.hi, b.lo, b.hi)
		return Value{kind: KindInterval, lo: lo, hi: hi}
	case KindPBox:
		box := SubPBox(a.box, b.box)
		lo, hi := box.Bounds()
		return Value{kind: KindPBox, lo: lo, hi: hi, box: box}
	default:
		return Value{}
	}
}

// Mul returns a*b, widening as Add does.
func Mul(a, b Value) Value {
	k := maxKind(a.kind, b.kind)
	a, b = widen(a, k), widen(b, k)
	switch k {
	case KindScalar:
		return Value{kind: KindScalar, s: scalarMul(a.s, b.s)}
	case KindInterval:
		lo, hi := intervalMul(a.lo, a.hi, b.lo, b.hi)
		return Value{kind: KindInterval, lo: lo, hi: hi}
	case KindPBox:
		box := MulPBox(a.box, b.box)
		lo, hi := box.Bounds()
		return Value{kind: KindPBox, lo: lo, hi: hi, box: box}
	default:
		return Value{}
	}
}

// Div returns a/b. Division is the one partial operation in the algebra:
// if b's support includes exactly zero (b.Lo()<=0<=b.Hi()), it returns
// ErrDomain rather than a result, per spec §4.A.
func Div(a, b Value) (Value, error) {
	if b.Lo() <= 0 && b.Hi() >= 0 {
		return Value{}, ErrDomain
	}
	k := maxKind(a.kind, b.kind)
	a, b = widen(a, k), widen(b, k)
	switch k {
	case KindScalar:
		return Value{kind: KindScalar, s: clamp01(a.s / b.s)}, nil
	case KindInterval:
		// Division by a strictly positive or strictly negative interval:
		// invert the divisor endpoints and reuse Mul's corner logic.
		lo, hi := intervalMul(a.lo, a.hi, 1/b.hi, 1/b.lo)
		return Value{kind: KindInterval, lo: lo, hi: hi}, nil
	default:
		return Value{}, ErrDomain
	}
}

// Sum folds Add over xs left to right, starting from Zero(). Returns
// Zero() for an empty list.
func Sum(xs []Value) Value {
	acc := Zero()
	for _, x := range xs {
		acc = Add(acc, x)
	}
	return acc
}

// Product folds Mul over xs left to right, starting from One(). Returns
// One() for an empty list.
func Product(xs []Value) Value {
	acc := One()
	for _, x := range xs {
		acc = Mul(acc, x)
	}
	return acc
}
