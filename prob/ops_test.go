package prob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarArithmetic(t *testing.T) {
	a := MustScalar(0.9)
	b := MustScalar(0.3)

	assert.InDelta(t, 1.2, Add(a, b).Lo(), 1e-12)
	assert.InDelta(t, 0.27, Mul(a, b).Lo(), 1e-12)
	assert.InDelta(t, 0.1, Complement(a).Lo(), 1e-12)
}

func TestAsymmetricDiamondScalar(t *testing.T) {
	// spec.md S3: 0.9*0.8 + 0.3*0.8 - 0.9*0.8*0.3*0.8 = 0.7872
	p12 := MustScalar(0.9)
	p13 := MustScalar(0.3)
	p24 := MustScalar(0.8)
	p34 := MustScalar(0.8)

	b2 := Mul(p12, p24)
	b3 := Mul(p13, p34)
	union := Sub(Add(b2, b3), Mul(b2, b3))

	assert.InDelta(t, 0.7872, union.Lo(), 1e-12)
}

func TestIntervalArithmetic(t *testing.T) {
	// spec.md S6: priors [1,1], edge probs [0.4,0.6] => belief[3] = [0.16, 0.36]
	edge := MustInterval(0.4, 0.6)
	b2 := Mul(MustInterval(1, 1), edge)
	b3 := Mul(b2, edge)

	assert.InDelta(t, 0.16, b3.Lo(), 1e-12)
	assert.InDelta(t, 0.36, b3.Hi(), 1e-12)
}

func TestDivByZeroDomainError(t *testing.T) {
	_, err := Div(MustScalar(0.5), MustScalar(0))
	require.ErrorIs(t, err, ErrDomain)
}

func TestNewIntervalRejectsBadBounds(t *testing.T) {
	_, err := NewInterval(0.6, 0.4)
	require.ErrorIs(t, err, ErrDomain)

	_, err = NewInterval(-0.1, 0.5)
	require.ErrorIs(t, err, ErrDomain)
}

func TestPBoxEndpointConsistency(t *testing.T) {
	a, err := NewPBox([]float64{0.2, 0.3, 0.4}, []float64{0.5, 0.6, 0.7})
	require.NoError(t, err)
	b, err := NewPBox([]float64{0.1, 0.2}, []float64{0.3, 0.4})
	require.NoError(t, err)

	va, _ := NewPBoxValue(a)
	vb, _ := NewPBoxValue(b)

	sum := Add(va, vb)
	wantLo, wantHi := intervalAdd(va.Lo(), va.Hi(), vb.Lo(), vb.Hi())
	assert.InDelta(t, wantLo, sum.Lo(), 1e-12)
	assert.InDelta(t, wantHi, sum.Hi(), 1e-12)

	prod := Mul(va, vb)
	wantLoM, wantHiM := intervalMul(va.Lo(), va.Hi(), vb.Lo(), vb.Hi())
	assert.InDelta(t, wantLoM, prod.Lo(), 1e-12)
	assert.InDelta(t, wantHiM, prod.Hi(), 1e-12)
}

func TestIsValidProbability(t *testing.T) {
	assert.True(t, IsValidProbability(MustScalar(0.5)))
	assert.True(t, IsValidProbability(MustInterval(0.2, 0.8)))

	box, err := NewPBox([]float64{0.1}, []float64{0.9})
	require.NoError(t, err)
	v, err := NewPBoxValue(box)
	require.NoError(t, err)
	assert.True(t, IsValidProbability(v))
}

func TestSumProductIdentities(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil).Lo())
	assert.Equal(t, 1.0, Product(nil).Lo())
}
