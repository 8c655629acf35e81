package g3

import (
	"math"
	"testing"

	"dasa.cc/gma"
	"dasa.cc/gma/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestVectorFormat(t *testing.T) {
	v := NewVector(2, 3, 5)
	assert.Equal(t, "2*e1+3*e2+5*e3", v.String())
	assert.Equal(t, "2.0*e1+3.0*e2+5.0*e3", v.Fixed(1))
	assert.Equal(t, "2e+0*e1+3e+0*e2+5e+0*e3", v.Exponential(-1))
	assert.Equal(t, "2.00*e1+3.00*e2+5.00*e3", v.Precision(3))
	assert.Equal(t, "0", NewVector(0, 0, 0).String())
	assert.Equal(t, "-e3", NewVector(0, 0, -1).String())
}

func TestVectorLocked(t *testing.T) {
	v := lock.Lock(NewVector(1, 2, 3))
	var le *lock.LockedError
	require.ErrorAs(t, gma.Try(func() { v.SetXYZ(1, 2, 3) }), &le)
	assert.Equal(t, "set x", le.Op)
	require.ErrorAs(t, gma.Try(func() { v.SetZ(3) }), &le)
	assert.Equal(t, "set z", le.Op)

	c := v.Clone()
	assert.False(t, c.IsLocked())
	assert.True(t, c.Equals(v))
}

func TestVectorClone(t *testing.T) {
	v := NewVector(1, 2, 3)
	assert.False(t, v.Clone().Modified())
	v.Scale(2)
	assert.True(t, v.Clone().Modified(), "clone keeps the modified flag")
}

func TestVectorStress(t *testing.T) {
	v := NewVector(2, 3, 5)
	σ := NewVector(7, 11, 13)
	s := v.Stress(σ)
	assert.Same(t, v, s)
	assert.True(t, s.Equals(NewVector(14, 33, 65)))
	assert.True(t, σ.Equals(NewVector(7, 11, 13)))
}

func TestVectorArithmetic(t *testing.T) {
	a, b := NewVector(1, 2, 3), NewVector(4, 5, 6)

	assert.True(t, a.Clone().Add(b).Equals(NewVector(5, 7, 9)))
	assert.True(t, a.Clone().AddScaled(b, 2).Equals(NewVector(9, 12, 15)))
	assert.True(t, NewVector(0, 0, 0).Add2(a, b).Equals(NewVector(5, 7, 9)))
	assert.True(t, b.Clone().Sub(a).Equals(NewVector(3, 3, 3)))
	assert.True(t, b.Clone().SubScaled(a, 2).Equals(NewVector(2, 1, 0)))
	assert.True(t, NewVector(0, 0, 0).Sub2(a, b).Equals(NewVector(-3, -3, -3)))
	assert.True(t, a.Clone().Neg().Equals(NewVector(-1, -2, -3)))
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, 32.0, Dot(a, b))
	assert.Equal(t, 14.0, a.SquaredNorm())
	assert.Equal(t, 27.0, a.QuadranceTo(b))
	assert.Equal(t, math.Sqrt(27), a.DistanceTo(b))

	assert.True(t, NewVector(2, 4, 6).DivByScalar(2).Equals(a))
	assert.True(t, a.Clone().DivByScalar(0).Equals(NewVector(0, 0, 0)))

	assert.True(t, NewVector(0, 0, 0).Normalize().IsZero())
	assert.True(t, NewVector(0, 3, 0).Normalize().Equals(NewVector(0, 1, 0)))
	assert.Equal(t, 5.0, NewVector(3, 0, 4).Magnitude())
}

func TestVectorCross(t *testing.T) {
	e1, e2, e3 := NewVector(1, 0, 0), NewVector(0, 1, 0), NewVector(0, 0, 1)
	assert.True(t, e1.Clone().Cross(e2).Equals(e3))
	assert.True(t, e2.Clone().Cross(e3).Equals(e1))
	assert.True(t, e3.Clone().Cross(e1).Equals(e2))
	assert.True(t, NewVector(0, 0, 0).Cross2(e2, e1).Equals(NewVector(0, 0, -1)))

	// a x b is the dual of a ^ b
	a, b := NewVector(1, 2, 3), NewVector(-2, 5, 1)
	assert.True(t, a.Clone().Cross(b).Equals(DualVector(WedgeSpinor(a, b))))
}

func TestVectorDual(t *testing.T) {
	B := NewSpinor(1, 2, 3, 0)
	assert.True(t, NewVector(0, 0, 0).Dual(B, true).Equals(NewVector(1, 2, 3)))
	assert.True(t, NewVector(0, 0, 0).Dual(B, false).Equals(NewVector(-1, -2, -3)))
	assert.True(t, DualVector(B).Equals(NewVector(1, 2, 3)))
}

func TestVectorReflect(t *testing.T) {
	v := NewVector(1, 1, 1).Reflect(NewVector(0, 1, 0))
	assert.True(t, v.Equals(NewVector(1, -1, 1)))

	n := NewVector(1, 2, 2).Normalize()
	S := NewVector(3, -1, 4)
	want := FromVector(S).Reflect(n)
	got := S.Clone().Reflect(n)
	assert.InDeltaSlice(t, []float64{want.X(), want.Y(), want.Z()}, got.ToArray(), 1e-14)
}

func TestVectorRotate(t *testing.T) {
	R := OneSpinor().RotorFromDirections(NewVector(1, 0, 0), NewVector(0, 1, 0))
	v := NewVector(1, 0, 0).Rotate(R)
	assert.InDeltaSlice(t, []float64{0, 1, 0}, v.ToArray(), 1e-15)

	for i := 0; i < 10; i++ {
		R := Random().RotorFromDirections(RandomVector(), RandomVector())
		v := NewVector(1, 2, 3)
		want := FromVector(v).Rotate(R)
		got := v.Clone().Rotate(R)
		assert.InDeltaSlice(t, []float64{want.X(), want.Y(), want.Z()}, got.ToArray(), 1e-13)
	}
}

func TestVectorCopy(t *testing.T) {
	v := NewVector(0, 0, 0).Copy(NewVector(2, 3, 5))
	assert.True(t, v.Equals(NewVector(2, 3, 5)))
	assert.True(t, v.CopyCoordinates([]float64{7, 8, 9}).Equals(NewVector(7, 8, 9)))
	assert.True(t, CopyVector(E2).Equals(NewVector(0, 1, 0)))
	assert.Equal(t, []float64{7, 8, 9}, v.ToArray())
	assert.True(t, v.Zero().IsZero())

	var nilVector *Vector
	assert.ErrorIs(t, gma.Try(func() { v.Copy(nilVector) }), gma.ErrInvalidArgument)
}

func TestVectorMaskG3(t *testing.T) {
	assert.Equal(t, 0x0, NewVector(0, 0, 0).MaskG3())
	assert.Equal(t, 0x2, NewVector(0, 0, 1).MaskG3())
}

func TestVectorLerp(t *testing.T) {
	a, b := NewVector(0, 0, 0), NewVector(4, 8, 12)
	assert.True(t, a.Clone().Lerp(b, 0.25).Equals(NewVector(1, 2, 3)))
	assert.True(t, NewVector(9, 9, 9).Lerp2(a, b, 0.5).Equals(NewVector(2, 4, 6)))
	assert.True(t, LerpVector(a, b, 0.75).Equals(NewVector(3, 6, 9)))
}

func TestVectorOperators(t *testing.T) {
	a, b := NewVector(1, 2, 3), NewVector(4, 5, 6)
	for _, v := range []*Vector{a.Negative(), a.Positive(), a.Plus(b), a.Minus(b), a.Times(2), a.Over(2)} {
		assert.True(t, v.IsLocked())
	}
	assert.True(t, a.Plus(b).Equals(NewVector(5, 7, 9)))
	assert.True(t, a.Minus(b).Equals(NewVector(-3, -3, -3)))
	assert.True(t, a.Times(2).Equals(NewVector(2, 4, 6)))
	assert.True(t, a.Over(2).Equals(NewVector(0.5, 1, 1.5)))
	assert.True(t, a.Negative().Equals(NewVector(-1, -2, -3)))
	assert.True(t, a.Positive().Equals(a))
	assert.False(t, a.Modified())
}

func TestVectorInterop(t *testing.T) {
	v := VectorFromVec(r3.Vec{X: 1, Y: 2, Z: 3})
	assert.Equal(t, r3.Vec{X: 1, Y: 2, Z: 3}, v.Vec())
	assert.Equal(t, [3]float64{1, 2, 3}, [3]float64(v.F64()))
	assert.Equal(t, r3.Cross(v.Vec(), r3.Vec{Y: 1}), v.Clone().Cross(NewVector(0, 1, 0)).Vec())
}

func TestRandomVector(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.InDelta(t, 1, RandomVector().Magnitude(), 1e-12)
	}
}
