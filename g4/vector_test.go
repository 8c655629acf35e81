package g4

import (
	"testing"

	"dasa.cc/gma"
	"dasa.cc/gma/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	a, b := NewVector(1, 2, 3, 4), NewVector(5, 6, 7, 8)

	assert.True(t, a.Clone().Add(b).Equals(NewVector(6, 8, 10, 12)))
	assert.True(t, NewVector(0, 0, 0, 0).Add2(a, b).Equals(NewVector(6, 8, 10, 12)))
	assert.True(t, b.Clone().Sub(a, 2).Equals(NewVector(3, 2, 1, 0)))
	assert.True(t, NewVector(0, 0, 0, 0).Sub2(b, a).Equals(NewVector(4, 4, 4, 4)))
	assert.True(t, a.Clone().Scale(2).Equals(NewVector(2, 4, 6, 8)))
	assert.True(t, a.Clone().DivByScalar(2).Equals(NewVector(0.5, 1, 1.5, 2)))
	assert.True(t, a.Clone().Neg().Equals(NewVector(-1, -2, -3, -4)))
	assert.True(t, a.Clone().Stress(b).Equals(NewVector(5, 12, 21, 32)))
	assert.True(t, a.Clone().Lerp(b, 0.5).Equals(NewVector(3, 4, 5, 6)))
	assert.True(t, NewVector(9, 9, 9, 9).Lerp2(a, b, 0.25).Equals(NewVector(2, 3, 4, 5)))
	assert.True(t, NewVector(0, 0, 0, 0).Copy(a).Equals(a))
	assert.True(t, a.Clone().Zero().Equals(NewVector(0, 0, 0, 0)))
	assert.True(t, a.Clone().SetW(9).Equals(NewVector(1, 2, 3, 9)))
	assert.Equal(t, [4]float64{1, 2, 3, 4}, [4]float64(a.F64()))
	assert.Equal(t, 0.1, NewVector(0.1234, 0, 0, 0).Approx(1).X())
}

func TestVectorModified(t *testing.T) {
	v := NewVector(1, 2, 3, 4)
	assert.False(t, v.Clone().Modified())
	v.SetW(5)
	assert.True(t, v.Modified())
	assert.True(t, v.Clone().Modified())
}

func TestVectorLocked(t *testing.T) {
	v := lock.Lock(NewVector(1, 2, 3, 4))
	var le *lock.LockedError
	require.ErrorAs(t, gma.Try(func() { v.SetW(4) }), &le)
	assert.Equal(t, "set w", le.Op)
	assert.False(t, v.Clone().IsLocked())
}

func TestVectorNotImplemented(t *testing.T) {
	v := NewVector(1, 2, 3, 4)
	for op, f := range map[string]func(){
		"reflect":      func() { v.Reflect(v) },
		"rotate":       func() { v.Rotate(nil) },
		"magnitude":    func() { v.Magnitude() },
		"squared norm": func() { v.SquaredNorm() },
		"fixed":        func() { v.Fixed(2) },
		"exponential":  func() { v.Exponential(2) },
		"precision":    func() { v.Precision(2) },
	} {
		var ni *gma.NotImplementedError
		require.ErrorAs(t, gma.Try(f), &ni, op)
		assert.Equal(t, op, ni.Op)
	}
}
