package g2

import (
	"math"
	"testing"

	"dasa.cc/gma"

	"github.com/stretchr/testify/assert"
)

func TestSpinor(t *testing.T) {
	s := NewSpinor(2, 3)
	assert.Equal(t, "2+3*I", s.String())
	assert.Equal(t, "2.0+3.0*I", s.Fixed(1))
	assert.Equal(t, 13.0, s.SquaredNorm())

	// (2+3I)(1+2I) = 2 - 6 + (4 + 3)I
	assert.True(t, s.Clone().Mul(NewSpinor(1, 2)).Equals(NewSpinor(-4, 7)))
	assert.True(t, s.Clone().Rev().Equals(NewSpinor(2, -3)))
	assert.True(t, s.Clone().Add(NewSpinor(1, 1)).Equals(NewSpinor(3, 4)))
	assert.True(t, s.Clone().Sub(NewSpinor(1, 1)).Equals(NewSpinor(1, 2)))
	assert.True(t, s.Clone().Neg().Equals(NewSpinor(-2, -3)))

	p := s.Clone().Mul(s.Clone().Inv())
	assert.InDelta(t, 1, p.A(), 1e-15)
	assert.InDelta(t, 0, p.B(), 1e-15)

	assert.ErrorIs(t, gma.Try(func() { NewSpinor(0, 0).Inv() }), gma.ErrNotInvertible)
	assert.InDelta(t, 1, s.Clone().Normalize().Magnitude(), 1e-15)
}

func TestSpinorRotors(t *testing.T) {
	R := OneSpinor().RotorFromDirections(NewVector(1, 0), NewVector(0, 2))
	assert.InDelta(t, math.Sqrt2/2, R.A(), 1e-15)
	assert.InDelta(t, -math.Sqrt2/2, R.B(), 1e-15)
	assert.True(t, R.Clone().Approx(12).Equals(NewSpinor(0, 0).RotorFromAngle(math.Pi/2).Approx(12)))

	R.RotorFromDirections(NewVector(1, 0), NewVector(-1, 0))
	assert.True(t, NewVector(1, 0).Rotate(R).Equals(NewVector(-1, 0)))

	assert.True(t, OneSpinor().Times(NewSpinor(0, 1)).IsLocked())
	assert.True(t, NewSpinor(1, 2).Negative().Equals(NewSpinor(-1, -2)))
	assert.True(t, CopySpinor(I).Equals(NewSpinor(0, 1)))
}
