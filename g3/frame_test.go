package g3

import (
	"testing"

	"dasa.cc/gma"

	"github.com/stretchr/testify/assert"
)

func frame(vs ...*Multivector) []VectorE3 {
	f := make([]VectorE3, len(vs))
	for i, v := range vs {
		f[i] = v
	}
	return f
}

func TestRotorFromFrameToFrameIdentity(t *testing.T) {
	es := frame(E1, E2, E3)
	R := RotorFromFrameToFrame(es, es)
	equalM(t, One, R)
}

func TestRotorFromFrameToFrameHalfTurn(t *testing.T) {
	es := frame(E2, E3, E1)
	fs := frame(E3, E2, E1.Negative())
	R := RotorFromFrameToFrame(es, fs)
	assert.InDelta(t, 0, R.A(), precision)
	assert.InDelta(t, 1, R.Magnitude(), precision)
	for k := range es {
		got := CopyVector(es[k]).Rotate(R)
		assert.InDeltaSlice(t, CopyVector(fs[k]).ToArray(), got.ToArray(), precision, "k=%d", k)
	}
}

func TestRotorFromFrameToFrame(t *testing.T) {
	for i := 0; i < 20; i++ {
		want := RotorFromDirections(RandomVector(), RandomVector())
		es := frame(E1, Vec(1, 1, 0), Vec(0, 1, 2))
		fs := make([]VectorE3, len(es))
		for k, e := range es {
			fs[k] = CopyVector(e).Rotate(want)
		}
		R := RotorFromFrameToFrame(es, fs)
		for k := range es {
			got := CopyVector(es[k]).Rotate(R)
			assert.InDeltaSlice(t, CopyVector(fs[k]).ToArray(), got.ToArray(), 1e-11)
		}
	}
}

func TestRotorFromFrameToFrameInvalid(t *testing.T) {
	err := gma.Try(func() { RotorFromFrameToFrame(frame(E1, E2), frame(E1, E2, E3)) })
	assert.ErrorIs(t, err, gma.ErrInvalidArgument)

	err = gma.Try(func() { RotorFromFrameToFrame(frame(E1, E1, E2), frame(E1, E2, E3)) })
	assert.ErrorIs(t, err, gma.ErrNotInvertible)
}
