package g3

import (
	"fmt"

	"dasa.cc/gma"
	"dasa.cc/gma/gauss"
)

// halfTurn is the magnitude below which the frame rotor 1 + Σ f_k e^k is
// treated as vanishing.
const halfTurn = 1e-8

// RotorFromFrameToFrame returns the rotor R with R es[k] rev(R) = fs[k].
func RotorFromFrameToFrame(es, fs []VectorE3) *Multivector {
	return NewZero(false).RotorFromFrameToFrame(es, fs)
}

// RotorFromFrameToFrame sets m to the rotor taking the frame es onto fs.
// Both frames hold three vectors and es must be independent; the frames are
// assumed to be related by a rotation. A degenerate es panics with
// gma.ErrNotInvertible.
func (m *Multivector) RotorFromFrameToFrame(es, fs []VectorE3) *Multivector {
	if len(es) != 3 {
		panic(gma.InvalidArgument("es", fmt.Sprintf("must hold 3 vectors, got %d", len(es))))
	}
	if len(fs) != 3 {
		panic(gma.InvalidArgument("fs", fmt.Sprintf("must hold 3 vectors, got %d", len(fs))))
	}
	rs := reciprocalFrame(es)

	ψ := NewOne(false)
	for k := range es {
		ψ.Add(FromVector(fs[k]).Mul(FromVector(rs[k])))
	}
	ψ.set(ψ.A(), 0, 0, 0, ψ.YZ(), ψ.ZX(), ψ.XY(), 0)

	if n := ψ.Magnitude(); n > halfTurn {
		return m.Copy(ψ.DivByScalar(n))
	}
	return m.CopySpinor(halfTurnRotor(fs, rs))
}

// reciprocalFrame returns e^k with e^k · e_j = δ_kj.
func reciprocalFrame(es []VectorE3) []*Vector {
	A := make([][]float64, len(es))
	for i, e := range es {
		gma.MustBeDefined(fmt.Sprintf("es[%d]", i), e)
		A[i] = []float64{e.X(), e.Y(), e.Z()}
	}
	rs := make([]*Vector, len(es))
	for k := range rs {
		δ := make([]float64, len(es))
		δ[k] = 1
		r, err := gauss.Solve(A, δ)
		if err != nil {
			panic(err)
		}
		rs[k] = NewVector(r[0], r[1], r[2])
	}
	return rs
}

// halfTurnRotor recovers the rotor of a rotation by π from the frame map
// M = Σ f_k (e^k)ᵀ, using M + Id = 2nnᵀ for the axis n.
func halfTurnRotor(fs []VectorE3, rs []*Vector) rotor {
	var M [3][3]float64
	for k := range fs {
		f := [3]float64{fs[k].X(), fs[k].Y(), fs[k].Z()}
		r := [3]float64{rs[k].X(), rs[k].Y(), rs[k].Z()}
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				M[i][j] += f[i] * r[j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		M[i][i]++
	}

	var n *Vector
	best := -1.0
	for j := 0; j < 3; j++ {
		c := NewVector(M[0][j], M[1][j], M[2][j])
		if q := c.SquaredNorm(); q > best {
			best, n = q, c
		}
	}
	if best == 0 {
		panic(gma.ErrNotInvertible)
	}
	n.Normalize()
	return rotor{bivector{-n.X(), -n.Y(), -n.Z()}, 0}
}
