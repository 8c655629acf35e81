// Package g4 holds a four component vector. Only the linear operations are
// implemented; the metric and rotation surface panics with
// *gma.NotImplementedError.
package g4

import (
	"dasa.cc/gma"
	"dasa.cc/gma/coords"

	"golang.org/x/image/math/f64"
)

// VectorE4 is implemented by values with four Cartesian coordinates.
type VectorE4 interface {
	X() float64
	Y() float64
	Z() float64
	W() float64
}

// SpinorE4 is the rotor argument of Rotate.
type SpinorE4 interface {
	A() float64
}

const (
	coordX = iota
	coordY
	coordZ
	coordW
)

type Vector struct {
	coords.Coords
}

func NewVector(x, y, z, w float64) *Vector {
	return &Vector{coords.Make([]float64{x, y, z, w}, false)}
}

func VectorFromCoords(c [4]float64, modified bool) *Vector {
	return &Vector{coords.Make(c[:], modified)}
}

func (v *Vector) X() float64 { return v.Component(coordX) }
func (v *Vector) Y() float64 { return v.Component(coordY) }
func (v *Vector) Z() float64 { return v.Component(coordZ) }
func (v *Vector) W() float64 { return v.Component(coordW) }

func (v *Vector) SetX(x float64) { v.Set(coordX, "set x", x) }
func (v *Vector) SetY(y float64) { v.Set(coordY, "set y", y) }
func (v *Vector) SetZ(z float64) { v.Set(coordZ, "set z", z) }

func (v *Vector) SetW(w float64) *Vector {
	v.Set(coordW, "set w", w)
	return v
}

func (v *Vector) set(x, y, z, w float64) *Vector {
	v.SetX(x)
	v.SetY(y)
	v.SetZ(z)
	return v.SetW(w)
}

func (v *Vector) Add(u VectorE4) *Vector { return v.AddScaled(u, 1) }

// AddScaled sets v to v + αu.
func (v *Vector) AddScaled(u VectorE4, α float64) *Vector {
	return v.set(v.X()+u.X()*α, v.Y()+u.Y()*α, v.Z()+u.Z()*α, v.W()+u.W()*α)
}

func (v *Vector) Add2(a, b VectorE4) *Vector {
	return v.set(a.X()+b.X(), a.Y()+b.Y(), a.Z()+b.Z(), a.W()+b.W())
}

// Sub sets v to v - αu.
func (v *Vector) Sub(u VectorE4, α float64) *Vector { return v.AddScaled(u, -α) }

func (v *Vector) Sub2(a, b VectorE4) *Vector {
	return v.set(a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z(), a.W()-b.W())
}

func (v *Vector) Scale(α float64) *Vector {
	return v.set(v.X()*α, v.Y()*α, v.Z()*α, v.W()*α)
}

// DivByScalar divides each coordinate by α; division by zero follows IEEE 754.
func (v *Vector) DivByScalar(α float64) *Vector {
	return v.set(v.X()/α, v.Y()/α, v.Z()/α, v.W()/α)
}

func (v *Vector) Neg() *Vector { return v.Scale(-1) }

// Lerp sets v to v + α(u - v).
func (v *Vector) Lerp(u VectorE4, α float64) *Vector {
	return v.set(
		v.X()+(u.X()-v.X())*α,
		v.Y()+(u.Y()-v.Y())*α,
		v.Z()+(u.Z()-v.Z())*α,
		v.W()+(u.W()-v.W())*α,
	)
}

// Lerp2 sets v to a + α(b - a).
func (v *Vector) Lerp2(a, b VectorE4, α float64) *Vector {
	return v.Sub2(b, a).Scale(α).Add(a)
}

func (v *Vector) Stress(σ VectorE4) *Vector {
	return v.set(v.X()*σ.X(), v.Y()*σ.Y(), v.Z()*σ.Z(), v.W()*σ.W())
}

func (v *Vector) Copy(u VectorE4) *Vector {
	gma.MustBeDefined("v", u)
	return v.set(u.X(), u.Y(), u.Z(), u.W())
}

// Clone returns an unlocked copy of v, modified flag included.
func (v *Vector) Clone() *Vector {
	return VectorFromCoords([4]float64{v.X(), v.Y(), v.Z(), v.W()}, v.Modified())
}

func (v *Vector) Zero() *Vector { return v.set(0, 0, 0, 0) }

func (v *Vector) Approx(n int) *Vector {
	v.Coords.Approx(n)
	return v
}

func (v *Vector) Equals(u VectorE4) bool {
	return v.X() == u.X() && v.Y() == u.Y() && v.Z() == u.Z() && v.W() == u.W()
}

func (v *Vector) F64() f64.Vec4 { return f64.Vec4{v.X(), v.Y(), v.Z(), v.W()} }

func (v *Vector) Reflect(n VectorE4) *Vector { panic(gma.NotImplemented("reflect")) }
func (v *Vector) Rotate(R SpinorE4) *Vector  { panic(gma.NotImplemented("rotate")) }
func (v *Vector) Magnitude() float64         { panic(gma.NotImplemented("magnitude")) }
func (v *Vector) SquaredNorm() float64       { panic(gma.NotImplemented("squared norm")) }
func (v *Vector) Fixed(d int) string         { panic(gma.NotImplemented("fixed")) }
func (v *Vector) Exponential(d int) string   { panic(gma.NotImplemented("exponential")) }
func (v *Vector) Precision(p int) string     { panic(gma.NotImplemented("precision")) }
