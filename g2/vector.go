// Package g2 implements the geometric algebra of the Euclidean plane,
// Cl(2,0): vectors, spinors and general multivectors.
//
// Methods that modify their receiver return it for chaining and panic with a
// *lock.LockedError if the receiver is locked. The operator methods Plus,
// Minus, Times, Over and Negative leave their operands alone and return new
// locked values.
package g2

import (
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
	"dasa.cc/gma/lock"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r2"
)

// VectorE2 is implemented by values with Cartesian coordinates in the plane.
type VectorE2 interface {
	X() float64
	Y() float64
}

const (
	coordX = iota
	coordY
)

var labelsE2 = []string{"e1", "e2"}

// ZeroVector is the locked zero vector.
var ZeroVector = lock.Lock(NewVector(0, 0))

// Vector is a grade-1 element of Cl(2,0).
type Vector struct {
	coords.Coords
}

func NewVector(x, y float64) *Vector {
	return &Vector{coords.Make([]float64{x, y}, false)}
}

func VectorFromCoords(c [2]float64, modified bool) *Vector {
	return &Vector{coords.Make(c[:], modified)}
}

// VectorFromVec returns the vector with the coordinates of p.
func VectorFromVec(p r2.Vec) *Vector { return NewVector(p.X, p.Y) }

// RandomVector returns a unit vector with a random direction.
func RandomVector() *Vector {
	return NewVector(coords.RandomRange(-1, 1), coords.RandomRange(-1, 1)).Normalize()
}

// CopyVector returns a new vector with the coordinates of v.
func CopyVector(v VectorE2) *Vector {
	gma.MustBeDefined("v", v)
	return NewVector(v.X(), v.Y())
}

// LerpVector returns a + α(b - a).
func LerpVector(a, b VectorE2, α float64) *Vector {
	return CopyVector(b).Sub(a).Scale(α).Add(a)
}

func (v *Vector) X() float64     { return v.Component(coordX) }
func (v *Vector) Y() float64     { return v.Component(coordY) }
func (v *Vector) SetX(x float64) { v.Set(coordX, "set x", x) }
func (v *Vector) SetY(y float64) { v.Set(coordY, "set y", y) }

// Add sets v to v + u.
func (v *Vector) Add(u VectorE2) *Vector { return v.AddScaled(u, 1) }

// AddScaled sets v to v + αu.
func (v *Vector) AddScaled(u VectorE2, α float64) *Vector {
	v.SetX(v.X() + u.X()*α)
	v.SetY(v.Y() + u.Y()*α)
	return v
}

// Add2 sets v to a + b.
func (v *Vector) Add2(a, b VectorE2) *Vector {
	v.SetX(a.X() + b.X())
	v.SetY(a.Y() + b.Y())
	return v
}

func (v *Vector) Sub(u VectorE2) *Vector {
	v.SetX(v.X() - u.X())
	v.SetY(v.Y() - u.Y())
	return v
}

// Sub2 sets v to a - b.
func (v *Vector) Sub2(a, b VectorE2) *Vector {
	v.SetX(a.X() - b.X())
	v.SetY(a.Y() - b.Y())
	return v
}

func (v *Vector) Scale(α float64) *Vector {
	v.SetX(v.X() * α)
	v.SetY(v.Y() * α)
	return v
}

// DivByScalar divides each coordinate by α; division by zero follows IEEE 754.
func (v *Vector) DivByScalar(α float64) *Vector {
	v.SetX(v.X() / α)
	v.SetY(v.Y() / α)
	return v
}

// Min replaces each coordinate of v by the corresponding coordinate of u
// when the latter is smaller.
func (v *Vector) Min(u VectorE2) *Vector {
	if v.X() > u.X() {
		v.SetX(u.X())
	}
	if v.Y() > u.Y() {
		v.SetY(u.Y())
	}
	return v
}

// Max replaces each coordinate of v by the corresponding coordinate of u
// when the latter is larger.
func (v *Vector) Max(u VectorE2) *Vector {
	if v.X() < u.X() {
		v.SetX(u.X())
	}
	if v.Y() < u.Y() {
		v.SetY(u.Y())
	}
	return v
}

func (v *Vector) Floor() *Vector { return v.apply(math.Floor) }
func (v *Vector) Ceil() *Vector  { return v.apply(math.Ceil) }

// Round rounds half away from zero.
func (v *Vector) Round() *Vector { return v.apply(math.Round) }

func (v *Vector) RoundToZero() *Vector { return v.apply(math.Trunc) }

func (v *Vector) Neg() *Vector { return v.Scale(-1) }

func (v *Vector) apply(fn func(float64) float64) *Vector {
	v.SetX(fn(v.X()))
	v.SetY(fn(v.Y()))
	return v
}

func (v *Vector) Dot(u VectorE2) float64 { return v.X()*u.X() + v.Y()*u.Y() }

func (v *Vector) Magnitude() float64 { return math.Sqrt(v.SquaredNorm()) }

func (v *Vector) SquaredNorm() float64 { return v.Dot(v) }

// Normalize divides v by its magnitude; a zero vector becomes NaN.
func (v *Vector) Normalize() *Vector { return v.DivByScalar(v.Magnitude()) }

// QuadranceTo returns the squared distance from v to p.
func (v *Vector) QuadranceTo(p VectorE2) float64 {
	dx, dy := v.X()-p.X(), v.Y()-p.Y()
	return dx*dx + dy*dy
}

func (v *Vector) DistanceTo(p VectorE2) float64 { return math.Sqrt(v.QuadranceTo(p)) }

// QuadraticBezier sets v to the point at t on the quadratic Bézier curve
// from v through control to end.
func (v *Vector) QuadraticBezier(t float64, control, end VectorE2) *Vector {
	x := b2(t, v.X(), control.X(), end.X())
	y := b2(t, v.Y(), control.Y(), end.Y())
	v.SetX(x)
	v.SetY(y)
	return v
}

// CubicBezier sets v to the point at t on the cubic Bézier curve from v
// through c0 and c1 to end.
func (v *Vector) CubicBezier(t float64, c0, c1, end VectorE2) *Vector {
	x := b3(t, v.X(), c0.X(), c1.X(), end.X())
	y := b3(t, v.Y(), c0.Y(), c1.Y(), end.Y())
	v.SetX(x)
	v.SetY(y)
	return v
}

func b2(t, p0, p1, p2 float64) float64 {
	k := 1 - t
	return k*k*p0 + 2*k*t*p1 + t*t*p2
}

func b3(t, p0, p1, p2, p3 float64) float64 {
	k := 1 - t
	return k*k*k*p0 + 3*k*k*t*p1 + 3*k*t*t*p2 + t*t*t*p3
}

// Reflect is not implemented and always panics with a *gma.NotImplementedError.
func (v *Vector) Reflect(n VectorE2) *Vector {
	panic(gma.NotImplemented("reflect"))
}

// Rotate sets v to R v rev(R).
func (v *Vector) Rotate(R SpinorE2) *Vector {
	x, y := v.X(), v.Y()
	a, b := R.A(), R.B()
	p := a*a - b*b
	q := 2 * a * b
	v.SetX(p*x + q*y)
	v.SetY(p*y - q*x)
	return v
}

// Lerp sets v to v + α(u - v).
func (v *Vector) Lerp(u VectorE2, α float64) *Vector {
	v.SetX(v.X() + (u.X()-v.X())*α)
	v.SetY(v.Y() + (u.Y()-v.Y())*α)
	return v
}

// Lerp2 sets v to a + α(b - a).
func (v *Vector) Lerp2(a, b VectorE2, α float64) *Vector { return v.Copy(a).Lerp(b, α) }

// Stress multiplies each coordinate of v by the corresponding coordinate of σ.
func (v *Vector) Stress(σ VectorE2) *Vector {
	v.SetX(v.X() * σ.X())
	v.SetY(v.Y() * σ.Y())
	return v
}

// Clone returns an unlocked copy of v.
func (v *Vector) Clone() *Vector { return NewVector(v.X(), v.Y()) }

// Copy sets the coordinates of v to those of u; u must not be nil.
func (v *Vector) Copy(u VectorE2) *Vector {
	gma.MustBeDefined("v", u)
	v.SetX(u.X())
	v.SetY(u.Y())
	return v
}

// FromArray sets v from a[offset] and a[offset+1].
func (v *Vector) FromArray(a []float64, offset int) *Vector {
	v.SetX(a[offset])
	v.SetY(a[offset+1])
	return v
}

func (v *Vector) Zero() *Vector {
	v.SetX(0)
	v.SetY(0)
	return v
}

func (v *Vector) Approx(n int) *Vector {
	v.Coords.Approx(n)
	return v
}

// Equals reports exact coordinate equality.
func (v *Vector) Equals(u VectorE2) bool { return v.X() == u.X() && v.Y() == u.Y() }

func (v *Vector) ToArray() []float64 { return v.Slice() }

func (v *Vector) Vec() r2.Vec { return r2.Vec{X: v.X(), Y: v.Y()} }

func (v *Vector) F64() f64.Vec2 { return f64.Vec2{v.X(), v.Y()} }

func (v *Vector) String() string { return coords.String(v.Slice(), coords.Plain, labelsE2) }

func (v *Vector) Fixed(d int) string {
	return coords.String(v.Slice(), coords.Fixed(d), labelsE2)
}

// Exponential formats v in exponent notation; negative d uses as many
// digits as necessary.
func (v *Vector) Exponential(d int) string {
	return coords.String(v.Slice(), coords.Exponential(d), labelsE2)
}

func (v *Vector) Precision(p int) string {
	return coords.String(v.Slice(), coords.Precision(p), labelsE2)
}

// Negative returns a new locked -v.
func (v *Vector) Negative() *Vector { return lock.Lock(v.Clone().Neg()) }

// Plus returns a new locked v + u.
func (v *Vector) Plus(u VectorE2) *Vector { return lock.Lock(v.Clone().Add(u)) }

// Minus returns a new locked v - u.
func (v *Vector) Minus(u VectorE2) *Vector { return lock.Lock(v.Clone().Sub(u)) }

// Times returns a new locked αv.
func (v *Vector) Times(α float64) *Vector { return lock.Lock(v.Clone().Scale(α)) }

// Over returns a new locked v/α.
func (v *Vector) Over(α float64) *Vector { return lock.Lock(v.Clone().DivByScalar(α)) }
