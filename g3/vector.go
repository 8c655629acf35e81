// Package g3 implements the geometric algebra of Euclidean space, Cl(3,0):
// vectors, spinors and general multivectors.
//
// Multivector coordinates are ordered by grade,
//
//	a, x, y, z, yz, zx, xy, b
//
// for the scalar, vector (e1, e2, e3), bivector (e23, e31, e12) and
// pseudoscalar (I = e123) parts.
//
// Methods that modify their receiver return it for chaining and panic with a
// *lock.LockedError if the receiver is locked. The operator methods Plus,
// Minus, Times, Over and Negative leave their operands alone and return new
// locked values.
package g3

import (
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
	"dasa.cc/gma/lock"

	"golang.org/x/image/math/f64"
	"gonum.org/v1/gonum/spatial/r3"
)

// VectorE3 is implemented by values with Cartesian coordinates in space.
type VectorE3 interface {
	X() float64
	Y() float64
	Z() float64
}

const (
	coordX = iota
	coordY
	coordZ
)

var labelsE3 = []string{"e1", "e2", "e3"}

// Vector is a grade-1 element of Cl(3,0).
type Vector struct {
	coords.Coords
}

func NewVector(x, y, z float64) *Vector {
	return &Vector{coords.Make([]float64{x, y, z}, false)}
}

func VectorFromCoords(c [3]float64, modified bool) *Vector {
	return &Vector{coords.Make(c[:], modified)}
}

func VectorFromVec(p r3.Vec) *Vector { return NewVector(p.X, p.Y, p.Z) }

// RandomVector returns a unit vector with a random direction.
func RandomVector() *Vector {
	r := func() float64 { return coords.RandomRange(-1, 1) }
	return NewVector(r(), r(), r()).Normalize()
}

func CopyVector(v VectorE3) *Vector {
	gma.MustBeDefined("v", v)
	return NewVector(v.X(), v.Y(), v.Z())
}

// DualVector returns the vector dual to B, (yz, zx, xy).
func DualVector(B BivectorE3) *Vector { return NewVector(B.YZ(), B.ZX(), B.XY()) }

// LerpVector returns a + α(b - a).
func LerpVector(a, b VectorE3, α float64) *Vector {
	return CopyVector(b).Sub(a).Scale(α).Add(a)
}

// Dot returns the Euclidean inner product of a and b.
func Dot(a, b VectorE3) float64 { return a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z() }

func wedgeYZ(ay, az, by, bz float64) float64 { return ay*bz - az*by }
func wedgeZX(ax, az, bx, bz float64) float64 { return az*bx - ax*bz }
func wedgeXY(ax, ay, bx, by float64) float64 { return ax*by - ay*bx }

func (v *Vector) X() float64     { return v.Component(coordX) }
func (v *Vector) Y() float64     { return v.Component(coordY) }
func (v *Vector) Z() float64     { return v.Component(coordZ) }
func (v *Vector) SetX(x float64) { v.Set(coordX, "set x", x) }
func (v *Vector) SetY(y float64) { v.Set(coordY, "set y", y) }
func (v *Vector) SetZ(z float64) { v.Set(coordZ, "set z", z) }

func (v *Vector) SetXYZ(x, y, z float64) *Vector {
	v.SetX(x)
	v.SetY(y)
	v.SetZ(z)
	return v
}

// MaskG3 is MaskVector unless v is zero.
func (v *Vector) MaskG3() int {
	if v.IsZero() {
		return 0
	}
	return MaskVector
}

func (v *Vector) Add(u VectorE3) *Vector { return v.AddScaled(u, 1) }

// AddScaled sets v to v + αu.
func (v *Vector) AddScaled(u VectorE3, α float64) *Vector {
	return v.SetXYZ(v.X()+u.X()*α, v.Y()+u.Y()*α, v.Z()+u.Z()*α)
}

func (v *Vector) Add2(a, b VectorE3) *Vector {
	return v.SetXYZ(a.X()+b.X(), a.Y()+b.Y(), a.Z()+b.Z())
}

func (v *Vector) Sub(u VectorE3) *Vector { return v.SubScaled(u, 1) }

// SubScaled sets v to v - αu.
func (v *Vector) SubScaled(u VectorE3, α float64) *Vector {
	return v.SetXYZ(v.X()-u.X()*α, v.Y()-u.Y()*α, v.Z()-u.Z()*α)
}

func (v *Vector) Sub2(a, b VectorE3) *Vector {
	return v.SetXYZ(a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z())
}

func (v *Vector) Scale(α float64) *Vector {
	return v.SetXYZ(v.X()*α, v.Y()*α, v.Z()*α)
}

// DivByScalar divides v by α; division by zero yields the zero vector.
func (v *Vector) DivByScalar(α float64) *Vector {
	if α == 0 {
		return v.Zero()
	}
	return v.Scale(1 / α)
}

func (v *Vector) Neg() *Vector { return v.Scale(-1) }

// Cross sets v to v × u.
func (v *Vector) Cross(u VectorE3) *Vector { return v.Cross2(v, u) }

// Cross2 sets v to a × b.
func (v *Vector) Cross2(a, b VectorE3) *Vector {
	ax, ay, az := a.X(), a.Y(), a.Z()
	bx, by, bz := b.X(), b.Y(), b.Z()
	return v.SetXYZ(wedgeYZ(ay, az, by, bz), wedgeZX(ax, az, bx, bz), wedgeXY(ax, ay, bx, by))
}

func (v *Vector) Dot(u VectorE3) float64 { return Dot(v, u) }

// Dual sets v to the vector dual to B, negated unless changeSign is set.
func (v *Vector) Dual(B BivectorE3, changeSign bool) *Vector {
	if changeSign {
		return v.SetXYZ(B.YZ(), B.ZX(), B.XY())
	}
	return v.SetXYZ(-B.YZ(), -B.ZX(), -B.XY())
}

func (v *Vector) IsZero() bool { return v.X() == 0 && v.Y() == 0 && v.Z() == 0 }

func (v *Vector) Magnitude() float64 { return math.Sqrt(v.SquaredNorm()) }

// SquaredNorm returns the scalar product of v with its reverse.
func (v *Vector) SquaredNorm() float64 { return Dot(v, v) }

// Normalize scales v to unit magnitude; the zero vector stays zero.
func (v *Vector) Normalize() *Vector {
	m := v.Magnitude()
	if m == 0 {
		return v.Zero()
	}
	return v.DivByScalar(m)
}

func (v *Vector) QuadranceTo(p VectorE3) float64 {
	dx, dy, dz := v.X()-p.X(), v.Y()-p.Y(), v.Z()-p.Z()
	return dx*dx + dy*dy + dz*dz
}

func (v *Vector) DistanceTo(p VectorE3) float64 { return math.Sqrt(v.QuadranceTo(p)) }

// Reflect sets v to v - 2(v·n)n; n is assumed to be a unit vector.
func (v *Vector) Reflect(n VectorE3) *Vector {
	ax, ay, az := v.X(), v.Y(), v.Z()
	nx, ny, nz := n.X(), n.Y(), n.Z()
	dot2 := (ax*nx + ay*ny + az*nz) * 2
	return v.SetXYZ(ax-dot2*nx, ay-dot2*ny, az-dot2*nz)
}

// Rotate sets v to R v rev(R).
func (v *Vector) Rotate(R SpinorE3) *Vector {
	x, y, z := v.X(), v.Y(), v.Z()
	a, b, c, w := R.XY(), R.YZ(), R.ZX(), R.A()

	ix := w*x - c*z + a*y
	iy := w*y - a*x + b*z
	iz := w*z - b*y + c*x
	iw := b*x + c*y + a*z

	return v.SetXYZ(
		ix*w+iw*b+iy*a-iz*c,
		iy*w+iw*c+iz*b-ix*a,
		iz*w+iw*a+ix*c-iy*b,
	)
}

// Lerp sets v to v + α(u - v).
func (v *Vector) Lerp(u VectorE3, α float64) *Vector {
	return v.SetXYZ(v.X()+(u.X()-v.X())*α, v.Y()+(u.Y()-v.Y())*α, v.Z()+(u.Z()-v.Z())*α)
}

func (v *Vector) Lerp2(a, b VectorE3, α float64) *Vector { return v.Copy(a).Lerp(b, α) }

// Stress multiplies each coordinate of v by the corresponding coordinate of σ.
func (v *Vector) Stress(σ VectorE3) *Vector {
	return v.SetXYZ(v.X()*σ.X(), v.Y()*σ.Y(), v.Z()*σ.Z())
}

// Clone returns an unlocked copy of v, modified flag included.
func (v *Vector) Clone() *Vector {
	return VectorFromCoords([3]float64{v.X(), v.Y(), v.Z()}, v.Modified())
}

// Copy sets the coordinates of v to those of u; u must not be nil.
func (v *Vector) Copy(u VectorE3) *Vector {
	gma.MustBeDefined("source", u)
	return v.SetXYZ(u.X(), u.Y(), u.Z())
}

// CopyCoordinates sets v from the first three elements of c.
func (v *Vector) CopyCoordinates(c []float64) *Vector {
	return v.SetXYZ(c[coordX], c[coordY], c[coordZ])
}

func (v *Vector) Zero() *Vector { return v.SetXYZ(0, 0, 0) }

func (v *Vector) Approx(n int) *Vector {
	v.Coords.Approx(n)
	return v
}

func (v *Vector) Equals(u VectorE3) bool {
	return v.X() == u.X() && v.Y() == u.Y() && v.Z() == u.Z()
}

func (v *Vector) ToArray() []float64 { return v.Slice() }

func (v *Vector) Vec() r3.Vec { return r3.Vec{X: v.X(), Y: v.Y(), Z: v.Z()} }

func (v *Vector) F64() f64.Vec3 { return f64.Vec3{v.X(), v.Y(), v.Z()} }

func (v *Vector) String() string { return coords.String(v.Slice(), coords.Plain, labelsE3) }

func (v *Vector) Fixed(d int) string {
	return coords.String(v.Slice(), coords.Fixed(d), labelsE3)
}

func (v *Vector) Exponential(d int) string {
	return coords.String(v.Slice(), coords.Exponential(d), labelsE3)
}

func (v *Vector) Precision(p int) string {
	return coords.String(v.Slice(), coords.Precision(p), labelsE3)
}

func (v *Vector) Negative() *Vector { return lock.Lock(CopyVector(v).Neg()) }
func (v *Vector) Positive() *Vector { return lock.Lock(CopyVector(v)) }

func (v *Vector) Plus(u VectorE3) *Vector  { return lock.Lock(v.Clone().Add(u)) }
func (v *Vector) Minus(u VectorE3) *Vector { return lock.Lock(v.Clone().Sub(u)) }
func (v *Vector) Times(α float64) *Vector  { return lock.Lock(v.Clone().Scale(α)) }
func (v *Vector) Over(α float64) *Vector   { return lock.Lock(v.Clone().DivByScalar(α)) }
