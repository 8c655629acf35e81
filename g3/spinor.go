package g3

import (
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
	"dasa.cc/gma/lock"

	"gonum.org/v1/gonum/num/quat"
)

// BivectorE3 is implemented by values with bivector coordinates.
type BivectorE3 interface {
	YZ() float64
	ZX() float64
	XY() float64
}

// SpinorE3 is implemented by values with scalar and bivector coordinates.
type SpinorE3 interface {
	BivectorE3
	A() float64
}

const (
	spinorA = iota
	spinorYZ
	spinorZX
	spinorXY
)

var labelsSpinor = []string{"1", "e23", "e31", "e12"}

// Spinor is an element a + yz e23 + zx e31 + xy e12 of the even subalgebra of
// Cl(3,0), isomorphic to the quaternions. Unit spinors are rotors.
type Spinor struct {
	coords.Coords
}

func NewSpinor(yz, zx, xy, a float64) *Spinor {
	return &Spinor{coords.Make([]float64{a, yz, zx, xy}, false)}
}

// OneSpinor returns the identity rotor.
func OneSpinor() *Spinor { return NewSpinor(0, 0, 0, 1) }

func CopySpinor(s SpinorE3) *Spinor {
	gma.MustBeDefined("s", s)
	return NewSpinor(s.YZ(), s.ZX(), s.XY(), s.A())
}

// WedgeSpinor returns the bivector a ^ b as a spinor.
func WedgeSpinor(a, b VectorE3) *Spinor {
	ax, ay, az := a.X(), a.Y(), a.Z()
	bx, by, bz := b.X(), b.Y(), b.Z()
	return NewSpinor(wedgeYZ(ay, az, by, bz), wedgeZX(ax, az, bx, bz), wedgeXY(ax, ay, bx, by), 0)
}

// SpinorFromQuat maps w + xi + yj + zk to w - x e23 - y e31 - z e12.
func SpinorFromQuat(q quat.Number) *Spinor {
	return NewSpinor(-q.Imag, -q.Jmag, -q.Kmag, q.Real)
}

func (s *Spinor) A() float64  { return s.Component(spinorA) }
func (s *Spinor) YZ() float64 { return s.Component(spinorYZ) }
func (s *Spinor) ZX() float64 { return s.Component(spinorZX) }
func (s *Spinor) XY() float64 { return s.Component(spinorXY) }

func (s *Spinor) SetA(a float64)   { s.Set(spinorA, "set a", a) }
func (s *Spinor) SetYZ(yz float64) { s.Set(spinorYZ, "set yz", yz) }
func (s *Spinor) SetZX(zx float64) { s.Set(spinorZX, "set zx", zx) }
func (s *Spinor) SetXY(xy float64) { s.Set(spinorXY, "set xy", xy) }

func (s *Spinor) set(a, yz, zx, xy float64) *Spinor {
	s.SetA(a)
	s.SetYZ(yz)
	s.SetZX(zx)
	s.SetXY(xy)
	return s
}

func (s *Spinor) Add(t SpinorE3) *Spinor { return s.AddScaled(t, 1) }

func (s *Spinor) AddScaled(t SpinorE3, α float64) *Spinor {
	return s.set(s.A()+t.A()*α, s.YZ()+t.YZ()*α, s.ZX()+t.ZX()*α, s.XY()+t.XY()*α)
}

func (s *Spinor) Sub(t SpinorE3) *Spinor { return s.AddScaled(t, -1) }

func (s *Spinor) Scale(α float64) *Spinor {
	return s.set(s.A()*α, s.YZ()*α, s.ZX()*α, s.XY()*α)
}

// Mul sets s to the product st.
func (s *Spinor) Mul(t SpinorE3) *Spinor {
	a0, yz0, zx0, xy0 := s.A(), s.YZ(), s.ZX(), s.XY()
	a1, yz1, zx1, xy1 := t.A(), t.YZ(), t.ZX(), t.XY()
	return s.set(
		a0*a1-yz0*yz1-zx0*zx1-xy0*xy1,
		a0*yz1+yz0*a1-zx0*xy1+xy0*zx1,
		a0*zx1+zx0*a1-xy0*yz1+yz0*xy1,
		a0*xy1+xy0*a1-yz0*zx1+zx0*yz1,
	)
}

// Rev sets s to its reverse, negating the bivector part.
func (s *Spinor) Rev() *Spinor { return s.set(s.A(), -s.YZ(), -s.ZX(), -s.XY()) }

func (s *Spinor) Neg() *Spinor { return s.Scale(-1) }

// Inv sets s to rev(s)/|s|^2 and panics with gma.ErrNotInvertible if s is zero.
func (s *Spinor) Inv() *Spinor {
	q := s.SquaredNorm()
	if q == 0 {
		panic(gma.ErrNotInvertible)
	}
	return s.Rev().Scale(1 / q)
}

func (s *Spinor) SquaredNorm() float64 {
	a, yz, zx, xy := s.A(), s.YZ(), s.ZX(), s.XY()
	return a*a + yz*yz + zx*zx + xy*xy
}

func (s *Spinor) Magnitude() float64 { return math.Sqrt(s.SquaredNorm()) }

func (s *Spinor) Normalize() *Spinor { return s.Scale(1 / s.Magnitude()) }

// RotorFromDirections sets s to the rotor taking the direction of a to the
// direction of b.
func (s *Spinor) RotorFromDirections(a, b VectorE3) *Spinor {
	return s.Copy(rotorFromDirections(a, b))
}

// RotorFromAxisAngle sets s to the rotor turning by θ about axis, right handed.
func (s *Spinor) RotorFromAxisAngle(axis VectorE3, θ float64) *Spinor {
	return s.RotorFromGeneratorAngle(bivectorOf(axis), θ)
}

// RotorFromGeneratorAngle sets s to exp(-B θ/2). The magnitude of B scales
// the angle; a zero generator gives the identity.
func (s *Spinor) RotorFromGeneratorAngle(B BivectorE3, θ float64) *Spinor {
	return s.Copy(rotorFromGeneratorAngle(B, θ))
}

// Quat returns s as the quaternion a - yz i - zx j - xy k.
func (s *Spinor) Quat() quat.Number {
	return quat.Number{Real: s.A(), Imag: -s.YZ(), Jmag: -s.ZX(), Kmag: -s.XY()}
}

func (s *Spinor) Clone() *Spinor { return CopySpinor(s) }

func (s *Spinor) Copy(t SpinorE3) *Spinor {
	gma.MustBeDefined("s", t)
	return s.set(t.A(), t.YZ(), t.ZX(), t.XY())
}

func (s *Spinor) Equals(t SpinorE3) bool {
	return s.A() == t.A() && s.YZ() == t.YZ() && s.ZX() == t.ZX() && s.XY() == t.XY()
}

func (s *Spinor) Approx(n int) *Spinor {
	s.Coords.Approx(n)
	return s
}

func (s *Spinor) String() string { return coords.String(s.Slice(), coords.Plain, labelsSpinor) }

func (s *Spinor) Fixed(d int) string {
	return coords.String(s.Slice(), coords.Fixed(d), labelsSpinor)
}

func (s *Spinor) Exponential(d int) string {
	return coords.String(s.Slice(), coords.Exponential(d), labelsSpinor)
}

func (s *Spinor) Precision(p int) string {
	return coords.String(s.Slice(), coords.Precision(p), labelsSpinor)
}

func (s *Spinor) Negative() *Spinor        { return lock.Lock(s.Clone().Neg()) }
func (s *Spinor) Times(t SpinorE3) *Spinor { return lock.Lock(s.Clone().Mul(t)) }

// bivector is a plain BivectorE3 value.
type bivector struct{ yz, zx, xy float64 }

func (b bivector) YZ() float64 { return b.yz }
func (b bivector) ZX() float64 { return b.zx }
func (b bivector) XY() float64 { return b.xy }

// bivectorOf returns the unit bivector dual to v, I v/|v|, or zero.
func bivectorOf(v VectorE3) bivector {
	n := math.Sqrt(Dot(v, v))
	if n == 0 {
		return bivector{}
	}
	return bivector{v.X() / n, v.Y() / n, v.Z() / n}
}

// rotor is a plain SpinorE3 value.
type rotor struct {
	bivector
	a float64
}

func (r rotor) A() float64 { return r.a }

func rotorFromGeneratorAngle(B BivectorE3, θ float64) rotor {
	yz, zx, xy := B.YZ(), B.ZX(), B.XY()
	n := math.Sqrt(yz*yz + zx*zx + xy*xy)
	if n == 0 {
		return rotor{a: 1}
	}
	sin, cos := math.Sincos(n * θ / 2)
	k := -sin / n
	return rotor{bivector{yz * k, zx * k, xy * k}, cos}
}

// rotorFromDirections returns (|a||b| + ba) normalized. The scalar part is
// taken as |b∧a|²/(|a||b| - a·b) when a·b < 0, which keeps its digits for
// nearly opposite directions. Antiparallel directions turn by π in the
// plane of a and the basis vector least aligned with it.
func rotorFromDirections(a, b VectorE3) rotor {
	ab := math.Sqrt(Dot(a, a) * Dot(b, b))
	if ab == 0 {
		return rotor{a: 1}
	}
	ax, ay, az := a.X(), a.Y(), a.Z()
	bx, by, bz := b.X(), b.Y(), b.Z()
	B := bivector{wedgeYZ(by, bz, ay, az), wedgeZX(bx, bz, ax, az), wedgeXY(bx, by, ax, ay)}
	w := B.yz*B.yz + B.zx*B.zx + B.xy*B.xy

	dot := Dot(a, b)
	s := ab + dot
	if dot < 0 {
		s = w / (ab - dot)
	}
	n := math.Sqrt(s*s + w)
	if n == 0 {
		A := WedgeSpinor(a, leastAligned(a))
		k := -1 / A.Magnitude()
		return rotor{bivector{A.YZ() * k, A.ZX() * k, A.XY() * k}, 0}
	}
	return rotor{bivector{B.yz / n, B.zx / n, B.xy / n}, s / n}
}

// leastAligned returns the basis vector with the smallest |component| of v,
// preferring e1 then e2 on ties.
func leastAligned(v VectorE3) *Vector {
	x, y, z := math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())
	switch {
	case x <= y && x <= z:
		return NewVector(1, 0, 0)
	case y <= z:
		return NewVector(0, 1, 0)
	}
	return NewVector(0, 0, 1)
}
