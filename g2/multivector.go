package g2

import (
	"fmt"
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
)

// GeometricE2 is implemented by values with all four coordinates of Cl(2,0).
type GeometricE2 interface {
	SpinorE2
	VectorE2
}

const (
	mvA = iota
	mvX
	mvY
	mvB
)

var labelsG2 = []string{"1", "e1", "e2", "I"}

// Grade masks reported by MaskG2.
const (
	MaskScalar = 0x1
	MaskVector = 0x2
	MaskPseudo = 0x4
)

// Locked canonical values.
var (
	Zero = NewZero(true)
	One  = NewOne(true)
	E1   = NewE1(true)
	E2   = NewE2(true)
	I    = NewI(true)
)

// Multivector is a general element a + xe1 + ye2 + bI of Cl(2,0), where
// I = e1e2.
type Multivector struct {
	coords.Coords
}

// FromCartesian returns the multivector a + xe1 + ye2 + bI.
func FromCartesian(a, x, y, b float64) *Multivector {
	return &Multivector{coords.Make([]float64{a, x, y, b}, false)}
}

func newLocked(locked bool, a, x, y, b float64) *Multivector {
	m := FromCartesian(a, x, y, b)
	if locked {
		m.Lock()
	}
	return m
}

func NewZero(locked bool) *Multivector { return newLocked(locked, 0, 0, 0, 0) }
func NewOne(locked bool) *Multivector  { return newLocked(locked, 1, 0, 0, 0) }
func NewE1(locked bool) *Multivector   { return newLocked(locked, 0, 1, 0, 0) }
func NewE2(locked bool) *Multivector   { return newLocked(locked, 0, 0, 1, 0) }
func NewI(locked bool) *Multivector    { return newLocked(locked, 0, 0, 0, 1) }

func Scalar(α float64) *Multivector { return FromCartesian(α, 0, 0, 0) }
func Pseudo(β float64) *Multivector { return FromCartesian(0, 0, 0, β) }
func Vec(x, y float64) *Multivector { return FromCartesian(0, x, y, 0) }
func Spin(a, b float64) *Multivector { return FromCartesian(a, 0, 0, b) }

func FromVector(v VectorE2) *Multivector {
	gma.MustBeDefined("v", v)
	return Vec(v.X(), v.Y())
}

func FromSpinor(s SpinorE2) *Multivector {
	gma.MustBeDefined("s", s)
	return Spin(s.A(), s.B())
}

// Random returns a multivector with every coordinate drawn from [-1, 1).
func Random() *Multivector {
	r := func() float64 { return coords.RandomRange(-1, 1) }
	return FromCartesian(r(), r(), r(), r())
}

// RotorFromDirections returns the rotor taking the direction of a to the
// direction of b.
func RotorFromDirections(a, b VectorE2) *Multivector {
	return NewZero(false).RotorFromDirections(a, b)
}

// FromBlades returns the dense form of a sparse multivector. Blades outside
// the plane panic with an *gma.InvalidArgumentError.
func FromBlades(bs gma.Multivector) *Multivector {
	m := NewZero(false)
	for _, b := range bs {
		switch b.Basis {
		case 0:
			m.SetA(b.Scalar)
		case gma.E1:
			m.SetX(b.Scalar)
		case gma.E2:
			m.SetY(b.Scalar)
		case gma.E1 ^ gma.E2:
			m.SetB(b.Scalar)
		default:
			panic(gma.InvalidArgument("blades", fmt.Sprintf("%s is not in Cl(2,0)", b.Label())))
		}
	}
	return m
}

func (m *Multivector) A() float64 { return m.Component(mvA) }
func (m *Multivector) X() float64 { return m.Component(mvX) }
func (m *Multivector) Y() float64 { return m.Component(mvY) }
func (m *Multivector) B() float64 { return m.Component(mvB) }

func (m *Multivector) SetA(a float64) { m.Set(mvA, "set a", a) }
func (m *Multivector) SetX(x float64) { m.Set(mvX, "set x", x) }
func (m *Multivector) SetY(y float64) { m.Set(mvY, "set y", y) }
func (m *Multivector) SetB(b float64) { m.Set(mvB, "set b", b) }

func (m *Multivector) set(a, x, y, b float64) *Multivector {
	m.SetA(a)
	m.SetX(x)
	m.SetY(y)
	m.SetB(b)
	return m
}

// MaskG2 reports the grades with nonzero coordinates.
func (m *Multivector) MaskG2() int {
	var mask int
	if m.A() != 0 {
		mask |= MaskScalar
	}
	if m.X() != 0 || m.Y() != 0 {
		mask |= MaskVector
	}
	if m.B() != 0 {
		mask |= MaskPseudo
	}
	return mask
}

// Blades returns the sparse form of m.
func (m *Multivector) Blades() gma.Multivector {
	var bs gma.Multivector
	for i, basis := range []uint8{0, gma.E1, gma.E2, gma.E1 ^ gma.E2} {
		if x := m.Component(i); x != 0 {
			bs = append(bs, gma.Blade{Scalar: x, Basis: basis})
		}
	}
	return bs
}

func (m *Multivector) Add(M GeometricE2) *Multivector { return m.AddScaled(M, 1) }

// AddScaled sets m to m + αM.
func (m *Multivector) AddScaled(M GeometricE2, α float64) *Multivector {
	return m.set(m.A()+M.A()*α, m.X()+M.X()*α, m.Y()+M.Y()*α, m.B()+M.B()*α)
}

// Add2 sets m to a + b.
func (m *Multivector) Add2(a, b GeometricE2) *Multivector {
	return m.set(a.A()+b.A(), a.X()+b.X(), a.Y()+b.Y(), a.B()+b.B())
}

func (m *Multivector) AddScalar(α float64) *Multivector {
	m.SetA(m.A() + α)
	return m
}

func (m *Multivector) AddVector(v VectorE2) *Multivector {
	m.SetX(m.X() + v.X())
	m.SetY(m.Y() + v.Y())
	return m
}

func (m *Multivector) AddPseudo(β float64) *Multivector {
	m.SetB(m.B() + β)
	return m
}

func (m *Multivector) Sub(M GeometricE2) *Multivector { return m.AddScaled(M, -1) }

// Sub2 sets m to a - b.
func (m *Multivector) Sub2(a, b GeometricE2) *Multivector {
	return m.set(a.A()-b.A(), a.X()-b.X(), a.Y()-b.Y(), a.B()-b.B())
}

func (m *Multivector) Scale(α float64) *Multivector {
	return m.set(m.A()*α, m.X()*α, m.Y()*α, m.B()*α)
}

// DivByScalar divides each coordinate by α; division by zero follows IEEE 754.
func (m *Multivector) DivByScalar(α float64) *Multivector {
	return m.set(m.A()/α, m.X()/α, m.Y()/α, m.B()/α)
}

func (m *Multivector) Neg() *Multivector { return m.Scale(-1) }

// Mul sets m to the geometric product m * r.
func (m *Multivector) Mul(r GeometricE2) *Multivector { return m.Mul2(m, r) }

// Mul2 sets m to the geometric product a * b.
func (m *Multivector) Mul2(a, b GeometricE2) *Multivector {
	a0, a1, a2, a3 := a.A(), a.X(), a.Y(), a.B()
	b0, b1, b2, b3 := b.A(), b.X(), b.Y(), b.B()
	return m.set(
		a0*b0+a1*b1+a2*b2-a3*b3,
		a0*b1+a1*b0-a2*b3+a3*b2,
		a0*b2+a2*b0+a1*b3-a3*b1,
		a0*b3+a3*b0+a1*b2-a2*b1,
	)
}

// Ext sets m to the outer product m ^ r.
func (m *Multivector) Ext(r GeometricE2) *Multivector { return m.Ext2(m, r) }

func (m *Multivector) Ext2(a, b GeometricE2) *Multivector {
	a0, a1, a2, a3 := a.A(), a.X(), a.Y(), a.B()
	b0, b1, b2, b3 := b.A(), b.X(), b.Y(), b.B()
	return m.set(
		a0*b0,
		a0*b1+a1*b0,
		a0*b2+a2*b0,
		a0*b3+a3*b0+a1*b2-a2*b1,
	)
}

// Lco sets m to the left contraction m << r.
func (m *Multivector) Lco(r GeometricE2) *Multivector { return m.Lco2(m, r) }

func (m *Multivector) Lco2(a, b GeometricE2) *Multivector {
	a0, a1, a2, a3 := a.A(), a.X(), a.Y(), a.B()
	b0, b1, b2, b3 := b.A(), b.X(), b.Y(), b.B()
	return m.set(
		a0*b0+a1*b1+a2*b2-a3*b3,
		a0*b1-a2*b3,
		a0*b2+a1*b3,
		a0*b3,
	)
}

// Rco sets m to the right contraction m >> r.
func (m *Multivector) Rco(r GeometricE2) *Multivector { return m.Rco2(m, r) }

func (m *Multivector) Rco2(a, b GeometricE2) *Multivector {
	a0, a1, a2, a3 := a.A(), a.X(), a.Y(), a.B()
	b0, b1, b2, b3 := b.A(), b.X(), b.Y(), b.B()
	return m.set(
		a0*b0+a1*b1+a2*b2-a3*b3,
		a1*b0+a3*b2,
		a2*b0-a3*b1,
		a3*b0,
	)
}

// Scp sets m to the scalar product of m and r.
func (m *Multivector) Scp(r GeometricE2) *Multivector { return m.Scp2(m, r) }

func (m *Multivector) Scp2(a, b GeometricE2) *Multivector {
	return m.set(scp(a, b), 0, 0, 0)
}

func scp(a, b GeometricE2) float64 {
	return a.A()*b.A() + a.X()*b.X() + a.Y()*b.Y() - a.B()*b.B()
}

// Div sets m to m * inv(r) and panics with gma.ErrNotInvertible if r has
// no inverse.
func (m *Multivector) Div(r GeometricE2) *Multivector { return m.Div2(m, r) }

func (m *Multivector) Div2(a, b GeometricE2) *Multivector {
	inv := FromCartesian(b.A(), b.X(), b.Y(), b.B()).Inv()
	return m.Mul2(a, inv)
}

// Dual sets m to m << inv(I).
func (m *Multivector) Dual() *Multivector {
	return m.set(m.B(), m.Y(), -m.X(), -m.A())
}

// Inv sets m to its inverse, conj(m)/(m conj(m)). Panics with
// gma.ErrNotInvertible when m conj(m) vanishes.
func (m *Multivector) Inv() *Multivector {
	a, x, y, b := m.A(), m.X(), m.Y(), m.B()
	det := a*a - x*x - y*y + b*b
	if det == 0 {
		panic(gma.ErrNotInvertible)
	}
	return m.set(a/det, -x/det, -y/det, -b/det)
}

// Rev sets m to its reverse.
func (m *Multivector) Rev() *Multivector {
	m.SetB(-m.B())
	return m
}

// Conj sets m to its Clifford conjugate.
func (m *Multivector) Conj() *Multivector {
	return m.set(m.A(), -m.X(), -m.Y(), -m.B())
}

// Grade keeps the coordinates of grade n and zeroes the rest.
func (m *Multivector) Grade(n int) *Multivector {
	switch n {
	case 0:
		return m.set(m.A(), 0, 0, 0)
	case 1:
		return m.set(0, m.X(), m.Y(), 0)
	case 2:
		return m.set(0, 0, 0, m.B())
	}
	return m.set(0, 0, 0, 0)
}

// SquaredNorm returns the scalar part of m * rev(m).
func (m *Multivector) SquaredNorm() float64 {
	a, x, y, b := m.A(), m.X(), m.Y(), m.B()
	return a*a + x*x + y*y + b*b
}

func (m *Multivector) Magnitude() float64 { return math.Sqrt(m.SquaredNorm()) }

// Norm sets m to the scalar |m|.
func (m *Multivector) Norm() *Multivector { return m.set(m.Magnitude(), 0, 0, 0) }

// Quad sets m to the scalar |m|^2.
func (m *Multivector) Quad() *Multivector { return m.set(m.SquaredNorm(), 0, 0, 0) }

func (m *Multivector) Normalize() *Multivector { return m.DivByScalar(m.Magnitude()) }

// QuadranceTo returns |m - p|^2.
func (m *Multivector) QuadranceTo(p GeometricE2) float64 {
	a, x, y, b := m.A()-p.A(), m.X()-p.X(), m.Y()-p.Y(), m.B()-p.B()
	return a*a + x*x + y*y + b*b
}

func (m *Multivector) DistanceTo(p GeometricE2) float64 { return math.Sqrt(m.QuadranceTo(p)) }

// Equals reports exact coordinate equality.
func (m *Multivector) Equals(r GeometricE2) bool {
	return m.A() == r.A() && m.X() == r.X() && m.Y() == r.Y() && m.B() == r.B()
}

func (m *Multivector) IsZero() bool { return m.A() == 0 && m.X() == 0 && m.Y() == 0 && m.B() == 0 }
func (m *Multivector) IsOne() bool  { return m.A() == 1 && m.X() == 0 && m.Y() == 0 && m.B() == 0 }

// Reflect sets m to -n m n; n is not required to be a unit vector.
func (m *Multivector) Reflect(n VectorE2) *Multivector {
	nx, ny := n.X(), n.Y()
	nn := nx*nx + ny*ny
	x, y := m.X(), m.Y()
	dot := nx*x + ny*y
	return m.set(
		-nn*m.A(),
		nn*x-2*dot*nx,
		nn*y-2*dot*ny,
		nn*m.B(),
	)
}

// Rotate sets m to R m rev(R).
func (m *Multivector) Rotate(R SpinorE2) *Multivector {
	α, β := R.A(), R.B()
	p := α*α - β*β
	q := 2 * α * β
	s := α*α + β*β
	x, y := m.X(), m.Y()
	return m.set(s*m.A(), p*x+q*y, p*y-q*x, s*m.B())
}

// RotorFromDirections sets m to the rotor taking the direction of a to the
// direction of b. Antiparallel directions give the half turn -I.
func (m *Multivector) RotorFromDirections(a, b VectorE2) *Multivector {
	α, β := rotorFromDirections(a, b)
	return m.set(α, 0, 0, β)
}

// RotorFromGeneratorAngle sets m to exp(-B θ/2); the magnitude of the
// pseudoscalar part of B scales the angle.
func (m *Multivector) RotorFromGeneratorAngle(B SpinorE2, θ float64) *Multivector {
	β := B.B()
	if β == 0 {
		return m.set(1, 0, 0, 0)
	}
	φ := math.Abs(β) * θ / 2
	sin, cos := math.Sincos(φ)
	return m.set(cos, 0, 0, -math.Copysign(sin, β))
}

// Lerp sets m to m + α(t - m).
func (m *Multivector) Lerp(t GeometricE2, α float64) *Multivector {
	return m.set(
		m.A()+(t.A()-m.A())*α,
		m.X()+(t.X()-m.X())*α,
		m.Y()+(t.Y()-m.Y())*α,
		m.B()+(t.B()-m.B())*α,
	)
}

// Lerp2 sets m to a + α(b - a).
func (m *Multivector) Lerp2(a, b GeometricE2, α float64) *Multivector {
	return m.Copy(a).Lerp(b, α)
}

// Stress multiplies the vector coordinates by those of σ.
func (m *Multivector) Stress(σ VectorE2) *Multivector {
	m.SetX(m.X() * σ.X())
	m.SetY(m.Y() * σ.Y())
	return m
}

// Clone returns an unlocked copy of m.
func (m *Multivector) Clone() *Multivector { return FromCartesian(m.A(), m.X(), m.Y(), m.B()) }

func (m *Multivector) Copy(M GeometricE2) *Multivector {
	gma.MustBeDefined("M", M)
	return m.set(M.A(), M.X(), M.Y(), M.B())
}

// CopyScalar sets m to the scalar α.
func (m *Multivector) CopyScalar(α float64) *Multivector { return m.set(α, 0, 0, 0) }

// CopyVector sets m to the vector v, zeroing the other grades.
func (m *Multivector) CopyVector(v VectorE2) *Multivector {
	gma.MustBeDefined("v", v)
	return m.set(0, v.X(), v.Y(), 0)
}

// CopySpinor sets m to the spinor s, zeroing the vector part.
func (m *Multivector) CopySpinor(s SpinorE2) *Multivector {
	gma.MustBeDefined("s", s)
	return m.set(s.A(), 0, 0, s.B())
}

func (m *Multivector) Zero() *Multivector { return m.set(0, 0, 0, 0) }
func (m *Multivector) One() *Multivector  { return m.set(1, 0, 0, 0) }

func (m *Multivector) Approx(n int) *Multivector {
	m.Coords.Approx(n)
	return m
}

func (m *Multivector) String() string { return coords.String(m.Slice(), coords.Plain, labelsG2) }

func (m *Multivector) Fixed(d int) string {
	return coords.String(m.Slice(), coords.Fixed(d), labelsG2)
}

func (m *Multivector) Exponential(d int) string {
	return coords.String(m.Slice(), coords.Exponential(d), labelsG2)
}

func (m *Multivector) Precision(p int) string {
	return coords.String(m.Slice(), coords.Precision(p), labelsG2)
}
