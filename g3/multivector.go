package g3

import (
	"fmt"
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
	"dasa.cc/gma/gauss"
)

// GeometricE3 is implemented by values with all eight coordinates of Cl(3,0).
type GeometricE3 interface {
	SpinorE3
	VectorE3
	B() float64
}

const (
	mvA = iota
	mvX
	mvY
	mvZ
	mvYZ
	mvZX
	mvXY
	mvB
	mvLen
)

var labelsG3 = []string{"1", "e1", "e2", "e3", "e23", "e31", "e12", "I"}

// Grade masks reported by MaskG3.
const (
	MaskScalar   = 0x1
	MaskVector   = 0x2
	MaskBivector = 0x4
	MaskPseudo   = 0x8
)

// Locked canonical values.
var (
	Zero = NewZero(true)
	One  = NewOne(true)
	E1   = NewE1(true)
	E2   = NewE2(true)
	E3   = NewE3(true)
	I    = NewI(true)
)

// Multivector is a general element of Cl(3,0), where I = e1e2e3.
type Multivector struct {
	coords.Coords
}

// FromCartesian returns a + xe1 + ye2 + ze3 + yz e23 + zx e31 + xy e12 + bI.
func FromCartesian(a, x, y, z, yz, zx, xy, b float64) *Multivector {
	return &Multivector{coords.Make([]float64{a, x, y, z, yz, zx, xy, b}, false)}
}

func newLocked(locked bool, c []float64) *Multivector {
	m := &Multivector{coords.Make(c, false)}
	if locked {
		m.Lock()
	}
	return m
}

func basis(locked bool, i int) *Multivector {
	c := make([]float64, mvLen)
	c[i] = 1
	return newLocked(locked, c)
}

func NewZero(locked bool) *Multivector { return newLocked(locked, make([]float64, mvLen)) }
func NewOne(locked bool) *Multivector  { return basis(locked, mvA) }
func NewE1(locked bool) *Multivector   { return basis(locked, mvX) }
func NewE2(locked bool) *Multivector   { return basis(locked, mvY) }
func NewE3(locked bool) *Multivector   { return basis(locked, mvZ) }
func NewI(locked bool) *Multivector    { return basis(locked, mvB) }

func Scalar(α float64) *Multivector        { return FromCartesian(α, 0, 0, 0, 0, 0, 0, 0) }
func Pseudo(β float64) *Multivector        { return FromCartesian(0, 0, 0, 0, 0, 0, 0, β) }
func Vec(x, y, z float64) *Multivector     { return FromCartesian(0, x, y, z, 0, 0, 0, 0) }
func Bivec(yz, zx, xy float64) *Multivector { return FromCartesian(0, 0, 0, 0, yz, zx, xy, 0) }
func Spin(yz, zx, xy, a float64) *Multivector {
	return FromCartesian(a, 0, 0, 0, yz, zx, xy, 0)
}

func FromVector(v VectorE3) *Multivector {
	gma.MustBeDefined("v", v)
	return Vec(v.X(), v.Y(), v.Z())
}

func FromBivector(B BivectorE3) *Multivector {
	gma.MustBeDefined("B", B)
	return Bivec(B.YZ(), B.ZX(), B.XY())
}

func FromSpinor(s SpinorE3) *Multivector {
	gma.MustBeDefined("s", s)
	return Spin(s.YZ(), s.ZX(), s.XY(), s.A())
}

// Wedge returns the bivector a ^ b.
func Wedge(a, b VectorE3) *Multivector { return FromVector(a).Ext(FromVector(b)) }

// Random returns a multivector with every coordinate drawn from [-1, 1).
func Random() *Multivector {
	c := make([]float64, mvLen)
	for i := range c {
		c[i] = coords.RandomRange(-1, 1)
	}
	return newLocked(false, c)
}

// RotorFromDirections returns the rotor taking the direction of a to the
// direction of b.
func RotorFromDirections(a, b VectorE3) *Multivector {
	return NewZero(false).RotorFromDirections(a, b)
}

// bladeOrder maps coordinate indices to bitmap blades; zx is stored as
// e31 = -e13.
var bladeOrder = [mvLen]struct {
	basis uint8
	sign  float64
}{
	{0, 1},
	{gma.E1, 1},
	{gma.E2, 1},
	{gma.E3, 1},
	{gma.E2 ^ gma.E3, 1},
	{gma.E1 ^ gma.E3, -1},
	{gma.E1 ^ gma.E2, 1},
	{gma.E1 ^ gma.E2 ^ gma.E3, 1},
}

// FromBlades returns the dense form of a sparse multivector. Blades outside
// Cl(3,0) panic with an *gma.InvalidArgumentError.
func FromBlades(bs gma.Multivector) *Multivector {
	m := NewZero(false)
next:
	for _, b := range bs {
		for i, o := range bladeOrder {
			if o.basis == b.Basis {
				m.Set(i, "from blades", m.Component(i)+o.sign*b.Scalar)
				continue next
			}
		}
		panic(gma.InvalidArgument("blades", fmt.Sprintf("%s is not in Cl(3,0)", b.Label())))
	}
	return m
}

// Blades returns the sparse form of m.
func (m *Multivector) Blades() gma.Multivector {
	var bs gma.Multivector
	for i, o := range bladeOrder {
		if x := m.Component(i); x != 0 {
			bs = append(bs, gma.Blade{Scalar: o.sign * x, Basis: o.basis})
		}
	}
	return bs
}

func (m *Multivector) A() float64  { return m.Component(mvA) }
func (m *Multivector) X() float64  { return m.Component(mvX) }
func (m *Multivector) Y() float64  { return m.Component(mvY) }
func (m *Multivector) Z() float64  { return m.Component(mvZ) }
func (m *Multivector) YZ() float64 { return m.Component(mvYZ) }
func (m *Multivector) ZX() float64 { return m.Component(mvZX) }
func (m *Multivector) XY() float64 { return m.Component(mvXY) }
func (m *Multivector) B() float64  { return m.Component(mvB) }

func (m *Multivector) SetA(a float64)   { m.Set(mvA, "set a", a) }
func (m *Multivector) SetX(x float64)   { m.Set(mvX, "set x", x) }
func (m *Multivector) SetY(y float64)   { m.Set(mvY, "set y", y) }
func (m *Multivector) SetZ(z float64)   { m.Set(mvZ, "set z", z) }
func (m *Multivector) SetYZ(yz float64) { m.Set(mvYZ, "set yz", yz) }
func (m *Multivector) SetZX(zx float64) { m.Set(mvZX, "set zx", zx) }
func (m *Multivector) SetXY(xy float64) { m.Set(mvXY, "set xy", xy) }
func (m *Multivector) SetB(b float64)   { m.Set(mvB, "set b", b) }

func (m *Multivector) set(a, x, y, z, yz, zx, xy, b float64) *Multivector {
	m.SetA(a)
	m.SetX(x)
	m.SetY(y)
	m.SetZ(z)
	m.SetYZ(yz)
	m.SetZX(zx)
	m.SetXY(xy)
	m.SetB(b)
	return m
}

// MaskG3 reports the grades with nonzero coordinates.
func (m *Multivector) MaskG3() int {
	var mask int
	if m.A() != 0 {
		mask |= MaskScalar
	}
	if m.X() != 0 || m.Y() != 0 || m.Z() != 0 {
		mask |= MaskVector
	}
	if m.YZ() != 0 || m.ZX() != 0 || m.XY() != 0 {
		mask |= MaskBivector
	}
	if m.B() != 0 {
		mask |= MaskPseudo
	}
	return mask
}

func (m *Multivector) Add(M GeometricE3) *Multivector { return m.AddScaled(M, 1) }

// AddScaled sets m to m + αM.
func (m *Multivector) AddScaled(M GeometricE3, α float64) *Multivector {
	return m.set(
		m.A()+M.A()*α,
		m.X()+M.X()*α, m.Y()+M.Y()*α, m.Z()+M.Z()*α,
		m.YZ()+M.YZ()*α, m.ZX()+M.ZX()*α, m.XY()+M.XY()*α,
		m.B()+M.B()*α,
	)
}

// Add2 sets m to a + b.
func (m *Multivector) Add2(a, b GeometricE3) *Multivector {
	return m.set(
		a.A()+b.A(),
		a.X()+b.X(), a.Y()+b.Y(), a.Z()+b.Z(),
		a.YZ()+b.YZ(), a.ZX()+b.ZX(), a.XY()+b.XY(),
		a.B()+b.B(),
	)
}

func (m *Multivector) AddScalar(α float64) *Multivector {
	m.SetA(m.A() + α)
	return m
}

func (m *Multivector) AddVector(v VectorE3) *Multivector {
	m.SetX(m.X() + v.X())
	m.SetY(m.Y() + v.Y())
	m.SetZ(m.Z() + v.Z())
	return m
}

func (m *Multivector) AddBivector(B BivectorE3) *Multivector {
	m.SetYZ(m.YZ() + B.YZ())
	m.SetZX(m.ZX() + B.ZX())
	m.SetXY(m.XY() + B.XY())
	return m
}

func (m *Multivector) AddPseudo(β float64) *Multivector {
	m.SetB(m.B() + β)
	return m
}

func (m *Multivector) Sub(M GeometricE3) *Multivector { return m.AddScaled(M, -1) }

// Sub2 sets m to a - b.
func (m *Multivector) Sub2(a, b GeometricE3) *Multivector {
	return m.set(
		a.A()-b.A(),
		a.X()-b.X(), a.Y()-b.Y(), a.Z()-b.Z(),
		a.YZ()-b.YZ(), a.ZX()-b.ZX(), a.XY()-b.XY(),
		a.B()-b.B(),
	)
}

func (m *Multivector) Scale(α float64) *Multivector {
	return m.set(
		m.A()*α,
		m.X()*α, m.Y()*α, m.Z()*α,
		m.YZ()*α, m.ZX()*α, m.XY()*α,
		m.B()*α,
	)
}

// DivByScalar divides each coordinate by α; division by zero follows IEEE 754.
func (m *Multivector) DivByScalar(α float64) *Multivector {
	return m.set(
		m.A()/α,
		m.X()/α, m.Y()/α, m.Z()/α,
		m.YZ()/α, m.ZX()/α, m.XY()/α,
		m.B()/α,
	)
}

func (m *Multivector) Neg() *Multivector { return m.Scale(-1) }

func unpack(m GeometricE3) (a, x, y, z, yz, zx, xy, b float64) {
	return m.A(), m.X(), m.Y(), m.Z(), m.YZ(), m.ZX(), m.XY(), m.B()
}

// Mul sets m to the geometric product m * r.
func (m *Multivector) Mul(r GeometricE3) *Multivector { return m.Mul2(m, r) }

// Mul2 sets m to the geometric product a * b.
func (m *Multivector) Mul2(a, b GeometricE3) *Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := unpack(a)
	b0, b1, b2, b3, b4, b5, b6, b7 := unpack(b)
	return m.set(
		a0*b0+a1*b1+a2*b2+a3*b3-a4*b4-a5*b5-a6*b6-a7*b7,
		a0*b1+a1*b0-a2*b6+a3*b5+a6*b2-a5*b3-a4*b7-a7*b4,
		a0*b2+a2*b0+a1*b6-a3*b4-a6*b1+a4*b3-a5*b7-a7*b5,
		a0*b3+a3*b0-a1*b5+a2*b4+a5*b1-a4*b2-a6*b7-a7*b6,
		a0*b4+a4*b0+a2*b3-a3*b2+a1*b7+a7*b1-a5*b6+a6*b5,
		a0*b5+a5*b0+a3*b1-a1*b3+a2*b7+a7*b2-a6*b4+a4*b6,
		a0*b6+a6*b0+a1*b2-a2*b1+a3*b7+a7*b3-a4*b5+a5*b4,
		a0*b7+a7*b0+a1*b4+a2*b5+a3*b6+a4*b1+a5*b2+a6*b3,
	)
}

// Ext sets m to the outer product m ^ r.
func (m *Multivector) Ext(r GeometricE3) *Multivector { return m.Ext2(m, r) }

func (m *Multivector) Ext2(a, b GeometricE3) *Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := unpack(a)
	b0, b1, b2, b3, b4, b5, b6, b7 := unpack(b)
	return m.set(
		a0*b0,
		a0*b1+a1*b0,
		a0*b2+a2*b0,
		a0*b3+a3*b0,
		a0*b4+a4*b0+a2*b3-a3*b2,
		a0*b5+a5*b0+a3*b1-a1*b3,
		a0*b6+a6*b0+a1*b2-a2*b1,
		a0*b7+a7*b0+a1*b4+a2*b5+a3*b6+a4*b1+a5*b2+a6*b3,
	)
}

// Lco sets m to the left contraction m << r.
func (m *Multivector) Lco(r GeometricE3) *Multivector { return m.Lco2(m, r) }

func (m *Multivector) Lco2(a, b GeometricE3) *Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := unpack(a)
	b0, b1, b2, b3, b4, b5, b6, b7 := unpack(b)
	return m.set(
		a0*b0+a1*b1+a2*b2+a3*b3-a4*b4-a5*b5-a6*b6-a7*b7,
		a0*b1-a2*b6+a3*b5-a4*b7,
		a0*b2+a1*b6-a3*b4-a5*b7,
		a0*b3-a1*b5+a2*b4-a6*b7,
		a0*b4+a1*b7,
		a0*b5+a2*b7,
		a0*b6+a3*b7,
		a0*b7,
	)
}

// Rco sets m to the right contraction m >> r.
func (m *Multivector) Rco(r GeometricE3) *Multivector { return m.Rco2(m, r) }

func (m *Multivector) Rco2(a, b GeometricE3) *Multivector {
	a0, a1, a2, a3, a4, a5, a6, a7 := unpack(a)
	b0, b1, b2, b3, b4, b5, b6, b7 := unpack(b)
	return m.set(
		a0*b0+a1*b1+a2*b2+a3*b3-a4*b4-a5*b5-a6*b6-a7*b7,
		a1*b0+a6*b2-a5*b3-a7*b4,
		a2*b0-a6*b1+a4*b3-a7*b5,
		a3*b0+a5*b1-a4*b2-a7*b6,
		a4*b0+a7*b1,
		a5*b0+a7*b2,
		a6*b0+a7*b3,
		a7*b0,
	)
}

// Scp sets m to the scalar product of m and r.
func (m *Multivector) Scp(r GeometricE3) *Multivector { return m.Scp2(m, r) }

func (m *Multivector) Scp2(a, b GeometricE3) *Multivector {
	return m.set(scp(a, b), 0, 0, 0, 0, 0, 0, 0)
}

func scp(a, b GeometricE3) float64 {
	return a.A()*b.A() + a.X()*b.X() + a.Y()*b.Y() + a.Z()*b.Z() -
		a.YZ()*b.YZ() - a.ZX()*b.ZX() - a.XY()*b.XY() - a.B()*b.B()
}

// Div sets m to m * inv(r) and panics with gma.ErrNotInvertible if r has
// no inverse.
func (m *Multivector) Div(r GeometricE3) *Multivector { return m.Div2(m, r) }

func (m *Multivector) Div2(a, b GeometricE3) *Multivector {
	inv := NewZero(false).Copy(b).Inv()
	return m.Mul2(a, inv)
}

// Dual sets m to m << inv(I).
func (m *Multivector) Dual() *Multivector {
	a, x, y, z, yz, zx, xy, b := unpack(m)
	return m.set(b, yz, zx, xy, -x, -y, -z, -a)
}

// Inv sets m to its inverse. Homogeneous values and spinors use closed
// forms; anything else solves the linear system m X = 1. Panics with
// gma.ErrNotInvertible when m conj(m) vanishes or the system is too
// ill-conditioned to solve.
func (m *Multivector) Inv() *Multivector {
	a, x, y, z, yz, zx, xy, b := unpack(m)
	switch m.MaskG3() {
	case 0:
		panic(gma.ErrNotInvertible)
	case MaskScalar:
		return m.CopyScalar(1 / a)
	case MaskVector:
		q := x*x + y*y + z*z
		return m.set(0, x/q, y/q, z/q, 0, 0, 0, 0)
	case MaskBivector:
		q := yz*yz + zx*zx + xy*xy
		return m.set(0, 0, 0, 0, -yz/q, -zx/q, -xy/q, 0)
	case MaskPseudo:
		return m.set(0, 0, 0, 0, 0, 0, 0, -1/b)
	case MaskScalar | MaskBivector:
		q := a*a + yz*yz + zx*zx + xy*xy
		return m.set(a/q, 0, 0, 0, -yz/q, -zx/q, -xy/q, 0)
	}

	// m conj(m) is central, s + pI, and m is invertible iff it is nonzero.
	c := NewZero(false).Mul2(m, m.Clone().Conj())
	if c.A() == 0 && c.B() == 0 {
		panic(gma.ErrNotInvertible)
	}

	L := make([][]float64, mvLen)
	for i := range L {
		L[i] = make([]float64, mvLen)
	}
	col := NewZero(false)
	for j := 0; j < mvLen; j++ {
		col.Mul2(m, basis(false, j))
		for i := range L {
			L[i][j] = col.Component(i)
		}
	}
	e := make([]float64, mvLen)
	e[mvA] = 1
	X, err := gauss.Solve(L, e)
	if err != nil {
		panic(err)
	}
	return m.set(X[0], X[1], X[2], X[3], X[4], X[5], X[6], X[7])
}

// Rev sets m to its reverse, negating grades 2 and 3.
func (m *Multivector) Rev() *Multivector {
	a, x, y, z, yz, zx, xy, b := unpack(m)
	return m.set(a, x, y, z, -yz, -zx, -xy, -b)
}

// Conj sets m to its Clifford conjugate, negating grades 1 and 2.
func (m *Multivector) Conj() *Multivector {
	a, x, y, z, yz, zx, xy, b := unpack(m)
	return m.set(a, -x, -y, -z, -yz, -zx, -xy, b)
}

// Grade keeps the coordinates of grade n and zeroes the rest.
func (m *Multivector) Grade(n int) *Multivector {
	a, x, y, z, yz, zx, xy, b := unpack(m)
	switch n {
	case 0:
		return m.set(a, 0, 0, 0, 0, 0, 0, 0)
	case 1:
		return m.set(0, x, y, z, 0, 0, 0, 0)
	case 2:
		return m.set(0, 0, 0, 0, yz, zx, xy, 0)
	case 3:
		return m.set(0, 0, 0, 0, 0, 0, 0, b)
	}
	return m.Zero()
}

// SquaredNorm returns the scalar part of m * rev(m).
func (m *Multivector) SquaredNorm() float64 {
	var q float64
	for i := 0; i < mvLen; i++ {
		x := m.Component(i)
		q += x * x
	}
	return q
}

func (m *Multivector) Magnitude() float64 { return math.Sqrt(m.SquaredNorm()) }

// Norm sets m to the scalar |m|.
func (m *Multivector) Norm() *Multivector { return m.CopyScalar(m.Magnitude()) }

// Quad sets m to the scalar |m|^2.
func (m *Multivector) Quad() *Multivector { return m.CopyScalar(m.SquaredNorm()) }

func (m *Multivector) Normalize() *Multivector { return m.DivByScalar(m.Magnitude()) }

// QuadranceTo returns |m - p|^2.
func (m *Multivector) QuadranceTo(p GeometricE3) float64 {
	return m.Clone().Sub(p).SquaredNorm()
}

func (m *Multivector) DistanceTo(p GeometricE3) float64 { return math.Sqrt(m.QuadranceTo(p)) }

// Equals reports exact coordinate equality.
func (m *Multivector) Equals(r GeometricE3) bool {
	a, x, y, z, yz, zx, xy, b := unpack(r)
	return m.A() == a && m.X() == x && m.Y() == y && m.Z() == z &&
		m.YZ() == yz && m.ZX() == zx && m.XY() == xy && m.B() == b
}

func (m *Multivector) IsZero() bool { return m.MaskG3() == 0 }
func (m *Multivector) IsOne() bool  { return m.MaskG3() == MaskScalar && m.A() == 1 }

// Cross sets m to the vector part of m crossed with v.
func (m *Multivector) Cross(v VectorE3) *Multivector {
	ax, ay, az := m.X(), m.Y(), m.Z()
	bx, by, bz := v.X(), v.Y(), v.Z()
	return m.set(0, wedgeYZ(ay, az, by, bz), wedgeZX(ax, az, bx, bz), wedgeXY(ax, ay, bx, by), 0, 0, 0, 0)
}

// Reflect sets m to -n m n; n is not required to be a unit vector.
func (m *Multivector) Reflect(n VectorE3) *Multivector {
	nx, ny, nz := n.X(), n.Y(), n.Z()
	nn := nx*nx + ny*ny + nz*nz
	a, x, y, z, yz, zx, xy, b := unpack(m)
	v := 2 * (nx*x + ny*y + nz*z)
	w := 2 * (nx*yz + ny*zx + nz*xy)
	return m.set(
		-nn*a,
		nn*x-v*nx, nn*y-v*ny, nn*z-v*nz,
		nn*yz-w*nx, nn*zx-w*ny, nn*xy-w*nz,
		-nn*b,
	)
}

// Rotate sets m to R m rev(R).
func (m *Multivector) Rotate(R SpinorE3) *Multivector {
	Rm := FromSpinor(R).Mul(m)
	return m.Mul2(Rm, FromSpinor(R).Rev())
}

// RotorFromDirections sets m to the rotor taking the direction of a to the
// direction of b. Antiparallel directions turn by π in the plane of a and
// the basis vector least aligned with it.
func (m *Multivector) RotorFromDirections(a, b VectorE3) *Multivector {
	return m.CopySpinor(rotorFromDirections(a, b))
}

// RotorFromAxisAngle sets m to the rotor turning by θ about axis.
func (m *Multivector) RotorFromAxisAngle(axis VectorE3, θ float64) *Multivector {
	return m.CopySpinor(rotorFromGeneratorAngle(bivectorOf(axis), θ))
}

// RotorFromGeneratorAngle sets m to exp(-B θ/2); the magnitude of B scales
// the angle.
func (m *Multivector) RotorFromGeneratorAngle(B BivectorE3, θ float64) *Multivector {
	return m.CopySpinor(rotorFromGeneratorAngle(B, θ))
}

// Lerp sets m to m + α(t - m).
func (m *Multivector) Lerp(t GeometricE3, α float64) *Multivector {
	d := NewZero(false).Sub2(t, m)
	return m.AddScaled(d, α)
}

// Lerp2 sets m to a + α(b - a).
func (m *Multivector) Lerp2(a, b GeometricE3, α float64) *Multivector {
	return m.Copy(a).Lerp(b, α)
}

// Stress multiplies the vector coordinates by those of σ.
func (m *Multivector) Stress(σ VectorE3) *Multivector {
	m.SetX(m.X() * σ.X())
	m.SetY(m.Y() * σ.Y())
	m.SetZ(m.Z() * σ.Z())
	return m
}

// Clone returns an unlocked copy of m.
func (m *Multivector) Clone() *Multivector { return FromCartesian(unpack(m)) }

func (m *Multivector) Copy(M GeometricE3) *Multivector {
	gma.MustBeDefined("M", M)
	return m.set(unpack(M))
}

// CopyScalar sets m to the scalar α.
func (m *Multivector) CopyScalar(α float64) *Multivector { return m.set(α, 0, 0, 0, 0, 0, 0, 0) }

// CopyVector sets m to the vector v, zeroing the other grades.
func (m *Multivector) CopyVector(v VectorE3) *Multivector {
	gma.MustBeDefined("v", v)
	return m.set(0, v.X(), v.Y(), v.Z(), 0, 0, 0, 0)
}

// CopyBivector sets m to the bivector B, zeroing the other grades.
func (m *Multivector) CopyBivector(B BivectorE3) *Multivector {
	gma.MustBeDefined("B", B)
	return m.set(0, 0, 0, 0, B.YZ(), B.ZX(), B.XY(), 0)
}

// CopySpinor sets m to the spinor s, zeroing the other grades.
func (m *Multivector) CopySpinor(s SpinorE3) *Multivector {
	gma.MustBeDefined("s", s)
	return m.set(s.A(), 0, 0, 0, s.YZ(), s.ZX(), s.XY(), 0)
}

func (m *Multivector) Zero() *Multivector { return m.CopyScalar(0) }
func (m *Multivector) One() *Multivector  { return m.CopyScalar(1) }

func (m *Multivector) Approx(n int) *Multivector {
	m.Coords.Approx(n)
	return m
}

func (m *Multivector) String() string { return coords.String(m.Slice(), coords.Plain, labelsG3) }

func (m *Multivector) Fixed(d int) string {
	return coords.String(m.Slice(), coords.Fixed(d), labelsG3)
}

func (m *Multivector) Exponential(d int) string {
	return coords.String(m.Slice(), coords.Exponential(d), labelsG3)
}

func (m *Multivector) Precision(p int) string {
	return coords.String(m.Slice(), coords.Precision(p), labelsG3)
}
