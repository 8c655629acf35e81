package g2

import (
	"math"

	"dasa.cc/gma"
	"dasa.cc/gma/coords"
	"dasa.cc/gma/lock"
)

// SpinorE2 is implemented by values with scalar and pseudoscalar parts.
type SpinorE2 interface {
	A() float64
	B() float64
}

const (
	spinorA = iota
	spinorB
)

var labelsSpinor = []string{"1", "I"}

// Spinor is an element a + bI of the even subalgebra of Cl(2,0), isomorphic
// to the complex numbers. Unit spinors are rotors.
type Spinor struct {
	coords.Coords
}

func NewSpinor(a, b float64) *Spinor {
	return &Spinor{coords.Make([]float64{a, b}, false)}
}

// OneSpinor returns the identity rotor.
func OneSpinor() *Spinor { return NewSpinor(1, 0) }

// CopySpinor returns a new spinor with the coordinates of s.
func CopySpinor(s SpinorE2) *Spinor {
	gma.MustBeDefined("s", s)
	return NewSpinor(s.A(), s.B())
}

func (s *Spinor) A() float64     { return s.Component(spinorA) }
func (s *Spinor) B() float64     { return s.Component(spinorB) }
func (s *Spinor) SetA(a float64) { s.Set(spinorA, "set a", a) }
func (s *Spinor) SetB(b float64) { s.Set(spinorB, "set b", b) }

func (s *Spinor) Add(t SpinorE2) *Spinor { return s.AddScaled(t, 1) }

func (s *Spinor) AddScaled(t SpinorE2, α float64) *Spinor {
	s.SetA(s.A() + t.A()*α)
	s.SetB(s.B() + t.B()*α)
	return s
}

func (s *Spinor) Sub(t SpinorE2) *Spinor { return s.AddScaled(t, -1) }

func (s *Spinor) Scale(α float64) *Spinor {
	s.SetA(s.A() * α)
	s.SetB(s.B() * α)
	return s
}

// Mul sets s to the product st.
func (s *Spinor) Mul(t SpinorE2) *Spinor {
	a0, b0 := s.A(), s.B()
	a1, b1 := t.A(), t.B()
	s.SetA(a0*a1 - b0*b1)
	s.SetB(a0*b1 + b0*a1)
	return s
}

// Rev sets s to its reverse, a - bI.
func (s *Spinor) Rev() *Spinor {
	s.SetB(-s.B())
	return s
}

func (s *Spinor) Neg() *Spinor { return s.Scale(-1) }

// Inv sets s to its inverse and panics with gma.ErrNotInvertible if s is zero.
func (s *Spinor) Inv() *Spinor {
	q := s.SquaredNorm()
	if q == 0 {
		panic(gma.ErrNotInvertible)
	}
	return s.Rev().Scale(1 / q)
}

func (s *Spinor) SquaredNorm() float64 { return s.A()*s.A() + s.B()*s.B() }

func (s *Spinor) Magnitude() float64 { return math.Sqrt(s.SquaredNorm()) }

func (s *Spinor) Normalize() *Spinor { return s.Scale(1 / s.Magnitude()) }

// RotorFromDirections sets s to the rotor taking the direction of a to the
// direction of b.
func (s *Spinor) RotorFromDirections(a, b VectorE2) *Spinor {
	α, β := rotorFromDirections(a, b)
	s.SetA(α)
	s.SetB(β)
	return s
}

// RotorFromAngle sets s to the rotor turning by θ from e1 towards e2.
func (s *Spinor) RotorFromAngle(θ float64) *Spinor {
	sin, cos := math.Sincos(θ / 2)
	s.SetA(cos)
	s.SetB(-sin)
	return s
}

// rotorFromDirections returns the scalar and pseudoscalar parts of
// (|a||b| + ba) normalized; for a·b < 0 the scalar part is computed as
// (b∧a)²/(|a||b| - a·b). Antiparallel directions give the half turn -I and
// a zero direction gives 1.
func rotorFromDirections(a, b VectorE2) (float64, float64) {
	ab := math.Sqrt((a.X()*a.X() + a.Y()*a.Y()) * (b.X()*b.X() + b.Y()*b.Y()))
	if ab == 0 {
		return 1, 0
	}
	dot := a.X()*b.X() + a.Y()*b.Y()
	wedge := b.X()*a.Y() - b.Y()*a.X()
	s := ab + dot
	if dot < 0 {
		s = wedge * wedge / (ab - dot)
	}
	n := math.Hypot(s, wedge)
	if n == 0 {
		return 0, -1
	}
	return s / n, wedge / n
}

func (s *Spinor) Clone() *Spinor { return NewSpinor(s.A(), s.B()) }

func (s *Spinor) Copy(t SpinorE2) *Spinor {
	gma.MustBeDefined("s", t)
	s.SetA(t.A())
	s.SetB(t.B())
	return s
}

func (s *Spinor) Equals(t SpinorE2) bool { return s.A() == t.A() && s.B() == t.B() }

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

// Negative returns a new locked -s.
func (s *Spinor) Negative() *Spinor { return lock.Lock(s.Clone().Neg()) }

// Times returns a new locked st.
func (s *Spinor) Times(t SpinorE2) *Spinor { return lock.Lock(s.Clone().Mul(t)) }
