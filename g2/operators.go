package g2

import "dasa.cc/gma/lock"

// Operand is the right-hand side of the Multivector operator methods. It is
// implemented by *Multivector, *Vector, *Spinor and Real.
type Operand interface {
	multivector() *Multivector
}

// Real is a scalar Operand.
type Real float64

func (r Real) multivector() *Multivector         { return Scalar(float64(r)) }
func (v *Vector) multivector() *Multivector      { return FromVector(v) }
func (s *Spinor) multivector() *Multivector      { return FromSpinor(s) }
func (m *Multivector) multivector() *Multivector { return m.Clone() }

// Plus returns a new locked m + r.
func (m *Multivector) Plus(r Operand) *Multivector {
	return lock.Lock(m.Clone().Add(r.multivector()))
}

// Minus returns a new locked m - r.
func (m *Multivector) Minus(r Operand) *Multivector {
	return lock.Lock(m.Clone().Sub(r.multivector()))
}

// Times returns a new locked geometric product m * r.
func (m *Multivector) Times(r Operand) *Multivector {
	return lock.Lock(m.Clone().Mul(r.multivector()))
}

// Over returns a new locked m * inv(r).
func (m *Multivector) Over(r Operand) *Multivector {
	return lock.Lock(m.Clone().Div(r.multivector()))
}

// Negative returns a new locked -m.
func (m *Multivector) Negative() *Multivector { return lock.Lock(m.Clone().Neg()) }

// Positive returns a new locked copy of m.
func (m *Multivector) Positive() *Multivector { return lock.Lock(m.Clone()) }
