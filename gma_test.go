package gma

import (
	"testing"

	"dasa.cc/gma/lock"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	e1 = Blade{1, E1}
	e2 = Blade{1, E2}
	e3 = Blade{1, E3}
)

func TestBlade(t *testing.T) {
	A := e1.Wedge(e2)
	B := e2.Wedge(e1)
	C := e3.Wedge(e1)

	assert.Equal(t, 2, A.Grade())
	assert.Equal(t, uint8(0x3), A.Basis)
	assert.Equal(t, Blade{-1, 0x3}, B)
	assert.Equal(t, Blade{-1, 0x5}, C)
	assert.Equal(t, 1, e3.Grade())

	// (e1^e2)^(e3^e1) shares e1
	assert.Equal(t, Blade{}, A.Wedge(C))
	// (e2^e1)^e3 = -e123
	assert.Equal(t, Blade{-1, 0x7}, B.Wedge(e3))

	// the geometric product of a basis vector with itself evaluates
	// to a scalar derived from the metric:
	//  e3e3 = e3 dot e3 + e3^e3 = Q[e3, e3]
	assert.Equal(t, Scalar(1), e3.Mul(e3))
	assert.Equal(t, "e12", A.Label())
	assert.Equal(t, "1", Scalar(2).Label())
	assert.Equal(t, "-1*e13", C.String())
}

func TestMultiply(t *testing.T) {
	e12 := e1.Mul(e2)
	assert.Equal(t, Blade{1, 0x3}, e12)
	assert.Equal(t, Scalar(-1), e12.Mul(e12))
	assert.Equal(t, Blade{-1, E2}, e12.Mul(e1)) // multiple of e2
	assert.Equal(t, Scalar(-1), I3.Mul(I3))

	a := Multivector{{1, E1}, {1, E2}}
	b := Multivector{{1, E2}}
	assert.Equal(t, 2.0, a.NormSq())
	assert.Equal(t, 1.0, b.NormSq())

	ab := a.Mul(b)
	assert.Equal(t, Multivector{{1, 0}, {1, E1 ^ E2}}, ab)
	assert.Equal(t, Multivector{{2, 0}}, a.Mul(a))

	// ab/b = a
	binv := Multivector{b[0].Inverse()}
	assert.Equal(t, a, ab.Mul(binv))

	c := Blade{3, E1}
	assert.Equal(t, Scalar(1), c.Inverse().Mul(c))

	d := Blade{5, E1 ^ E2}
	assert.Equal(t, Blade{-5, E1 ^ E2}, d.Rev())
	assert.Equal(t, Scalar(25), d.Mul(d.Rev()))
	assert.Equal(t, 25.0, d.NormSq())
	assert.Equal(t, Scalar(1), d.Inverse().Mul(d))

	d = Blade{7, E1 ^ E2 ^ E3}
	assert.InDelta(t, 1, d.Inverse().Mul(d).Scalar, 1e-15)
	assert.Equal(t, uint8(0), d.Inverse().Mul(d).Basis)
}

func TestInvolutions(t *testing.T) {
	for _, v := range []Blade{Scalar(1), e1, e1.Mul(e2), I3} {
		assert.Equal(t, v.Invol().Rev(), v.Conj(), v.String())
		assert.Equal(t, v, v.Rev().Rev())
	}
}

func TestDual(t *testing.T) {
	// dual(A) = A ] inv(I)
	a := Blade{2, E1}
	aD := a.Lc(I2.Rev())
	aDD := aD.Lc(I2.Rev())
	assert.Equal(t, Blade{-2, E2}, aD)
	assert.Equal(t, Blade{-2, E1}, aDD)

	b := Multivector{{2, E1}, {4, E2}, {8, E3}}
	bD := b.Lc(Multivector{I3.Rev()})
	assert.Equal(t, Multivector{{-8, E1 ^ E2}, {4, E1 ^ E3}, {-2, E2 ^ E3}}, bD)

	// (A^B)* = A](B*)
	A, B := e3, e1
	assert.Equal(t, A.Wedge(B).Lc(I3.Rev()), A.Lc(B.Lc(I3.Rev())))

	// (A]B)* = A^(B*)
	A = e1.Wedge(e2)
	B = e1.Wedge(e3).Wedge(e2)
	assert.Equal(t, A.Lc(B).Lc(I3.Rev()), A.Wedge(B.Lc(I3.Rev())))
}

func TestContraction(t *testing.T) {
	a := Scalar(2)
	A, B, C := e1, e2, I3

	// a]B = aB
	assert.Equal(t, a.Mul(B), a.Lc(B))

	// B]a = 0
	assert.Equal(t, Blade{}, B.Lc(a))

	// a[B = 0, B[a = Ba
	assert.Equal(t, Blade{}, a.Rc(B))
	assert.Equal(t, B.Mul(a), B.Rc(a))

	// u]v = u dot v
	u := Multivector{{2, E1}, {3, E2}}
	assert.Equal(t, Multivector{{13, 0}}, u.Lc(u))

	// (A^B)]C = A](B]C)
	assert.Equal(t, A.Wedge(B).Lc(C), A.Lc(B.Lc(C)))
}

func TestVectors(t *testing.T) {
	// (a1*b1 + a2*b2) + (a1*b2 - a2*b1)e12
	// (2*2 + 3*3) + (2*3 - 3*2)e12
	a := Multivector{{2, E1}, {3, E2}}
	assert.Equal(t, Multivector{{13, 0}}, a.Mul(a))
	assert.Equal(t, 13.0, a.ScalarProduct(a))
	assert.Equal(t, "2*e1+3*e2", a.String())
	assert.Equal(t, "0", Multivector{}.String())
	assert.Equal(t, Multivector{{4, E1}, {6, E2}}, a.Scale(2))
	assert.Equal(t, Multivector(nil), a.Add(a.Scale(-1)))
}

func TestTry(t *testing.T) {
	err := Try(func() { panic(NotImplemented("reflect")) })
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotImplemented))
	assert.Equal(t, "reflect: not implemented", err.Error())

	err = Try(func() { panic(&lock.LockedError{Op: "set x"}) })
	assert.ErrorIs(t, err, lock.ErrLocked)

	err = Try(func() { panic(InvalidArgument("source", "must be defined")) })
	var ia *InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Equal(t, "source", ia.Name)

	var nilBlade *Blade
	err = Try(func() { MustBeDefined("v", nilBlade) })
	assert.EqualError(t, err, "invalid argument: v must be defined")
	assert.ErrorIs(t, Try(func() { MustBeDefined("v", nil) }), ErrInvalidArgument)
	assert.NoError(t, Try(func() { MustBeDefined("v", &Blade{}) }))

	assert.NoError(t, Try(func() {}))
	assert.PanicsWithValue(t, "boom", func() { _ = Try(func() { panic("boom") }) })
}
