// Package gma provides primitives for geometric algebra over Euclidean space.
//
// The packages g2 and g3 implement dense multivectors of Cl(2,0) and Cl(3,0)
// with closed-form product tables, vectors and spinors, all guarded by the
// lock protocol. This package holds what they share: error kinds, and a
// sparse blade algebra for Cl(n,0), n <= 8, against which the dense product
// tables are checked.
//
// A blade is a scaled product of distinct basis vectors, identified by a
// bitmap with bit i set for e(i+1):
//
//	scalar   00000000
//	e1       00000001
//	e2       00000010
//	e1^e2    00000011
//	e3       00000100
package gma

import (
	"math"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

const (
	E1 = uint8(1)
	E2 = uint8(1 << 1)
	E3 = uint8(1 << 2)
)

var (
	I2 = Blade{1, E1 ^ E2}
	I3 = Blade{1, E1 ^ E2 ^ E3}
)

// Scalar returns a 0-grade Blade.
func Scalar(x float64) Blade { return Blade{Scalar: x} }

type Blade struct {
	Scalar float64

	// Basis is a bitmap of independent vectors, if any; vectors are in
	// canonical order so account for sign changes of Scalar when specifying.
	Basis uint8
}

// Grade returns the number of independent vectors of Blade.
func (a Blade) Grade() int { return bits.OnesCount8(a.Basis) }

// Wedge returns the outer product a^b; a zero blade if a and b share a
// basis vector, otherwise the geometric product.
func (a Blade) Wedge(b Blade) Blade {
	if a.Basis&b.Basis != 0 {
		return Blade{}
	}
	return a.Mul(b)
}

// Mul returns the geometric product ab; assumes an orthonormal basis with
// positive signature so repeated vectors annihilate to one.
func (a Blade) Mul(b Blade) Blade {
	return Blade{reorderSign(a.Basis, b.Basis) * a.Scalar * b.Scalar, a.Basis ^ b.Basis}
}

// Lc returns the left contraction of a onto b.
func (a Blade) Lc(b Blade) Blade {
	if a.Basis&b.Basis == a.Basis {
		return a.Mul(b)
	}
	return Blade{}
}

// Rc returns the right contraction of a by b.
func (a Blade) Rc(b Blade) Blade {
	if a.Basis&b.Basis == b.Basis {
		return a.Mul(b)
	}
	return Blade{}
}

// NormSq returns a * rev(a), always non-negative in a Euclidean space.
func (a Blade) NormSq() float64 { return a.Mul(a.Rev()).Scalar }

func (a Blade) Norm() float64 { return math.Abs(a.Scalar) }

// Inverse returns rev(a)/|a|^2.
func (a Blade) Inverse() Blade {
	r := a.Rev()
	r.Scalar /= a.Scalar * a.Scalar
	return r
}

// Rev returns the reversion; grades 2 and 3 (mod 4) change sign.
func (a Blade) Rev() Blade {
	if a.Grade()%4 > 1 {
		a.Scalar = -a.Scalar
	}
	return a
}

// Invol returns the grade involution; odd grades change sign.
func (a Blade) Invol() Blade {
	if a.Grade()%2 == 1 {
		a.Scalar = -a.Scalar
	}
	return a
}

// Conj returns the Clifford conjugate, rev(invol(a)); grades 1 and 2 (mod 4) change sign.
func (a Blade) Conj() Blade {
	if x := a.Grade() % 4; x == 1 || x == 2 {
		a.Scalar = -a.Scalar
	}
	return a
}

// Label returns the basis label: "1" for scalars, otherwise e followed by
// the indices of the basis vectors in canonical order, e.g. "e12".
func (a Blade) Label() string {
	if a.Basis == 0 {
		return "1"
	}
	var sb strings.Builder
	sb.WriteByte('e')
	for i := 0; i < 8; i++ {
		if a.Basis&(1<<i) != 0 {
			sb.WriteString(strconv.Itoa(i + 1))
		}
	}
	return sb.String()
}

func (a Blade) String() string {
	return strconv.FormatFloat(a.Scalar, 'g', -1, 64) + "*" + a.Label()
}

// reorderSign counts the swaps needed to bring the concatenated basis
// vectors of a and b into canonical order.
func reorderSign(a, b uint8) float64 {
	a >>= 1
	n := 0
	for a != 0 {
		n += bits.OnesCount8(a & b)
		a >>= 1
	}
	if n&1 == 0 {
		return 1
	}
	return -1
}

// Multivector is a sparse sum of blades, kept in ascending basis order with
// at most one blade per basis and no zero blades.
type Multivector []Blade

func (a Multivector) Add(b Multivector) Multivector {
	c := make(Multivector, 0, len(a)+len(b))
	return simplify(append(append(c, a...), b...))
}

func (a Multivector) Scale(x float64) Multivector {
	c := make(Multivector, 0, len(a))
	for _, v := range a {
		v.Scalar *= x
		c = append(c, v)
	}
	return simplify(c)
}

func (a Multivector) Mul(b Multivector) Multivector { return a.each(b, Blade.Mul) }

func (a Multivector) Wedge(b Multivector) Multivector { return a.each(b, Blade.Wedge) }

func (a Multivector) Lc(b Multivector) Multivector { return a.each(b, Blade.Lc) }

func (a Multivector) Rc(b Multivector) Multivector { return a.each(b, Blade.Rc) }

func (a Multivector) each(b Multivector, op func(Blade, Blade) Blade) Multivector {
	var c Multivector
	for _, b0 := range a {
		for _, b1 := range b {
			c = append(c, op(b0, b1))
		}
	}
	return simplify(c)
}

func (a Multivector) Rev() Multivector {
	b := make(Multivector, 0, len(a))
	for _, v := range a {
		b = append(b, v.Rev())
	}
	return b
}

// ScalarProduct returns the scalar part of ab.
func (a Multivector) ScalarProduct(b Multivector) float64 { return a.Mul(b).ScalarOf(0) }

// NormSq returns the scalar product of a with its reversion.
func (a Multivector) NormSq() float64 { return a.ScalarProduct(a.Rev()) }

func (a Multivector) Norm() float64 { return math.Sqrt(a.NormSq()) }

// ScalarOf returns the coefficient of basis, zero if absent.
func (a Multivector) ScalarOf(basis uint8) float64 {
	i := sort.Search(len(a), func(i int) bool { return a[i].Basis >= basis })
	if i < len(a) && a[i].Basis == basis {
		return a[i].Scalar
	}
	return 0
}

func (a Multivector) String() string {
	if len(a) == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, v := range a {
		if i > 0 && v.Scalar >= 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(v.String())
	}
	return sb.String()
}

func simplify(a Multivector) Multivector {
	m := make(map[uint8]float64)
	for _, v := range a {
		m[v.Basis] += v.Scalar
	}
	var b Multivector
	for k, v := range m {
		if v != 0 {
			b = append(b, Blade{Scalar: v, Basis: k})
		}
	}
	sort.Slice(b, func(i, j int) bool { return b[i].Basis < b[j].Basis })
	return b
}
