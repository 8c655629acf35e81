package main

import (
	"go/token"

	"dasa.cc/gma/config"
	"dasa.cc/gma/g2"
	"dasa.cc/gma/g3"
	"dasa.cc/gma/lock"
)

type formatter interface {
	String() string
	Fixed(int) string
	Exponential(int) string
	Precision(int) string
}

func format(v formatter, f config.FormatConfig) string {
	switch f.Style {
	case "fixed":
		return v.Fixed(f.Digits)
	case "exponential":
		return v.Exponential(f.Digits)
	case "precision":
		return v.Precision(f.Digits)
	}
	return v.String()
}

// algebra binds the expression language to one multivector type. Every
// function returns a fresh value and leaves its arguments untouched.
type algebra[T formatter] struct {
	name   string
	scalar func(float64) T
	real   func(T) (float64, bool)
	basis  map[string]T
	binary map[token.Token]func(a, b T) T
	unary  map[string]func(T) T
	pair   map[string]func(a, b T) T
	grade  func(T, int) T
}

func (a *algebra[T]) names() []string {
	var ns []string
	for n := range a.basis {
		ns = append(ns, n)
	}
	for n := range a.unary {
		ns = append(ns, n+"(")
	}
	for n := range a.pair {
		ns = append(ns, n+"(")
	}
	return append(ns, "grade(")
}

type m2 = *g2.Multivector

func algebraG2() *algebra[m2] {
	return &algebra[m2]{
		name:   "g2",
		scalar: g2.Scalar,
		real: func(m m2) (float64, bool) {
			return m.A(), m.MaskG2()&^0x1 == 0
		},
		basis: map[string]m2{"e1": g2.E1, "e2": g2.E2, "e12": g2.I, "I": g2.I},
		binary: map[token.Token]func(a, b m2) m2{
			token.ADD: func(a, b m2) m2 { return a.Clone().Add(b) },
			token.SUB: func(a, b m2) m2 { return a.Clone().Sub(b) },
			token.MUL: func(a, b m2) m2 { return a.Clone().Mul(b) },
			token.QUO: func(a, b m2) m2 { return a.Clone().Div(b) },
			token.XOR: func(a, b m2) m2 { return a.Clone().Ext(b) },
			token.SHL: func(a, b m2) m2 { return a.Clone().Lco(b) },
			token.SHR: func(a, b m2) m2 { return a.Clone().Rco(b) },
			token.OR:  func(a, b m2) m2 { return a.Clone().Scp(b) },
		},
		unary: map[string]func(m2) m2{
			"neg":  func(m m2) m2 { return m.Clone().Neg() },
			"rev":  func(m m2) m2 { return m.Clone().Rev() },
			"conj": func(m m2) m2 { return m.Clone().Conj() },
			"dual": func(m m2) m2 { return m.Clone().Dual() },
			"inv":  func(m m2) m2 { return m.Clone().Inv() },
			"norm": func(m m2) m2 { return m.Clone().Norm() },
			"quad": func(m m2) m2 { return m.Clone().Quad() },
			"unit": func(m m2) m2 { return m.Clone().Normalize() },
		},
		pair: map[string]func(a, b m2) m2{
			"rotor":   func(a, b m2) m2 { return g2.RotorFromDirections(a, b) },
			"rotate":  func(m, R m2) m2 { return m.Clone().Rotate(R) },
			"reflect": func(m, n m2) m2 { return m.Clone().Reflect(n) },
		},
		grade: func(m m2, n int) m2 { return m.Clone().Grade(n) },
	}
}

type m3 = *g3.Multivector

func algebraG3() *algebra[m3] {
	return &algebra[m3]{
		name:   "g3",
		scalar: g3.Scalar,
		real: func(m m3) (float64, bool) {
			return m.A(), m.MaskG3()&^g3.MaskScalar == 0
		},
		basis: map[string]m3{
			"e1": g3.E1, "e2": g3.E2, "e3": g3.E3,
			"e23": lock.Lock(g3.Bivec(1, 0, 0)),
			"e31": lock.Lock(g3.Bivec(0, 1, 0)),
			"e12": lock.Lock(g3.Bivec(0, 0, 1)),
			"I": g3.I,
		},
		binary: map[token.Token]func(a, b m3) m3{
			token.ADD: func(a, b m3) m3 { return a.Clone().Add(b) },
			token.SUB: func(a, b m3) m3 { return a.Clone().Sub(b) },
			token.MUL: func(a, b m3) m3 { return a.Clone().Mul(b) },
			token.QUO: func(a, b m3) m3 { return a.Clone().Div(b) },
			token.XOR: func(a, b m3) m3 { return a.Clone().Ext(b) },
			token.SHL: func(a, b m3) m3 { return a.Clone().Lco(b) },
			token.SHR: func(a, b m3) m3 { return a.Clone().Rco(b) },
			token.OR:  func(a, b m3) m3 { return a.Clone().Scp(b) },
		},
		unary: map[string]func(m3) m3{
			"neg":  func(m m3) m3 { return m.Clone().Neg() },
			"rev":  func(m m3) m3 { return m.Clone().Rev() },
			"conj": func(m m3) m3 { return m.Clone().Conj() },
			"dual": func(m m3) m3 { return m.Clone().Dual() },
			"inv":  func(m m3) m3 { return m.Clone().Inv() },
			"norm": func(m m3) m3 { return m.Clone().Norm() },
			"quad": func(m m3) m3 { return m.Clone().Quad() },
			"unit": func(m m3) m3 { return m.Clone().Normalize() },
		},
		pair: map[string]func(a, b m3) m3{
			"rotor":   func(a, b m3) m3 { return g3.RotorFromDirections(a, b) },
			"rotate":  func(m, R m3) m3 { return m.Clone().Rotate(R) },
			"reflect": func(m, n m3) m3 { return m.Clone().Reflect(n) },
			"cross":   func(a, b m3) m3 { return g3.FromVector(g3.CopyVector(a).Cross(b)) },
		},
		grade: func(m m3, n int) m3 { return m.Clone().Grade(n) },
	}
}
