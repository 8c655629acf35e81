package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"sort"
	"strconv"
	"strings"

	"dasa.cc/gma"
	"dasa.cc/gma/config"

	"github.com/pkg/errors"
)

// session evaluates lines against an algebra, remembering assignments and
// the last result as ans.
type session[T formatter] struct {
	alg   *algebra[T]
	style config.FormatConfig
	vars  map[string]T
}

func newSession[T formatter](alg *algebra[T], f config.FormatConfig) *session[T] {
	return &session[T]{alg: alg, style: f, vars: make(map[string]T)}
}

// Exec evaluates line, which is either an expression or name = expression,
// and returns the formatted result.
func (s *session[T]) Exec(line string) (string, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil
	}
	if line == ":vars" {
		return s.listVars(), nil
	}

	name, src := "ans", line
	if lhs, rhs, ok := strings.Cut(line, "="); ok {
		lhs = strings.TrimSpace(lhs)
		if !token.IsIdentifier(lhs) {
			return "", errors.Errorf("cannot assign to %q", lhs)
		}
		if _, ok := s.alg.basis[lhs]; ok {
			return "", errors.Errorf("cannot assign to basis element %s", lhs)
		}
		name, src = lhs, rhs
	}

	expr, err := parser.ParseExpr(src)
	if err != nil {
		return "", errors.Wrap(err, "parse")
	}

	var v T
	if perr := gma.Try(func() { v, err = s.eval(expr) }); perr != nil {
		return "", perr
	}
	if err != nil {
		return "", err
	}
	s.vars[name] = v
	if name != "ans" {
		s.vars["ans"] = v
	}
	return format(v, s.style), nil
}

// Complete returns the names starting with prefix.
func (s *session[T]) Complete(prefix string) []string {
	var ns []string
	for _, n := range s.alg.names() {
		if strings.HasPrefix(n, prefix) {
			ns = append(ns, n)
		}
	}
	for n := range s.vars {
		if strings.HasPrefix(n, prefix) {
			ns = append(ns, n)
		}
	}
	sort.Strings(ns)
	return ns
}

func (s *session[T]) listVars() string {
	names := make([]string, 0, len(s.vars))
	for n := range s.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, n := range names {
		fmt.Fprintf(&b, "%s = %s\n", n, format(s.vars[n], s.style))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *session[T]) eval(e ast.Expr) (T, error) {
	var zero T
	switch e := e.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT && e.Kind != token.FLOAT {
			return zero, errors.Errorf("unsupported literal %s", e.Value)
		}
		f, err := strconv.ParseFloat(e.Value, 64)
		if err != nil {
			return zero, errors.Wrapf(err, "literal %s", e.Value)
		}
		return s.alg.scalar(f), nil

	case *ast.Ident:
		if v, ok := s.vars[e.Name]; ok {
			return v, nil
		}
		if v, ok := s.alg.basis[e.Name]; ok {
			return v, nil
		}
		if e.Name == "pi" {
			return s.alg.scalar(math.Pi), nil
		}
		return zero, errors.Errorf("undefined: %s", e.Name)

	case *ast.ParenExpr:
		return s.eval(e.X)

	case *ast.UnaryExpr:
		x, err := s.eval(e.X)
		if err != nil {
			return zero, err
		}
		switch e.Op {
		case token.ADD:
			return x, nil
		case token.SUB:
			return s.alg.unary["neg"](x), nil
		}
		return zero, errors.Errorf("unsupported unary operator %s", e.Op)

	case *ast.BinaryExpr:
		fn, ok := s.alg.binary[e.Op]
		if !ok {
			return zero, errors.Errorf("unsupported operator %s", e.Op)
		}
		x, err := s.eval(e.X)
		if err != nil {
			return zero, err
		}
		y, err := s.eval(e.Y)
		if err != nil {
			return zero, err
		}
		return fn(x, y), nil

	case *ast.CallExpr:
		return s.call(e)
	}
	return zero, errors.Errorf("unsupported expression %T", e)
}

func (s *session[T]) call(e *ast.CallExpr) (T, error) {
	var zero T
	id, ok := e.Fun.(*ast.Ident)
	if !ok {
		return zero, errors.New("call of non-function")
	}
	args := make([]T, len(e.Args))
	for i, a := range e.Args {
		v, err := s.eval(a)
		if err != nil {
			return zero, err
		}
		args[i] = v
	}

	if fn, ok := s.alg.unary[id.Name]; ok {
		if len(args) != 1 {
			return zero, errors.Errorf("%s takes 1 argument, got %d", id.Name, len(args))
		}
		return fn(args[0]), nil
	}
	if fn, ok := s.alg.pair[id.Name]; ok {
		if len(args) != 2 {
			return zero, errors.Errorf("%s takes 2 arguments, got %d", id.Name, len(args))
		}
		return fn(args[0], args[1]), nil
	}
	if id.Name == "grade" {
		if len(args) != 2 {
			return zero, errors.Errorf("grade takes 2 arguments, got %d", len(args))
		}
		n, ok := s.alg.real(args[1])
		if !ok || n != math.Trunc(n) {
			return zero, errors.New("grade must be an integer")
		}
		return s.alg.grade(args[0], int(n)), nil
	}
	return zero, errors.Errorf("undefined function: %s", id.Name)
}
