// Package gauss solves small dense linear systems.
package gauss

import (
	"fmt"

	"dasa.cc/gma"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Solve returns x such that Ax = b. A is given as rows and must be square
// with len(b) rows. A singular A, or one whose condition number exceeds
// mat.ConditionTolerance, is reported as gma.ErrNotInvertible.
func Solve(A [][]float64, b []float64) ([]float64, error) {
	n := len(b)
	if len(A) != n {
		return nil, errors.WithStack(gma.InvalidArgument("A", fmt.Sprintf("must have %d rows, got %d", n, len(A))))
	}
	if n == 0 {
		return nil, nil
	}
	data := make([]float64, 0, n*n)
	for i, row := range A {
		if len(row) != n {
			return nil, errors.WithStack(gma.InvalidArgument("A", fmt.Sprintf("row %d must have %d columns, got %d", i, n, len(row))))
		}
		data = append(data, row...)
	}

	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, data))
	if lu.Det() == 0 {
		return nil, errors.Wrap(gma.ErrNotInvertible, "gauss: singular matrix")
	}
	var x mat.VecDense
	if err := lu.SolveVecTo(&x, false, mat.NewVecDense(n, append([]float64(nil), b...))); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, errors.Wrapf(gma.ErrNotInvertible, "gauss: condition number %g", float64(cond))
		}
		return nil, errors.Wrap(err, "gauss")
	}
	return x.RawVector().Data, nil
}
