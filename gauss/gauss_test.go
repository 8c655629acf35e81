package gauss

import (
	"fmt"
	"testing"

	"dasa.cc/gma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve(t *testing.T) {
	// 4x = 8
	x, err := Solve([][]float64{{4}}, []float64{8})
	require.NoError(t, err)
	assert.Equal(t, []float64{2}, x)

	// x + y = 10, 2x + y = 16
	x, err = Solve([][]float64{{1, 1}, {2, 1}}, []float64{10, 16})
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 4}, x)

	// x + y + z = 6, 2x + y + 2z = 10, x + 2y + 3z = 14
	x, err = Solve([][]float64{{1, 1, 1}, {2, 1, 2}, {1, 2, 3}}, []float64{6, 10, 14})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, x, 1e-12)
}

func TestSolveDoesNotModifyInputs(t *testing.T) {
	A := [][]float64{{1, 1}, {2, 1}}
	b := []float64{10, 16}
	_, err := Solve(A, b)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {2, 1}}, A)
	assert.Equal(t, []float64{10, 16}, b)
}

func TestSolveErrors(t *testing.T) {
	_, err := Solve([][]float64{{1, 2}, {2, 4}}, []float64{1, 2})
	assert.ErrorIs(t, err, gma.ErrNotInvertible)

	// nonzero determinant, condition number 1e20
	_, err = Solve([][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1e-20}}, []float64{1, 1, 1})
	assert.ErrorIs(t, err, gma.ErrNotInvertible)

	_, err = Solve([][]float64{{1, 2}}, []float64{1, 2})
	assert.ErrorIs(t, err, gma.ErrInvalidArgument)

	_, err = Solve([][]float64{{1}, {2}}, []float64{1, 2})
	assert.ErrorIs(t, err, gma.ErrInvalidArgument)
}

func ExampleSolve() {
	x, err := Solve([][]float64{{1, 1}, {2, 1}}, []float64{10, 16})
	if err != nil {
		panic(err)
	}
	fmt.Println(x)
	// Output: [6 4]
}
