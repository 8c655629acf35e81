package coords

import (
	"math"
	"testing"

	"dasa.cc/gma"
	"dasa.cc/gma/lock"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	data := []float64{rand01(), rand01()}
	c, err := New(data, false, 2)
	require.NoError(t, err)
	assert.Equal(t, data[0], c.Component(0))
	assert.Equal(t, data[1], c.Component(1))
	assert.False(t, c.Modified())

	data[0] = 7
	assert.NotEqual(t, 7.0, c.Component(0), "data must be copied")

	_, err = New([]float64{1, 2, 3}, false, 2)
	assert.True(t, errors.Is(err, gma.ErrInvalidArgument))
}

func TestComponentRange(t *testing.T) {
	c := Make([]float64{1, 2}, false)
	err := gma.Try(func() { c.Component(2) })
	assert.ErrorIs(t, err, gma.ErrInvalidArgument)
	err = gma.Try(func() { c.Component(-1) })
	assert.ErrorIs(t, err, gma.ErrInvalidArgument)
}

func TestModified(t *testing.T) {
	c := Make([]float64{1, 2}, false)
	c.Set(0, "set x", 1)
	assert.False(t, c.Modified(), "writing the same value is not a modification")
	c.Set(0, "set x", 3)
	assert.True(t, c.Modified())
	c.Set(0, "set x", 1)
	assert.True(t, c.Modified(), "modified is sticky")
	c.SetModified(false)
	assert.False(t, c.Modified())
}

func TestLocked(t *testing.T) {
	c := Make([]float64{1, 2}, false)
	token := c.Lock()

	var le *lock.LockedError
	err := gma.Try(func() { c.Set(1, "set y", 5) })
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "set y", le.Op)
	assert.Equal(t, 2.0, c.Component(1))

	err = gma.Try(func() { c.SetModified(true) })
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "set modified", le.Op)

	assert.ErrorIs(t, gma.Try(func() { c.Approx(3) }), lock.ErrLocked)

	require.NoError(t, c.Unlock(token))
	c.SetComponent(1, 5)
	assert.Equal(t, 5.0, c.Component(1))
}

func TestApprox(t *testing.T) {
	c := Make([]float64{math.Cos(math.Pi / 2), 0, -1, 0.1234567}, false)
	c.Approx(4)
	assert.Equal(t, []float64{0, 0, -1, 0.1235}, c.Slice())

	c = Make([]float64{1e-13, 2.5}, false)
	c.Approx(12)
	assert.Equal(t, []float64{0, 2.5}, c.Slice())
	assert.True(t, c.Modified())
}

func TestEqual(t *testing.T) {
	a := Make([]float64{1, 2, 3}, false)
	b := Make([]float64{1, 2, 3}, true)
	assert.True(t, a.Equal(&b))
	b.SetComponent(2, 4)
	assert.False(t, a.Equal(&b))
}

func TestRandomRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		x := RandomRange(-2, 3)
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 3.0)
	}
}

func rand01() float64 { return RandomRange(0, 1) }
