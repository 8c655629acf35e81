// Package coords provides the fixed-length coordinate storage shared by the
// vector, spinor and multivector types of g2, g3 and g4.
package coords

import (
	"fmt"

	"dasa.cc/gma"
	"dasa.cc/gma/lock"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/floats/scalar"
)

// Coords is an ordered, fixed-length sequence of components with a sticky
// modified flag. Components are only written through Set, which honours
// the embedded lock.
type Coords struct {
	lock.Lockable
	data     []float64
	modified bool
}

// New returns Coords holding a copy of data; n is the required length.
func New(data []float64, modified bool, n int) (*Coords, error) {
	if len(data) != n {
		return nil, errors.WithStack(gma.InvalidArgument("data", fmt.Sprintf("must have length %d, got %d", n, len(data))))
	}
	c := Make(data, modified)
	return &c, nil
}

// Make returns unlocked Coords holding a copy of data.
func Make(data []float64, modified bool) Coords {
	return Coords{data: slices.Clone(data), modified: modified}
}

func (c *Coords) Len() int { return len(c.data) }

// Component returns the i'th component and panics with an
// *gma.InvalidArgumentError if i is out of range.
func (c *Coords) Component(i int) float64 {
	c.bounds(i)
	return c.data[i]
}

func (c *Coords) SetComponent(i int, v float64) { c.Set(i, fmt.Sprintf("set component %d", i), v) }

// Set writes v to the i'th component after checking the lock with op. The
// modified flag is raised only if the stored value changes.
func (c *Coords) Set(i int, op string, v float64) {
	c.Check(op)
	c.bounds(i)
	c.modified = c.modified || c.data[i] != v
	c.data[i] = v
}

func (c *Coords) bounds(i int) {
	if i < 0 || i >= len(c.data) {
		panic(gma.InvalidArgument("index", fmt.Sprintf("%d out of range [0, %d)", i, len(c.data))))
	}
}

func (c *Coords) Modified() bool { return c.modified }

func (c *Coords) SetModified(modified bool) {
	c.Check("set modified")
	c.modified = modified
}

// Approx rounds every component to n decimal places.
func (c *Coords) Approx(n int) {
	c.Check("approx")
	for i, x := range c.data {
		c.Set(i, "approx", scalar.Round(x, n))
	}
}

// Slice returns a copy of the components.
func (c *Coords) Slice() []float64 { return slices.Clone(c.data) }

// Equal reports whether c and d hold exactly the same components.
func (c *Coords) Equal(d *Coords) bool { return slices.Equal(c.data, d.data) }

// RandomRange returns a pseudo-random number in [min, max).
func RandomRange(min, max float64) float64 {
	return min + (max-min)*rand.Float64()
}
