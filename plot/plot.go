// Package plot renders 2D multivectors with gonum/plot. Vectors are drawn as
// lines from the origin and bivectors as the parallelogram they span.
package plot

import (
	"io"
	"math"

	"dasa.cc/gma/g2"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Degree converts degrees to radians.
const Degree = math.Pi / 180

// Plotter is a square plot of the plane over [-extent, extent]².
type Plotter struct {
	*plot.Plot
	extent float64
	nlines int
}

// New returns an empty Plotter with a grid.
func New(title string, extent float64) *Plotter {
	p := plot.New()
	p.Title.Text = title
	p.X.Min, p.X.Max = -extent, extent
	p.Y.Min, p.Y.Max = -extent, extent
	p.X.Label.Text = "e1"
	p.Y.Label.Text = "e2"
	p.Add(plotter.NewGrid())
	return &Plotter{Plot: p, extent: extent}
}

// add draws t with a legend entry. Plot.Add grows the axes to fit the
// data, so the square frame is restored afterwards.
func (p *Plotter) add(label string, t interface {
	plot.Plotter
	plot.Thumbnailer
}) {
	p.Add(t)
	p.Legend.Add(label, t)
	p.X.Min, p.X.Max = -p.extent, p.extent
	p.Y.Min, p.Y.Max = -p.extent, p.extent
}

// AddVector draws v as a line from the origin.
func (p *Plotter) AddVector(label string, v g2.VectorE2) error {
	ln, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: v.X(), Y: v.Y()}})
	if err != nil {
		return err
	}
	ln.LineStyle.Width = vg.Points(1)
	ln.LineStyle.Color = plotutil.Color(p.nlines)
	p.nlines++

	p.add(label, ln)
	return nil
}

// AddPlane draws the parallelogram spanned by u and v at base, the area
// element of u∧v.
func (p *Plotter) AddPlane(label string, base, u, v g2.VectorE2) error {
	o := g2.CopyVector(base)
	a := o.Clone().Add(u)
	c := o.Clone().Add(v)
	w := a.Clone().Add(v)
	r, err := plotter.NewPolygon(plotter.XYs{
		{X: o.X(), Y: o.Y()},
		{X: a.X(), Y: a.Y()},
		{X: w.X(), Y: w.Y()},
		{X: c.X(), Y: c.Y()},
	})
	if err != nil {
		return err
	}
	r.Color = plotutil.Color(p.nlines)
	p.nlines++

	p.add(label, r)
	return nil
}

// AddMultivector draws the vector part of m as a line and its pseudoscalar
// part as a square of the same signed area at the tip of the vector. The
// scalar part has no picture and is ignored.
func (p *Plotter) AddMultivector(label string, m *g2.Multivector) error {
	tip := g2.NewVector(m.X(), m.Y())
	if !tip.Equals(g2.NewVector(0, 0)) {
		if err := p.AddVector(label, tip); err != nil {
			return err
		}
	}
	if b := m.B(); b != 0 {
		s := math.Sqrt(math.Abs(b))
		return p.AddPlane(label+" I", tip, g2.NewVector(math.Copysign(s, b), 0), g2.NewVector(0, s))
	}
	return nil
}

// Sweep returns n+1 copies of v rotated by 0, θ, ..., nθ.
func Sweep(v g2.VectorE2, θ float64, n int) []*g2.Vector {
	R := g2.OneSpinor().RotorFromAngle(θ)
	vs := make([]*g2.Vector, 0, n+1)
	u := g2.CopyVector(v)
	for i := 0; i <= n; i++ {
		vs = append(vs, u.Clone())
		u.Rotate(R)
	}
	return vs
}

// Save writes the plot to path as a size×size image, the format following
// the file extension.
func (p *Plotter) Save(size vg.Length, path string) error {
	return p.Plot.Save(size, size, path)
}

// Encode writes the plot to w as a size×size image of the given format.
func (p *Plotter) Encode(w io.Writer, size vg.Length, format string) error {
	wt, err := p.Plot.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
