package plot

import (
	"bytes"
	"image/png"
	"math"
	"path/filepath"
	"testing"

	"dasa.cc/gma/g2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestSweep(t *testing.T) {
	vs := Sweep(g2.NewVector(3, 0), 45*Degree, 8)
	require.Len(t, vs, 9)
	assert.True(t, vs[0].Equals(g2.NewVector(3, 0)))
	assert.InDeltaSlice(t, []float64{3 / math.Sqrt2, 3 / math.Sqrt2}, vs[1].ToArray(), 1e-14)
	assert.InDeltaSlice(t, []float64{0, 3}, vs[2].ToArray(), 1e-14)
	assert.InDeltaSlice(t, []float64{3, 0}, vs[8].ToArray(), 1e-13)
	for _, v := range vs {
		assert.InDelta(t, 3, v.Magnitude(), 1e-14)
	}
}

func TestPlotter(t *testing.T) {
	p := New("rotations", 5)
	require.NoError(t, p.AddVector("e1", g2.E1))
	require.NoError(t, p.AddVector("e2", g2.E2))

	v := g2.NewVector(1, 0.5)
	require.NoError(t, p.AddVector("v", v))
	require.NoError(t, p.AddPlane("v^e2", g2.NewVector(0, 0), v, g2.E2))
	require.NoError(t, p.AddMultivector("m", g2.FromCartesian(1, 2, -1, -4)))
	assert.Equal(t, 6, p.nlines)

	var buf bytes.Buffer
	require.NoError(t, p.Encode(&buf, 2*vg.Inch, "png"))
	cfg, err := png.DecodeConfig(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg.Width, cfg.Height)
	assert.Positive(t, cfg.Width)
}

func TestPlotterKeepsExtent(t *testing.T) {
	p := New("", 1)
	require.NoError(t, p.AddPlane("big", g2.NewVector(0, 0), g2.NewVector(3, 0), g2.NewVector(0, -3)))
	require.NoError(t, p.AddVector("far", g2.NewVector(-7, 2)))
	assert.Equal(t, []float64{-1, 1, -1, 1}, []float64{p.X.Min, p.X.Max, p.Y.Min, p.Y.Max})
}

func TestPlotterScalarOnly(t *testing.T) {
	p := New("", 1)
	require.NoError(t, p.AddMultivector("one", g2.One))
	assert.Zero(t, p.nlines)
}

func TestSave(t *testing.T) {
	p := New("", 2)
	require.NoError(t, p.AddVector("e1", g2.E1))
	assert.NoError(t, p.Save(vg.Inch, filepath.Join(t.TempDir(), "e1.png")))
	assert.Error(t, p.Save(vg.Inch, filepath.Join(t.TempDir(), "e1.unknown")))
}
