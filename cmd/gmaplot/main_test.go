package main

import (
	"math"
	"path/filepath"
	"testing"

	"dasa.cc/gma/config"
	"dasa.cc/gma/g2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
)

func TestRender(t *testing.T) {
	cfg := config.Default().Plot
	cfg.Steps = 4

	p, err := render(cfg, g2.NewVector(3, 0), math.Pi/4, true)
	require.NoError(t, err)
	assert.Equal(t, -cfg.Extent, p.X.Min)
	assert.Equal(t, cfg.Extent, p.Y.Max)
	assert.Contains(t, p.Title.Text, "R = ")

	path := filepath.Join(t.TempDir(), "rotors.png")
	assert.NoError(t, p.Save(2*vg.Inch, path))
	assert.FileExists(t, path)
}
