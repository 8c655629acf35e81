package main

import (
	"image"
	"image/color"
	"runtime"
	"sync"
	"sync/atomic"

	"dasa.cc/gma/config"
	"dasa.cc/gma/g2"

	"github.com/nfnt/resize"
)

// bailout is the squared magnitude past which a point has escaped.
const bailout = 1e4

// escape iterates p ← p e1 p + c, which squares p as a complex number, and
// returns the number of iterations before p escapes, at most limit.
func escape(p, c g2.VectorE2, limit int) int {
	z := g2.FromVector(p)
	t := g2.NewZero(false)
	for n := 0; n < limit; n++ {
		t.Mul2(z, g2.E1).Mul(z).AddVector(c)
		z, t = t, z
		if z.SquaredNorm() > bailout {
			return n + 1
		}
	}
	return limit
}

// shade colors a pixel by its escape count; points that never escape are
// black apart from the green ramp.
func shade(n, limit int) color.RGBA {
	clr := color.RGBA{A: 255}
	clr.G = uint8(n * (255 / limit))
	if n < limit {
		clr.R = uint8(2 * n)
	}
	return clr
}

// julia renders the set for cfg at cfg.Supersample times the configured
// size, then scales it down. progress counts finished rows of the large
// image.
func julia(cfg config.JuliaConfig, progress *uint64) image.Image {
	s := cfg.Supersample
	w, h := cfg.Width*s, cfg.Height*s
	zoom := cfg.Zoom / float64(s)
	c := g2.NewVector(cfg.C[0], cfg.C[1])

	m := image.NewRGBA(image.Rect(0, 0, w, h))
	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < runtime.NumCPU(); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := g2.NewVector(0, 0)
			for y := range rows {
				p.SetY(float64(y-h/2) * zoom)
				for x := 0; x < w; x++ {
					p.SetX(float64(x-w/2) * zoom)
					m.SetRGBA(x, y, shade(escape(p, c, cfg.MaxIter), cfg.MaxIter))
				}
				atomic.AddUint64(progress, 1)
			}
		}()
	}
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	if s == 1 {
		return m
	}
	return resize.Resize(uint(cfg.Width), uint(cfg.Height), m, resize.Lanczos3)
}
