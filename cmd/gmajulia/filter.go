package main

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// denoise applies a median filter with a size×size window to every pixel
// whose window lies inside m. The result is m inset by size/2.
func denoise(src image.Image, size int) (*image.RGBA, error) {
	if size < 3 || size%2 == 0 {
		return nil, errors.Errorf("window size %d must be odd and at least 3", size)
	}
	b := src.Bounds()
	m := image.NewRGBA(b)
	draw.Draw(m, b, src, b.Min, draw.Src)

	out := image.NewRGBA(b.Inset(size / 2))
	n := size*size - 1
	rs, gs, bs := make([]uint8, 0, n), make([]uint8, 0, n), make([]uint8, 0, n)
	r := size / 2

	for y := out.Rect.Min.Y; y < out.Rect.Max.Y; y++ {
		for x := out.Rect.Min.X; x < out.Rect.Max.X; x++ {
			rs, gs, bs = rs[:0], gs[:0], bs[:0]
			for wy := y - r; wy <= y+r; wy++ {
				for wx := x - r; wx <= x+r; wx++ {
					if wx == x && wy == y {
						continue
					}
					c := m.RGBAAt(wx, wy)
					rs, gs, bs = append(rs, c.R), append(gs, c.G), append(bs, c.B)
				}
			}
			out.SetRGBA(x, y, color.RGBA{R: median(rs), G: median(gs), B: median(bs), A: 255})
		}
	}
	return out, nil
}

// median sorts xs and returns its median.
func median(xs []uint8) uint8 {
	if len(xs) == 0 {
		return 0
	}
	slices.Sort(xs)
	d := len(xs) / 2
	if len(xs)%2 == 0 {
		return uint8((int(xs[d-1]) + int(xs[d])) / 2)
	}
	return xs[d]
}
