package render

import (
	"image/color"

	"snowglobe/internal/core"
)

// FillVerticalGradient writes a top-to-bottom two-color gradient into a
// w*h*4 RGBA buffer. Buffers of the wrong size are left untouched.
func FillVerticalGradient(buf []byte, w, h int, top, bottom color.RGBA) {
	if w <= 0 || h <= 0 || len(buf) != 4*w*h {
		return
	}
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		row := core.LerpColor(top, bottom, t)
		base := y * w * 4
		for x := 0; x < w; x++ {
			i := base + x*4
			buf[i+0] = row.R
			buf[i+1] = row.G
			buf[i+2] = row.B
			buf[i+3] = 0xff
		}
	}
}

// Star is a fixed point light in viewport-percent coordinates. Radius is in
// device pixels.
type Star struct {
	X, Y   float64
	Radius float64
}

// GenerateStars returns a deterministic star field for the given seed. Stars
// occupy the upper two thirds of the sky so they clear the ridge line.
func GenerateStars(n int, seed int64) []Star {
	if n <= 0 {
		return nil
	}
	rng := core.NewRNG(seed)
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			X:      rng.Float64() * 100,
			Y:      rng.Float64() * 66,
			Radius: rng.Float64In(0.5, 1.6),
		}
	}
	return stars
}

// RidgeHeights produces a mountain silhouette as per-column height fractions
// in [ridgeMin, ridgeMax], measured from the top of the viewport. The walk is
// deterministic for a given seed and column count.
func RidgeHeights(columns int, seed int64) []float64 {
	const (
		ridgeMin = 0.68
		ridgeMax = 0.92
	)
	if columns <= 0 {
		return nil
	}
	rng := core.NewRNG(seed)
	heights := make([]float64, columns)
	level := rng.Float64In(ridgeMin, ridgeMax)
	momentum := 0.0
	for i := range heights {
		momentum += rng.Float64In(-0.004, 0.004)
		if momentum > 0.012 {
			momentum = 0.012
		}
		if momentum < -0.012 {
			momentum = -0.012
		}
		level += momentum
		if level < ridgeMin {
			level = ridgeMin
			momentum = 0
		}
		if level > ridgeMax {
			level = ridgeMax
			momentum = 0
		}
		heights[i] = level
	}
	return heights
}
