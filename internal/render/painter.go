//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SkyPainter keeps a cached gradient image sized to the viewport and refills
// it only when the colors or dimensions change.
type SkyPainter struct {
	w, h   int
	img    *ebiten.Image
	buf    []byte
	top    color.RGBA
	bottom color.RGBA
}

// NewSkyPainter constructs an empty painter; the first Draw allocates.
func NewSkyPainter() *SkyPainter {
	return &SkyPainter{}
}

// Draw paints the sky gradient across the whole destination image.
func (sp *SkyPainter) Draw(dst *ebiten.Image, top, bottom color.RGBA) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if sp.img == nil || sp.w != w || sp.h != h {
		sp.w, sp.h = w, h
		sp.img = ebiten.NewImage(w, h)
		sp.buf = make([]byte, 4*w*h)
		sp.top, sp.bottom = color.RGBA{}, color.RGBA{}
	}
	if sp.top != top || sp.bottom != bottom {
		sp.top, sp.bottom = top, bottom
		FillVerticalGradient(sp.buf, w, h, top, bottom)
		sp.img.WritePixels(sp.buf)
	}
	dst.DrawImage(sp.img, nil)
}

// RidgePainter renders the static mountain silhouette, regenerating its
// cached image only on resize.
type RidgePainter struct {
	w, h int
	img  *ebiten.Image
	seed int64
	col  color.RGBA
}

// NewRidgePainter constructs a silhouette painter with a fixed seed and fill
// color.
func NewRidgePainter(seed int64, col color.RGBA) *RidgePainter {
	return &RidgePainter{seed: seed, col: col}
}

// Draw paints the silhouette along the bottom of the destination image.
func (rp *RidgePainter) Draw(dst *ebiten.Image) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()
	if w <= 0 || h <= 0 {
		return
	}
	if rp.img == nil || rp.w != w || rp.h != h {
		rp.w, rp.h = w, h
		rp.img = ebiten.NewImage(w, h)
		rp.rebuild()
	}
	dst.DrawImage(rp.img, nil)
}

func (rp *RidgePainter) rebuild() {
	heights := RidgeHeights(rp.w, rp.seed)
	buf := make([]byte, 4*rp.w*rp.h)
	for x := 0; x < rp.w; x++ {
		start := int(heights[x] * float64(rp.h))
		if start < 0 {
			start = 0
		}
		for y := start; y < rp.h; y++ {
			i := (y*rp.w + x) * 4
			buf[i+0] = rp.col.R
			buf[i+1] = rp.col.G
			buf[i+2] = rp.col.B
			buf[i+3] = rp.col.A
		}
	}
	rp.img.WritePixels(buf)
}
