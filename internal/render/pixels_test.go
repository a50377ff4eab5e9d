package render

import (
	"image/color"
	"testing"
)

func TestFillVerticalGradientEndpoints(t *testing.T) {
	const w, h = 4, 8
	top := color.RGBA{10, 20, 30, 255}
	bottom := color.RGBA{200, 150, 100, 255}
	buf := make([]byte, 4*w*h)
	FillVerticalGradient(buf, w, h, top, bottom)

	if buf[0] != top.R || buf[1] != top.G || buf[2] != top.B || buf[3] != 255 {
		t.Fatalf("first row = %v, want top color %v", buf[:4], top)
	}
	last := (h - 1) * w * 4
	if buf[last] != bottom.R || buf[last+1] != bottom.G || buf[last+2] != bottom.B {
		t.Fatalf("last row = %v, want bottom color %v", buf[last:last+4], bottom)
	}
	// Every pixel in a row matches the row's first pixel.
	for y := 0; y < h; y++ {
		base := y * w * 4
		for x := 1; x < w; x++ {
			i := base + x*4
			if buf[i] != buf[base] || buf[i+1] != buf[base+1] || buf[i+2] != buf[base+2] {
				t.Fatalf("row %d is not uniform", y)
			}
		}
	}
}

func TestFillVerticalGradientSizeGuard(t *testing.T) {
	buf := make([]byte, 7)
	FillVerticalGradient(buf, 4, 8, color.RGBA{}, color.RGBA{}) // must not panic
	for _, b := range buf {
		if b != 0 {
			t.Fatal("mismatched buffer must be left untouched")
		}
	}
}

func TestGenerateStarsDeterministic(t *testing.T) {
	a := GenerateStars(64, 9)
	b := GenerateStars(64, 9)
	if len(a) != 64 {
		t.Fatalf("got %d stars, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("star %d differs between runs with the same seed", i)
		}
		if a[i].X < 0 || a[i].X >= 100 || a[i].Y < 0 || a[i].Y >= 66 {
			t.Fatalf("star %d outside the sky band: %+v", i, a[i])
		}
		if a[i].Radius < 0.5 || a[i].Radius >= 1.6 {
			t.Fatalf("star %d radius out of range: %v", i, a[i].Radius)
		}
	}
	c := GenerateStars(64, 10)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds should produce different star fields")
	}
}

func TestRidgeHeightsBounded(t *testing.T) {
	heights := RidgeHeights(512, 3)
	if len(heights) != 512 {
		t.Fatalf("got %d columns, want 512", len(heights))
	}
	for i, hgt := range heights {
		if hgt < 0.68 || hgt > 0.92 {
			t.Fatalf("column %d height %v outside [0.68, 0.92]", i, hgt)
		}
	}
	again := RidgeHeights(512, 3)
	for i := range heights {
		if heights[i] != again[i] {
			t.Fatalf("ridge not deterministic at column %d", i)
		}
	}
}

func TestEmptyInputs(t *testing.T) {
	if GenerateStars(0, 1) != nil {
		t.Fatal("zero stars should return nil")
	}
	if RidgeHeights(0, 1) != nil {
		t.Fatal("zero columns should return nil")
	}
}
