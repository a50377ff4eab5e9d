package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts a "#rrggbb" (or "#rgb") string into an opaque RGBA
// color. Parsing is case-insensitive and the leading '#' is optional.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(hex) {
	case 3:
		var out color.RGBA
		out.A = 0xff
		for i, dst := range []*uint8{&out.R, &out.G, &out.B} {
			v, err := strconv.ParseUint(strings.Repeat(hex[i:i+1], 2), 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			*dst = uint8(v)
		}
		return out, nil
	case 6:
		var out color.RGBA
		out.A = 0xff
		for i, dst := range []*uint8{&out.R, &out.G, &out.B} {
			v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
			if err != nil {
				return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
			}
			*dst = uint8(v)
		}
		return out, nil
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: want #rgb or #rrggbb", s)
	}
}

// FormatHexColor renders an RGBA color as a "#rrggbb" string, dropping alpha.
func FormatHexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// LerpColor interpolates each RGB channel independently between a and b at
// progress t in [0, 1]. Alpha is fixed fully opaque.
func LerpColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return color.RGBA{R: a.R, G: a.G, B: a.B, A: 0xff}
	}
	if t >= 1 {
		return color.RGBA{R: b.R, G: b.G, B: b.B, A: 0xff}
	}
	return color.RGBA{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// WithAlpha pairs c's RGB channels with the given alpha as a non-premultiplied
// color, suitable for anti-aliased vector drawing.
func WithAlpha(c color.RGBA, alpha float64) color.NRGBA {
	out := color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
	switch {
	case alpha <= 0:
		out.A = 0
	case alpha >= 1:
		out.A = 0xff
	default:
		out.A = uint8(alpha*255 + 0.5)
	}
	return out
}
