package atmosphere

import (
	"image/color"
	"math"

	"snowglobe/internal/core"
)

// Body describes a celestial body's placement in viewport-percent coordinates.
type Body struct {
	X       float64
	Y       float64
	Visible bool
}

// Snapshot is the derived atmosphere state for a single clock value. It is
// recomputed on demand, never mutated in place.
type Snapshot struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA
	Tint      color.RGBA

	Sun  Body
	Moon Body

	StarOpacity float64

	SunColor  color.RGBA
	MoonColor color.RGBA
}

// keyframe anchors the sky palette at a fixed hour. Consecutive keyframes are
// interpolated channel-wise; the entry at hour 24 repeats hour 0 so the cycle
// is continuous across midnight.
type keyframe struct {
	hour   float64
	top    color.RGBA
	bottom color.RGBA
	tint   color.RGBA
}

var keyframes = []keyframe{
	{0, rgb(0x0b, 0x10, 0x26), rgb(0x2d, 0x35, 0x61), rgb(0xdf, 0xe7, 0xff)},
	{5, rgb(0x1a, 0x21, 0x51), rgb(0x4a, 0x3f, 0x6b), rgb(0xe8, 0xe4, 0xf2)},
	{6, rgb(0x54, 0x4e, 0x86), rgb(0xe8, 0x92, 0x7c), rgb(0xff, 0xe9, 0xdd)},
	{8, rgb(0x6f, 0xa8, 0xdc), rgb(0xcf, 0xe2, 0xf3), rgb(0xff, 0xff, 0xff)},
	{12, rgb(0x4a, 0x90, 0xd9), rgb(0xbc, 0xd8, 0xf0), rgb(0xff, 0xff, 0xff)},
	{17, rgb(0x5b, 0x7f, 0xb8), rgb(0xf0, 0xc2, 0x7b), rgb(0xff, 0xf3, 0xe0)},
	{18.5, rgb(0x2e, 0x33, 0x71), rgb(0xe9, 0x64, 0x43), rgb(0xff, 0xd9, 0xc9)},
	{20, rgb(0x14, 0x18, 0x52), rgb(0x4a, 0x36, 0x70), rgb(0xe6, 0xe1, 0xf5)},
	{24, rgb(0x0b, 0x10, 0x26), rgb(0x2d, 0x35, 0x61), rgb(0xdf, 0xe7, 0xff)},
}

var (
	sunDay       = rgb(0xff, 0xf4, 0xbf)
	sunLow       = rgb(0xff, 0x9a, 0x5c)
	moonConstant = rgb(0xe8, 0xec, 0xf5)
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// At derives the full atmosphere snapshot for the given hour of day. Hours
// outside [0, 24] (including non-finite values) are clamped before lookup, so
// the function is total and never returns non-finite fields.
func At(hour float64) Snapshot {
	hour = clampHour(hour)

	var snap Snapshot
	snap.SkyTop, snap.SkyBottom, snap.Tint = skyColors(hour)
	snap.Sun = sunAt(hour)
	snap.Moon = moonAt(hour)
	snap.StarOpacity = starOpacity(hour, snap.Sun.Visible)
	snap.SunColor = sunColorAt(hour)
	snap.MoonColor = moonConstant
	return snap
}

func clampHour(hour float64) float64 {
	if math.IsNaN(hour) {
		return 0
	}
	if hour < 0 {
		return 0
	}
	if hour > 24 {
		return 24
	}
	return hour
}

func skyColors(hour float64) (top, bottom, tint color.RGBA) {
	start, end := keyframes[0], keyframes[len(keyframes)-1]
	for i := 0; i+1 < len(keyframes); i++ {
		if keyframes[i].hour <= hour && hour <= keyframes[i+1].hour {
			start, end = keyframes[i], keyframes[i+1]
			break
		}
	}
	span := end.hour - start.hour
	progress := 0.0
	if span > 0 {
		progress = (hour - start.hour) / span
	}
	top = core.LerpColor(start.top, end.top, progress)
	bottom = core.LerpColor(start.bottom, end.bottom, progress)
	tint = core.LerpColor(start.tint, end.tint, progress)
	return top, bottom, tint
}

func sunAt(hour float64) Body {
	if !(hour > 5 && hour < 20) {
		return Body{}
	}
	dayProgress := (hour - 5) / 15
	return Body{
		X:       dayProgress * 100,
		Y:       100 - 80*math.Sin(math.Pi*dayProgress),
		Visible: true,
	}
}

// moonAt uses a visibility window that wraps midnight and is deliberately not
// the complement of the sun's window.
func moonAt(hour float64) Body {
	if !(hour >= 19 || hour <= 7) {
		return Body{}
	}
	var nightProgress float64
	if hour >= 19 {
		nightProgress = (hour - 19) / 12
	} else {
		nightProgress = (hour + 5) / 12
	}
	return Body{
		X:       nightProgress * 100,
		Y:       100 - 70*math.Sin(math.Pi*nightProgress),
		Visible: true,
	}
}

// starOpacity fades stars out around solar noon. The factor of 3 makes them
// reach full opacity well inside the sun's window rather than at its edges.
func starOpacity(hour float64, sunVisible bool) float64 {
	if !sunVisible {
		return 1
	}
	return math.Max(0, 1-3*math.Sin(((hour-5)/15)*math.Pi))
}

// sunColorAt hard-switches between a low-angle warm tint and the daytime
// tint; there is no interpolation between the two.
func sunColorAt(hour float64) color.RGBA {
	if hour > 17 || hour < 7 {
		return sunLow
	}
	return sunDay
}
