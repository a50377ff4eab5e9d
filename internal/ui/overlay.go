//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"snowglobe/internal/scene"
)

// Overlay draws a toggleable help and status panel on top of the scene.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs an overlay, initially visible so first-time users see
// the key bindings.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on the H key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.visible = !o.visible
	}
}

// Draw renders the help panel with live parameter status.
func (o *Overlay) Draw(screen *ebiten.Image, params scene.Params, clockRunning bool) {
	if !o.visible {
		return
	}
	lines := []string{
		"H      toggle this help",
		"T      toggle day/night cycle",
		"P      cycle weather presets",
		"drag   adjust wind",
		"click  pop a flake",
		"Q/Esc  quit",
		"",
		fmt.Sprintf("wind %+.1f  fall %.1f  flakes %d", params.WindSpeed, params.FallSpeed, params.ParticleCount),
		fmt.Sprintf("time %05.2fh  cycle %s", params.TimeOfDay, onOff(clockRunning)),
	}

	face := basicfont.Face7x13
	const pad = 10
	const lineH = 16
	width := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	boxW := width + 2*pad
	boxH := len(lines)*lineH + 2*pad

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(boxW), float64(boxH))
	op.GeoM.Translate(pad, pad)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 10, G: 12, B: 18, A: 190})
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		y := pad + pad + (i+1)*lineH - 4
		text.Draw(screen, line, face, pad+pad, y, color.RGBA{R: 215, G: 220, B: 235, A: 255})
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
