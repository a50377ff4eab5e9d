//go:build ebiten

package app

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"snowglobe/internal/atmosphere"
	"snowglobe/internal/core"
	"snowglobe/internal/preset"
	"snowglobe/internal/render"
	"snowglobe/internal/scene"
	"snowglobe/internal/ui"
)

const starCount = 140

// Game adapts the weather world to the ebiten.Game interface. The Update/Draw
// cycle is the scene's only loop: it reads a fresh parameter snapshot every
// tick and is never restarted by parameter changes.
type Game struct {
	world   *scene.World
	pointer scene.Pointer
	hud     *ui.HUD
	overlay *ui.Overlay

	sky   *render.SkyPainter
	ridge *render.RidgePainter
	stars []render.Star
	view  *ebiten.Image

	presets   []preset.Preset
	presetIdx int

	updates chan scene.Params

	tintName string
	tint     color.RGBA

	w, h int
	tick uint64
}

// New constructs a Game around the provided world and preset list.
func New(world *scene.World, presets []preset.Preset, panelWidth int, seed int64) *Game {
	g := &Game{
		world:     world,
		overlay:   ui.NewOverlay(),
		sky:       render.NewSkyPainter(),
		ridge:     render.NewRidgePainter(seed, color.RGBA{R: 18, G: 22, B: 34, A: 255}),
		stars:     render.GenerateStars(starCount, seed),
		presets:   presets,
		presetIdx: -1,
		updates:   make(chan scene.Params, 4),
	}
	g.hud = ui.NewHUD(world, panelWidth)
	return g
}

// World exposes the simulation world, e.g. for saving parameters on exit.
func (g *Game) World() *scene.World { return g.world }

// Enqueue hands an externally produced parameter set to the game loop. The
// set is published between ticks, never inside one. When the queue is full
// the update is dropped; the producer can retry.
func (g *Game) Enqueue(p scene.Params) bool {
	select {
	case g.updates <- p:
		return true
	default:
		return false
	}
}

// Update handles input, applies queued parameter updates, and advances the
// simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.world.Clock().Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && len(g.presets) > 0 {
		g.presetIdx = (g.presetIdx + 1) % len(g.presets)
		g.world.Publish(g.presets[g.presetIdx].Params)
	}
	g.overlay.Update()

	for {
		select {
		case p := <-g.updates:
			g.world.Publish(p)
			continue
		default:
		}
		break
	}

	sceneW := g.w - g.hud.Width()
	g.world.SetViewport(float64(sceneW), float64(g.h))
	g.hud.Update(sceneW)
	g.handlePointer(sceneW)

	g.world.Tick()
	g.tick++
	return nil
}

func (g *Game) handlePointer(sceneW int) {
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.hud.ClickConsumed(mx) {
		g.pointer.Press(g.world, float64(mx), float64(my))
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.pointer.Dragging() {
		if mx < 0 || mx >= sceneW || my < 0 || my >= g.h {
			g.pointer.Release()
			return
		}
		g.pointer.Move(g.world, float64(mx))
		return
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.pointer.Release()
	}
}

// Draw composes the sky, celestial bodies, silhouette, and particles, then
// overlays the HUD and help panel.
func (g *Game) Draw(screen *ebiten.Image) {
	sceneW := g.w - g.hud.Width()
	if sceneW <= 0 || g.h <= 0 {
		return
	}
	if g.view == nil || g.view.Bounds().Dx() != sceneW || g.view.Bounds().Dy() != g.h {
		g.view = ebiten.NewImage(sceneW, g.h)
	}

	params := g.world.Params()
	atm := g.world.Atmosphere()
	w := float64(sceneW)
	h := float64(g.h)

	g.sky.Draw(g.view, atm.SkyTop, atm.SkyBottom)
	g.drawStars(atm.StarOpacity, w, h)
	g.drawBodies(atm, w, h)
	g.ridge.Draw(g.view)
	g.drawParticles(params)

	screen.DrawImage(g.view, nil)
	g.hud.Draw(screen, sceneW, g.h)
	g.overlay.Draw(screen, params, g.world.Clock().Running())
}

func (g *Game) drawStars(opacity, w, h float64) {
	if opacity <= 0 {
		return
	}
	col := core.WithAlpha(color.RGBA{R: 235, G: 240, B: 255, A: 255}, opacity)
	for _, star := range g.stars {
		vector.DrawFilledCircle(g.view, float32(star.X/100*w), float32(star.Y/100*h), float32(star.Radius), col, true)
	}
}

func (g *Game) drawBodies(atm atmosphere.Snapshot, w, h float64) {
	radius := float32(math.Min(w, h) * 0.045)
	if atm.Sun.Visible {
		vector.DrawFilledCircle(g.view, float32(atm.Sun.X/100*w), float32(atm.Sun.Y/100*h), radius, atm.SunColor, true)
	}
	if atm.Moon.Visible {
		vector.DrawFilledCircle(g.view, float32(atm.Moon.X/100*w), float32(atm.Moon.Y/100*h), radius*0.85, atm.MoonColor, true)
	}
}

func (g *Game) drawParticles(params scene.Params) {
	if params.Color != g.tintName {
		base, err := core.ParseHexColor(params.Color)
		if err != nil {
			base = color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		g.tintName, g.tint = params.Color, base
	}
	base := g.tint

	particles := g.world.Pool().Particles()
	phase := float64(g.tick) * 0.15
	for i := range particles {
		pt := &particles[i]
		alpha := params.Opacity
		if params.SparkleIntensity > 0 {
			flicker := 1 + params.SparkleIntensity*0.6*math.Sin(phase+pt.Density)
			alpha = clamp01(alpha * flicker)
		}
		col := core.WithAlpha(base, alpha)

		if params.MotionStretch > 0 {
			vx := math.Sin(pt.Density+float64(i))*0.3 + params.WindSpeed + pt.VX
			vy := math.Cos(pt.Density+float64(i))*0.1 + params.FallSpeed + pt.VY
			vector.StrokeLine(g.view,
				float32(pt.X), float32(pt.Y),
				float32(pt.X-vx*params.MotionStretch), float32(pt.Y-vy*params.MotionStretch),
				float32(pt.Radius), col, true)
		}
		vector.DrawFilledCircle(g.view, float32(pt.X), float32(pt.Y), float32(pt.Radius), col, true)
	}
}

// Layout records the logical screen size used by Update and Draw.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.w, g.h = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
