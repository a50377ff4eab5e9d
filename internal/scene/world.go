package scene

import (
	"time"

	"snowglobe/internal/atmosphere"
	"snowglobe/internal/core"
)

// World ties the parameter store, the particle pool, and the scene clock
// together. The frame loop drives it through SetViewport and Tick; input and
// external collaborators mutate it only through whole-value publishes.
type World struct {
	store *Store
	pool  *Pool
	clock *atmosphere.Clock

	width  float64
	height float64
}

// NewWorld constructs a world with the given starting parameters. The pool is
// populated on the first non-zero viewport.
func NewWorld(p Params, seed int64, cycle time.Duration) *World {
	p = p.Normalized()
	return &World{
		store: NewStore(p),
		pool:  NewPool(core.NewRNG(seed)),
		clock: atmosphere.NewClock(p.TimeOfDay, cycle),
	}
}

// Params returns the current parameter snapshot.
func (w *World) Params() Params { return w.store.Params() }

// Pool exposes the particle pool for rendering and interaction.
func (w *World) Pool() *Pool { return w.pool }

// Clock exposes the scene clock for auto-advance control.
func (w *World) Clock() *atmosphere.Clock { return w.clock }

// Atmosphere derives the atmosphere snapshot for the current time of day.
func (w *World) Atmosphere() atmosphere.Snapshot {
	return atmosphere.At(w.store.Params().TimeOfDay)
}

// Publish normalizes and atomically installs a complete parameter set. When
// the particle count or size bounds changed, the pool is reconciled before
// returning, so the next tick already observes the new pool shape.
func (w *World) Publish(next Params) {
	next = next.Normalized()
	prev := w.store.Publish(next)
	w.clock.SetHour(next.TimeOfDay)

	pc, pmin, pmax := prev.poolShape()
	nc, nmin, nmax := next.poolShape()
	if pc != nc || pmin != nmin || pmax != nmax {
		w.reconcile(next)
	}
}

// SetViewport records the drawable size in device pixels. The first usable
// viewport seeds the pool; later resizes keep particle state untouched.
func (w *World) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	if w.width == width && w.height == height {
		return
	}
	first := w.width <= 0 || w.height <= 0
	w.width, w.height = width, height
	if first {
		w.reconcile(w.store.Params())
	}
}

// Viewport returns the current drawable size.
func (w *World) Viewport() (width, height float64) {
	return w.width, w.height
}

// Tick runs one simulation step: advance the clock, publish any auto-advanced
// time of day, and move every particle under a single parameter snapshot. A
// zero viewport skips the step for this tick only.
func (w *World) Tick() {
	w.clock.Tick()
	if w.clock.Running() {
		if p := w.store.Params(); p.TimeOfDay != w.clock.Hour() {
			p.TimeOfDay = w.clock.Hour()
			w.store.Publish(p)
		}
	}

	if w.width <= 0 || w.height <= 0 {
		return
	}
	params := w.store.Params()
	w.pool.Advance(params, w.width, w.height)
}

// PopParticleAt removes the topmost particle under the point, if any, and
// publishes a parameter set with the count decremented (floored at zero).
func (w *World) PopParticleAt(x, y float64) bool {
	if !w.pool.PopAt(x, y) {
		return false
	}
	p := w.store.Params()
	if p.ParticleCount > 0 {
		p.ParticleCount--
	}
	w.Publish(p)
	return true
}

// AdjustWind publishes a parameter set with the wind speed shifted by amount;
// normalization clamps the result into [-MaxWindSpeed, MaxWindSpeed].
func (w *World) AdjustWind(amount float64) {
	p := w.store.Params()
	p.WindSpeed += amount
	w.Publish(p)
}

func (w *World) reconcile(p Params) {
	if w.width <= 0 || w.height <= 0 {
		return
	}
	w.pool.Reconcile(p.ParticleCount, p.MinSize, p.MaxSize, w.width, w.height)
}
