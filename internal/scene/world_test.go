package scene

import (
	"testing"
	"time"
)

func newTestWorld(p Params) *World {
	w := NewWorld(p, 7, time.Minute)
	w.SetViewport(testW, testH)
	return w
}

func TestPublishReconcilesSynchronously(t *testing.T) {
	w := newTestWorld(Defaults())
	p := w.Params()
	p.ParticleCount = 321
	w.Publish(p)
	if got := w.Pool().Len(); got != 321 {
		t.Fatalf("pool size after publish = %d, want 321", got)
	}

	p.ParticleCount = 40
	w.Publish(p)
	if got := w.Pool().Len(); got != 40 {
		t.Fatalf("pool size after shrink publish = %d, want 40", got)
	}
}

func TestPublishNonStructuralKeepsPool(t *testing.T) {
	w := newTestWorld(Defaults())
	before := append([]Particle(nil), w.Pool().Particles()...)

	p := w.Params()
	p.WindSpeed = 9
	p.Opacity = 0.3
	w.Publish(p)

	after := w.Pool().Particles()
	if len(before) != len(after) {
		t.Fatalf("pool size changed on non-structural publish: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d changed on non-structural publish", i)
		}
	}
}

func TestFirstViewportSeedsPool(t *testing.T) {
	w := NewWorld(Defaults(), 7, time.Minute)
	if w.Pool().Len() != 0 {
		t.Fatal("pool must stay empty until a viewport is known")
	}
	w.SetViewport(testW, testH)
	if got := w.Pool().Len(); got != Defaults().ParticleCount {
		t.Fatalf("pool size after first viewport = %d, want %d", got, Defaults().ParticleCount)
	}
}

func TestResizeKeepsParticleState(t *testing.T) {
	w := newTestWorld(Defaults())
	before := append([]Particle(nil), w.Pool().Particles()...)
	w.SetViewport(testW*2, testH*2)
	after := w.Pool().Particles()
	if len(before) != len(after) {
		t.Fatal("resize must not change the pool size")
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("particle %d changed across resize", i)
		}
	}
}

func TestTickSkipsZeroViewport(t *testing.T) {
	w := NewWorld(Defaults(), 7, time.Minute)
	w.Tick() // must not panic or move anything
	if w.Pool().Len() != 0 {
		t.Fatal("tick before a viewport must not grow the pool")
	}
}

func TestTickAdvancesParticles(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 5
	w := newTestWorld(p)
	before := append([]Particle(nil), w.Pool().Particles()...)
	w.Tick()
	moved := false
	for i, pt := range w.Pool().Particles() {
		if pt.X != before[i].X || pt.Y != before[i].Y {
			moved = true
		}
		if pt.Radius != before[i].Radius || pt.Density != before[i].Density {
			t.Fatalf("tick must not touch particle %d structure", i)
		}
	}
	if !moved {
		t.Fatal("tick should move particles")
	}
}

func TestPopParticleAtDecrementsCount(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 3
	w := newTestWorld(p)
	target := w.Pool().Particles()[2]
	if !w.PopParticleAt(target.X, target.Y) {
		t.Fatal("expected a pop at a particle position")
	}
	if got := w.Params().ParticleCount; got != 2 {
		t.Fatalf("particle count after pop = %d, want 2", got)
	}
	if got := w.Pool().Len(); got != 2 {
		t.Fatalf("pool size after pop = %d, want 2", got)
	}
}

func TestPopParticleCountFlooredAtZero(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	w := newTestWorld(p)
	// Force a stray particle while the published count is already zero.
	w.Pool().Reconcile(1, 1, 4, testW, testH)
	stray := w.Pool().Particles()[0]
	if !w.PopParticleAt(stray.X, stray.Y) {
		t.Fatal("expected the stray particle to pop")
	}
	if got := w.Params().ParticleCount; got != 0 {
		t.Fatalf("particle count = %d, want floor at 0", got)
	}
}

func TestAdjustWindClamps(t *testing.T) {
	p := Defaults()
	p.WindSpeed = 12
	w := newTestWorld(p)
	w.AdjustWind(5)
	if got := w.Params().WindSpeed; got != MaxWindSpeed {
		t.Fatalf("wind speed = %v, want clamp at %v", got, MaxWindSpeed)
	}
}

func TestClockAutoAdvancePublishesTimeOfDay(t *testing.T) {
	p := Defaults()
	p.TimeOfDay = 6
	w := newTestWorld(p)
	w.Clock().SetRunning(true)
	w.Clock().Advance(time.Second)
	w.Tick()
	if got := w.Params().TimeOfDay; got <= 6 {
		t.Fatalf("time of day = %v, want it advanced past 6", got)
	}
}

func TestSetParameterPublishesWholeSet(t *testing.T) {
	w := newTestWorld(Defaults())
	if !w.SetFloatParameter("wind_speed", 3) {
		t.Fatal("wind_speed should be settable")
	}
	if got := w.Params().WindSpeed; got != 3 {
		t.Fatalf("wind speed = %v, want 3", got)
	}
	if !w.SetIntParameter("particle_count", 60) {
		t.Fatal("particle_count should be settable")
	}
	if got := w.Pool().Len(); got != 60 {
		t.Fatalf("pool size = %d, want 60 after HUD set", got)
	}
	if w.SetFloatParameter("no_such_key", 1) {
		t.Fatal("unknown keys must report false")
	}
}
