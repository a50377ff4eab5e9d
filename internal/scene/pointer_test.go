package scene

import "testing"

func TestPressOnParticlePops(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 1
	w := newTestWorld(p)
	var pt Pointer

	target := w.Pool().Particles()[0]
	pt.Press(w, target.X, target.Y)

	if w.Pool().Len() != 0 {
		t.Fatal("press on a particle must pop it")
	}
	if got := w.Params().ParticleCount; got != 0 {
		t.Fatalf("particle count = %d, want 0", got)
	}
	if pt.Dragging() {
		t.Fatal("a pop must not start a drag")
	}
}

func TestPressOnEmptySpaceStartsDrag(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	w := newTestWorld(p)
	var pt Pointer

	pt.Press(w, 100, 100)
	if !pt.Dragging() {
		t.Fatal("a missed press must begin a drag")
	}
}

func TestDragAdjustsWind(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	p.WindSpeed = 0
	w := newTestWorld(p)
	var pt Pointer

	pt.Press(w, 100, 100)
	pt.Move(w, 200)
	if got := w.Params().WindSpeed; got != 5 {
		t.Fatalf("wind speed after 100px drag = %v, want 5", got)
	}
}

func TestDragClampsWind(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	p.WindSpeed = 12
	w := newTestWorld(p)
	var pt Pointer

	pt.Press(w, 100, 100)
	pt.Move(w, 200)
	if got := w.Params().WindSpeed; got != MaxWindSpeed {
		t.Fatalf("wind speed = %v, want clamp at %v not 17", got, MaxWindSpeed)
	}
}

func TestMoveWithoutDragIsNoop(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	p.WindSpeed = 2
	w := newTestWorld(p)
	var pt Pointer

	pt.Move(w, 300)
	if got := w.Params().WindSpeed; got != 2 {
		t.Fatalf("wind speed = %v, want unchanged 2", got)
	}
}

func TestReleaseEndsDrag(t *testing.T) {
	p := Defaults()
	p.ParticleCount = 0
	w := newTestWorld(p)
	var pt Pointer

	pt.Press(w, 100, 100)
	pt.Release()
	if pt.Dragging() {
		t.Fatal("release must end the gesture")
	}
	wind := w.Params().WindSpeed
	pt.Move(w, 500)
	if got := w.Params().WindSpeed; got != wind {
		t.Fatal("movement after release must not adjust wind")
	}
}
