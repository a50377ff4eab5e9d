package scene

// windDragScale converts horizontal drag pixels into wind-speed units.
const windDragScale = 0.05

// Pointer translates a single press-to-release gesture into either a particle
// pop or a continuous wind adjustment. It keeps no state beyond the active
// gesture.
type Pointer struct {
	dragging bool
	lastX    float64
}

// Press handles a pointer-down at canvas-local coordinates. Hitting a
// particle pops it; otherwise a wind drag begins at x.
func (pt *Pointer) Press(w *World, x, y float64) {
	if w.PopParticleAt(x, y) {
		return
	}
	pt.dragging = true
	pt.lastX = x
}

// Move handles pointer motion. While a drag is active, the horizontal delta
// since the last event adjusts the wind speed.
func (pt *Pointer) Move(w *World, x float64) {
	if !pt.dragging {
		return
	}
	delta := x - pt.lastX
	pt.lastX = x
	if delta != 0 {
		w.AdjustWind(delta * windDragScale)
	}
}

// Release ends the gesture unconditionally. It also covers pointer-leave.
func (pt *Pointer) Release() {
	pt.dragging = false
}

// Dragging reports whether a wind drag is in progress.
func (pt *Pointer) Dragging() bool { return pt.dragging }
