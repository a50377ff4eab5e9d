package atmosphere

import (
	"math"
	"testing"
	"time"
)

func TestMidnightWrapContinuity(t *testing.T) {
	a := At(0)
	b := At(24)
	if a != b {
		t.Fatalf("At(0) = %+v, At(24) = %+v; want identical snapshots", a, b)
	}
}

func TestSunVisibilityWindow(t *testing.T) {
	for hour := 0.0; hour <= 24.0; hour += 0.125 {
		snap := At(hour)
		want := hour > 5 && hour < 20
		if snap.Sun.Visible != want {
			t.Fatalf("hour %.3f: sun visible = %v, want %v", hour, snap.Sun.Visible, want)
		}
	}
}

func TestMoonVisibilityWindowWrapsMidnight(t *testing.T) {
	for hour := 0.0; hour <= 24.0; hour += 0.125 {
		snap := At(hour)
		want := hour >= 19 || hour <= 7
		if snap.Moon.Visible != want {
			t.Fatalf("hour %.3f: moon visible = %v, want %v", hour, snap.Moon.Visible, want)
		}
	}
}

func TestStarOpacityRange(t *testing.T) {
	for hour := 0.0; hour <= 24.0; hour += 0.0625 {
		snap := At(hour)
		if snap.StarOpacity < 0 || snap.StarOpacity > 1 {
			t.Fatalf("hour %.4f: star opacity %v outside [0, 1]", hour, snap.StarOpacity)
		}
		if !snap.Sun.Visible && snap.StarOpacity != 1 {
			t.Fatalf("hour %.4f: stars should be fully opaque when the sun is down, got %v", hour, snap.StarOpacity)
		}
	}
}

func TestStarsVanishAtNoon(t *testing.T) {
	if got := At(12.5).StarOpacity; got != 0 {
		t.Fatalf("star opacity at 12.5 = %v, want 0", got)
	}
}

func TestNoonScenario(t *testing.T) {
	snap := At(12)
	if !snap.Sun.Visible {
		t.Fatal("sun should be visible at noon")
	}
	if snap.Moon.Visible {
		t.Fatal("moon should not be visible at noon")
	}
	if math.Abs(snap.Sun.X-46.666) > 0.1 {
		t.Fatalf("sun x at noon = %v, want ~46.67", snap.Sun.X)
	}
	// Noon is slightly left of the arc apex, so y must be close to the
	// window minimum of 20 but not below it.
	if snap.Sun.Y < 20 || snap.Sun.Y > 21 {
		t.Fatalf("sun y at noon = %v, want just above 20", snap.Sun.Y)
	}
}

func TestSunArcEndpointsLow(t *testing.T) {
	early := At(5.01)
	late := At(19.99)
	if early.Sun.Y < 99 || late.Sun.Y < 99 {
		t.Fatalf("sun should sit near the bottom at window edges, got %v and %v", early.Sun.Y, late.Sun.Y)
	}
}

func TestSunColorHardSwitch(t *testing.T) {
	if At(6).SunColor != sunLow {
		t.Fatal("sun color before 7 should use the low-angle tint")
	}
	if At(12).SunColor != sunDay {
		t.Fatal("sun color at noon should use the daytime tint")
	}
	if At(17.5).SunColor != sunLow {
		t.Fatal("sun color after 17 should use the low-angle tint")
	}
	if At(17).SunColor != sunDay {
		t.Fatal("hour 17 exactly is still daytime")
	}
}

func TestMoonColorConstant(t *testing.T) {
	if At(2).MoonColor != At(22).MoonColor {
		t.Fatal("moon color must not vary with the clock")
	}
}

func TestOutOfRangeHourClamped(t *testing.T) {
	if At(-3) != At(0) {
		t.Fatal("negative hours should clamp to 0")
	}
	if At(30) != At(24) {
		t.Fatal("hours above 24 should clamp to 24")
	}
	if At(math.NaN()) != At(0) {
		t.Fatal("NaN hours should clamp to 0")
	}
	snap := At(math.Inf(1))
	if snap != At(24) {
		t.Fatal("positive infinity should clamp to 24")
	}
}

func TestKeyframeTableOrderedAndWrapped(t *testing.T) {
	for i := 0; i+1 < len(keyframes); i++ {
		if keyframes[i].hour >= keyframes[i+1].hour {
			t.Fatalf("keyframes out of order at index %d", i)
		}
	}
	first, last := keyframes[0], keyframes[len(keyframes)-1]
	if first.hour != 0 || last.hour != 24 {
		t.Fatalf("keyframe table must span [0, 24], got [%v, %v]", first.hour, last.hour)
	}
	if first.top != last.top || first.bottom != last.bottom || first.tint != last.tint {
		t.Fatal("hour-24 keyframe must repeat hour 0 for wrap continuity")
	}
}

func TestClockAdvanceWraps(t *testing.T) {
	c := NewClock(23, time.Hour)
	// One hour of scene time is cycle/24 of wall time.
	c.Advance(time.Hour / 24 * 2)
	if got := c.Hour(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("clock hour after wrap = %v, want 1", got)
	}
}

func TestClockStoppedDoesNotAdvance(t *testing.T) {
	c := NewClock(12, time.Hour)
	if c.Running() {
		t.Fatal("new clock should start stopped")
	}
	c.Tick()
	if got := c.Hour(); got != 12 {
		t.Fatalf("stopped clock moved to %v", got)
	}
}
