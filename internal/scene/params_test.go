package scene

import (
	"math"
	"testing"
)

func TestNormalizedFloorsNegativeCount(t *testing.T) {
	p := Defaults()
	p.ParticleCount = -5
	if got := p.Normalized().ParticleCount; got != 0 {
		t.Fatalf("particle count = %d, want 0", got)
	}
}

func TestNormalizedSwapsSizeBounds(t *testing.T) {
	p := Defaults()
	p.MinSize, p.MaxSize = 6, 2
	n := p.Normalized()
	if n.MinSize != 2 || n.MaxSize != 6 {
		t.Fatalf("size bounds = [%v, %v], want [2, 6]", n.MinSize, n.MaxSize)
	}
}

func TestNormalizedClampsRanges(t *testing.T) {
	p := Defaults()
	p.Opacity = 1.7
	p.WindSpeed = -40
	p.SparkleIntensity = 9
	n := p.Normalized()
	if n.Opacity != 1 {
		t.Fatalf("opacity = %v, want 1", n.Opacity)
	}
	if n.WindSpeed != -MaxWindSpeed {
		t.Fatalf("wind speed = %v, want %v", n.WindSpeed, -MaxWindSpeed)
	}
	if n.SparkleIntensity != 1 {
		t.Fatalf("sparkle = %v, want 1", n.SparkleIntensity)
	}
}

func TestNormalizedWrapsTimeOfDay(t *testing.T) {
	p := Defaults()
	p.TimeOfDay = 25
	if got := p.Normalized().TimeOfDay; got != 1 {
		t.Fatalf("time of day 25 wrapped to %v, want 1", got)
	}
	p.TimeOfDay = -1
	if got := p.Normalized().TimeOfDay; got != 23 {
		t.Fatalf("time of day -1 wrapped to %v, want 23", got)
	}
}

func TestNormalizedRepairsNonFinite(t *testing.T) {
	def := Defaults()
	p := def
	p.FallSpeed = math.NaN()
	p.TimeOfDay = math.Inf(-1)
	p.Color = ""
	n := p.Normalized()
	if n.FallSpeed != def.FallSpeed {
		t.Fatalf("fall speed = %v, want default %v", n.FallSpeed, def.FallSpeed)
	}
	if n.TimeOfDay != def.TimeOfDay {
		t.Fatalf("time of day = %v, want default %v", n.TimeOfDay, def.TimeOfDay)
	}
	if n.Color != def.Color {
		t.Fatalf("color = %q, want default %q", n.Color, def.Color)
	}
}

func TestDefaultsAreNormalized(t *testing.T) {
	def := Defaults()
	if def != def.Normalized() {
		t.Fatal("defaults must already satisfy their own constraints")
	}
}
