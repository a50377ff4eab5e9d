package scene

import "math"

// Parameter bounds shared by normalization, HUD controls, and the
// interpretation boundary.
const (
	MaxParticleCount = 5000

	MinParticleSize = 0.25
	MaxParticleSize = 12.0

	MinFallSpeed = -10.0
	MaxFallSpeed = 10.0

	MaxWindSpeed = 15.0

	MaxMotionStretch = 5.0
)

// Params is the full simulation parameter set. It is a value type: updates
// construct a new value and publish it wholesale, never field-by-field.
type Params struct {
	ParticleCount    int     `yaml:"particleCount" json:"particleCount"`
	MinSize          float64 `yaml:"minSize" json:"minSize"`
	MaxSize          float64 `yaml:"maxSize" json:"maxSize"`
	FallSpeed        float64 `yaml:"fallSpeed" json:"fallSpeed"`
	WindSpeed        float64 `yaml:"windSpeed" json:"windSpeed"`
	Opacity          float64 `yaml:"opacity" json:"opacity"`
	Color            string  `yaml:"color" json:"color"`
	MotionStretch    float64 `yaml:"motionStretch" json:"motionStretch"`
	SparkleIntensity float64 `yaml:"sparkleIntensity" json:"sparkleIntensity"`
	TimeOfDay        float64 `yaml:"timeOfDay" json:"timeOfDay"`
}

// Defaults returns the documented default parameter set. The interpretation
// boundary fills omitted fields from these values.
func Defaults() Params {
	return Params{
		ParticleCount:    180,
		MinSize:          1,
		MaxSize:          4,
		FallSpeed:        1.2,
		WindSpeed:        0.5,
		Opacity:          0.8,
		Color:            "#ffffff",
		MotionStretch:    0,
		SparkleIntensity: 0,
		TimeOfDay:        21,
	}
}

// Normalized returns a copy of p with every field forced into its documented
// range. A negative particle count floors to zero, swapped size bounds are
// reordered, and the time of day wraps at the 24-hour boundary. Normalization
// never fails; unusable values fall back to defaults.
func (p Params) Normalized() Params {
	def := Defaults()

	if p.ParticleCount < 0 {
		p.ParticleCount = 0
	}
	if p.ParticleCount > MaxParticleCount {
		p.ParticleCount = MaxParticleCount
	}

	p.MinSize = finiteClamp(p.MinSize, MinParticleSize, MaxParticleSize, def.MinSize)
	p.MaxSize = finiteClamp(p.MaxSize, MinParticleSize, MaxParticleSize, def.MaxSize)
	if p.MinSize > p.MaxSize {
		p.MinSize, p.MaxSize = p.MaxSize, p.MinSize
	}

	p.FallSpeed = finiteClamp(p.FallSpeed, MinFallSpeed, MaxFallSpeed, def.FallSpeed)
	p.WindSpeed = finiteClamp(p.WindSpeed, -MaxWindSpeed, MaxWindSpeed, def.WindSpeed)
	p.Opacity = finiteClamp(p.Opacity, 0, 1, def.Opacity)
	p.MotionStretch = finiteClamp(p.MotionStretch, 0, MaxMotionStretch, 0)
	p.SparkleIntensity = finiteClamp(p.SparkleIntensity, 0, 1, 0)

	if p.Color == "" {
		p.Color = def.Color
	}

	if math.IsNaN(p.TimeOfDay) || math.IsInf(p.TimeOfDay, 0) {
		p.TimeOfDay = def.TimeOfDay
	} else {
		p.TimeOfDay = math.Mod(p.TimeOfDay, 24)
		if p.TimeOfDay < 0 {
			p.TimeOfDay += 24
		}
	}
	return p
}

// poolShape extracts the fields whose change requires pool reconciliation.
func (p Params) poolShape() (int, float64, float64) {
	return p.ParticleCount, p.MinSize, p.MaxSize
}

func finiteClamp(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
