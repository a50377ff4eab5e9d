package scene

import (
	"strconv"

	"snowglobe/internal/core"
)

// Parameters exposes the current parameter set for HUD presentation.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.store.Params()
	groups := []core.ParameterGroup{
		{
			Name: "Precipitation",
			Params: []core.Parameter{
				intParam("particle_count", "Particles", p.ParticleCount),
				floatParam("min_size", "Min size", p.MinSize),
				floatParam("max_size", "Max size", p.MaxSize),
				floatParam("opacity", "Opacity", p.Opacity),
				stringParam("color", "Color", p.Color),
			},
		},
		{
			Name: "Motion",
			Params: []core.Parameter{
				floatParam("fall_speed", "Fall speed", p.FallSpeed),
				floatParam("wind_speed", "Wind speed", p.WindSpeed),
				floatParam("motion_stretch", "Stretch", p.MotionStretch),
				floatParam("sparkle_intensity", "Sparkle", p.SparkleIntensity),
			},
		},
		{
			Name: "Sky",
			Params: []core.Parameter{
				floatParam("time_of_day", "Time of day", p.TimeOfDay),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable parameters with their steps and
// bounds.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("particle_count", "Particles", 25, 0, MaxParticleCount),
		floatControl("min_size", "Min size", 0.25, MinParticleSize, MaxParticleSize),
		floatControl("max_size", "Max size", 0.25, MinParticleSize, MaxParticleSize),
		floatControl("fall_speed", "Fall speed", 0.2, MinFallSpeed, MaxFallSpeed),
		floatControl("wind_speed", "Wind speed", 0.5, -MaxWindSpeed, MaxWindSpeed),
		floatControl("opacity", "Opacity", 0.05, 0, 1),
		floatControl("motion_stretch", "Stretch", 0.25, 0, MaxMotionStretch),
		floatControl("sparkle_intensity", "Sparkle", 0.05, 0, 1),
		floatControl("time_of_day", "Time of day", 0.5, 0, 24),
	}
}

// SetIntParameter publishes a full parameter set with the keyed integer field
// replaced. Unknown keys report false.
func (w *World) SetIntParameter(key string, value int) bool {
	if key != "particle_count" {
		return false
	}
	p := w.store.Params()
	p.ParticleCount = value
	w.Publish(p)
	return true
}

// SetFloatParameter publishes a full parameter set with the keyed float field
// replaced. Unknown keys report false.
func (w *World) SetFloatParameter(key string, value float64) bool {
	p := w.store.Params()
	switch key {
	case "min_size":
		p.MinSize = value
	case "max_size":
		p.MaxSize = value
	case "fall_speed":
		p.FallSpeed = value
	case "wind_speed":
		p.WindSpeed = value
	case "opacity":
		p.Opacity = value
	case "motion_stretch":
		p.MotionStretch = value
	case "sparkle_intensity":
		p.SparkleIntensity = value
	case "time_of_day":
		p.TimeOfDay = value
	default:
		return false
	}
	w.Publish(p)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}

func intControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeInt,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}

func floatControl(key, label string, step, min, max float64) core.ParameterControl {
	return core.ParameterControl{
		Key: key, Label: label, Type: core.ParamTypeFloat,
		Step: step, Min: min, Max: max, HasMin: true, HasMax: true,
	}
}
