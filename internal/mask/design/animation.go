package design

import "github.com/chewxy/math32"

// AnimationDef oscillates one scalar config field between Min and Max.
// It never mutates the stored config; DeriveRenderConfig computes a
// per-frame view instead.
type AnimationDef struct {
	Active bool    `yaml:"active"`
	Min    float32 `yaml:"min"`
	Max    float32 `yaml:"max"`
	Speed  float32 `yaml:"speed"`
}

// Animatable field keys. They match the yaml names of the MaskConfig
// scalars they drive.
const (
	AnimHeadWidth = "head_width"
	AnimOffset    = "offset"
	AnimScaleBase = "scale_base"
	AnimScaleVar  = "scale_var"
	AnimDensity   = "density"
)

// value returns the triangle-wave oscillation at time t (seconds).
func (a AnimationDef) value(t float64) float32 {
	phase := math32.Mod(float32(t)*a.Speed, 2)
	tri := 1 - math32.Abs(phase-1)
	return a.Min + (a.Max-a.Min)*tri
}

// DeriveRenderConfig returns the config the placement engine should
// consume this frame: base with every active animation applied. The base
// config is returned unchanged when no animation is active.
func DeriveRenderConfig(base MaskConfig, anims map[string]AnimationDef, t float64) MaskConfig {
	derived := base
	for key, a := range anims {
		if !a.Active {
			continue
		}
		switch key {
		case AnimHeadWidth:
			derived.HeadWidth = a.value(t)
		case AnimOffset:
			derived.Offset = a.value(t)
		case AnimScaleBase:
			derived.ScaleBase = a.value(t)
		case AnimScaleVar:
			derived.ScaleVar = a.value(t)
		case AnimDensity:
			derived.Density = int(a.value(t))
		}
	}
	return derived
}
