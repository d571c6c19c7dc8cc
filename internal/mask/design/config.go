// Package design defines the mask design configuration, its animation
// overlay, and the persisted design document format.
package design

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
)

// Shape selects an ornament primitive from the fixed palette.
type Shape string

// Ornament shapes.
const (
	ShapeSphere Shape = "sphere"
	ShapeSpike  Shape = "spike"
	ShapeStud   Shape = "stud"
	ShapeShard  Shape = "shard"
	ShapeRing   Shape = "ring"
)

// ParseShape validates a shape name.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeSphere, ShapeSpike, ShapeStud, ShapeShard, ShapeRing:
		return Shape(s), nil
	}
	return "", fmt.Errorf("unknown shape %q", s)
}

// Distribution selects the parametric sampling pattern.
type Distribution string

// Distribution laws.
const (
	DistributionGrid   Distribution = "grid"
	DistributionSpiral Distribution = "spiral"
	DistributionRandom Distribution = "random"
)

// ParseDistribution validates a distribution name.
func ParseDistribution(s string) (Distribution, error) {
	switch Distribution(s) {
	case DistributionGrid, DistributionSpiral, DistributionRandom:
		return Distribution(s), nil
	}
	return "", fmt.Errorf("unknown distribution %q", s)
}

// ColorMode selects how per-instance colors are derived.
type ColorMode string

// Color modes.
const (
	ColorSolid  ColorMode = "solid"
	ColorDepth  ColorMode = "depth"
	ColorNormal ColorMode = "normal"
)

// ParseColorMode validates a color mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch ColorMode(s) {
	case ColorSolid, ColorDepth, ColorNormal:
		return ColorMode(s), nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// RGB is a color with components in [0,1].
type RGB struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// HSL converts hue/saturation/lightness (each in [0,1]) to RGB.
func HSL(h, s, l float32) RGB {
	if s == 0 {
		return RGB{l, l, l}
	}

	var q float32
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueChannel(p, q, h+1.0/3.0),
		G: hueChannel(p, q, h),
		B: hueChannel(p, q, h-1.0/3.0),
	}
}

func hueChannel(p, q, t float32) float32 {
	t = math32.Mod(t+1, 1)
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// Material holds the PBR parameters handed to the render sink along with
// the merged ornament geometry.
type Material struct {
	Roughness float32 `yaml:"roughness"`
	Metalness float32 `yaml:"metalness"`
	BaseColor RGB     `yaml:"base_color"`
}

// MaskConfig is the full generation parameter set. Any field change
// invalidates the current instance set and triggers regeneration.
type MaskConfig struct {
	Shape        Shape        `yaml:"shape"`
	Density      int          `yaml:"density"`
	Distribution Distribution `yaml:"distribution"`
	Zone         surface.Zone `yaml:"zone"`
	HeadWidth    float32      `yaml:"head_width"`
	Offset       float32      `yaml:"offset"`
	ScaleBase    float32      `yaml:"scale_base"`
	ScaleVar     float32      `yaml:"scale_var"`
	Symmetry     bool         `yaml:"symmetry"`
	ColorMode    ColorMode    `yaml:"color_mode"`
	PrimaryColor RGB          `yaml:"primary_color"`
	Material     Material     `yaml:"material"`
}

// Default returns a MaskConfig with sensible default values.
func Default() MaskConfig {
	return MaskConfig{
		Shape:        ShapeSpike,
		Density:      220,
		Distribution: DistributionSpiral,
		Zone:         surface.ZoneFull,
		HeadWidth:    1.0,
		Offset:       0.02,
		ScaleBase:    0.035,
		ScaleVar:     0.02,
		Symmetry:     true,
		ColorMode:    ColorSolid,
		PrimaryColor: RGB{R: 0.95, G: 0.12, B: 0.55},
		Material: Material{
			Roughness: 0.25,
			Metalness: 0.85,
			BaseColor: RGB{R: 0.08, G: 0.08, B: 0.1},
		},
	}
}

// Validate checks enum fields and numeric ranges.
func (c MaskConfig) Validate() error {
	if _, err := ParseShape(string(c.Shape)); err != nil {
		return err
	}
	if _, err := ParseDistribution(string(c.Distribution)); err != nil {
		return err
	}
	if _, err := ParseColorMode(string(c.ColorMode)); err != nil {
		return err
	}
	if !c.Zone.Valid() {
		return fmt.Errorf("unknown zone %q", c.Zone)
	}
	if c.Density < 0 {
		return fmt.Errorf("density must be non-negative, got %d", c.Density)
	}
	if c.HeadWidth <= 0 {
		return fmt.Errorf("head width must be positive, got %v", c.HeadWidth)
	}
	return nil
}
