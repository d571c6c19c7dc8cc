package placement

import (
	"github.com/chewxy/math32"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/snap"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// goldenAngle drives the spiral distribution (radians).
const goldenAngle = 2.39996

// up is the canonical axis every ornament primitive is modeled along.
var up = xmath.Vec3{Y: 1}

// Generate produces the instance set for cfg. When mesh is non-nil each
// analytic sample is snapped onto the mesh surface; otherwise the
// analytic head provides both position and normal.
//
// Generation is deterministic: identical config and mesh state yield an
// identical set. Density is a soft target: zone and eye-cutout
// rejection mean the realized count is at most
// density * (2 if symmetry else 1). The returned set replaces any
// previous one wholesale, which invalidates existing anchor bindings.
func Generate(cfg design.MaskConfig, mesh *snap.TargetMesh) *InstanceSet {
	capacity := cfg.Density
	if cfg.Symmetry {
		capacity *= 2
	}
	set := &InstanceSet{Instances: make([]OrnamentInstance, 0, capacity)}

	for i := 0; i < cfg.Density; i++ {
		u, v, ok := sampleUV(cfg.Distribution, i, cfg.Density)
		if !ok {
			continue
		}

		if !surface.Inside(u, v, cfg.Zone) {
			continue
		}
		// The eye cutout guards zones whose shape does not already
		// exclude the eyes.
		if cfg.Zone == surface.ZoneFull || cfg.Zone == surface.ZoneOcularBand {
			if surface.InsideEyeCutout(u, v) {
				continue
			}
		}

		sample := resolve(u, v, cfg, mesh)
		pos := sample.Position.Add(sample.Normal.Scale(cfg.Offset))

		scale := cfg.ScaleBase + hash01(scaleSeed, float32(i))*cfg.ScaleVar
		color := deriveColor(cfg, pos, sample.Normal)

		set.Instances = append(set.Instances, newInstance(pos, sample.Normal, scale, color))

		if cfg.Symmetry {
			mp := pos.MirrorX()
			mn := sample.Normal.MirrorX()
			set.Instances = append(set.Instances, newInstance(mp, mn, scale, color))
		}
	}

	return set
}

// sampleUV computes the candidate parametric coordinate for index i
// under the chosen distribution law. ok is false for grid indices beyond
// the square layout.
func sampleUV(law design.Distribution, i, density int) (u, v float32, ok bool) {
	switch law {
	case design.DistributionGrid:
		dim := int(math32.Floor(math32.Sqrt(float32(density))))
		if dim < 1 || i >= dim*dim {
			return 0, 0, false
		}
		col := i % dim
		row := i / dim
		if dim == 1 {
			return 0, 0, true
		}
		u = float32(col)/float32(dim-1)*2 - 1
		v = float32(row)/float32(dim-1)*2 - 1
		return u, v, true

	case design.DistributionSpiral:
		angle := float32(i) * goldenAngle
		r := math32.Sqrt(float32(i)) / math32.Sqrt(float32(density))
		u = r * math32.Cos(angle)
		// Stretch v to counter the face domain's aspect ratio.
		v = r * math32.Sin(angle) * 1.2
		return u, v, true

	default: // DistributionRandom
		u = hashRange(distributionSeed, float32(2*i))
		v = hashRange(distributionSeed, float32(2*i+1))
		return u, v, true
	}
}

// resolve turns a parametric sample into a world position and normal,
// snapping onto the target mesh when one is present.
func resolve(u, v float32, cfg design.MaskConfig, mesh *snap.TargetMesh) snap.SurfaceSample {
	pos := surface.Evaluate(u, v, cfg.HeadWidth)
	if mesh != nil {
		return snap.Snap(pos, mesh)
	}
	return snap.SurfaceSample{
		Position: pos,
		Normal:   surface.ApproxNormal(pos, v),
	}
}

// depth-to-lightness mapping for the depth color mode.
const (
	depthRange    = 1.5
	depthHue      = 0.52 // fixed cyan hue
	depthSat      = 0.85
	depthMinLight = 0.2
	depthMaxLight = 1.0
)

func deriveColor(cfg design.MaskConfig, pos, normal xmath.Vec3) design.RGB {
	switch cfg.ColorMode {
	case design.ColorDepth:
		z := pos.Z
		if z < 0 {
			z = 0
		}
		if z > depthRange {
			z = depthRange
		}
		l := depthMinLight + z/depthRange*(depthMaxLight-depthMinLight)
		return design.HSL(depthHue, depthSat, l)

	case design.ColorNormal:
		return design.RGB{
			R: (normal.X + 1) / 2,
			G: (normal.Y + 1) / 2,
			B: (normal.Z + 1) / 2,
		}

	default:
		return cfg.PrimaryColor
	}
}

func newInstance(pos, normal xmath.Vec3, scale float32, color design.RGB) OrnamentInstance {
	rot := xmath.QuatBetween(up, normal)
	transform := xmath.Translate(pos.X, pos.Y, pos.Z).
		Mul(rot.ToMat4()).
		Mul(xmath.Scale(scale, scale, scale))

	return OrnamentInstance{
		Position:      pos,
		Normal:        normal,
		Rotation:      rot,
		Scale:         scale,
		Color:         color,
		RestTransform: transform,
	}
}
