package placement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/snap"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

func baseConfig() design.MaskConfig {
	cfg := design.Default()
	cfg.Density = 100
	cfg.Distribution = design.DistributionGrid
	cfg.Zone = surface.ZoneFull
	cfg.Symmetry = false
	cfg.ScaleVar = 0.01
	return cfg
}

func TestGenerateReproducible(t *testing.T) {
	cfg := baseConfig()
	cfg.Distribution = design.DistributionRandom

	a := Generate(cfg, nil)
	b := Generate(cfg, nil)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Instances {
		assert.Equal(t, a.Instances[i].Position, b.Instances[i].Position, "instance %d", i)
		assert.Equal(t, a.Instances[i].Scale, b.Instances[i].Scale, "instance %d", i)
	}
}

func TestGenerateGridScenario(t *testing.T) {
	// 10x10 grid on the full zone: exactly one grid point per eye falls
	// inside the occlusion cutout, so the realized count is 98.
	set := Generate(baseConfig(), nil)
	assert.Equal(t, 98, set.Len())
}

func TestGenerateCountCap(t *testing.T) {
	for _, law := range []design.Distribution{
		design.DistributionGrid,
		design.DistributionSpiral,
		design.DistributionRandom,
	} {
		for _, sym := range []bool{false, true} {
			cfg := baseConfig()
			cfg.Distribution = law
			cfg.Symmetry = sym

			limit := cfg.Density
			if sym {
				limit *= 2
			}
			set := Generate(cfg, nil)
			assert.LessOrEqual(t, set.Len(), limit, "law %s symmetry %v", law, sym)
		}
	}
}

func TestGenerateSymmetryPairs(t *testing.T) {
	cfg := baseConfig()
	cfg.Symmetry = true
	cfg.Distribution = design.DistributionSpiral

	set := Generate(cfg, nil)
	require.True(t, set.Len() > 0)
	require.Equal(t, 0, set.Len()%2)

	for i := 0; i < set.Len(); i += 2 {
		inst := set.Instances[i]
		mirror := set.Instances[i+1]

		assert.Equal(t, inst.Position.MirrorX(), mirror.Position, "pair %d position", i/2)
		assert.Equal(t, inst.Normal.MirrorX(), mirror.Normal, "pair %d normal", i/2)
		assert.Equal(t, inst.Scale, mirror.Scale, "pair %d scale", i/2)
		assert.Equal(t, inst.Color, mirror.Color, "pair %d color", i/2)
	}
}

func TestGenerateOcularBandAvoidsEyeHoles(t *testing.T) {
	// Dense sampling of the ocular band: no accepted sample may resolve
	// from a parametric point inside either eye-hole disk. The check
	// re-derives each instance's (u,v) via the distribution law.
	cfg := baseConfig()
	cfg.Zone = surface.ZoneOcularBand
	cfg.Distribution = design.DistributionRandom
	cfg.Density = 5000

	accepted := 0
	for i := 0; i < cfg.Density; i++ {
		u, v, ok := sampleUV(cfg.Distribution, i, cfg.Density)
		require.True(t, ok)
		if !surface.Inside(u, v, cfg.Zone) || surface.InsideEyeCutout(u, v) {
			continue
		}
		accepted++
		for _, cu := range []float32{-0.4, 0.4} {
			du, dv := u-cu, v-0.35
			assert.GreaterOrEqual(t, du*du+dv*dv, float32(0.15*0.15),
				"accepted sample %d inside eye hole", i)
		}
	}

	set := Generate(cfg, nil)
	assert.Equal(t, accepted, set.Len())
}

func TestGenerateZeroDensity(t *testing.T) {
	cfg := baseConfig()
	cfg.Density = 0
	set := Generate(cfg, nil)
	assert.Equal(t, 0, set.Len())
}

func TestGenerateOffsetPushesAlongNormal(t *testing.T) {
	cfg := baseConfig()
	cfg.Offset = 0

	flush := Generate(cfg, nil)

	cfg.Offset = 0.1
	raised := Generate(cfg, nil)

	require.Equal(t, flush.Len(), raised.Len())
	for i := range flush.Instances {
		want := flush.Instances[i].Position.Add(flush.Instances[i].Normal.Scale(0.1))
		assert.InDelta(t, want.X, raised.Instances[i].Position.X, 1e-5)
		assert.InDelta(t, want.Y, raised.Instances[i].Position.Y, 1e-5)
		assert.InDelta(t, want.Z, raised.Instances[i].Position.Z, 1e-5)
	}
}

func TestGenerateSnapsToTargetMesh(t *testing.T) {
	// A single-vertex mesh forces every instance onto that vertex plus
	// its normal offset.
	vertex := xmath.Vec3{X: 0, Y: 0, Z: 2}
	mesh := snap.NewTargetMesh([]xmath.Vec3{vertex}, []xmath.Vec3{{X: 0, Y: 0, Z: 1}})

	cfg := baseConfig()
	cfg.Offset = 0.5
	cfg.Density = 9

	set := Generate(cfg, mesh)
	require.True(t, set.Len() > 0)
	for _, inst := range set.Instances {
		assert.Equal(t, xmath.Vec3{X: 0, Y: 0, Z: 2.5}, inst.Position)
	}
}

func TestGenerateOrientationMatchesNormal(t *testing.T) {
	set := Generate(baseConfig(), nil)
	require.True(t, set.Len() > 0)

	for i, inst := range set.Instances {
		rotated := inst.Rotation.Rotate(xmath.Vec3{Y: 1})
		assert.InDelta(t, float64(inst.Normal.X), float64(rotated.X), 1e-4, "instance %d", i)
		assert.InDelta(t, float64(inst.Normal.Y), float64(rotated.Y), 1e-4, "instance %d", i)
		assert.InDelta(t, float64(inst.Normal.Z), float64(rotated.Z), 1e-4, "instance %d", i)
	}
}

func TestGenerateColorModes(t *testing.T) {
	t.Run("solid", func(t *testing.T) {
		cfg := baseConfig()
		cfg.ColorMode = design.ColorSolid
		set := Generate(cfg, nil)
		for _, inst := range set.Instances {
			assert.Equal(t, cfg.PrimaryColor, inst.Color)
		}
	})

	t.Run("normal", func(t *testing.T) {
		cfg := baseConfig()
		cfg.ColorMode = design.ColorNormal
		set := Generate(cfg, nil)
		for _, inst := range set.Instances {
			assert.InDelta(t, float64((inst.Normal.X+1)/2), float64(inst.Color.R), 1e-5)
			assert.InDelta(t, float64((inst.Normal.Y+1)/2), float64(inst.Color.G), 1e-5)
			assert.InDelta(t, float64((inst.Normal.Z+1)/2), float64(inst.Color.B), 1e-5)
		}
	})

	t.Run("depth", func(t *testing.T) {
		cfg := baseConfig()
		cfg.ColorMode = design.ColorDepth
		set := Generate(cfg, nil)
		for _, inst := range set.Instances {
			assert.GreaterOrEqual(t, inst.Color.R, float32(0))
			assert.LessOrEqual(t, inst.Color.R, float32(1))
		}
	})
}

func TestGenerateRestTransformComposition(t *testing.T) {
	set := Generate(baseConfig(), nil)
	require.True(t, set.Len() > 0)

	inst := set.Instances[0]
	assert.InDelta(t, float64(inst.Position.X), float64(inst.RestTransform.Translation().X), 1e-5)
	assert.InDelta(t, float64(inst.Position.Y), float64(inst.RestTransform.Translation().Y), 1e-5)
	assert.InDelta(t, float64(inst.Position.Z), float64(inst.RestTransform.Translation().Z), 1e-5)
}
