package design

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
)

func TestDefaultValidates(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidateRejectsBadEnums(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*MaskConfig)
	}{
		{"shape", func(c *MaskConfig) { c.Shape = "dodecahedron" }},
		{"distribution", func(c *MaskConfig) { c.Distribution = "fibonacci" }},
		{"color mode", func(c *MaskConfig) { c.ColorMode = "plasma" }},
		{"zone", func(c *MaskConfig) { c.Zone = "forehead" }},
		{"negative density", func(c *MaskConfig) { c.Density = -1 }},
		{"zero head width", func(c *MaskConfig) { c.HeadWidth = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Density = 333
	cfg.Zone = surface.ZoneMandible
	cfg.Symmetry = false
	cfg.PrimaryColor = RGB{R: 0.1, G: 0.9, B: 0.4}

	doc := NewDocument(cfg)
	doc.Animations = map[string]AnimationDef{
		AnimOffset: {Active: true, Min: 0, Max: 0.1, Speed: 2},
	}

	path := filepath.Join(t.TempDir(), "design.yaml")
	require.NoError(t, doc.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, doc.ID, loaded.ID)
	assert.Equal(t, FormatTag, loaded.Format)
	assert.Equal(t, doc.Config, loaded.Config)
	assert.Equal(t, doc.Animations, loaded.Animations)
}

func TestLoadRejectsForeignDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	doc := NewDocument(Default())
	doc.Format = "not-a-mask"
	require.NoError(t, doc.Save(path))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "design.yaml")
	cfg := Default()
	cfg.Shape = "dodecahedron"
	require.NoError(t, NewDocument(cfg).Save(path))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDeriveRenderConfigInactiveIsIdentity(t *testing.T) {
	base := Default()
	anims := map[string]AnimationDef{
		AnimOffset: {Active: false, Min: 0, Max: 1, Speed: 1},
	}
	assert.Equal(t, base, DeriveRenderConfig(base, anims, 12.34))
}

func TestDeriveRenderConfigOscillates(t *testing.T) {
	base := Default()
	anims := map[string]AnimationDef{
		AnimOffset: {Active: true, Min: 0.1, Max: 0.3, Speed: 1},
	}

	// Triangle wave: t=0 at Min, t=1 at Max, t=2 back at Min.
	atMin := DeriveRenderConfig(base, anims, 0)
	atMax := DeriveRenderConfig(base, anims, 1)
	back := DeriveRenderConfig(base, anims, 2)

	assert.InDelta(t, 0.1, float64(atMin.Offset), 1e-5)
	assert.InDelta(t, 0.3, float64(atMax.Offset), 1e-5)
	assert.InDelta(t, 0.1, float64(back.Offset), 1e-5)

	// The base config is never mutated.
	assert.Equal(t, Default().Offset, base.Offset)
}

func TestDeriveRenderConfigDensityIsIntegral(t *testing.T) {
	base := Default()
	anims := map[string]AnimationDef{
		AnimDensity: {Active: true, Min: 10, Max: 200, Speed: 0.5},
	}
	derived := DeriveRenderConfig(base, anims, 0.37)
	assert.GreaterOrEqual(t, derived.Density, 10)
	assert.LessOrEqual(t, derived.Density, 200)
}

func TestHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float32
		want    RGB
	}{
		{"black", 0, 0.5, 0, RGB{0, 0, 0}},
		{"white", 0, 0.5, 1, RGB{1, 1, 1}},
		{"gray", 0.3, 0, 0.5, RGB{0.5, 0.5, 0.5}},
		{"red", 0, 1, 0.5, RGB{1, 0, 0}},
		{"green", 1.0 / 3.0, 1, 0.5, RGB{0, 1, 0}},
		{"blue", 2.0 / 3.0, 1, 0.5, RGB{0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSL(tt.h, tt.s, tt.l)
			assert.InDelta(t, float64(tt.want.R), float64(got.R), 1e-4)
			assert.InDelta(t, float64(tt.want.G), float64(got.G), 1e-4)
			assert.InDelta(t, float64(tt.want.B), float64(got.B), 1e-4)
		})
	}
}
