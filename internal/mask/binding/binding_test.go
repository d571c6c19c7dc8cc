package binding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

func testSet(t *testing.T) *placement.InstanceSet {
	t.Helper()
	cfg := design.Default()
	cfg.Density = 50
	cfg.Distribution = design.DistributionGrid
	cfg.Zone = surface.ZoneFull
	cfg.Symmetry = false
	set := placement.Generate(cfg, nil)
	require.True(t, set.Len() > 0)
	return set
}

func testLandmarks() []xmath.Vec3 {
	// A coarse cloud around the head volume.
	var cloud []xmath.Vec3
	for x := float32(-0.6); x <= 0.6; x += 0.3 {
		for y := float32(-1); y <= 1; y += 0.4 {
			for z := float32(0.2); z <= 1.2; z += 0.5 {
				cloud = append(cloud, xmath.Vec3{X: x, Y: y, Z: z})
			}
		}
	}
	return cloud
}

func translated(cloud []xmath.Vec3, delta xmath.Vec3) []xmath.Vec3 {
	out := make([]xmath.Vec3, len(cloud))
	for i, p := range cloud {
		out[i] = p.Add(delta)
	}
	return out
}

func TestBindOnFirstNonEmptyCloud(t *testing.T) {
	e := New(testSet(t))
	assert.False(t, e.Bound())
	assert.Nil(t, e.Anchors())

	e.Observe(testLandmarks())
	assert.True(t, e.Bound())
	assert.NotNil(t, e.Anchors())
}

func TestBindChoosesNearestLandmark(t *testing.T) {
	set := testSet(t)
	cloud := testLandmarks()

	e := New(set)
	e.Observe(cloud)

	for _, a := range e.Anchors() {
		rest := set.Instances[a.InstanceIndex].Position
		chosen := rest.DistanceSq(cloud[a.LandmarkIndex])
		for _, lm := range cloud {
			assert.LessOrEqual(t, chosen, lm.DistanceSq(rest)+1e-6)
		}
		// offset = rest - landmark, exactly.
		assert.Equal(t, rest.Sub(cloud[a.LandmarkIndex]), a.Offset)
	}
}

func TestBindingStableAcrossFrames(t *testing.T) {
	e := New(testSet(t))
	rest := testLandmarks()
	e.Observe(rest)

	first := make([]AnchorBinding, len(e.Anchors()))
	copy(first, e.Anchors())

	// Subsequent frames with moving landmarks must not re-bind, even
	// when motion changes which landmark is nearest.
	for i := 1; i <= 5; i++ {
		e.Observe(translated(rest, xmath.Vec3{X: float32(i) * 0.3}))
	}
	assert.Equal(t, first, e.Anchors())
}

func TestUpdatePureTranslation(t *testing.T) {
	set := testSet(t)
	e := New(set)
	rest := testLandmarks()
	e.Observe(rest)

	delta := xmath.Vec3{X: 0.25, Y: -0.1, Z: 0.4}
	transforms := e.Observe(translated(rest, delta))

	require.Equal(t, set.Len(), len(transforms))
	for i, tr := range transforms {
		want := set.Instances[i].Position.Add(delta)
		assert.InDelta(t, float64(want.X), float64(tr.Position.X), 1e-5, "instance %d", i)
		assert.InDelta(t, float64(want.Y), float64(tr.Position.Y), 1e-5, "instance %d", i)
		assert.InDelta(t, float64(want.Z), float64(tr.Position.Z), 1e-5, "instance %d", i)

		// Rigid binding: rotation and scale held at rest pose.
		assert.Equal(t, set.Instances[i].Rotation, tr.Rotation)
		assert.Equal(t, set.Instances[i].Scale, tr.Scale)
	}
}

func TestFaceLossUnbindsAndKeepsLastTransforms(t *testing.T) {
	set := testSet(t)
	e := New(set)
	rest := testLandmarks()
	e.Observe(rest)

	delta := xmath.Vec3{Y: 0.5}
	moved := e.Observe(translated(rest, delta))
	lastPos := moved[0].Position

	// Zero faces detected: engine drops to Unbound but keeps emitting
	// the last known transforms.
	kept := e.Observe(nil)
	assert.False(t, e.Bound())
	require.Equal(t, set.Len(), len(kept))
	assert.Equal(t, lastPos, kept[0].Position)
}

func TestReacquireRebinds(t *testing.T) {
	e := New(testSet(t))
	rest := testLandmarks()
	e.Observe(rest)
	e.Observe(nil)
	require.False(t, e.Bound())

	// A shifted cloud on re-acquire produces a fresh bind against it.
	shifted := translated(rest, xmath.Vec3{X: 1})
	e.Observe(shifted)
	assert.True(t, e.Bound())
}

func TestRegenerationInvalidatesBindings(t *testing.T) {
	e := New(testSet(t))
	e.Observe(testLandmarks())
	require.True(t, e.Bound())

	e.SetInstances(testSet(t))
	assert.False(t, e.Bound())
	assert.Nil(t, e.Anchors())
}

func TestUpdateDoesNotReallocate(t *testing.T) {
	e := New(testSet(t))
	rest := testLandmarks()
	a := e.Observe(rest)
	b := e.Observe(translated(rest, xmath.Vec3{Z: 0.1}))
	assert.Equal(t, &a[0], &b[0], "transform buffer must be reused across frames")
}

func TestEmptyInstanceSet(t *testing.T) {
	e := New(&placement.InstanceSet{})
	transforms := e.Observe(testLandmarks())
	assert.True(t, e.Bound())
	assert.Len(t, transforms, 0)
}
