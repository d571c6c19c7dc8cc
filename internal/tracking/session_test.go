package tracking

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/binding"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// flakySource fails acquisition or frames on demand.
type flakySource struct {
	acquireErr error
	frameErr   error
	released   int
	detected   bool
}

func (f *flakySource) Acquire() error { return f.acquireErr }

func (f *flakySource) Frame() (Snapshot, error) {
	if f.frameErr != nil {
		return Snapshot{}, f.frameErr
	}
	if !f.detected {
		return Snapshot{}, nil
	}
	return Snapshot{
		Landmarks:    sampleRestCloud(),
		HeadDetected: true,
	}, nil
}

func (f *flakySource) Release() error {
	f.released++
	return nil
}

func testEngine(t *testing.T) *binding.Engine {
	t.Helper()
	cfg := design.Default()
	cfg.Density = 30
	cfg.Distribution = design.DistributionGrid
	cfg.Zone = surface.ZoneFull
	cfg.Symmetry = false
	return binding.New(placement.Generate(cfg, nil))
}

func TestSyntheticSourceContract(t *testing.T) {
	src := NewSyntheticSource()
	require.NoError(t, src.Acquire())

	snap, err := src.Frame()
	require.NoError(t, err)
	assert.True(t, snap.HeadDetected)
	assert.Len(t, snap.Landmarks, LandmarkCount)
	assert.NotNil(t, snap.HeadPose)
	require.NoError(t, src.Release())
}

func TestSyntheticSourceSwayMovesCloud(t *testing.T) {
	now := time.Unix(0, 0)
	src := NewSyntheticSource()
	src.Sway = xmath.Vec3{X: 0.5}
	src.SwaySpeed = 1
	src.Now = func() time.Time { return now }

	require.NoError(t, src.Acquire())
	first, err := src.Frame()
	require.NoError(t, err)

	now = now.Add(500 * time.Millisecond)
	second, err := src.Frame()
	require.NoError(t, err)

	assert.NotEqual(t, first.Landmarks[0], second.Landmarks[0])
	// Rigid sway: every landmark moves by the same offset.
	delta := second.Landmarks[0].Sub(first.Landmarks[0])
	for i := range first.Landmarks {
		got := second.Landmarks[i].Sub(first.Landmarks[i])
		assert.InDelta(t, float64(delta.X), float64(got.X), 1e-5)
	}
}

func TestSessionBindsAndTracks(t *testing.T) {
	src := &flakySource{detected: true}
	engine := testEngine(t)
	s := NewSession(src, engine)

	require.NoError(t, s.Start())
	transforms := s.Tick()
	assert.True(t, engine.Bound())
	assert.NotEmpty(t, transforms)
	require.NoError(t, s.Close())
}

func TestSessionFaceLossUnbinds(t *testing.T) {
	src := &flakySource{detected: true}
	engine := testEngine(t)
	s := NewSession(src, engine)
	require.NoError(t, s.Start())
	defer s.Close()

	s.Tick()
	require.True(t, engine.Bound())

	src.detected = false
	s.Tick()
	assert.False(t, engine.Bound())

	// Re-acquired face binds again.
	src.detected = true
	s.Tick()
	assert.True(t, engine.Bound())
}

func TestSessionFrameErrorNonFatal(t *testing.T) {
	src := &flakySource{detected: true}
	engine := testEngine(t)
	s := NewSession(src, engine)
	require.NoError(t, s.Start())
	defer s.Close()

	s.Tick()
	src.frameErr = errors.New("inference wedged")
	transforms := s.Tick()

	assert.False(t, engine.Bound())
	assert.NotEmpty(t, transforms, "last known transforms persist through errors")
}

func TestSessionStartFailureTerminal(t *testing.T) {
	src := &flakySource{acquireErr: errors.New("no camera")}
	s := NewSession(src, testEngine(t))
	assert.Error(t, s.Start())
}

func TestSessionCloseReleasesOnceAndDropsBindings(t *testing.T) {
	src := &flakySource{detected: true}
	engine := testEngine(t)
	s := NewSession(src, engine)
	require.NoError(t, s.Start())
	s.Tick()
	require.True(t, engine.Bound())

	require.NoError(t, s.Close())
	assert.False(t, engine.Bound())
	assert.Equal(t, 1, src.released)

	// Idempotent.
	require.NoError(t, s.Close())
	assert.Equal(t, 1, src.released)
}

func TestReplaySourceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capture.yaml")
	capture := `format: cybermask-capture
frames:
  - detected: true
    landmarks:
      - [0.1, 0.2, 0.3]
      - [0.4, 0.5, 0.6]
  - detected: false
`
	require.NoError(t, os.WriteFile(path, []byte(capture), 0644))

	src, err := NewReplaySource(path)
	require.NoError(t, err)
	require.NoError(t, src.Acquire())

	first, err := src.Frame()
	require.NoError(t, err)
	assert.True(t, first.HeadDetected)
	require.Len(t, first.Landmarks, 2)
	assert.InDelta(t, 0.1, float64(first.Landmarks[0].X), 1e-6)

	second, err := src.Frame()
	require.NoError(t, err)
	assert.False(t, second.HeadDetected)

	// Off the end without looping: no face.
	third, err := src.Frame()
	require.NoError(t, err)
	assert.False(t, third.HeadDetected)
}

func TestReplaySourceRejectsForeignFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: something-else\n"), 0644))

	_, err := NewReplaySource(path)
	assert.Error(t, err)
}
