package tracking

import (
	"time"

	"github.com/chewxy/math32"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/surface"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// SyntheticSource generates a landmark cloud by sampling the analytic
// head surface, optionally swaying it over time. It stands in for the
// camera + detector pipeline in the preview and in tests.
type SyntheticSource struct {
	// Sway is the translation amplitude per axis; zero means a static
	// cloud.
	Sway xmath.Vec3
	// SwaySpeed is in radians per second.
	SwaySpeed float32
	// Now overrides the clock (tests); nil uses time.Now.
	Now func() time.Time

	rest     []xmath.Vec3
	start    time.Time
	acquired bool
}

// NewSyntheticSource builds a source with a head-local rest cloud of
// LandmarkCount points.
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{rest: sampleRestCloud()}
}

// sampleRestCloud distributes LandmarkCount points over the parametric
// face domain with a golden-angle spiral, matching the density profile
// of a detector's mesh without its exact topology.
func sampleRestCloud() []xmath.Vec3 {
	cloud := make([]xmath.Vec3, 0, LandmarkCount)
	for i := 0; i < LandmarkCount; i++ {
		angle := float32(i) * 2.39996
		r := math32.Sqrt(float32(i)) / math32.Sqrt(float32(LandmarkCount))
		u := r * math32.Cos(angle)
		v := r * math32.Sin(angle)
		cloud = append(cloud, surface.Evaluate(u, v, 1.0))
	}
	return cloud
}

// Acquire starts the source clock.
func (s *SyntheticSource) Acquire() error {
	s.start = s.now()
	s.acquired = true
	return nil
}

// Frame returns the swayed cloud. The rest cloud is never mutated; each
// frame allocates a fresh snapshot so consumers can hold on to it.
func (s *SyntheticSource) Frame() (Snapshot, error) {
	t := float32(s.now().Sub(s.start).Seconds()) * s.SwaySpeed
	offset := xmath.Vec3{
		X: s.Sway.X * math32.Sin(t),
		Y: s.Sway.Y * math32.Sin(t*0.7),
		Z: s.Sway.Z * math32.Sin(t*1.3),
	}

	landmarks := make([]xmath.Vec3, len(s.rest))
	for i, p := range s.rest {
		landmarks[i] = p.Add(offset)
	}

	pose := xmath.RotateY(0.15 * math32.Sin(t*0.5))

	return Snapshot{
		Landmarks:    landmarks,
		HeadDetected: true,
		HeadPose:     &pose,
	}, nil
}

// Release stops the source. Safe to call repeatedly.
func (s *SyntheticSource) Release() error {
	s.acquired = false
	return nil
}

func (s *SyntheticSource) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
