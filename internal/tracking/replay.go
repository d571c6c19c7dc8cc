package tracking

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// recordedFrame is one frame of a captured landmark session.
type recordedFrame struct {
	Detected  bool         `yaml:"detected"`
	Landmarks [][3]float32 `yaml:"landmarks,omitempty"`
}

// recording is the on-disk capture format.
type recording struct {
	Format string          `yaml:"format"`
	Frames []recordedFrame `yaml:"frames"`
}

// recordingFormatTag identifies a landmark capture file.
const recordingFormatTag = "cybermask-capture"

// ReplaySource plays back a recorded landmark session frame by frame.
// The playhead advances one frame per Frame call; past the end every
// frame reports no face.
type ReplaySource struct {
	frames []recordedFrame
	cursor int
	// Loop restarts playback instead of running off the end.
	Loop bool
}

// NewReplaySource loads a capture file.
func NewReplaySource(path string) (*ReplaySource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading capture %s: %w", path, err)
	}

	var rec recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing capture %s: %w", path, err)
	}
	if rec.Format != recordingFormatTag {
		return nil, fmt.Errorf("%s: not a landmark capture (format %q)", path, rec.Format)
	}

	return &ReplaySource{frames: rec.Frames}, nil
}

// Acquire rewinds playback.
func (r *ReplaySource) Acquire() error {
	r.cursor = 0
	return nil
}

// Frame returns the next recorded frame.
func (r *ReplaySource) Frame() (Snapshot, error) {
	if r.cursor >= len(r.frames) {
		if !r.Loop || len(r.frames) == 0 {
			return Snapshot{}, nil
		}
		r.cursor = 0
	}

	f := r.frames[r.cursor]
	r.cursor++

	if !f.Detected || len(f.Landmarks) == 0 {
		return Snapshot{}, nil
	}

	landmarks := make([]xmath.Vec3, len(f.Landmarks))
	for i, p := range f.Landmarks {
		landmarks[i] = xmath.Vec3{X: p[0], Y: p[1], Z: p[2]}
	}
	return Snapshot{Landmarks: landmarks, HeadDetected: true}, nil
}

// Release is a no-op; the recording is fully in memory.
func (r *ReplaySource) Release() error {
	return nil
}
