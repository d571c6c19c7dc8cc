// Package tracking supplies facial landmark clouds to the binding engine
// and owns the session lifecycle around a landmark source.
package tracking

import "github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"

// LandmarkCount is the per-frame cloud size of the reference detector.
// Index position is the stable landmark identity across frames.
const LandmarkCount = 478

// Snapshot is one fully-formed, immutable landmark frame. Landmarks are
// head-local (head-center-relative, pre head-pose); HeadPose carries the
// separate rigid head transform for the renderer's parent frame.
type Snapshot struct {
	Landmarks    []xmath.Vec3
	HeadDetected bool
	HeadPose     *xmath.Mat4
}

// Source produces landmark snapshots. Implementations wrap a camera +
// inference pipeline, a recording, or a synthetic generator.
//
// Contract: landmark index i always denotes the same anatomical point;
// an empty landmark list implies HeadDetected == false; a returned
// Snapshot is never mutated afterward.
type Source interface {
	// Acquire claims the underlying device or data. It is called once
	// before the first Frame.
	Acquire() error

	// Frame returns the current snapshot. It never blocks on inference;
	// a frame with no face sets HeadDetected to false.
	Frame() (Snapshot, error)

	// Release frees the underlying resources. Safe to call more than
	// once.
	Release() error
}
