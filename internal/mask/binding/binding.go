// Package binding rigidly attaches placed ornament instances to a live
// facial landmark cloud and re-evaluates their transforms every frame.
//
// The engine is a two-state machine. Unbound: no anchor table; the first
// non-empty landmark cloud triggers the bind phase, which assigns every
// instance its nearest landmark once and fixes that topology for the
// session. Bound: each frame moves every instance by its landmark's
// motion; orientation and scale stay at rest-pose values (rigid
// translation-only skinning). Losing the face or regenerating the
// instance set drops back to Unbound.
//
// Landmarks handed to the engine must be in the same head-local frame as
// the instance rest positions. The engine never applies head pose; the
// renderer's parent transform is the sole owner of head rotation, so the
// two can never double-transform.
package binding

import (
	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/placement"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// AnchorBinding links one instance to one landmark with a persistent
// rest-pose offset.
type AnchorBinding struct {
	InstanceIndex int
	LandmarkIndex int
	Offset        xmath.Vec3
}

// InstanceTransform is the per-frame output for one instance.
type InstanceTransform struct {
	Position xmath.Vec3
	Rotation xmath.Quat
	Scale    float32
}

// Engine binds an instance set to a landmark stream.
type Engine struct {
	instances *placement.InstanceSet
	anchors   []AnchorBinding
	// transforms is reused across frames; Update rewrites it in place.
	transforms []InstanceTransform
	bound      bool
}

// New returns an engine in the Unbound state for the given instance set.
func New(set *placement.InstanceSet) *Engine {
	return &Engine{instances: set}
}

// Bound reports whether an anchor table is active.
func (e *Engine) Bound() bool {
	return e.bound
}

// Anchors returns the active anchor table (nil while Unbound). Callers
// must not mutate it.
func (e *Engine) Anchors() []AnchorBinding {
	if !e.bound {
		return nil
	}
	return e.anchors
}

// SetInstances swaps in a regenerated instance set. The old rest pose is
// gone, so all bindings are invalidated.
func (e *Engine) SetInstances(set *placement.InstanceSet) {
	e.instances = set
	e.Invalidate()
}

// Invalidate drops all anchor state and returns to Unbound. Last known
// transforms persist until the next bind so the renderer keeps drawing
// something sensible while the face is lost.
func (e *Engine) Invalidate() {
	if e.bound {
		logger.Debug("binding invalidated", zap.Int("anchors", len(e.anchors)))
	}
	e.anchors = nil
	e.bound = false
}

// Observe feeds one landmark snapshot to the engine and returns the
// current transforms. An empty cloud means no face: the engine drops to
// Unbound and the previous transforms persist. A non-empty cloud binds
// first if needed, then updates.
func (e *Engine) Observe(landmarks []xmath.Vec3) []InstanceTransform {
	if len(landmarks) == 0 {
		e.Invalidate()
		return e.transforms
	}
	if !e.bound {
		e.bind(landmarks)
	}
	return e.update(landmarks)
}

// bind runs the one-time nearest-landmark assignment against the rest
// pose. It fully replaces the anchor table before any update reads it.
func (e *Engine) bind(landmarks []xmath.Vec3) {
	n := e.instances.Len()
	anchors := make([]AnchorBinding, 0, n)

	for i, inst := range e.instances.Instances {
		best := 0
		bestDist := inst.Position.DistanceSq(landmarks[0])
		for j := 1; j < len(landmarks); j++ {
			if d := inst.Position.DistanceSq(landmarks[j]); d < bestDist {
				bestDist = d
				best = j
			}
		}
		anchors = append(anchors, AnchorBinding{
			InstanceIndex: i,
			LandmarkIndex: best,
			Offset:        inst.Position.Sub(landmarks[best]),
		})
	}

	e.anchors = anchors
	e.bound = true

	if e.transforms == nil || len(e.transforms) != n {
		e.transforms = make([]InstanceTransform, n)
	}

	logger.Info("instances bound to landmark cloud",
		zap.Int("instances", n),
		zap.Int("landmarks", len(landmarks)),
	)
}

// update recomputes one transform per instance from the current landmark
// positions. No allocation: the transform buffer is rewritten in place.
func (e *Engine) update(landmarks []xmath.Vec3) []InstanceTransform {
	for _, a := range e.anchors {
		inst := &e.instances.Instances[a.InstanceIndex]

		pos := inst.Position
		if a.LandmarkIndex < len(landmarks) {
			pos = landmarks[a.LandmarkIndex].Add(a.Offset)
		}

		e.transforms[a.InstanceIndex] = InstanceTransform{
			Position: pos,
			Rotation: inst.Rotation,
			Scale:    inst.Scale,
		}
	}
	return e.transforms
}
