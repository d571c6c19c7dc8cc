// Package placement scatters ornament instances across the masked face
// surface and resolves each one to a final transform.
package placement

import (
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// OrnamentInstance is one placed ornament in its rest pose. Instances are
// immutable once generated; the whole set is replaced on any parameter
// change.
type OrnamentInstance struct {
	Position      xmath.Vec3
	Normal        xmath.Vec3
	Rotation      xmath.Quat
	Scale         float32
	Color         design.RGB
	RestTransform xmath.Mat4
}

// InstanceSet is the ordered batch of placed instances. The index is the
// stable identity used for GPU instance slots and anchor bindings, so
// order never changes after generation.
type InstanceSet struct {
	Instances []OrnamentInstance
}

// Len returns the realized instance count.
func (s *InstanceSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Instances)
}

// RestPositions returns the rest position of every instance, in order.
func (s *InstanceSet) RestPositions() []xmath.Vec3 {
	out := make([]xmath.Vec3, len(s.Instances))
	for i, inst := range s.Instances {
		out[i] = inst.Position
	}
	return out
}
