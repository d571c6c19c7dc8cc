// Package snap maps points onto the nearest sample of a target mesh and
// reconstructs normals for unstructured point clouds.
package snap

import "github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"

// TargetMesh is a snapping target: a vertex buffer with optional normals
// and a world transform. Vertices are stored in mesh-local space; Snap
// resolves everything in world space.
type TargetMesh struct {
	Vertices  []xmath.Vec3
	Normals   []xmath.Vec3 // empty when the source had none
	Transform xmath.Mat4
}

// NewTargetMesh builds a target with an identity transform.
func NewTargetMesh(vertices, normals []xmath.Vec3) *TargetMesh {
	return &TargetMesh{
		Vertices:  vertices,
		Normals:   normals,
		Transform: xmath.Identity(),
	}
}

// FromPointCloud builds a snapping target from a captured point cloud,
// estimating per-point normals from local neighborhoods.
func FromPointCloud(points []xmath.Vec3, transform xmath.Mat4) *TargetMesh {
	return &TargetMesh{
		Vertices:  points,
		Normals:   EstimateNormals(points),
		Transform: transform,
	}
}
