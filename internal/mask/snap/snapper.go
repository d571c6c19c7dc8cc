package snap

import "github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"

// SurfaceSample is a resolved point on a surface with its outward normal,
// both in world space.
type SurfaceSample struct {
	Position xmath.Vec3
	Normal   xmath.Vec3
}

// strideTargetSamples bounds the number of vertices visited per query on
// dense meshes. The search stays approximate beyond this count.
const strideTargetSamples = 2000

// Snap returns the mesh sample nearest to target. The search walks the
// vertex buffer with a fixed stride so very dense scan meshes stay cheap;
// candidates are compared in world space. The winning normal goes through
// the transform's normal matrix and is renormalized.
//
// An empty mesh fails closed: the original target with a direction
// normal, so the caller still gets a usable sample.
func Snap(target xmath.Vec3, mesh *TargetMesh) SurfaceSample {
	if mesh == nil || len(mesh.Vertices) == 0 {
		return SurfaceSample{
			Position: target,
			Normal:   fallbackNormal(target),
		}
	}

	stride := len(mesh.Vertices) / strideTargetSamples
	if stride < 1 {
		stride = 1
	}

	bestIdx := 0
	bestDist := float32(-1)
	for i := 0; i < len(mesh.Vertices); i += stride {
		world := mesh.Transform.TransformPoint(mesh.Vertices[i])
		d := world.DistanceSq(target)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestIdx = i
		}
	}

	pos := mesh.Transform.TransformPoint(mesh.Vertices[bestIdx])

	var normal xmath.Vec3
	if bestIdx < len(mesh.Normals) {
		normal = mesh.Transform.NormalMatrix().
			TransformDirection(mesh.Normals[bestIdx]).
			Normalize()
	}
	if normal == (xmath.Vec3{}) {
		normal = fallbackNormal(pos)
	}

	return SurfaceSample{Position: pos, Normal: normal}
}

// fallbackNormal treats the point as a direction from the origin-centered
// head; the origin itself maps to forward.
func fallbackNormal(p xmath.Vec3) xmath.Vec3 {
	n := p.Normalize()
	if n == (xmath.Vec3{}) {
		return xmath.Vec3{Z: 1}
	}
	return n
}
