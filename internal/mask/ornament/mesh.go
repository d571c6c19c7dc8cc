// Package ornament builds the merged triangle geometry for the ornament
// shape palette. Shapes are composed as signed distance fields and meshed
// once per configuration change; instancing handles the per-placement
// transforms.
package ornament

import (
	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// Mesh is triangle geometry ready for GPU upload.
type Mesh struct {
	Positions []xmath.Vec3
	Normals   []xmath.Vec3
	Indices   []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// meshSolid tessellates an SDF by marching cubes at the given resolution
// (cells across the longest bounding-box axis). Flat shading: vertices
// are not shared, each triangle carries its face normal.
func meshSolid(s sdf.SDF3, cells int) *Mesh {
	triangles := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	m := &Mesh{
		Positions: make([]xmath.Vec3, 0, len(triangles)*3),
		Normals:   make([]xmath.Vec3, 0, len(triangles)*3),
		Indices:   make([]uint32, 0, len(triangles)*3),
	}

	for _, tri := range triangles {
		n := tri.Normal()
		normal := xmath.Vec3{X: float32(n.X), Y: float32(n.Y), Z: float32(n.Z)}.Normalize()
		if normal == (xmath.Vec3{}) {
			// Marching cubes can emit slivers; drop them.
			continue
		}

		for j := 0; j < 3; j++ {
			v := tri[j]
			m.Indices = append(m.Indices, uint32(len(m.Positions)))
			m.Positions = append(m.Positions, xmath.Vec3{
				X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z),
			})
			m.Normals = append(m.Normals, normal)
		}
	}

	return m
}
