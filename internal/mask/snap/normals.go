package snap

import (
	"sort"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// neighborhoodSize is the number of nearest neighbors examined per point.
const neighborhoodSize = 6

// EstimateNormals reconstructs one outward normal per point of an
// unstructured cloud. Per point it gathers the k nearest neighbors by
// brute force, crosses the two nearest difference vectors, and flips the
// result away from the assumed origin-centered cloud.
//
// The O(n^2) search is only meant for captured landmark clouds of a few
// hundred points; larger inputs need a spatial index first.
func EstimateNormals(points []xmath.Vec3) []xmath.Vec3 {
	normals := make([]xmath.Vec3, len(points))

	type neighbor struct {
		idx  int
		dist float32
	}

	for i, p := range points {
		neighbors := make([]neighbor, 0, len(points)-1)
		for j, q := range points {
			if j == i {
				continue
			}
			neighbors = append(neighbors, neighbor{idx: j, dist: p.DistanceSq(q)})
		}

		// Two neighbors give a plane, but a cloud that small carries no
		// usable orientation; require a third point beyond the pair.
		if len(neighbors) < 3 {
			normals[i] = degenerateNormal(p)
			continue
		}

		sort.Slice(neighbors, func(a, b int) bool {
			return neighbors[a].dist < neighbors[b].dist
		})
		if len(neighbors) > neighborhoodSize {
			neighbors = neighbors[:neighborhoodSize]
		}

		a := points[neighbors[0].idx].Sub(p)
		b := points[neighbors[1].idx].Sub(p)
		n := a.Cross(b).Normalize()
		if n == (xmath.Vec3{}) {
			normals[i] = degenerateNormal(p)
			continue
		}

		// Orient outward: the cloud is assumed origin-centered, so the
		// point position doubles as the outward direction.
		if n.Dot(p) < 0 {
			n = n.Scale(-1)
		}
		normals[i] = n
	}

	return normals
}

func degenerateNormal(p xmath.Vec3) xmath.Vec3 {
	n := p.Normalize()
	if n == (xmath.Vec3{}) {
		return xmath.Vec3{Z: 1}
	}
	return n
}
