// Package surface implements the analytic head surface and the zone
// masks that partition its parametric domain.
//
// The surface maps (u,v) in [-1,1]x[-1,1] onto an ellipsoid-like head
// with sculpted features. Everything here is a pure function of its
// inputs; the placement engine relies on bit-reproducible results.
package surface

import (
	"github.com/chewxy/math32"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/pkg/xmath"
)

// Head proportions relative to headWidth.
const (
	widthFactor  = 0.55
	heightFactor = 1.10
	depthFactor  = 1.00
)

// Evaluate maps parametric coordinates to a point on the head surface.
// headWidth scales the lateral axis only. Sculpting terms are applied in
// a fixed order: nose bridge, brow ridge, cheekbones, chin.
func Evaluate(u, v, headWidth float32) xmath.Vec3 {
	theta := u * (math32.Pi / 1.6)
	phi := math32.Pi/2.5 + (v+1)/2*(-math32.Pi/3-math32.Pi/2.5)

	w := headWidth * widthFactor

	x := w * math32.Sin(theta) * math32.Cos(phi*0.5)
	y := -heightFactor * math32.Sin(phi)
	z := depthFactor * math32.Cos(theta) * math32.Cos(phi)

	// Nose bridge: radial falloff around (0, -0.15).
	noseDist := xmath.Vec2{X: u, Y: v + 0.15}.Length()
	if noseDist < 0.3 {
		t := 1 - noseDist/0.3
		z += 0.28 * t * t
	}

	// Brow ridge: cosine bump along v = 0.25.
	browDist := math32.Abs(v - 0.25)
	if browDist < 0.2 && math32.Abs(u) < 0.7 {
		z += 0.08 * math32.Cos(browDist*math32.Pi/0.4)
	}

	// Cheekbones: lateral and forward push around |u| = 0.55.
	if v > -0.5 && v < 0 {
		cheekDist := math32.Abs(math32.Abs(u) - 0.55)
		if cheekDist < 0.3 {
			bump := math32.Cos(cheekDist * math32.Pi / 0.6)
			if u < 0 {
				x -= 0.08 * bump
			} else {
				x += 0.08 * bump
			}
			z += 0.05 * bump
		}
	}

	// Chin: forward push and narrowing below v = -0.7.
	if v < -0.7 {
		z += 0.05
		x *= 0.8
	}

	return xmath.Vec3{X: x, Y: y, Z: z}
}

// ApproxNormal derives an outward normal for an analytically evaluated
// point. The head is roughly origin-centered, so a y-flattened direction
// toward the point serves as the normal; chin-tip points get a forward
// override because the flattened direction degenerates there.
func ApproxNormal(p xmath.Vec3, v float32) xmath.Vec3 {
	if v < -0.85 {
		return xmath.Vec3{Z: 1}
	}
	n := xmath.Vec3{X: p.X, Y: p.Y * 0.5, Z: p.Z}.Normalize()
	if n == (xmath.Vec3{}) {
		return xmath.Vec3{Z: 1}
	}
	return n
}
