package ornament

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"go.uber.org/zap"

	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/logger"
	"github.com/mehmeterenozyoldas-maker/Fashion-design-XR-make-tool-Cyperpunk/internal/mask/design"
)

// DefaultResolution is the marching cubes cell count used by the app.
// Shapes are unit-sized and instanced, so a modest resolution is enough.
const DefaultResolution = 48

// BuildShape composes and meshes one palette shape. All shapes are
// modeled around the origin with +Y as the outward axis and roughly unit
// extent; the placement transform supplies position, orientation, and
// scale.
func BuildShape(shape design.Shape, resolution int) (*Mesh, error) {
	solid, err := compose(shape)
	if err != nil {
		return nil, fmt.Errorf("composing shape %q: %w", shape, err)
	}

	m := meshSolid(solid, resolution)
	if m.TriangleCount() == 0 {
		return nil, fmt.Errorf("shape %q produced no triangles", shape)
	}
	return m, nil
}

// BuildShapeOrDefault is BuildShape with the fail-soft rule: a malformed
// composition logs and falls back to the default sphere rather than
// failing generation.
func BuildShapeOrDefault(shape design.Shape, resolution int) *Mesh {
	m, err := BuildShape(shape, resolution)
	if err == nil {
		return m
	}
	logger.Warn("shape build failed, using sphere",
		zap.String("shape", string(shape)),
		zap.Error(err),
	)

	m, err = BuildShape(design.ShapeSphere, resolution)
	if err != nil {
		// The sphere is a bare primitive; if even that fails the sdfx
		// kernel itself is broken.
		panic(fmt.Sprintf("ornament: default sphere failed: %v", err))
	}
	return m
}

func compose(shape design.Shape) (sdf.SDF3, error) {
	switch shape {
	case design.ShapeSphere:
		return sdf.Sphere3D(0.5)

	case design.ShapeSpike:
		// Tall cone, tip up.
		cone, err := sdf.Cone3D(1.0, 0.35, 0.02, 0)
		if err != nil {
			return nil, err
		}
		return rotateUpright(cone), nil

	case design.ShapeStud:
		// Flat cylinder base with a domed cap.
		base, err := sdf.Cylinder3D(0.3, 0.5, 0.05)
		if err != nil {
			return nil, err
		}
		dome, err := sdf.Sphere3D(0.4)
		if err != nil {
			return nil, err
		}
		dome = sdf.Transform3D(dome, sdf.Translate3d(v3.Vec{Y: 0.15}))
		return sdf.Union3D(rotateUpright(base), dome), nil

	case design.ShapeShard:
		// Elongated box twisted off-axis for a broken-glass look.
		box, err := sdf.Box3D(v3.Vec{X: 0.25, Y: 1.0, Z: 0.25}, 0.02)
		if err != nil {
			return nil, err
		}
		m := sdf.RotateY(0.6).Mul(sdf.RotateX(0.25))
		return sdf.Transform3D(box, m), nil

	case design.ShapeRing:
		// Annulus: outer cylinder minus an inner bore.
		outer, err := sdf.Cylinder3D(0.25, 0.5, 0)
		if err != nil {
			return nil, err
		}
		inner, err := sdf.Cylinder3D(0.3, 0.3, 0)
		if err != nil {
			return nil, err
		}
		return rotateUpright(sdf.Difference3D(outer, inner)), nil
	}

	return nil, fmt.Errorf("no composition for shape %q", shape)
}

// rotateUpright turns a Z-axis-aligned sdfx primitive onto the +Y
// ornament axis.
func rotateUpright(s sdf.SDF3) sdf.SDF3 {
	return sdf.Transform3D(s, sdf.RotateX(-math.Pi/2))
}
