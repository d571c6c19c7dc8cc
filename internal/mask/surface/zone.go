package surface

import (
	"github.com/chewxy/math32"
	"github.com/paulmach/orb"
)

// Zone names an anatomical sub-region of the parametric face domain.
type Zone string

// Placement zones.
const (
	ZoneFull       Zone = "full"
	ZoneOcularBand Zone = "ocular_band"
	ZoneFilterUnit Zone = "filter_unit"
	ZoneMandible   Zone = "mandible"
)

// Valid reports whether z is a known zone.
func (z Zone) Valid() bool {
	switch z {
	case ZoneFull, ZoneOcularBand, ZoneFilterUnit, ZoneMandible:
		return true
	}
	return false
}

// Rectangular zone extents in (u,v) space.
var (
	ocularBound = orb.Bound{Min: orb.Point{-0.85, 0.1}, Max: orb.Point{0.85, 0.6}}
	filterBound = orb.Bound{Min: orb.Point{-0.6, -0.8}, Max: orb.Point{0.6, -0.1}}
)

// Eye-hole cutouts carved out of the ocular band.
const (
	eyeHoleRadius = 0.15
	eyeHoleU      = 0.4
	eyeHoleV      = 0.35
)

// Eye-occlusion cutout. Applied by the placement engine on top of the
// Full and OcularBand zones so ornament never covers the eyes, whatever
// the zone shape.
const (
	eyeCutoutRadius = 0.12
	eyeCutoutU      = 0.35
	eyeCutoutV      = 0.35
)

// Inside reports whether (u,v) belongs to the zone. Pure predicate.
func Inside(u, v float32, z Zone) bool {
	switch z {
	case ZoneFull:
		return true

	case ZoneOcularBand:
		if !ocularBound.Contains(orb.Point{float64(u), float64(v)}) {
			return false
		}
		// Exclude both eye holes.
		return !withinDisk(u, v, -eyeHoleU, eyeHoleV, eyeHoleRadius) &&
			!withinDisk(u, v, eyeHoleU, eyeHoleV, eyeHoleRadius)

	case ZoneFilterUnit:
		return filterBound.Contains(orb.Point{float64(u), float64(v)})

	case ZoneMandible:
		return v < -0.4 || (math32.Abs(u) > 0.7 && v < 0)
	}
	return false
}

// InsideEyeCutout reports whether (u,v) falls in the global eye-occlusion
// cutout around either eye center.
func InsideEyeCutout(u, v float32) bool {
	return withinDisk(u, v, -eyeCutoutU, eyeCutoutV, eyeCutoutRadius) ||
		withinDisk(u, v, eyeCutoutU, eyeCutoutV, eyeCutoutRadius)
}

func withinDisk(u, v, cu, cv, r float32) bool {
	du := u - cu
	dv := v - cv
	return du*du+dv*dv < r*r
}
