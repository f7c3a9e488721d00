package pointcloud

import "math"

// CylindricalPoint is one cloud point expressed relative to the structure's
// central vertical axis.
type CylindricalPoint struct {
	// Radius is the distance from the vertical axis.
	Radius float64

	// Angle is the position around the axis in radians, in (-pi, pi].
	Angle float64

	// Height is the vertical position normalized to [0, 1] over the
	// cloud's height range (0 = lowest point, 1 = highest).
	Height float64
}

// Cylindrical converts the cloud to centered cylindrical coordinates. The
// centroid is subtracted first so all angles and radii are relative to the
// structure's geometric center. The result has exactly one entry per cloud
// index, in the same order. An empty cloud yields an empty slice.
func Cylindrical(cloud Cloud) []CylindricalPoint {
	if len(cloud) == 0 {
		return nil
	}

	center := cloud.Centroid()

	zMin := math.Inf(1)
	zMax := math.Inf(-1)
	for _, p := range cloud {
		z := p.Z - center.Z
		if z < zMin {
			zMin = z
		}
		if z > zMax {
			zMax = z
		}
	}
	zRange := zMax - zMin
	if zRange <= 0 {
		// All points share one height; avoids dividing by zero below.
		zRange = 1
	}

	points := make([]CylindricalPoint, len(cloud))
	for i, p := range cloud {
		x := p.X - center.X
		y := p.Y - center.Y
		z := p.Z - center.Z

		points[i] = CylindricalPoint{
			Radius: math.Sqrt(x*x + y*y),
			Angle:  math.Atan2(y, x),
			Height: (z - zMin) / zRange,
		}
	}
	return points
}
