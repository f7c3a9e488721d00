package pointcloud

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r3"
)

// ConeSpiral generates a synthetic cloud of n points wound around a cone,
// imitating a light string wrapped from base to tip. baseRadius is the
// radius at the bottom, height the vertical extent, turns the number of
// full wraps, and jitter the maximum random offset applied per axis so
// the points are irregular like a real installation. The generator is
// deterministic for a given rng.
func ConeSpiral(n int, turns, baseRadius, height, jitter float64, rng *rand.Rand) Cloud {
	if n <= 0 {
		return Cloud{}
	}

	cloud := make(Cloud, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		angle := t * turns * 2 * math.Pi
		// The cone narrows linearly towards the tip.
		radius := baseRadius * (1 - t)

		p := r3.Vector{
			X: radius * math.Cos(angle),
			Y: radius * math.Sin(angle),
			Z: t * height,
		}
		if jitter > 0 {
			p.X += (rng.Float64()*2 - 1) * jitter
			p.Y += (rng.Float64()*2 - 1) * jitter
			p.Z += (rng.Float64()*2 - 1) * jitter
		}
		cloud = append(cloud, p)
	}
	return cloud
}
