package game

import "math"

// AngularDistance returns the shortest signed difference a-b between two
// angles, wrapped to (-pi, pi]. Every angular comparison in the game goes
// through here; naive subtraction breaks at the -pi/pi seam (the distance
// between 170 degrees and -170 degrees is 20 degrees, not 340).
func AngularDistance(a, b float64) float64 {
	diff := a - b
	for diff > math.Pi {
		diff -= 2 * math.Pi
	}
	for diff <= -math.Pi {
		diff += 2 * math.Pi
	}
	return diff
}

// NormalizeAngle wraps an angle to (-pi, pi].
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle <= -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// CircularMean returns the mean of a set of angles computed from sine and
// cosine components, so a set straddling the -pi/pi seam averages to a value
// near the seam instead of near zero. Returns 0 for an empty set.
func CircularMean(angles []float64) float64 {
	if len(angles) == 0 {
		return 0
	}
	var sinSum, cosSum float64
	for _, a := range angles {
		sinSum += math.Sin(a)
		cosSum += math.Cos(a)
	}
	n := float64(len(angles))
	return math.Atan2(sinSum/n, cosSum/n)
}
