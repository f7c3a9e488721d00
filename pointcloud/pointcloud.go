// Package pointcloud loads, generates, and projects the fixed 3D point sets
// the game is rendered onto. A point's slice index is its identity: every
// downstream buffer (colors, cylindrical coordinates) is ordered the same way.
package pointcloud

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// Cloud is an immutable ordered set of 3D coordinates. It is fixed at
// startup and never mutated afterwards.
type Cloud []r3.Vector

// Centroid returns the geometric center of the cloud, or the zero vector
// for an empty cloud.
func (c Cloud) Centroid() r3.Vector {
	if len(c) == 0 {
		return r3.Vector{}
	}
	var sum r3.Vector
	for _, p := range c {
		sum = sum.Add(p)
	}
	return sum.Mul(1.0 / float64(len(c)))
}

// Load reads a cloud from a coordinate file with one "x,y,z" row per point.
// Blank lines and lines starting with '#' are skipped. This is the format
// scanned installations ship their coordinates in.
func Load(path string) (Cloud, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open coordinates file: %w", err)
	}
	defer file.Close()

	cloud := make(Cloud, 0, 512)
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 coordinates, got %d", path, lineNum, len(fields))
		}

		var coords [3]float64
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad coordinate %q: %w", path, lineNum, field, err)
			}
			coords[i] = v
		}
		cloud = append(cloud, r3.Vector{X: coords[0], Y: coords[1], Z: coords[2]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coordinates file: %w", err)
	}

	return cloud, nil
}
