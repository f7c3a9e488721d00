package main

import "math"

// Point3D is a point in camera space: X right, Y down the screen, Z away
// from the viewer.
type Point3D struct {
	X, Y, Z float64
}

// Camera defines the perspective projection for the simulator viewport.
type Camera struct {
	Distance float64 // Distance from the structure's center
	FOV      float64 // Field of view multiplier, pixels per unit of depth
	CenterX  float64 // Screen center X
	CenterY  float64 // Screen center Y
}

// NewCamera creates a camera centered on the viewport.
func NewCamera(width, height int) *Camera {
	fov := float64(width)
	if height < width {
		fov = float64(height)
	}
	return &Camera{
		Distance: 3.2,
		FOV:      fov * 1.1,
		CenterX:  float64(width) / 2,
		CenterY:  float64(height) / 2,
	}
}

// Project projects a camera-space point onto the screen. The returned depth
// grows away from the viewer and is clamped positive so points behind the
// camera cannot explode the projection.
func (c *Camera) Project(p Point3D) (sx, sy, depth float64) {
	depth = p.Z + c.Distance
	if depth < 0.1 {
		depth = 0.1
	}
	sx = c.FOV*p.X/depth + c.CenterX
	sy = c.FOV*p.Y/depth + c.CenterY
	return sx, sy, depth
}

// RotateX rotates a point around the X axis.
func RotateX(p Point3D, angle float64) Point3D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3D{
		X: p.X,
		Y: p.Y*cos - p.Z*sin,
		Z: p.Y*sin + p.Z*cos,
	}
}

// RotateY rotates a point around the Y axis.
func RotateY(p Point3D, angle float64) Point3D {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Point3D{
		X: p.X*cos + p.Z*sin,
		Y: p.Y,
		Z: -p.X*sin + p.Z*cos,
	}
}
