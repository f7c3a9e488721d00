package main

import (
	"image/color"
	"math"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

// Camera constants
const (
	orbitSpeed  = 0.25           // radians per second, auto orbit
	steerSpeed  = 1.5            // radians per second, arrow keys
	defaultTilt = 0.35           // radians, initial downward tilt
	maxPitch    = math.Pi * 0.45 // radians, keep the camera off the poles
	pointRadius = 4.0            // pixels at camera distance
	drawMargin  = 20.0           // pixels, skip circles fully off screen
)

// Profiling constants
const (
	fpsDropThreshold = 24.0 // capture a profile below this
	fpsWarmupSeconds = 3.0  // ignore drops right after launch
)

// Color constants
var (
	colorSimBackground = color.NRGBA{R: 8, G: 9, B: 18, A: 255}
	colorHUDText       = color.NRGBA{R: 230, G: 230, B: 240, A: 255}
)
