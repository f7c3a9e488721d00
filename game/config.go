package game

import "math"

// Config holds game configuration constants. All values are supplied at
// construction and stay fixed for the life of the engine.
type Config struct {
	// NumSections is the number of angular divisions around the structure
	NumSections int

	// NumBands is the number of height divisions in the brick area
	NumBands int

	// Layout selects how points are grouped into bricks
	Layout LayoutKind

	// GroupSize is the points per brick for the sequential layout
	GroupSize int

	// BrickHeightMin is the normalized height where the brick area starts;
	// everything below is the paddle/ball play area
	BrickHeightMin float64

	// GameHeightMin is the bottom boundary of the play area
	GameHeightMin float64

	// GameHeightMax is the top boundary the ball bounces off
	GameHeightMax float64

	// WindowHalfWidth is the angular half-extent of the visible face in radians
	WindowHalfWidth float64

	// RotationSpeed is how far the visible face rotates per frame in radians
	RotationSpeed float64

	// BallSpeed is the ball's vertical speed in height units per frame, and
	// the scale for paddle spin
	BallSpeed float64

	// BallAngularRadius is the ball's collision half-extent in radians
	BallAngularRadius float64

	// BallHeightRadius is the ball's collision half-extent in height units
	BallHeightRadius float64

	// PaddleSpeed is how far the paddle moves per frame in radians
	PaddleSpeed float64

	// PaddleWidth is the paddle's angular extent in radians
	PaddleWidth float64

	// PaddleHeight is the paddle's fixed normalized height
	PaddleHeight float64

	// PaddleThickness is the paddle's vertical extent in height units
	PaddleThickness float64

	// PaddleDeadZone is the angular error below which the paddle holds still
	PaddleDeadZone float64

	// BrickCooldownFrames is how many frames brick checks are skipped after a hit
	BrickCooldownFrames int

	// FallsPerLoss is how many falls end the game; the lives system
	FallsPerLoss int

	// LossEnabled disables the loss rule entirely when false, turning every
	// fall into a plain respawn
	LossEnabled bool

	// WinFrames is the length of the win celebration in frames
	WinFrames int

	// LossFrames is the length of the loss effect in frames
	LossFrames int

	// FrameRate is the cadence hint for drivers in frames per second
	FrameRate int

	// Seed initializes the engine's random source (ball respawn direction);
	// fixed seeds give deterministic games
	Seed int64
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		NumSections:         8,
		NumBands:            8,
		Layout:              LayoutGrid,
		GroupSize:           4,
		BrickHeightMin:      0.33,
		GameHeightMin:       0.1,
		GameHeightMax:       0.98,
		WindowHalfWidth:     math.Pi * 0.4, // 144 degrees visible in total
		RotationSpeed:       0.002,
		BallSpeed:           0.02,
		BallAngularRadius:   0.15,
		BallHeightRadius:    0.04,
		PaddleSpeed:         0.025,
		PaddleWidth:         0.8, // radians, ~45 degrees
		PaddleHeight:        0.15,
		PaddleThickness:     0.08,
		PaddleDeadZone:      0.05,
		BrickCooldownFrames: 5,
		FallsPerLoss:        3,
		LossEnabled:         true,
		WinFrames:           90,  // 3 seconds at 30fps
		LossFrames:          120, // 4 seconds at 30fps
		FrameRate:           30,
		Seed:                1,
	}
}

// SectionWidth returns the angular width of one section in radians. The
// divisor is guarded so degenerate configurations stay finite.
func (c Config) SectionWidth() float64 {
	if c.NumSections < 1 {
		return 2 * math.Pi
	}
	return 2 * math.Pi / float64(c.NumSections)
}

// BandHeight returns the height of one band in normalized units.
func (c Config) BandHeight() float64 {
	if c.NumBands < 1 {
		return 1 - c.BrickHeightMin
	}
	return (1 - c.BrickHeightMin) / float64(c.NumBands)
}
