package game

import "math/rand"

// Ball is the bouncing ball in cylindrical game space. Velocities are per
// frame: the angle advances by AngularVel and the height by HeightVel on
// every update.
type Ball struct {
	// Angle is the position around the structure, kept in (-pi, pi]
	Angle float64

	// Height is the normalized vertical position
	Height float64

	// AngularVel is the angular velocity in radians per frame
	AngularVel float64

	// HeightVel is the vertical velocity in height units per frame
	HeightVel float64

	// AngularRadius and HeightRadius define the collision ellipse
	AngularRadius float64
	HeightRadius  float64
}

// NewBall creates the ball in its game-start position: just above the
// paddle, climbing, and drifting to one side.
func NewBall(config Config) *Ball {
	return &Ball{
		Angle:         0,
		Height:        config.PaddleHeight + 0.1,
		AngularVel:    config.BallSpeed * 0.7,
		HeightVel:     config.BallSpeed,
		AngularRadius: config.BallAngularRadius,
		HeightRadius:  config.BallHeightRadius,
	}
}

// Respawn puts the ball back just above the paddle after a fall, moving
// upward with a random lateral direction.
func (b *Ball) Respawn(paddle *Paddle, config Config, rng *rand.Rand) {
	b.Angle = paddle.Angle
	b.Height = paddle.Height + 0.15
	b.HeightVel = config.BallSpeed

	side := 1.0
	if rng.Float64() > 0.5 {
		side = -1.0
	}
	b.AngularVel = config.BallSpeed * 0.5 * side
}

// Paddle is the AI-controlled paddle at the bottom of the play area. Only
// the angle changes during play.
type Paddle struct {
	// Angle is the position around the structure, kept in (-pi, pi]
	Angle float64

	// Height is the fixed normalized height of the paddle's bottom edge
	Height float64

	// AngularWidth is the paddle's angular extent
	AngularWidth float64

	// Thickness is the paddle's vertical extent
	Thickness float64
}

// NewPaddle creates the paddle centered on the given viewing angle.
func NewPaddle(config Config, viewingAngle float64) *Paddle {
	return &Paddle{
		Angle:        viewingAngle,
		Height:       config.PaddleHeight,
		AngularWidth: config.PaddleWidth,
		Thickness:    config.PaddleThickness,
	}
}

// Progress tracks the outcome state of the current game.
type Progress struct {
	// FallCount is how many times the ball has dropped below the floor
	FallCount int

	// Won and Lost flag the terminal states; both false while playing
	Won  bool
	Lost bool

	// WinTimer and LossTimer count effect frames after a terminal state
	WinTimer  int
	LossTimer int

	// GameIndex increments on every full reset and picks the next face
	GameIndex int
}

// Reset clears the per-game outcome state. GameIndex is left alone; the
// engine advances it when a new game starts.
func (p *Progress) Reset() {
	p.FallCount = 0
	p.Won = false
	p.Lost = false
	p.WinTimer = 0
	p.LossTimer = 0
}
