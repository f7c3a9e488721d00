package game

import (
	"math"
	"math/rand"

	"conebreaker/pointcloud"
)

// Engine is the complete game behind a single Advance call: geometry
// mapping, visibility window, physics, state machine, and frame painting.
// A driver steps it at its display cadence and ships the buffer to whatever
// shows the lights.
//
// The engine is not safe for concurrent use. Advance writes the frame
// buffer synchronously and completely before returning; drivers must not
// read it while a call is in flight.
type Engine struct {
	config Config

	points   []pointcloud.CylindricalPoint
	grid     *Grid
	window   *Window
	physics  *Physics
	renderer *Renderer

	ball       *Ball
	paddle     *Paddle
	progress   *Progress
	controller PaddleController

	rng *rand.Rand

	// frame is the per-point color buffer, fully overwritten every Advance
	frame []RGB

	frameCount uint64
}

// New builds an engine over the cloud and returns it together with a report
// of how the geometry mapped onto the game space. Construction never fails:
// degenerate clouds and configurations produce an engine whose frames are
// simply empty.
func New(cloud pointcloud.Cloud, config Config) (*Engine, SetupReport) {
	points := pointcloud.Cylindrical(cloud)
	grid := NewGrid(config, points)
	window := NewWindow(config)
	rng := rand.New(rand.NewSource(config.Seed))

	e := &Engine{
		config:     config,
		points:     points,
		grid:       grid,
		window:     window,
		physics:    NewPhysics(config, window, grid, rng),
		renderer:   NewRenderer(config, points, grid, window),
		ball:       NewBall(config),
		paddle:     NewPaddle(config, window.ViewingAngle),
		progress:   &Progress{},
		controller: NewTrackingController(config),
		rng:        rng,
		frame:      make([]RGB, len(points)),
	}

	return e, buildReport(config, len(points), grid)
}

// Advance steps the game one frame and repaints the point buffer.
func (e *Engine) Advance() {
	e.frameCount++

	// The visible face keeps drifting around the structure, even during
	// the win and loss effects.
	e.window.Advance()

	// Terminal states run their effect for a fixed number of frames and
	// then reset. The reset frame falls through and plays normally.
	if e.progress.Lost {
		e.progress.LossTimer++
		if e.progress.LossTimer >= e.config.LossFrames {
			e.resetGame()
		} else {
			e.renderer.RenderLoss(e.frame, e.progress.LossTimer)
			return
		}
	}
	if e.progress.Won {
		e.progress.WinTimer++
		if e.progress.WinTimer >= e.config.WinFrames {
			e.resetGame()
		} else {
			e.renderer.RenderWin(e.frame, e.progress.WinTimer)
			return
		}
	}

	e.physics.UpdatePaddle(e.paddle, e.ball, e.controller)
	e.physics.UpdateBall(e.ball, e.paddle, e.progress)
	e.renderer.RenderPlaying(e.frame, e.ball, e.paddle)
}

// resetGame starts a new game: all bricks back, entities reset, and a new
// face of the structure picked deterministically from the game counter so
// successive games play on different sides.
func (e *Engine) resetGame() {
	e.grid.ResetAll()

	e.progress.GameIndex++
	e.window.ViewingAngle = math.Mod(float64(e.progress.GameIndex)*math.Pi/3, 2*math.Pi) - math.Pi
	e.paddle.Angle = e.window.ViewingAngle

	e.ball.Respawn(e.paddle, e.config, e.rng)
	e.progress.Reset()
	e.physics.Reset()
}

// Frame returns the per-point color buffer. Advance overwrites it in place;
// callers that hand it to another goroutine must copy it first.
func (e *Engine) Frame() []RGB {
	return e.frame
}

// Phase returns the engine's current top-level state. Loss wins the tie if
// the last brick broke on the same frame as the final fall.
func (e *Engine) Phase() Phase {
	switch {
	case e.progress.Lost:
		return PhaseLost
	case e.progress.Won:
		return PhaseWon
	default:
		return PhasePlaying
	}
}

// FrameCount returns the number of frames advanced since construction.
func (e *Engine) FrameCount() uint64 {
	return e.frameCount
}

// ActiveBricks returns the number of intact bricks.
func (e *Engine) ActiveBricks() int {
	return e.grid.ActiveCount()
}

// Falls returns how many times the ball has fallen in the current game.
func (e *Engine) Falls() int {
	return e.progress.FallCount
}

// GamesPlayed returns how many full games have completed.
func (e *Engine) GamesPlayed() int {
	return e.progress.GameIndex
}

// Window returns the visibility window for viewers that draw its edges.
func (e *Engine) Window() *Window {
	return e.window
}

// Grid returns the brick grid for viewers that draw cell boundaries.
func (e *Engine) Grid() *Grid {
	return e.grid
}

// Points returns the cylindrical projection of the cloud, ordered by point
// index like the frame buffer.
func (e *Engine) Points() []pointcloud.CylindricalPoint {
	return e.points
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.config
}
