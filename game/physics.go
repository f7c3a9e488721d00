package game

import (
	"math"
	"math/rand"
)

// fallMargin is how far below the floor the ball must drop before a fall
// registers. Keeps grazing the floor from costing a life.
const fallMargin = 0.1

// paddleNudge pushes the ball just above the paddle after a bounce so the
// same hit does not re-trigger next frame.
const paddleNudge = 0.01

// Physics advances the paddle and ball one frame at a time, applying every
// collision rule of the game. The order inside UpdateBall matters: integrate,
// walls, top, paddle, bricks, fall, win.
type Physics struct {
	config Config
	window *Window
	grid   *Grid
	rng    *rand.Rand

	// cooldown counts down the frames during which brick checks are
	// skipped after a hit
	cooldown int
}

// NewPhysics creates the physics step over shared window and grid state.
func NewPhysics(config Config, window *Window, grid *Grid, rng *rand.Rand) *Physics {
	return &Physics{
		config: config,
		window: window,
		grid:   grid,
		rng:    rng,
	}
}

// UpdatePaddle moves the paddle one frame: ask the controller for a
// direction, step, clamp fully inside the visible face, normalize.
func (p *Physics) UpdatePaddle(paddle *Paddle, ball *Ball, controller PaddleController) {
	paddle.Angle += controller.Steer(ball, paddle) * p.config.PaddleSpeed

	// Never let the paddle drift off the edges where it cannot be seen.
	maxOffset := p.window.HalfWidth - paddle.AngularWidth/2
	diff := AngularDistance(paddle.Angle, p.window.ViewingAngle)
	if diff > maxOffset {
		paddle.Angle = p.window.ViewingAngle + maxOffset
	} else if diff < -maxOffset {
		paddle.Angle = p.window.ViewingAngle - maxOffset
	}

	paddle.Angle = NormalizeAngle(paddle.Angle)
}

// UpdateBall moves the ball one frame and resolves every collision.
func (p *Physics) UpdateBall(ball *Ball, paddle *Paddle, progress *Progress) {
	// Integrate velocity into position.
	ball.Angle += ball.AngularVel
	ball.Height += ball.HeightVel
	ball.Angle = NormalizeAngle(ball.Angle)

	// Side walls: the edges of the visible face. Reflect and clamp back
	// inside so the ball cannot tunnel past in one step.
	toCenter := AngularDistance(ball.Angle, p.window.ViewingAngle)
	wallLimit := p.window.HalfWidth - ball.AngularRadius
	if math.Abs(toCenter) > wallLimit {
		ball.AngularVel = -ball.AngularVel
		if toCenter > 0 {
			ball.Angle = NormalizeAngle(p.window.ViewingAngle + wallLimit)
		} else {
			ball.Angle = NormalizeAngle(p.window.ViewingAngle - wallLimit)
		}
	}

	// Top boundary always bounces the ball downward.
	if ball.Height > p.config.GameHeightMax {
		ball.HeightVel = -math.Abs(ball.HeightVel)
		ball.Height = p.config.GameHeightMax
	}

	// Paddle bounce. Spin is proportional to the hit offset: edge hits
	// send the ball sideways harder than center hits.
	hitOffset := AngularDistance(ball.Angle, paddle.Angle)
	if ball.Height <= paddle.Height+paddle.Thickness &&
		ball.Height >= paddle.Height-ball.HeightRadius &&
		math.Abs(hitOffset) < paddle.AngularWidth/2 {
		ball.HeightVel = math.Abs(ball.HeightVel)
		ball.AngularVel = (hitOffset / (paddle.AngularWidth / 2)) * p.config.BallSpeed
		ball.Height = paddle.Height + paddle.Thickness + paddleNudge
	}

	// Bricks, at most one per frame. The cooldown and the check are
	// exclusive: a frame that decrements does not also collide.
	if p.cooldown > 0 {
		p.cooldown--
	} else {
		p.collideBricks(ball)
	}

	// Fall below the floor: lose on every Nth fall, respawn otherwise.
	if ball.Height < p.config.GameHeightMin-fallMargin {
		progress.FallCount++
		if p.config.LossEnabled && p.config.FallsPerLoss > 0 &&
			progress.FallCount%p.config.FallsPerLoss == 0 {
			progress.Lost = true
			progress.LossTimer = 0
		} else {
			ball.Respawn(paddle, p.config, p.rng)
		}
	}

	// Win once no brick remains.
	if p.grid.ActiveCount() == 0 && !progress.Won {
		progress.Won = true
		progress.WinTimer = 0
	}
}

// collideBricks destroys the first intact, visible brick the ball overlaps
// and reflects the ball off it. Cells are checked in construction order, so
// the outcome is deterministic when several bricks qualify.
func (p *Physics) collideBricks(ball *Ball) {
	angleThreshold := p.config.SectionWidth()/2 + ball.AngularRadius
	heightThreshold := p.config.BandHeight()/2 + ball.HeightRadius
	aspect := p.config.BandHeight() / p.config.SectionWidth()

	for _, cell := range p.grid.Cells() {
		if !cell.Active {
			continue
		}
		// Back-face bricks cannot be struck.
		if !p.window.IsSectionVisible(cell.Section) {
			continue
		}

		angleDiff := math.Abs(AngularDistance(ball.Angle, cell.CenterAngle))
		heightDiff := math.Abs(ball.Height - cell.CenterHeight)
		if angleDiff >= angleThreshold || heightDiff >= heightThreshold {
			continue
		}

		cell.Active = false
		// The axis hit closer to the brick's edge reflects: a height
		// offset large relative to the cell's aspect means a top or
		// bottom hit, otherwise the ball came in from the side.
		if heightDiff > angleDiff*aspect {
			ball.HeightVel = -ball.HeightVel
		} else {
			ball.AngularVel = -ball.AngularVel
		}
		p.cooldown = p.config.BrickCooldownFrames
		return
	}
}

// Reset clears the brick cooldown for a new game.
func (p *Physics) Reset() {
	p.cooldown = 0
}
