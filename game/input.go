package game

import "math"

// PaddleController decides the paddle's movement each frame. The production
// controller chases the ball; tests substitute scripted controllers to
// steer the game into exact situations.
type PaddleController interface {
	// Steer returns the desired movement direction: -1 (left), 0 (hold),
	// or +1 (right). The physics step scales it by the paddle speed.
	Steer(ball *Ball, paddle *Paddle) float64
}

// TrackingController is the game's paddle AI: it moves toward the ball's
// angle whenever the error exceeds a dead zone. The dead zone prevents
// jitter when the ball is nearly centered over the paddle.
type TrackingController struct {
	// DeadZone is the angular error in radians below which the paddle
	// holds still
	DeadZone float64
}

// NewTrackingController creates the production paddle AI.
func NewTrackingController(config Config) *TrackingController {
	return &TrackingController{DeadZone: config.PaddleDeadZone}
}

// Steer moves toward the ball with some lag.
func (t *TrackingController) Steer(ball *Ball, paddle *Paddle) float64 {
	diff := AngularDistance(ball.Angle, paddle.Angle)
	if math.Abs(diff) <= t.DeadZone {
		return 0
	}
	if diff > 0 {
		return 1
	}
	return -1
}

// ScriptedController replays a fixed sequence of steering inputs and then
// holds still. Used by tests to drive the paddle deterministically.
type ScriptedController struct {
	Moves []float64
	next  int
}

// Steer returns the next scripted move, or 0 once the script is exhausted.
func (s *ScriptedController) Steer(ball *Ball, paddle *Paddle) float64 {
	if s.next >= len(s.Moves) {
		return 0
	}
	move := s.Moves[s.next]
	s.next++
	return move
}
