package game

import (
	"math"

	"conebreaker/pointcloud"
)

// Classic brick breaker color scheme. Back-face bricks render dim so the
// structure stays readable from every side.
var (
	colorBackground    = RGB{5, 5, 15}
	colorPaddle        = RGB{255, 255, 255}
	colorBall          = RGB{255, 255, 0}
	colorBrickRed      = RGB{255, 0, 0}
	colorBrickGreen    = RGB{0, 255, 0}
	colorBrickDimRed   = RGB{60, 0, 0}
	colorBrickDimGreen = RGB{0, 60, 0}
)

// Renderer paints per-point colors for the current game state. It never
// allocates: every call overwrites the caller's buffer completely.
type Renderer struct {
	config Config
	points []pointcloud.CylindricalPoint
	grid   *Grid
	window *Window
}

// NewRenderer creates a renderer over shared grid and window state.
func NewRenderer(config Config, points []pointcloud.CylindricalPoint, grid *Grid, window *Window) *Renderer {
	return &Renderer{
		config: config,
		points: points,
		grid:   grid,
		window: window,
	}
}

// RenderPlaying paints a playing-state frame: background, bricks, paddle,
// ball. Later layers overwrite earlier ones, so the ball always shows on
// top of whatever it overlaps.
func (r *Renderer) RenderPlaying(buf []RGB, ball *Ball, paddle *Paddle) {
	for i := range buf {
		buf[i] = colorBackground
	}

	// Bricks alternate red and green in a checkerboard by (section+band).
	for _, cell := range r.grid.Cells() {
		if !cell.Active {
			continue
		}
		isRed := (cell.Section+cell.Band)%2 == 0

		var clr RGB
		if r.window.IsSectionVisible(cell.Section) {
			if isRed {
				clr = colorBrickRed
			} else {
				clr = colorBrickGreen
			}
		} else {
			if isRed {
				clr = colorBrickDimRed
			} else {
				clr = colorBrickDimGreen
			}
		}

		for _, idx := range cell.Points {
			buf[idx] = clr
		}
	}

	// Paddle: every visible point inside its angular/height box.
	for i, p := range r.points {
		angleDiff := math.Abs(AngularDistance(p.Angle, paddle.Angle))
		heightDiff := math.Abs(p.Height - paddle.Height)
		if angleDiff < paddle.AngularWidth/2 && heightDiff < paddle.Thickness &&
			r.window.IsVisible(p.Angle) {
			buf[i] = colorPaddle
		}
	}

	// Ball: every visible point inside its collision ellipse. The ball is
	// wider in angle than in height, so both axes are normalized by their
	// own radius.
	for i, p := range r.points {
		angleDiff := AngularDistance(p.Angle, ball.Angle)
		heightDiff := p.Height - ball.Height
		a := angleDiff / ball.AngularRadius
		h := heightDiff / ball.HeightRadius
		if a*a+h*h < 1 && r.window.IsVisible(p.Angle) {
			buf[i] = colorBall
		}
	}
}
