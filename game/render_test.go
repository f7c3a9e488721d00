package game

import (
	"testing"

	"conebreaker/pointcloud"
)

// renderWorld builds a renderer over six hand-placed points with a 4x2
// grid, chosen so each rendering layer claims exactly one point:
//
//	0: visible red brick (section 2, band 0)
//	1: back-face dim red brick (section 0, band 0)
//	2: paddle
//	3: ball
//	4: plain background
//	5: visible green brick (section 2, band 1)
func renderWorld() (*Renderer, *Grid, []pointcloud.CylindricalPoint) {
	config := DefaultConfig()
	config.NumSections = 4
	config.NumBands = 2

	points := []pointcloud.CylindricalPoint{
		{Angle: 0.7, Height: 0.5},
		{Angle: -3.0, Height: 0.5},
		{Angle: 0.0, Height: 0.16},
		{Angle: 0.5, Height: 0.2},
		{Angle: 2.0, Height: 0.2},
		{Angle: 0.7, Height: 0.9},
	}

	grid := NewGrid(config, points)
	window := NewWindow(config)
	return NewRenderer(config, points, grid, window), grid, points
}

func TestRenderPlayingLayers(t *testing.T) {
	renderer, _, points := renderWorld()
	ball := &Ball{Angle: 0.5, Height: 0.2, AngularRadius: 0.15, HeightRadius: 0.04}
	paddle := &Paddle{Angle: 0, Height: 0.15, AngularWidth: 0.8, Thickness: 0.08}

	buf := make([]RGB, len(points))
	renderer.RenderPlaying(buf, ball, paddle)

	want := []RGB{
		colorBrickRed,
		colorBrickDimRed,
		colorPaddle,
		colorBall,
		colorBackground,
		colorBrickGreen,
	}
	for i, w := range want {
		if buf[i] != w {
			t.Errorf("Expected point %d to be %v, got %v", i, w, buf[i])
		}
	}
}

func TestRenderPlayingDestroyedBrick(t *testing.T) {
	renderer, grid, points := renderWorld()
	ball := &Ball{Angle: 0.5, Height: 0.2, AngularRadius: 0.15, HeightRadius: 0.04}
	paddle := &Paddle{Angle: 0, Height: 0.15, AngularWidth: 0.8, Thickness: 0.08}

	grid.Cell(2, 0).Active = false

	buf := make([]RGB, len(points))
	renderer.RenderPlaying(buf, ball, paddle)

	if buf[0] != colorBackground {
		t.Errorf("Expected destroyed brick point to fall back to background, got %v", buf[0])
	}
}

func TestRenderPlayingBallOverPaddle(t *testing.T) {
	renderer, _, points := renderWorld()
	// Ball resting right on the paddle: the overlapping point must show
	// the ball, which paints last.
	ball := &Ball{Angle: 0, Height: 0.15, AngularRadius: 0.15, HeightRadius: 0.04}
	paddle := &Paddle{Angle: 0, Height: 0.15, AngularWidth: 0.8, Thickness: 0.08}

	buf := make([]RGB, len(points))
	renderer.RenderPlaying(buf, ball, paddle)

	if buf[2] != colorBall {
		t.Errorf("Expected overlapping point to show the ball, got %v", buf[2])
	}
}

func TestRenderWinLightsEverything(t *testing.T) {
	renderer, _, points := renderWorld()

	buf := make([]RGB, len(points))
	renderer.RenderWin(buf, 10)

	for i, c := range buf {
		if c.R == 0 && c.G == 0 && c.B == 0 {
			t.Errorf("Expected point %d lit during the win effect, got black", i)
		}
	}
}

func TestRenderLossWash(t *testing.T) {
	config := DefaultConfig()
	points := []pointcloud.CylindricalPoint{
		{Angle: 0, Height: 0.95},
		{Angle: 0, Height: 0.05},
	}
	renderer := NewRenderer(config, points, NewGrid(config, nil), NewWindow(config))
	buf := make([]RGB, len(points))

	// The effect opens with a full white flash.
	renderer.RenderLoss(buf, 0)
	for i, c := range buf {
		if c != colorPaddle {
			t.Errorf("Expected point %d white at effect start, got %v", i, c)
		}
	}

	// Halfway through, the wash has passed the top point but not yet
	// reached the bottom one.
	renderer.RenderLoss(buf, config.LossFrames/2)
	if buf[0] != (RGB{}) {
		t.Errorf("Expected top point washed to black, got %v", buf[0])
	}
	if buf[1] != colorPaddle {
		t.Errorf("Expected bottom point still white, got %v", buf[1])
	}
}

func TestRGBScale(t *testing.T) {
	c := RGB{200, 100, 50}

	tests := []struct {
		name   string
		factor float64
		want   RGB
	}{
		{"Zero", 0, RGB{}},
		{"Negative", -1, RGB{}},
		{"Half", 0.5, RGB{100, 50, 25}},
		{"Unity", 1, c},
		{"Above unity clamps", 2.5, c},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Scale(tt.factor); got != tt.want {
				t.Errorf("Expected scale by %v to give %v, got %v", tt.factor, got, tt.want)
			}
		})
	}
}
