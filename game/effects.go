package game

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RenderWin paints the win celebration: a rainbow winding around the
// structure, rotating with time and pulsing with height. Overwrites the
// whole buffer; entities and bricks are ignored.
func (r *Renderer) RenderWin(buf []RGB, timer int) {
	progress := float64(timer) / float64(r.config.WinFrames)

	for i, p := range r.points {
		// Hue follows the angle around the structure plus a time-based
		// rotation; the pulse rides up the height.
		hue := math.Mod((p.Angle+math.Pi)/(2*math.Pi)+progress*0.5, 1.0)
		pulse := 0.7 + 0.3*math.Sin(float64(timer)*0.1+p.Height*10)

		c := colorful.Hsv(hue*360, 1.0, pulse)
		buf[i] = RGB{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
		}
	}
}

// RenderLoss paints the loss effect: the structure flashes white, then the
// light washes away from top to bottom, leaving darkness. Overwrites the
// whole buffer.
func (r *Renderer) RenderLoss(buf []RGB, timer int) {
	progress := float64(timer) / float64(r.config.LossFrames)
	// The wash front runs slightly past the bottom so the last points
	// fade out completely.
	washPos := progress * 1.15

	for i, p := range r.points {
		fromTop := 1 - p.Height
		brightness := 1 - (washPos-fromTop)/0.15
		buf[i] = colorPaddle.Scale(brightness)
	}
}
