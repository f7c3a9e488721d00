package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"conebreaker/game"
)

// HUDState is the snapshot the simulator hands the HUD each frame.
type HUDState struct {
	FPS       float64
	Tick      uint64
	Phase     game.Phase
	Bricks    int
	Falls     int
	Games     int
	Paused    bool
	AutoOrbit bool
	Profiling bool
}

// HUD draws game status in the corner of the simulator window.
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, state HUDState) {
	status := fmt.Sprintf("%s  bricks %d  falls %d  games %d", state.Phase, state.Bricks, state.Falls, state.Games)
	if state.Paused {
		status = "PAUSED  " + status
	}

	controls := "arrows steer, O toggles orbit, space pauses"
	if state.AutoOrbit {
		controls = "orbiting - " + controls
	}

	for i, line := range []string{status, controls} {
		op := &text.DrawOptions{}
		op.GeoM.Translate(16, 14+float64(i)*16)
		op.ColorScale.ScaleWithColor(colorHUDText)
		text.Draw(screen, line, h.face, op)
	}

	debugLine := fmt.Sprintf("FPS: %.0f  tick %d", state.FPS, state.Tick)
	if state.Profiling {
		debugLine += "  [profiling]"
	}
	ebitenutil.DebugPrintAt(screen, debugLine, 8, screenHeight-20)
}
