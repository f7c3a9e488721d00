// Command unwrap runs a local game and draws the cylinder unwrapped onto
// the terminal: angle across, height down, one colored block per point.
// Useful for checking layouts and watching a game without the structure.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"conebreaker/game"
	"conebreaker/pointcloud"
)

type Viewer struct {
	screen        tcell.Screen
	engine        *game.Engine
	width, height int
	fps           int
	paused        bool
}

func NewViewer(engine *game.Engine, fps int) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	v := &Viewer{
		screen: screen,
		engine: engine,
		fps:    fps,
	}
	v.width, v.height = screen.Size()
	return v, nil
}

// angleColumn maps an angle in (-pi, pi] onto a terminal column.
func angleColumn(angle float64, width int) int {
	normalized := math.Mod(angle+math.Pi, 2*math.Pi)
	if normalized < 0 {
		normalized += 2 * math.Pi
	}
	x := int(normalized / (2 * math.Pi) * float64(width))
	if x >= width {
		x = width - 1
	}
	return x
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (v *Viewer) draw() {
	v.screen.Clear()

	// Bottom row is the status line
	rows := v.height - 1
	if rows < 1 || v.width < 1 {
		v.screen.Show()
		return
	}

	// Window edges first so points paint over them
	win := v.engine.Window()
	edgeStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, edge := range []float64{win.ViewingAngle - win.HalfWidth, win.ViewingAngle + win.HalfWidth} {
		x := angleColumn(game.NormalizeAngle(edge), v.width)
		for y := 0; y < rows; y++ {
			v.screen.SetContent(x, y, '|', nil, edgeStyle)
		}
	}

	frame := v.engine.Frame()
	for i, p := range v.engine.Points() {
		x := angleColumn(p.Angle, v.width)
		y := int((1 - p.Height) * float64(rows-1))
		if y < 0 {
			y = 0
		}
		if y >= rows {
			y = rows - 1
		}
		c := frame[i]
		color := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
		v.screen.SetContent(x, y, '█', nil, tcell.StyleDefault.Foreground(color))
	}

	status := fmt.Sprintf("tick %d  %s  bricks %d  falls %d  games %d  [space pause, q quit]",
		v.engine.FrameCount(), v.engine.Phase(), v.engine.ActiveBricks(), v.engine.Falls(), v.engine.GamesPlayed())
	if v.paused {
		status = "PAUSED  " + status
	}
	drawText(v.screen, 0, v.height-1, tcell.StyleDefault.Foreground(tcell.ColorWhite), status)

	v.screen.Show()
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			v.paused = !v.paused
		}

	case *tcell.EventResize:
		v.width, v.height = v.screen.Size()
		v.screen.Sync()
	}

	return true
}

func (v *Viewer) run() {
	ticker := time.NewTicker(time.Second / time.Duration(v.fps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- v.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-ticker.C:
			if !v.paused {
				v.engine.Advance()
			}
			v.draw()
		}
	}
}

func (v *Viewer) cleanup() {
	v.screen.Fini()
}

func main() {
	pointsPath := flag.String("points", "", "CSV point cloud file (x,y,z per line); synthetic cone when empty")
	fps := flag.Int("fps", 30, "game frames per second")
	seed := flag.Int64("seed", 1, "random seed for respawn direction and synthetic cloud")
	layoutFlag := flag.String("layout", "grid", "brick layout: grid or sequential")
	flag.Parse()

	if *fps < 1 {
		fmt.Fprintf(os.Stderr, "fps must be at least 1, got %d\n", *fps)
		os.Exit(1)
	}

	var layout game.LayoutKind
	switch *layoutFlag {
	case "grid":
		layout = game.LayoutGrid
	case "sequential":
		layout = game.LayoutSequential
	default:
		fmt.Fprintf(os.Stderr, "unknown layout %q (want grid or sequential)\n", *layoutFlag)
		os.Exit(1)
	}

	var cloud pointcloud.Cloud
	if *pointsPath != "" {
		var err error
		cloud, err = pointcloud.Load(*pointsPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load point cloud: %v\n", err)
			os.Exit(1)
		}
	} else {
		gen := rand.New(rand.NewSource(*seed))
		cloud = pointcloud.ConeSpiral(500, 18, 1.2, 2.4, 0.05, gen)
	}

	config := game.DefaultConfig()
	config.Layout = layout
	config.Seed = *seed
	config.FrameRate = *fps

	engine, _ := game.New(cloud, config)

	viewer, err := NewViewer(engine, *fps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer viewer.cleanup()

	viewer.run()
}
