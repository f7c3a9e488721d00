package game

import (
	"math"
	"testing"

	"conebreaker/pointcloud"
)

// testCloud generates a deterministic cone without jitter, big enough that
// every section and band receives points.
func testCloud() pointcloud.Cloud {
	return pointcloud.ConeSpiral(200, 10, 1.0, 2.0, 0, nil)
}

func TestEngineFrameBuffer(t *testing.T) {
	engine, report := New(testCloud(), DefaultConfig())

	if got := len(engine.Frame()); got != 200 {
		t.Fatalf("Expected frame buffer of 200 colors, got %d", got)
	}
	if report.PointCount != 200 {
		t.Errorf("Expected report of 200 points, got %d", report.PointCount)
	}
	if report.CellCount == 0 {
		t.Fatal("Expected the cone to produce bricks")
	}

	engine.Advance()

	if engine.FrameCount() != 1 {
		t.Errorf("Expected frame count 1, got %d", engine.FrameCount())
	}
	lit := 0
	for _, c := range engine.Frame() {
		if c != colorBackground {
			lit++
		}
	}
	if lit == 0 {
		t.Error("Expected some points lit after one frame")
	}
}

// winGame cheats the engine to a win: before each frame it parks the window
// and ball on the first intact brick, so every brick falls as soon as the
// cooldown allows.
func winGame(t *testing.T, engine *Engine) {
	t.Helper()
	for frames := 0; engine.ActiveBricks() > 0; frames++ {
		if frames > 10000 {
			t.Fatal("Engine failed to win within 10000 frames")
		}
		for _, cell := range engine.grid.Cells() {
			if cell.Active {
				engine.window.ViewingAngle = cell.CenterAngle
				engine.ball.Angle = cell.CenterAngle
				engine.ball.Height = cell.CenterHeight
				engine.ball.AngularVel = 0
				engine.ball.HeightVel = 0
				break
			}
		}
		engine.Advance()
	}
}

func TestEngineWinCycle(t *testing.T) {
	engine, report := New(testCloud(), DefaultConfig())

	winGame(t, engine)

	if engine.Phase() != PhaseWon {
		t.Fatalf("Expected phase won after last brick, got %v", engine.Phase())
	}

	// The win effect holds for WinFrames-1 further frames.
	for i := 0; i < engine.config.WinFrames-1; i++ {
		engine.Advance()
		if engine.Phase() != PhaseWon {
			t.Fatalf("Expected phase won during effect frame %d, got %v", i+1, engine.Phase())
		}
	}

	// The next frame resets and plays immediately.
	engine.Advance()
	if engine.Phase() != PhasePlaying {
		t.Fatalf("Expected phase playing after the win effect, got %v", engine.Phase())
	}
	if engine.GamesPlayed() != 1 {
		t.Errorf("Expected 1 game played, got %d", engine.GamesPlayed())
	}

	// Game 1 plays on a new face of the structure.
	wantViewing := math.Pi/3 - math.Pi
	if math.Abs(engine.window.ViewingAngle-wantViewing) > 1e-9 {
		t.Errorf("Expected new face at %v, got %v", wantViewing, engine.window.ViewingAngle)
	}

	// All bricks are back, save possibly one the respawned ball clipped
	// on the reset frame itself.
	if engine.ActiveBricks() < report.CellCount-1 {
		t.Errorf("Expected bricks restored after reset, got %d of %d",
			engine.ActiveBricks(), report.CellCount)
	}
	if engine.Falls() != 0 {
		t.Errorf("Expected fall count cleared, got %d", engine.Falls())
	}
}

// dropBall forces the ball below the floor so the next frame registers a
// fall.
func dropBall(engine *Engine) {
	engine.ball.Angle = engine.window.ViewingAngle
	engine.ball.Height = -0.05
	engine.ball.AngularVel = 0
	engine.ball.HeightVel = 0
	engine.Advance()
}

func TestEngineLossCycle(t *testing.T) {
	engine, _ := New(testCloud(), DefaultConfig())

	dropBall(engine)
	dropBall(engine)
	if engine.Phase() != PhasePlaying {
		t.Fatalf("Expected still playing after two falls, got %v", engine.Phase())
	}

	dropBall(engine)
	if engine.Phase() != PhaseLost {
		t.Fatalf("Expected phase lost after the third fall, got %v", engine.Phase())
	}
	if engine.Falls() != 3 {
		t.Errorf("Expected 3 falls, got %d", engine.Falls())
	}

	for i := 0; i < engine.config.LossFrames-1; i++ {
		engine.Advance()
		if engine.Phase() != PhaseLost {
			t.Fatalf("Expected phase lost during effect frame %d, got %v", i+1, engine.Phase())
		}
	}

	engine.Advance()
	if engine.Phase() != PhasePlaying {
		t.Fatalf("Expected phase playing after the loss effect, got %v", engine.Phase())
	}
	if engine.GamesPlayed() != 1 {
		t.Errorf("Expected 1 game played, got %d", engine.GamesPlayed())
	}
	if engine.Falls() != 0 {
		t.Errorf("Expected fall count cleared after reset, got %d", engine.Falls())
	}
}

func TestEnginePhaseTie(t *testing.T) {
	engine, _ := New(testCloud(), DefaultConfig())

	// If the last brick breaks on the same frame as the final fall, the
	// loss takes precedence.
	engine.progress.Won = true
	engine.progress.Lost = true
	if engine.Phase() != PhaseLost {
		t.Errorf("Expected loss to win the tie, got %v", engine.Phase())
	}
}

func TestEngineSeedDeterminism(t *testing.T) {
	config := DefaultConfig()
	a, _ := New(testCloud(), config)
	b, _ := New(testCloud(), config)

	for i := 0; i < 500; i++ {
		a.Advance()
		b.Advance()
	}

	if a.ball.Angle != b.ball.Angle || a.ball.Height != b.ball.Height ||
		a.ball.AngularVel != b.ball.AngularVel || a.ball.HeightVel != b.ball.HeightVel {
		t.Error("Expected identical ball state from identical seeds")
	}
	for i := range a.frame {
		if a.frame[i] != b.frame[i] {
			t.Fatalf("Expected identical frames from identical seeds, point %d differs", i)
		}
	}
}

func TestEngineDegenerateCloud(t *testing.T) {
	engine, report := New(nil, DefaultConfig())

	if report.PointCount != 0 {
		t.Errorf("Expected empty report, got %d points", report.PointCount)
	}
	if got := len(engine.Frame()); got != 0 {
		t.Errorf("Expected empty frame buffer, got %d", got)
	}

	// Stepping an empty engine must not panic. With no bricks the game
	// wins immediately and keeps cycling.
	for i := 0; i < 300; i++ {
		engine.Advance()
	}
}
