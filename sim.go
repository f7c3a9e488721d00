package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"runtime"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"conebreaker/game"
	"conebreaker/pointcloud"
)

// projectedPoint is one cloud point after camera projection, kept with its
// index so the depth sort can still find its color.
type projectedPoint struct {
	x, y  float64
	depth float64
	index int
}

// Simulator animates the game on a 3D view of the point cloud so everything
// can be exercised without the physical structure.
type Simulator struct {
	engine *game.Engine
	config game.Config

	// cloud in camera space: centered, normalized, Y pointing down the screen
	points []Point3D
	camera *Camera

	yaw       float64
	pitch     float64
	autoOrbit bool
	paused    bool

	// projection scratch, reused every frame
	projected []projectedPoint

	// accumulates display time until the next fixed game step is due
	simAccum float64

	profiler *Profiler
	hud      *HUD

	// FPS tracking
	lastUpdateTime   time.Time
	startTime        time.Time
	lastFPSDropTime  time.Time
	fps              float64
	fpsUpdateTimer   float64
	fpsUpdateCounter int
}

// NewSimulator builds the 3D view around an engine and the cloud it runs on.
func NewSimulator(cloud pointcloud.Cloud, engine *game.Engine, config game.Config) *Simulator {
	centroid := cloud.Centroid()

	// Normalize the cloud so any structure fits the same camera
	maxSpan := 0.0
	for _, p := range cloud {
		dx := p.X - centroid.X
		dy := p.Y - centroid.Y
		dz := p.Z - centroid.Z
		if r := dx*dx + dy*dy + dz*dz; r > maxSpan {
			maxSpan = r
		}
	}
	if maxSpan <= 0 {
		maxSpan = 1
	}
	scale := 1 / math.Sqrt(maxSpan)

	points := make([]Point3D, len(cloud))
	for i, p := range cloud {
		points[i] = Point3D{
			X: (p.X - centroid.X) * scale,
			Y: -(p.Z - centroid.Z) * scale, // world Z is up, screen Y is down
			Z: (p.Y - centroid.Y) * scale,
		}
	}

	return &Simulator{
		engine:         engine,
		config:         config,
		points:         points,
		camera:         NewCamera(screenWidth, screenHeight),
		pitch:          defaultTilt,
		autoOrbit:      true,
		projected:      make([]projectedPoint, len(points)),
		profiler:       NewProfiler(),
		hud:            NewHUD(),
		lastUpdateTime: time.Now(),
		startTime:      time.Now(),
	}
}

// Update advances the game at its fixed rate and the camera at display rate.
func (s *Simulator) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(s.lastUpdateTime).Seconds()
	s.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > 0.1 {
		deltaTime = 0.1
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.paused = !s.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		s.autoOrbit = !s.autoOrbit
	}

	// Manual steering takes the camera off auto orbit
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		s.yaw -= steerSpeed * deltaTime
		s.autoOrbit = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		s.yaw += steerSpeed * deltaTime
		s.autoOrbit = false
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		s.pitch += steerSpeed * deltaTime
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		s.pitch -= steerSpeed * deltaTime
	}
	if s.pitch > maxPitch {
		s.pitch = maxPitch
	}
	if s.pitch < -maxPitch {
		s.pitch = -maxPitch
	}

	if s.autoOrbit {
		s.yaw += orbitSpeed * deltaTime
	}

	// The game runs at its own fixed rate regardless of display FPS
	if !s.paused {
		step := 1.0 / float64(s.config.FrameRate)
		s.simAccum += deltaTime
		for s.simAccum >= step {
			s.engine.Advance()
			s.simAccum -= step
		}
	}

	s.trackFPS(deltaTime)
	return nil
}

// trackFPS keeps a rolling display-rate estimate and captures a profile on
// severe drops.
func (s *Simulator) trackFPS(deltaTime float64) {
	// Update FPS calculation (update every 0.5 seconds)
	s.fpsUpdateTimer += deltaTime
	s.fpsUpdateCounter++
	if s.fpsUpdateTimer < 0.5 {
		return
	}
	if s.fpsUpdateCounter > 0 {
		s.fps = float64(s.fpsUpdateCounter) / s.fpsUpdateTimer
	}
	s.fpsUpdateTimer = 0
	s.fpsUpdateCounter = 0

	// Skip detection right after launch while caches and shaders warm up
	if s.fps >= fpsDropThreshold || time.Since(s.startTime).Seconds() < fpsWarmupSeconds {
		return
	}
	if time.Since(s.lastFPSDropTime) < 10*time.Second {
		return
	}
	s.lastFPSDropTime = time.Now()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("FPS drop detected (%.0f FPS). GC stats: NumGC=%d HeapAlloc=%d KB", s.fps, m.NumGC, m.HeapAlloc/1024)

	reason := fmt.Sprintf("fps%.0f-points%d", s.fps, len(s.points))
	if err := s.profiler.CaptureProfile(reason); err != nil {
		log.Printf("profiler: %v", err)
	}
}

// Draw renders the cloud in painter's order, far points first.
func (s *Simulator) Draw(screen *ebiten.Image) {
	screen.Fill(colorSimBackground)

	for i, p := range s.points {
		q := RotateY(p, s.yaw)
		q = RotateX(q, s.pitch)
		sx, sy, depth := s.camera.Project(q)
		s.projected[i] = projectedPoint{x: sx, y: sy, depth: depth, index: i}
	}
	sort.Slice(s.projected, func(i, j int) bool {
		return s.projected[i].depth > s.projected[j].depth
	})

	frame := s.engine.Frame()
	for _, pp := range s.projected {
		if pp.x < -drawMargin || pp.x > screenWidth+drawMargin ||
			pp.y < -drawMargin || pp.y > screenHeight+drawMargin {
			continue
		}

		c := frame[pp.index]
		clr := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}

		radius := pointRadius * s.camera.Distance / pp.depth
		if radius < 1 {
			radius = 1
		}
		vector.DrawFilledCircle(screen, float32(pp.x), float32(pp.y), float32(radius), clr, true)
	}

	s.hud.Draw(screen, HUDState{
		FPS:       s.fps,
		Tick:      s.engine.FrameCount(),
		Phase:     s.engine.Phase(),
		Bricks:    s.engine.ActiveBricks(),
		Falls:     s.engine.Falls(),
		Games:     s.engine.GamesPlayed(),
		Paused:    s.paused,
		AutoOrbit: s.autoOrbit,
		Profiling: s.profiler.IsProfiling(),
	})
}

// Layout returns the fixed internal resolution.
func (s *Simulator) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
