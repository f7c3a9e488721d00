package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"conebreaker/game"
	"conebreaker/pointcloud"
	"conebreaker/stream"
)

// serverStats is the /health payload: hub metrics plus a game snapshot.
type serverStats struct {
	stream.HubStats
	Phase  string `json:"phase"`
	Bricks int    `json:"bricks"`
	Falls  int    `json:"falls"`
	Games  int    `json:"games"`
	Points int    `json:"points"`
}

func main() {
	// Parse command line flags
	pointsPath := flag.String("points", "", "CSV point cloud file (x,y,z per line); synthetic cone when empty")
	addrFlag := flag.String("addr", "", "listen address (or set PORT env var; default :8080)")
	fps := flag.Int("fps", 30, "game frames per second")
	seed := flag.Int64("seed", 1, "random seed for respawn direction and synthetic cloud")
	layoutFlag := flag.String("layout", "grid", "brick layout: grid or sequential")
	sinkURL := flag.String("sink-url", "", "optional HTTP endpoint to POST frames to (or set SINK_URL env var)")
	flag.Parse()

	// Write logs to stdout so supervisors don't mark them as errors
	log.SetOutput(os.Stdout)

	addr := *addrFlag
	if addr == "" {
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}
		addr = ":" + port
	}

	sink := *sinkURL
	if sink == "" {
		sink = os.Getenv("SINK_URL")
	}

	if *fps < 1 {
		log.Fatalf("fps must be at least 1, got %d", *fps)
	}

	var layout game.LayoutKind
	switch *layoutFlag {
	case "grid":
		layout = game.LayoutGrid
	case "sequential":
		layout = game.LayoutSequential
	default:
		log.Fatalf("unknown layout %q (want grid or sequential)", *layoutFlag)
	}

	var cloud pointcloud.Cloud
	if *pointsPath != "" {
		var err error
		cloud, err = pointcloud.Load(*pointsPath)
		if err != nil {
			log.Fatalf("Failed to load point cloud: %v", err)
		}
		log.Printf("loaded %d points from %s", len(cloud), *pointsPath)
	} else {
		gen := rand.New(rand.NewSource(*seed))
		cloud = pointcloud.ConeSpiral(500, 18, 1.2, 2.4, 0.05, gen)
		log.Printf("generated synthetic cone with %d points", len(cloud))
	}

	config := game.DefaultConfig()
	config.Layout = layout
	config.Seed = *seed
	config.FrameRate = *fps

	engine, report := game.New(cloud, config)
	log.Print(report.String())

	hub := stream.NewHub(nil)

	// The engine is single-threaded; the game loop and the stats handler
	// share it under this lock.
	var engineMu sync.Mutex

	// Optional HTTP sink gets its own worker so a slow controller misses
	// frames instead of stalling the game loop.
	var sinkCh chan stream.Frame
	if sink != "" {
		s := stream.NewSink(sink)
		sinkCh = make(chan stream.Frame, 1)
		go func() {
			for frame := range sinkCh {
				if err := s.Push(frame); err != nil {
					log.Printf("sink push error: %v", err)
				}
			}
		}()
		log.Printf("posting frames to %s", sink)
	}

	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(*fps))
		defer ticker.Stop()

		lastPhase := engine.Phase()
		for {
			select {
			case <-ticker.C:
				engineMu.Lock()
				engine.Advance()
				frame := stream.PackFrame(engine.FrameCount(), engine.Phase(), engine.Frame())
				phase := engine.Phase()
				bricks := engine.ActiveBricks()
				falls := engine.Falls()
				games := engine.GamesPlayed()
				engineMu.Unlock()

				hub.Broadcast(frame)
				if sinkCh != nil {
					select {
					case sinkCh <- frame:
					default:
						// sink worker is behind, skip this frame
					}
				}

				if phase != lastPhase {
					log.Printf("phase: %s (bricks: %d, falls: %d, games: %d)", phase, bricks, falls, games)
					lastPhase = phase
				}
			case <-done:
				return
			}
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.HandleWS)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		engineMu.Lock()
		stats := serverStats{
			HubStats: hub.Stats(),
			Phase:    engine.Phase().String(),
			Bricks:   engine.ActiveBricks(),
			Falls:    engine.Falls(),
			Games:    engine.GamesPlayed(),
			Points:   len(engine.Points()),
		}
		engineMu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		close(done)
		hub.CloseAll()
		server.Close()
	}()

	log.Printf("cone breaker server starting on %s (%d fps)", addr, *fps)
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}
