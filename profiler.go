package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

// Profiler captures CPU profiles and execution traces when the simulator
// slows down, so hitches can be diagnosed offline.
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration
}

// NewProfiler creates a profiler writing into ./profiles.
func NewProfiler() *Profiler {
	profilesDir := "profiles"
	os.MkdirAll(profilesDir, 0755)

	return &Profiler{
		captureCooldown: 30 * time.Second,
		profilesDir:     profilesDir,
		captureDuration: 5 * time.Second,
	}
}

// CaptureProfile starts an asynchronous CPU profile and trace capture.
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	// Check cooldown to avoid capturing too frequently
	if time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("capture on cooldown (last capture was %v ago)", time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return fmt.Errorf("already profiling")
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	timestamp := time.Now().Format("20060102-150405")
	baseName := fmt.Sprintf("slowdown-%s-%s", timestamp, reason)

	// Capture in a goroutine to avoid blocking the render loop
	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				log.Printf("profiler: cpu profile: %v", err)
			}
		}()

		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				log.Printf("profiler: trace: %v", err)
			}
		}()

		wg.Wait()
		p.summarize(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	log.Printf("CPU profile saved to %s", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	log.Printf("Trace saved to %s", tracePath)
	return nil
}

// summarize logs where the capture ended up and how the heap looked.
func (p *Profiler) summarize(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		log.Printf("profiler: could not stat profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	log.Printf("profile %s (%.1f KB); inspect with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, profilePath)
	log.Printf("heap at capture: Alloc=%d KB NumGC=%d HeapObjects=%d", m.Alloc/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling reports whether a capture is in progress.
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
