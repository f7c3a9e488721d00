package main

import (
	"flag"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"conebreaker/game"
	"conebreaker/pointcloud"
)

func main() {
	// Parse command line flags
	pointsPath := flag.String("points", "", "CSV point cloud file (x,y,z per line); synthetic cone when empty")
	seed := flag.Int64("seed", 1, "random seed for respawn direction and synthetic cloud")
	layoutFlag := flag.String("layout", "grid", "brick layout: grid or sequential")
	flag.Parse()

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

	engine, report := game.New(cloud, config)
	log.Print(report.String())

	sim := NewSimulator(cloud, engine, config)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Cone Breaker")
	ebiten.SetWindowResizable(true)

	if err := ebiten.RunGame(sim); err != nil {
		log.Fatal(err)
	}
}
