package game

import (
	"math"
	"testing"

	"conebreaker/pointcloud"
)

// gridTestConfig keeps the partition math easy to follow: four sections of
// pi/2 and two bands of 0.335 above the 0.33 threshold.
func gridTestConfig() Config {
	config := DefaultConfig()
	config.NumSections = 4
	config.NumBands = 2
	return config
}

func TestGridPartition(t *testing.T) {
	config := gridTestConfig()
	points := []pointcloud.CylindricalPoint{
		{Angle: -math.Pi + 0.1, Height: 0.4},  // section 0, band 0
		{Angle: 0.0, Height: 0.99},            // section 2, band 1
		{Angle: math.Pi, Height: 0.95},        // angle pi wraps into section 0, band 1
		{Angle: 1.0, Height: 0.2},             // below threshold, play area
		{Angle: -math.Pi + 0.2, Height: 0.45}, // section 0, band 0 again
	}

	grid := NewGrid(config, points)

	if got := len(grid.Cells()); got != 3 {
		t.Fatalf("Expected 3 cells, got %d", got)
	}
	if got := grid.PlayAreaPoints(); got != 1 {
		t.Errorf("Expected 1 play area point, got %d", got)
	}

	cell := grid.Cell(0, 0)
	if cell == nil {
		t.Fatal("Expected a cell at (0, 0)")
	}
	if got := len(cell.Points); got != 2 {
		t.Errorf("Expected 2 points in cell (0, 0), got %d", got)
	}

	if grid.Cell(2, 1) == nil {
		t.Error("Expected a cell at (2, 1)")
	}
	if grid.Cell(1, 0) != nil {
		t.Error("Expected no cell at (1, 0), no point landed there")
	}

	// The angle pi point wraps to the first section rather than spilling
	// past the last one.
	found := false
	for _, c := range grid.Cells() {
		for _, idx := range c.Points {
			if idx == 2 {
				found = true
				if c.Section != 0 {
					t.Errorf("Expected point at angle pi in section 0, got %d", c.Section)
				}
			}
		}
	}
	if !found {
		t.Error("Expected point at angle pi to be assigned to a cell")
	}
}

func TestGridEveryEligiblePointAssignedOnce(t *testing.T) {
	config := gridTestConfig()

	// A ring of points at assorted heights, including a few below the
	// brick threshold.
	var points []pointcloud.CylindricalPoint
	for i := 0; i < 60; i++ {
		points = append(points, pointcloud.CylindricalPoint{
			Angle:  NormalizeAngle(float64(i) * 0.43),
			Height: math.Mod(float64(i)*0.07, 1.0),
		})
	}

	grid := NewGrid(config, points)

	seen := make(map[int]int)
	for _, cell := range grid.Cells() {
		for _, idx := range cell.Points {
			seen[idx]++
		}
	}

	for i, p := range points {
		if p.Height < config.BrickHeightMin {
			if seen[i] != 0 {
				t.Errorf("Expected play-area point %d to be in no cell, found in %d", i, seen[i])
			}
			continue
		}
		if seen[i] != 1 {
			t.Errorf("Expected brick point %d in exactly one cell, found in %d", i, seen[i])
		}
	}
}

func TestGridCellCenterAcrossSeam(t *testing.T) {
	points := []pointcloud.CylindricalPoint{
		{Angle: 3.1, Height: 0.5},
		{Angle: -3.1, Height: 0.7},
	}

	cell := newCell(0, 0, []int{0, 1}, points)

	if math.Abs(math.Abs(cell.CenterAngle)-math.Pi) > 1e-9 {
		t.Errorf("Expected seam cell center near +/-pi, got %v", cell.CenterAngle)
	}
	if math.Abs(cell.CenterHeight-0.6) > 1e-9 {
		t.Errorf("Expected cell center height 0.6, got %v", cell.CenterHeight)
	}
}

func TestGridSequentialLayout(t *testing.T) {
	config := gridTestConfig()
	config.Layout = LayoutSequential
	config.GroupSize = 4

	// Ten eligible points interleaved with play-area points; chunks must
	// follow eligible index order, not slice order.
	var points []pointcloud.CylindricalPoint
	for i := 0; i < 10; i++ {
		points = append(points, pointcloud.CylindricalPoint{
			Angle:  NormalizeAngle(float64(i) * 0.5),
			Height: 0.5,
		})
		points = append(points, pointcloud.CylindricalPoint{Angle: 0, Height: 0.1})
	}

	grid := NewGrid(config, points)

	cells := grid.Cells()
	if len(cells) != 3 {
		t.Fatalf("Expected 3 sequential cells, got %d", len(cells))
	}

	wantSizes := []int{4, 4, 2}
	for i, cell := range cells {
		if len(cell.Points) != wantSizes[i] {
			t.Errorf("Expected cell %d to hold %d points, got %d", i, wantSizes[i], len(cell.Points))
		}
	}

	// First chunk is the first four eligible indices (the even ones).
	want := []int{0, 2, 4, 6}
	for i, idx := range cells[0].Points {
		if idx != want[i] {
			t.Errorf("Expected first chunk point %d to be index %d, got %d", i, want[i], idx)
		}
	}
}

func TestGridSequentialCap(t *testing.T) {
	config := gridTestConfig()
	config.Layout = LayoutSequential
	config.GroupSize = 4
	config.NumSections = 1
	config.NumBands = 1

	var points []pointcloud.CylindricalPoint
	for i := 0; i < 10; i++ {
		points = append(points, pointcloud.CylindricalPoint{Angle: 0.5, Height: 0.5})
	}

	grid := NewGrid(config, points)
	if got := len(grid.Cells()); got != 1 {
		t.Fatalf("Expected chunk count capped at 1, got %d", got)
	}

	report := buildReport(config, len(points), grid)
	if report.UnassignedPoints != 6 {
		t.Errorf("Expected 6 unassigned leftovers, got %d", report.UnassignedPoints)
	}
}

func TestGridDegenerate(t *testing.T) {
	config := gridTestConfig()
	config.NumSections = 0

	grid := NewGrid(config, []pointcloud.CylindricalPoint{{Angle: 1, Height: 0.5}})
	if got := len(grid.Cells()); got != 0 {
		t.Errorf("Expected no cells with zero sections, got %d", got)
	}
	if grid.Cell(0, 0) != nil {
		t.Error("Expected nil cell lookup on a degenerate grid")
	}

	empty := NewGrid(gridTestConfig(), nil)
	if got := empty.ActiveCount(); got != 0 {
		t.Errorf("Expected empty grid active count 0, got %d", got)
	}
}

func TestGridResetAll(t *testing.T) {
	config := gridTestConfig()
	points := []pointcloud.CylindricalPoint{
		{Angle: 0.1, Height: 0.4},
		{Angle: 1.8, Height: 0.9},
	}

	grid := NewGrid(config, points)
	total := len(grid.Cells())
	if total == 0 {
		t.Fatal("Expected at least one cell")
	}

	for _, cell := range grid.Cells() {
		cell.Active = false
	}
	if got := grid.ActiveCount(); got != 0 {
		t.Fatalf("Expected 0 active after deactivation, got %d", got)
	}

	grid.ResetAll()
	if got := grid.ActiveCount(); got != total {
		t.Errorf("Expected %d active after reset, got %d", total, got)
	}
}
