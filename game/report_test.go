package game

import (
	"strings"
	"testing"

	"conebreaker/pointcloud"
)

func TestSetupReport(t *testing.T) {
	config := gridTestConfig()
	points := []pointcloud.CylindricalPoint{
		{Angle: -3.0, Height: 0.4},
		{Angle: -3.0, Height: 0.45},
		{Angle: -3.0, Height: 0.5},
		{Angle: 1.0, Height: 0.9},
		{Angle: 0.5, Height: 0.1},
	}
	grid := NewGrid(config, points)

	report := buildReport(config, len(points), grid)

	if report.CellCount != 2 {
		t.Errorf("Expected 2 cells, got %d", report.CellCount)
	}
	if report.BrickPoints != 4 {
		t.Errorf("Expected 4 brick points, got %d", report.BrickPoints)
	}
	if report.PlayAreaPoints != 1 {
		t.Errorf("Expected 1 play area point, got %d", report.PlayAreaPoints)
	}
	if report.UnassignedPoints != 0 {
		t.Errorf("Expected no unassigned points in grid layout, got %d", report.UnassignedPoints)
	}
	if report.MinCellPoints != 1 || report.MaxCellPoints != 3 {
		t.Errorf("Expected cell population bounds 1..3, got %d..%d",
			report.MinCellPoints, report.MaxCellPoints)
	}
	if got := report.AvgCellPoints(); got != 2 {
		t.Errorf("Expected average cell population 2, got %v", got)
	}

	s := report.String()
	if !strings.Contains(s, "2 bricks") {
		t.Errorf("Expected summary to name the brick count, got %q", s)
	}
	if !strings.Contains(s, "grid layout") {
		t.Errorf("Expected summary to name the layout, got %q", s)
	}
}

func TestSetupReportEmpty(t *testing.T) {
	config := DefaultConfig()
	grid := NewGrid(config, nil)

	report := buildReport(config, 0, grid)

	if report.CellCount != 0 {
		t.Errorf("Expected no cells, got %d", report.CellCount)
	}
	if got := report.AvgCellPoints(); got != 0 {
		t.Errorf("Expected average 0 for an empty grid, got %v", got)
	}
}
