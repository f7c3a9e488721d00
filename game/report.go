package game

import (
	"fmt"
	"math"
	"strings"
)

// SetupReport summarizes how a point cloud mapped onto the game space. The
// engine returns it from construction instead of logging anything itself;
// drivers decide what to do with it.
type SetupReport struct {
	// PointCount is the size of the cloud
	PointCount int

	// Layout is the brick grouping strategy that was used
	Layout LayoutKind

	// CellCount is the number of materialized bricks
	CellCount int

	// Sections and Bands echo the configured grid dimensions
	Sections int
	Bands    int

	// SectionWidth is the angular width of one section in radians
	SectionWidth float64

	// BandHeight is the height of one band in normalized units
	BandHeight float64

	// BrickPoints is the number of points assigned to bricks
	BrickPoints int

	// PlayAreaPoints is the number of points below the brick threshold
	PlayAreaPoints int

	// UnassignedPoints is the number of brick-area points no cell claimed
	// (only the sequential layout leaves leftovers)
	UnassignedPoints int

	// MinCellPoints and MaxCellPoints bound the cell populations
	MinCellPoints int
	MaxCellPoints int

	// HalfWidth is the visible-face half-extent in radians
	HalfWidth float64
}

// buildReport collects grid statistics after construction.
func buildReport(config Config, pointCount int, grid *Grid) SetupReport {
	report := SetupReport{
		PointCount:     pointCount,
		Layout:         config.Layout,
		CellCount:      len(grid.Cells()),
		Sections:       config.NumSections,
		Bands:          config.NumBands,
		SectionWidth:   config.SectionWidth(),
		BandHeight:     config.BandHeight(),
		PlayAreaPoints: grid.PlayAreaPoints(),
		HalfWidth:      config.WindowHalfWidth,
	}

	for _, cell := range grid.Cells() {
		n := len(cell.Points)
		report.BrickPoints += n
		if report.MinCellPoints == 0 || n < report.MinCellPoints {
			report.MinCellPoints = n
		}
		if n > report.MaxCellPoints {
			report.MaxCellPoints = n
		}
	}
	report.UnassignedPoints = pointCount - report.BrickPoints - report.PlayAreaPoints

	return report
}

// AvgCellPoints returns the mean brick population.
func (r SetupReport) AvgCellPoints() float64 {
	if r.CellCount == 0 {
		return 0
	}
	return float64(r.BrickPoints) / float64(r.CellCount)
}

// String renders a multi-line setup summary suitable for startup logs.
func (r SetupReport) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grid setup complete: %d bricks (%s layout)\n", r.CellCount, r.Layout)
	fmt.Fprintf(&b, "  points: %d total, %d in bricks, %d in play area, %d unassigned\n",
		r.PointCount, r.BrickPoints, r.PlayAreaPoints, r.UnassignedPoints)
	fmt.Fprintf(&b, "  sections: %d (%.1f deg each)\n", r.Sections, r.SectionWidth*180/math.Pi)
	fmt.Fprintf(&b, "  bands: %d (%.3f height units each)\n", r.Bands, r.BandHeight)
	fmt.Fprintf(&b, "  points per brick: %d min, %.1f avg, %d max\n",
		r.MinCellPoints, r.AvgCellPoints(), r.MaxCellPoints)
	fmt.Fprintf(&b, "  visible face: +/-%.0f deg", r.HalfWidth*180/math.Pi)
	return b.String()
}
