package game

import (
	"math"

	"conebreaker/pointcloud"
)

// LayoutKind selects how points are grouped into destroyable bricks.
type LayoutKind int

const (
	// LayoutGrid partitions the brick area by angular section and height
	// band; a brick is every point sharing one (section, band) pair.
	LayoutGrid LayoutKind = iota

	// LayoutSequential chunks brick-area points into fixed-size groups in
	// index order, the way string-order installations group their lights.
	LayoutSequential
)

// String returns the layout name for reports and logs.
func (k LayoutKind) String() string {
	switch k {
	case LayoutGrid:
		return "grid"
	case LayoutSequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// buildGridCells assigns every point to an angular section and height band,
// then materializes a cell for each (section, band) pair that received at
// least one point. Points below the brick threshold are left out; they make
// up the play area.
func buildGridCells(config Config, points []pointcloud.CylindricalPoint) []*Cell {
	if config.NumSections < 1 || config.NumBands < 1 {
		return nil
	}

	sectionWidth := config.SectionWidth()
	bandHeight := config.BandHeight()

	// Bucket point indices by (section, band). Sections come from the
	// angle shifted to [0, 2pi); bands from the height above the brick
	// threshold, clamped to the top band.
	buckets := make([][]int, config.NumSections*config.NumBands)
	for i, p := range points {
		if p.Height < config.BrickHeightMin {
			continue
		}

		positive := math.Mod(p.Angle+math.Pi, 2*math.Pi)
		if positive < 0 {
			positive += 2 * math.Pi
		}
		section := int(positive/sectionWidth) % config.NumSections

		band := int((p.Height - config.BrickHeightMin) / bandHeight)
		if band > config.NumBands-1 {
			band = config.NumBands - 1
		}
		if band < 0 {
			band = 0
		}

		slot := section*config.NumBands + band
		buckets[slot] = append(buckets[slot], i)
	}

	cells := make([]*Cell, 0, len(buckets))
	for section := 0; section < config.NumSections; section++ {
		for band := 0; band < config.NumBands; band++ {
			indices := buckets[section*config.NumBands+band]
			if len(indices) == 0 {
				continue
			}
			cells = append(cells, newCell(section, band, indices, points))
		}
	}
	return cells
}

// buildSequentialCells takes brick-area points in index order and chunks
// them into groups of config.GroupSize. Each chunk becomes one cell whose
// section and band are derived from its center position so visibility and
// checkerboard rendering work the same as for the grid layout. Chunk count
// is capped at NumSections*NumBands; leftover points stay unassigned.
func buildSequentialCells(config Config, points []pointcloud.CylindricalPoint) []*Cell {
	if config.NumSections < 1 || config.NumBands < 1 || config.GroupSize < 1 {
		return nil
	}

	eligible := make([]int, 0, len(points))
	for i, p := range points {
		if p.Height >= config.BrickHeightMin {
			eligible = append(eligible, i)
		}
	}

	sectionWidth := config.SectionWidth()
	bandHeight := config.BandHeight()
	maxCells := config.NumSections * config.NumBands

	cells := make([]*Cell, 0, maxCells)
	for start := 0; start < len(eligible) && len(cells) < maxCells; start += config.GroupSize {
		end := start + config.GroupSize
		if end > len(eligible) {
			end = len(eligible)
		}
		indices := append([]int(nil), eligible[start:end]...)

		cell := newCell(0, 0, indices, points)

		// Derive grid coordinates from the chunk's true center so the
		// window and renderer treat both layouts identically.
		positive := math.Mod(cell.CenterAngle+math.Pi, 2*math.Pi)
		if positive < 0 {
			positive += 2 * math.Pi
		}
		cell.Section = int(positive/sectionWidth) % config.NumSections

		band := int((cell.CenterHeight - config.BrickHeightMin) / bandHeight)
		if band > config.NumBands-1 {
			band = config.NumBands - 1
		}
		if band < 0 {
			band = 0
		}
		cell.Band = band

		cells = append(cells, cell)
	}
	return cells
}
