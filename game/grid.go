package game

import "conebreaker/pointcloud"

// Cell is one destroyable brick: a group of points sharing an angular
// section and height band (or one sequential chunk). Geometry is computed
// once at setup; Active is the only field that changes during play.
type Cell struct {
	// Section and Band are the cell's grid coordinates
	Section int
	Band    int

	// Points holds the cloud indices belonging to this cell
	Points []int

	// CenterAngle is the circular mean of the member angles, safe across
	// the -pi/pi seam
	CenterAngle float64

	// CenterHeight is the mean normalized height of the members
	CenterHeight float64

	// Active is true while the brick is intact
	Active bool
}

// newCell computes a cell's center from its member points.
func newCell(section, band int, indices []int, points []pointcloud.CylindricalPoint) *Cell {
	angles := make([]float64, len(indices))
	heightSum := 0.0
	for i, idx := range indices {
		angles[i] = points[idx].Angle
		heightSum += points[idx].Height
	}

	centerHeight := 0.0
	if len(indices) > 0 {
		centerHeight = heightSum / float64(len(indices))
	}

	return &Cell{
		Section:      section,
		Band:         band,
		Points:       indices,
		CenterAngle:  CircularMean(angles),
		CenterHeight: centerHeight,
		Active:       true,
	}
}

// Grid holds the brick cells and the play-area split of the point cloud.
// Cell geometry is shared read-only state; only the Active flags mutate
// during play.
type Grid struct {
	config Config

	// cells in stable construction order. Collision and rendering iterate
	// this slice, which keeps brick processing deterministic.
	cells []*Cell

	// bySlot is the fixed-size array addressed by section*NumBands+band.
	// Nil entries are (section, band) pairs no point landed in.
	bySlot []*Cell

	// playAreaPoints counts the points below the brick threshold
	playAreaPoints int
}

// NewGrid partitions the cylindrical points into brick cells using the
// configured layout. Degenerate configurations (no sections, no bands, no
// points) produce an empty grid rather than an error.
func NewGrid(config Config, points []pointcloud.CylindricalPoint) *Grid {
	var cells []*Cell
	switch config.Layout {
	case LayoutSequential:
		cells = buildSequentialCells(config, points)
	default:
		cells = buildGridCells(config, points)
	}

	slots := config.NumSections * config.NumBands
	if slots < 0 {
		slots = 0
	}
	bySlot := make([]*Cell, slots)
	for _, cell := range cells {
		slot := cell.Section*config.NumBands + cell.Band
		if slot >= 0 && slot < len(bySlot) && bySlot[slot] == nil {
			bySlot[slot] = cell
		}
	}

	playArea := 0
	for _, p := range points {
		if p.Height < config.BrickHeightMin {
			playArea++
		}
	}

	return &Grid{
		config:         config,
		cells:          cells,
		bySlot:         bySlot,
		playAreaPoints: playArea,
	}
}

// Cell returns the cell at the given grid coordinates, or nil if no point
// landed there.
func (g *Grid) Cell(section, band int) *Cell {
	if section < 0 || section >= g.config.NumSections ||
		band < 0 || band >= g.config.NumBands {
		return nil
	}
	return g.bySlot[section*g.config.NumBands+band]
}

// Cells returns every materialized cell in construction order.
func (g *Grid) Cells() []*Cell {
	return g.cells
}

// ActiveCount returns the number of intact bricks.
func (g *Grid) ActiveCount() int {
	count := 0
	for _, cell := range g.cells {
		if cell.Active {
			count++
		}
	}
	return count
}

// ResetAll reactivates every brick for a new game.
func (g *Grid) ResetAll() {
	for _, cell := range g.cells {
		cell.Active = true
	}
}

// PlayAreaPoints returns how many points sit below the brick threshold.
func (g *Grid) PlayAreaPoints() int {
	return g.playAreaPoints
}
