package game

import "math"

// Window is the rotating visible face of the structure. Only angles inside
// it are playable: bricks outside cannot be struck and render dim, and the
// ball and paddle are confined to it.
type Window struct {
	// ViewingAngle is the center of the visible face
	ViewingAngle float64

	// HalfWidth is the angular half-extent of the face
	HalfWidth float64

	rotationSpeed float64
	numSections   int
	sectionWidth  float64
}

// NewWindow creates a window centered at angle zero.
func NewWindow(config Config) *Window {
	return &Window{
		HalfWidth:     config.WindowHalfWidth,
		rotationSpeed: config.RotationSpeed,
		numSections:   config.NumSections,
		sectionWidth:  config.SectionWidth(),
	}
}

// Advance rotates the viewing angle by one frame's worth of rotation, so
// the playable face slowly sweeps around the structure.
func (w *Window) Advance() {
	w.ViewingAngle = NormalizeAngle(w.ViewingAngle + w.rotationSpeed)
}

// IsVisible reports whether an angle lies inside the visible face.
func (w *Window) IsVisible(angle float64) bool {
	return math.Abs(AngularDistance(angle, w.ViewingAngle)) < w.HalfWidth
}

// SectionCenter returns the center angle of a section. Sections start at
// -pi and wind around the structure.
func (w *Window) SectionCenter(section int) float64 {
	return -math.Pi + (float64(section)+0.5)*w.sectionWidth
}

// IsSectionVisible reports whether a section's center lies inside the
// visible face.
func (w *Window) IsSectionVisible(section int) bool {
	return w.IsVisible(w.SectionCenter(section))
}

// VisibleSections returns the indices of all currently visible sections.
func (w *Window) VisibleSections() []int {
	visible := make([]int, 0, w.numSections)
	for section := 0; section < w.numSections; section++ {
		if w.IsSectionVisible(section) {
			visible = append(visible, section)
		}
	}
	return visible
}
