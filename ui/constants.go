package ui

import "fyne.io/fyne/v2"

// Window dimensions
const (
	WindowWidth  = 650
	WindowHeight = 200
)

// Degree entry width; the field only ever holds up to three digits.
const DegreeEntryWidth = 70

// Slider tick labels are drawn every SliderMajorTick seconds.
const SliderMajorTick = 5

// NewWindowSize returns the default window size
func NewWindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}
