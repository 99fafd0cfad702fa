package model

import "math"

// Slider bounds and default for the spin speed control.
const (
	MinSecondsPerRotation     = 0
	MaxSecondsPerRotation     = 30
	DefaultSecondsPerRotation = 15
)

// RotationState holds the cumulative rotation applied to the displayed image.
// The angle is in radians and is never normalized.
type RotationState struct {
	angle float64
}

// Angle returns the current rotation in radians.
func (s *RotationState) Angle() float64 {
	return s.angle
}

// Add advances the rotation by delta radians and returns the new angle.
func (s *RotationState) Add(delta float64) float64 {
	s.angle += delta
	return s.angle
}

// Degrees returns the current rotation converted to degrees.
func (s *RotationState) Degrees() float64 {
	return s.angle * 180 / math.Pi
}

// SpinConfig is the continuous-spin setting driven by the checkbox and slider.
type SpinConfig struct {
	Enabled            bool
	SecondsPerRotation int
}

// DefaultSpinConfig returns the startup spin setting: stopped, 15s per turn.
func DefaultSpinConfig() SpinConfig {
	return SpinConfig{SecondsPerRotation: DefaultSecondsPerRotation}
}

// ClampSeconds limits s to the slider range.
func ClampSeconds(s int) int {
	if s < MinSecondsPerRotation {
		return MinSecondsPerRotation
	}
	if s > MaxSecondsPerRotation {
		return MaxSecondsPerRotation
	}
	return s
}
