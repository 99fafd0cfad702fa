package spin

import (
	"math"
	"time"

	"image-rotator/internal/model"
)

// StepRadians is the rotation applied on every tick: one degree.
const StepRadians = math.Pi / 180

// ticksPerRotation is the number of one-degree ticks in a full turn.
const ticksPerRotation = 360

// Delay returns the time between one-degree ticks needed to complete a full
// rotation in secondsPerRotation seconds, truncated to whole milliseconds.
// Out-of-range values are clamped to the slider range; 0 means "as fast as
// the event loop allows".
func Delay(secondsPerRotation int) time.Duration {
	s := model.ClampSeconds(secondsPerRotation)
	return time.Duration(s*1000/ticksPerRotation) * time.Millisecond
}
