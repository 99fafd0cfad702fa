package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Accepted range for a one-shot rotation, in degrees.
const (
	MinDegrees = 0
	MaxDegrees = 360
)

// Message is shown to the user whenever the rotate input is rejected.
const Message = "input an integer from 0-360 in the text box to rotate"

var (
	ErrNotAnInteger = errors.New("not an integer")
	ErrOutOfRange   = errors.New("outside 0-360")
)

// InputError reports rejected rotate-button text.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid degree input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ParseDegrees parses s as a base-10 integer number of degrees in [0, 360]
// and returns it converted to radians.
func ParseDegrees(s string) (float64, error) {
	deg, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &InputError{Input: s, Err: ErrOutOfRange}
		}
		return 0, &InputError{Input: s, Err: ErrNotAnInteger}
	}
	if deg < MinDegrees || deg > MaxDegrees {
		return 0, &InputError{Input: s, Err: ErrOutOfRange}
	}
	return ToRadians(deg), nil
}

// ToRadians converts whole degrees to radians.
func ToRadians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}
