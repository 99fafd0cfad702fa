package format

import (
	"math"
	"strings"
	"testing"
	"time"

	"image-rotator/internal/model"
)

func TestFormatAngle(t *testing.T) {
	tests := []struct {
		rad  float64
		want string
	}{
		{0, "0.00° (0.0000 rad)"},
		{math.Pi / 2, "90.00° (1.5708 rad)"},
		{3 * math.Pi, "540.00° (9.4248 rad)"},
	}
	for _, tt := range tests {
		if got := FormatAngle(tt.rad); got != tt.want {
			t.Errorf("FormatAngle(%v) = %q, want %q", tt.rad, got, tt.want)
		}
	}
}

func TestFormatResult(t *testing.T) {
	r := &model.RenderResult{
		Timestamp:    time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC),
		Source:       "bundled",
		Degrees:      []int{90, 45},
		Ticks:        10,
		Angle:        145 * math.Pi / 180,
		Interpolator: "bilinear",
		Width:        96,
		Height:       96,
		OutputPath:   "out.png",
		Fingerprint:  "abc123",
	}

	out := FormatResult(r)

	for _, want := range []string{
		"=== Render Result ===",
		"2026-02-13 12:00:00",
		"bundled (96x96)",
		"90° + 45°",
		"Spin ticks:      10",
		"145.00°",
		"bilinear",
		"out.png",
		"abc123",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatResultOmitsEmptySections(t *testing.T) {
	out := FormatResult(&model.RenderResult{Ticks: 0})
	if strings.Contains(out, "Rotations:") {
		t.Error("no degree inputs should omit the rotations line")
	}
	if strings.Contains(out, "Spin ticks:") {
		t.Error("zero ticks should omit the spin line")
	}
}
