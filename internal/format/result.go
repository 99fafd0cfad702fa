package format

import (
	"fmt"
	"math"
	"strings"

	"image-rotator/internal/model"
)

// FormatAngle renders a radian angle as degrees with the raw value alongside.
func FormatAngle(rad float64) string {
	return fmt.Sprintf("%.2f° (%.4f rad)", rad*180/math.Pi, rad)
}

// FormatResult produces a human-readable summary of a headless render.
func FormatResult(r *model.RenderResult) string {
	var b strings.Builder

	b.WriteString("=== Render Result ===\n")
	b.WriteString(fmt.Sprintf("Timestamp:       %s\n", r.Timestamp.Format("2006-01-02 15:04:05")))
	b.WriteString(fmt.Sprintf("Source:          %s (%dx%d)\n", r.Source, r.Width, r.Height))

	if len(r.Degrees) > 0 {
		parts := make([]string, len(r.Degrees))
		for i, d := range r.Degrees {
			parts[i] = fmt.Sprintf("%d°", d)
		}
		b.WriteString(fmt.Sprintf("Rotations:       %s\n", strings.Join(parts, " + ")))
	}
	if r.Ticks > 0 {
		b.WriteString(fmt.Sprintf("Spin ticks:      %d\n", r.Ticks))
	}

	b.WriteString(fmt.Sprintf("Total angle:     %s\n", FormatAngle(r.Angle)))
	b.WriteString(fmt.Sprintf("Interpolation:   %s\n", r.Interpolator))
	b.WriteString(fmt.Sprintf("Output:          %s\n", r.OutputPath))
	b.WriteString(fmt.Sprintf("Fingerprint:     %s\n", r.Fingerprint))
	b.WriteString("=====================")
	return b.String()
}
