package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"image-rotator/assets"
	"image-rotator/internal/angle"
	"image-rotator/internal/export"
	"image-rotator/internal/format"
	"image-rotator/internal/model"
	"image-rotator/internal/render"
	"image-rotator/internal/spin"
)

// RunnerConfig holds all CLI options for a headless render.
type RunnerConfig struct {
	Degrees      string // raw comma separated list, validated per entry
	Ticks        int
	ImagePath    string
	Interpolator string

	// Output
	Output  string
	Verbose bool
}

// RenderRunner applies the requested rotations to the source image the same
// way the window does and writes the result as PNG.
func RenderRunner(cfg RunnerConfig) (*model.RenderResult, error) {
	interp, err := render.ParseInterpolator(cfg.Interpolator)
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	interpName := cfg.Interpolator
	if interpName == "" {
		interpName = render.DefaultInterpolator
	}

	var (
		state   model.RotationState
		degrees []int
	)
	if cfg.Degrees != "" {
		for _, field := range strings.Split(cfg.Degrees, ",") {
			field = strings.TrimSpace(field)
			delta, err := angle.ParseDegrees(field)
			if err != nil {
				return nil, fmt.Errorf("-deg: %w", err)
			}
			deg, _ := strconv.Atoi(field)
			degrees = append(degrees, deg)
			state.Add(delta)
		}
	}
	for i := 0; i < cfg.Ticks; i++ {
		state.Add(spin.StepRadians)
	}

	src, err := assets.Load(cfg.ImagePath)
	if err != nil {
		return nil, err
	}
	source := cfg.ImagePath
	if source == "" {
		source = "bundled"
	}

	now := time.Now()
	out := cfg.Output
	if out == "" {
		out = export.BuildPath("rotated", ".png", now)
	}

	if cfg.Verbose {
		fmt.Printf("Rendering %s at %s (%s)\n", source, format.FormatAngle(state.Angle()), interpName)
	}

	img := render.Rotate(src, state.Angle(), interp)
	if err := export.WritePNG(out, img); err != nil {
		return nil, fmt.Errorf("write png: %w", err)
	}

	if cfg.Verbose {
		fmt.Printf("Saved to: %s\n", out)
	}

	sum := render.Fingerprint(img)
	return &model.RenderResult{
		Timestamp:    now,
		Source:       source,
		Degrees:      degrees,
		Ticks:        cfg.Ticks,
		Angle:        state.Angle(),
		Interpolator: interpName,
		Width:        img.Bounds().Dx(),
		Height:       img.Bounds().Dy(),
		OutputPath:   out,
		Fingerprint:  hex.EncodeToString(sum[:]),
	}, nil
}

// PrintResult prints a formatted render result to stdout.
func PrintResult(r *model.RenderResult) {
	fmt.Println(format.FormatResult(r))
}
