package cli

import (
	"flag"
	"fmt"
	"os"
)

// ParseFlags parses command-line arguments and returns a RunnerConfig.
// Returns a nil config with no error when there are no arguments (window
// mode), and flag.ErrHelp after printing usage for help requests.
func ParseFlags() (*RunnerConfig, error) {
	if len(os.Args) < 2 {
		return nil, nil // No args = use GUI
	}

	if os.Args[1] == "help" || os.Args[1] == "--help" || os.Args[1] == "-h" {
		PrintUsage()
		return nil, flag.ErrHelp
	}

	cfg := &RunnerConfig{}

	fs := flag.NewFlagSet("image-rotator", flag.ContinueOnError)

	fs.StringVar(&cfg.Degrees, "deg", "", "Comma separated rotations in degrees (0-360 each)")
	fs.StringVar(&cfg.Degrees, "degrees", "", "Comma separated rotations in degrees (0-360 each)")
	fs.IntVar(&cfg.Ticks, "ticks", 0, "One-degree spin ticks applied after the rotations")
	fs.StringVar(&cfg.ImagePath, "image", "", "Source image (default: bundled bitmap)")
	fs.StringVar(&cfg.Interpolator, "interp", "", "Interpolation: nearest, approxbilinear, bilinear, catmullrom")

	fs.StringVar(&cfg.Output, "o", "", "Output PNG file")
	fs.StringVar(&cfg.Output, "output", "", "Output PNG file")
	fs.BoolVar(&cfg.Verbose, "v", false, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Verbose output")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if cfg.Ticks < 0 {
		fmt.Fprintf(os.Stderr, "Error: -ticks must not be negative\n\n")
		return nil, fmt.Errorf("negative tick count %d", cfg.Ticks)
	}

	if cfg.Degrees == "" && cfg.Ticks == 0 {
		fmt.Fprintf(os.Stderr, "Error: must provide -deg <degrees> and/or -ticks <n>\n\n")
		PrintUsage()
		return nil, fmt.Errorf("missing required flags")
	}

	return cfg, nil
}

// PrintUsage prints the help message.
func PrintUsage() {
	fmt.Fprintf(os.Stderr, `Image Rotator

Usage: image-rotator             (open the window)
       image-rotator [flags]     (render a rotated PNG without a window)
       image-rotator help        (show this message)

RENDER MODE:
  -deg, -degrees <list>    Rotations in whole degrees, 0-360 each, comma separated
  -ticks <n>               Continuous-spin ticks (1 degree each) applied afterwards
  -image <path>            Source image (default: bundled bitmap)
  -interp <name>           nearest | approxbilinear | bilinear | catmullrom (default: bilinear)

OUTPUT:
  -o, -output <file>       Output PNG (default: rotated_DD.MM.YYYY.png)
  -v, -verbose             Verbose output

ENVIRONMENT (window mode, also read from .env):
  IMAGE_ROTATOR_IMAGE      Source image instead of the bundled bitmap
  IMAGE_ROTATOR_INTERP     Interpolation name

EXAMPLES:
  # Quarter turn of the bundled image
  image-rotator -deg 90 -o quarter.png

  # Two button presses followed by 30 spin ticks
  image-rotator -deg 90,45 -ticks 30 -v

  # Rotate your own picture with sharp edges
  image-rotator -image photo.png -deg 180 -interp nearest -o flipped.png

`)
}
