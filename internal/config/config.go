// Package config holds the window settings and the optional environment
// overrides of the rotator.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"

	"image-rotator/internal/render"
)

// Environment variables read at startup.
const (
	EnvImage  = "IMAGE_ROTATOR_IMAGE"
	EnvInterp = "IMAGE_ROTATOR_INTERP"
)

// Config is the GUI startup configuration.
type Config struct {
	Title        string
	Width        float32
	Height       float32
	ImagePath    string // empty = bundled bitmap
	Interpolator string
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Title:        "Image Rotator",
		Width:        650,
		Height:       200,
		Interpolator: render.DefaultInterpolator,
	}
}

// Load reads the given dotenv files (".env" when none are named) and applies
// environment overrides to the defaults. Missing files are not an error.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), fmt.Errorf("load env: %w", err)
	} else if err != nil {
		log.Printf("No .env file, using defaults: %v", err)
	}
	return FromEnv(), nil
}

// FromEnv applies the current process environment to the defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	if v := os.Getenv(EnvImage); v != "" {
		cfg.ImagePath = v
	}
	if v := os.Getenv(EnvInterp); v != "" {
		cfg.Interpolator = v
	}
	return cfg
}

// Validate checks that the configured values are usable.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", c.Width, c.Height)
	}
	if _, err := render.ParseInterpolator(c.Interpolator); err != nil {
		return fmt.Errorf("%s: %w", EnvInterp, err)
	}
	return nil
}
