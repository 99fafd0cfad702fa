package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img as PNG at path, creating parent directories.
func WritePNG(path string, img image.Image) error {
	if err := EnsureDir(path); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	return f.Close()
}
