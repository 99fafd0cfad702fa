// Package assets bundles the bitmap shown by the rotator.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"fyne.io/fyne/v2"
)

//go:embed bug.png
var bugPicture []byte

// BugPicture returns the bundled bitmap as a fyne resource.
func BugPicture() fyne.Resource {
	return fyne.NewStaticResource("bug.png", bugPicture)
}

// Decode decodes a bitmap resource.
func Decode(res fyne.Resource) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", res.Name(), err)
	}
	return img, nil
}

// Load returns the image at path, or the bundled bitmap when path is empty.
func Load(path string) (image.Image, error) {
	if path == "" {
		return Decode(BugPicture())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return Decode(fyne.NewStaticResource(path, data))
}
