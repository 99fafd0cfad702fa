// Package render produces rotated copies of a static bitmap.
package render

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DefaultInterpolator is used when none is configured.
const DefaultInterpolator = "bilinear"

var interpolators = map[string]draw.Interpolator{
	"nearest":        draw.NearestNeighbor,
	"approxbilinear": draw.ApproxBiLinear,
	"bilinear":       draw.BiLinear,
	"catmullrom":     draw.CatmullRom,
}

// ParseInterpolator maps a configuration name to an x/image interpolator.
// An empty name selects DefaultInterpolator.
func ParseInterpolator(name string) (draw.Interpolator, error) {
	if name == "" {
		name = DefaultInterpolator
	}
	interp, ok := interpolators[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown interpolator %q (want nearest, approxbilinear, bilinear or catmullrom)", name)
	}
	return interp, nil
}

// Rotate returns a new bitmap the size of src holding src rotated by angle
// radians about its center. Positive angles turn clockwise on screen. Corners
// that leave the frame are clipped and uncovered pixels stay transparent.
func Rotate(src image.Image, angle float64, interp draw.Interpolator) *image.NRGBA {
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, sb.Dx(), sb.Dy()))
	if sb.Empty() {
		return dst
	}

	sin, cos := math.Sincos(angle)
	scx := float64(sb.Min.X) + float64(sb.Dx())/2
	scy := float64(sb.Min.Y) + float64(sb.Dy())/2
	dcx := float64(sb.Dx()) / 2
	dcy := float64(sb.Dy()) / 2

	// Maps source coordinates to destination coordinates.
	s2d := f64.Aff3{
		cos, -sin, dcx - cos*scx + sin*scy,
		sin, cos, dcy - sin*scx - cos*scy,
	}
	interp.Transform(dst, s2d, src, sb, draw.Src, nil)
	return dst
}

// Renderer renders one static source at varying angles and keeps the most
// recent result.
type Renderer struct {
	src    image.Image
	interp draw.Interpolator

	cached    bool
	lastAngle float64
	last      *image.NRGBA
}

// NewRenderer creates a renderer for src. A nil interp selects BiLinear.
func NewRenderer(src image.Image, interp draw.Interpolator) *Renderer {
	if interp == nil {
		interp = draw.BiLinear
	}
	return &Renderer{src: src, interp: interp}
}

// Source returns the unrotated bitmap.
func (r *Renderer) Source() image.Image {
	return r.src
}

// Render returns src rotated by angle. Calling it again with the same angle
// returns the same bitmap without recomputing it.
func (r *Renderer) Render(angle float64) *image.NRGBA {
	if r.cached && r.lastAngle == angle {
		return r.last
	}
	r.last = Rotate(r.src, angle, r.interp)
	r.lastAngle = angle
	r.cached = true
	return r.last
}

// Fingerprint returns a BLAKE2b-256 digest of img's bounds and pixels.
func Fingerprint(img *image.NRGBA) [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	var hdr [16]byte
	binary.LittleEndian.PutUint32(hdr[0:], uint32(img.Rect.Min.X))
	binary.LittleEndian.PutUint32(hdr[4:], uint32(img.Rect.Min.Y))
	binary.LittleEndian.PutUint32(hdr[8:], uint32(img.Rect.Dx()))
	binary.LittleEndian.PutUint32(hdr[12:], uint32(img.Rect.Dy()))
	h.Write(hdr[:])
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		off := img.PixOffset(img.Rect.Min.X, y)
		h.Write(img.Pix[off : off+4*img.Rect.Dx()])
	}
	var sum [blake2b.Size256]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
