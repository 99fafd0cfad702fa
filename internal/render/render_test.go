package render

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/draw"
)

// gradient returns a w×h image where every pixel has a distinct colour.
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 40), B: uint8(10 + x + y*w), A: 255})
		}
	}
	return img
}

func TestRotateZeroIsIdentity(t *testing.T) {
	src := gradient(5, 4)
	got := Rotate(src, 0, draw.NearestNeighbor)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("rotation by 0 should reproduce the source")
	}
}

func TestRotateQuarterTurnClockwise(t *testing.T) {
	const n = 3
	src := gradient(n, n)
	got := Rotate(src, math.Pi/2, draw.NearestNeighbor)

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			want := src.NRGBAAt(y, n-1-x)
			if c := got.NRGBAAt(x, y); c != want {
				t.Errorf("dst(%d,%d) = %v, want src(%d,%d) = %v", x, y, c, y, n-1-x, want)
			}
		}
	}
}

func TestRotateHalfTurn(t *testing.T) {
	src := gradient(4, 2)
	got := Rotate(src, math.Pi, draw.NearestNeighbor)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := src.NRGBAAt(3-x, 1-y)
			if c := got.NRGBAAt(x, y); c != want {
				t.Errorf("dst(%d,%d) = %v, want %v", x, y, c, want)
			}
		}
	}
}

func TestRotateKeepsSizeAndClipsCorners(t *testing.T) {
	src := gradient(8, 8)
	got := Rotate(src, math.Pi/4, draw.BiLinear)
	if got.Bounds() != image.Rect(0, 0, 8, 8) {
		t.Fatalf("bounds = %v, want 8x8", got.Bounds())
	}
	if a := got.NRGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want transparent after 45° turn", a)
	}
}

func TestRotateHonoursSourceOffset(t *testing.T) {
	base := gradient(6, 6)
	sub := base.SubImage(image.Rect(2, 2, 5, 5))
	got := Rotate(sub, 0, draw.NearestNeighbor)
	if got.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Fatalf("bounds = %v, want 3x3 at origin", got.Bounds())
	}
	if c, want := got.NRGBAAt(0, 0), base.NRGBAAt(2, 2); c != want {
		t.Errorf("dst(0,0) = %v, want %v", c, want)
	}
}

func TestRotateLeavesSourceUntouched(t *testing.T) {
	src := gradient(6, 5)
	before := append([]byte(nil), src.Pix...)
	Rotate(src, 1.234, draw.CatmullRom)
	if !bytes.Equal(before, src.Pix) {
		t.Error("source pixels changed")
	}
}

func TestRotateEmptySource(t *testing.T) {
	got := Rotate(image.NewNRGBA(image.Rectangle{}), 1, draw.BiLinear)
	if !got.Bounds().Empty() {
		t.Errorf("bounds = %v, want empty", got.Bounds())
	}
}

func TestRendererIsIdempotent(t *testing.T) {
	src := gradient(7, 7)
	r := NewRenderer(src, nil)

	first := r.Render(0.3)
	sum := Fingerprint(first)
	second := r.Render(0.3)
	if first != second {
		t.Error("unchanged angle should return the cached bitmap")
	}
	if Fingerprint(second) != sum {
		t.Error("fingerprint changed between renders at the same angle")
	}

	fresh := NewRenderer(src, nil).Render(0.3)
	if Fingerprint(fresh) != sum {
		t.Error("independent renders at the same angle differ")
	}
}

func TestRendererRerendersOnNewAngle(t *testing.T) {
	r := NewRenderer(gradient(7, 7), draw.NearestNeighbor)
	a := Fingerprint(r.Render(0))
	b := Fingerprint(r.Render(math.Pi / 2))
	if a == b {
		t.Error("different angles produced identical output")
	}
	if r.Source() == nil {
		t.Error("Source() returned nil")
	}
}

func TestFingerprintCoversBounds(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 2, 8))
	b := image.NewNRGBA(image.Rect(0, 0, 8, 2))
	if Fingerprint(a) == Fingerprint(b) {
		t.Error("same pixels with different shapes should not share a fingerprint")
	}
}

func TestParseInterpolator(t *testing.T) {
	tests := []struct {
		name    string
		want    draw.Interpolator
		wantErr bool
	}{
		{"", draw.BiLinear, false},
		{"nearest", draw.NearestNeighbor, false},
		{"BiLinear", draw.BiLinear, false},
		{"approxbilinear", draw.ApproxBiLinear, false},
		{"catmullrom", draw.CatmullRom, false},
		{"lanczos", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseInterpolator(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInterpolator(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseInterpolator(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
