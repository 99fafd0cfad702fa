package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"image-rotator/internal/render"
)

// RotatableImage shows a static bitmap turned by a rotation angle.
type RotatableImage struct {
	widget.BaseWidget

	frames *render.Renderer
	angle  float64
}

// NewRotatableImage creates an unrotated image widget backed by frames.
func NewRotatableImage(frames *render.Renderer) *RotatableImage {
	img := &RotatableImage{frames: frames}
	img.ExtendBaseWidget(img)
	return img
}

// Angle returns the displayed rotation in radians.
func (i *RotatableImage) Angle() float64 {
	return i.angle
}

// SetAngle sets the displayed rotation and redraws.
func (i *RotatableImage) SetAngle(angle float64) {
	i.angle = angle
	i.Refresh()
}

// Frame returns the bitmap for the current angle.
func (i *RotatableImage) Frame() *image.NRGBA {
	return i.frames.Render(i.angle)
}

// CreateRenderer returns a custom renderer.
func (i *RotatableImage) CreateRenderer() fyne.WidgetRenderer {
	i.ExtendBaseWidget(i)

	img := canvas.NewImageFromImage(i.Frame())
	img.FillMode = canvas.ImageFillOriginal

	return &rotatableImageRenderer{
		pic:     i,
		img:     img,
		objects: []fyne.CanvasObject{img},
	}
}

type rotatableImageRenderer struct {
	pic     *RotatableImage
	img     *canvas.Image
	objects []fyne.CanvasObject
}

func (r *rotatableImageRenderer) Layout(size fyne.Size) {
	minSize := r.MinSize()
	r.img.Resize(minSize)
	r.img.Move(fyne.NewPos(
		(size.Width-minSize.Width)/2,
		(size.Height-minSize.Height)/2,
	))
}

func (r *rotatableImageRenderer) MinSize() fyne.Size {
	b := r.pic.frames.Source().Bounds()
	return fyne.NewSize(float32(b.Dx()), float32(b.Dy()))
}

func (r *rotatableImageRenderer) Refresh() {
	r.img.Image = r.pic.Frame()
	r.img.Refresh()
}

func (r *rotatableImageRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *rotatableImageRenderer) Destroy()                     {}
