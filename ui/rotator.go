package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"image-rotator/internal/angle"
	"image-rotator/internal/model"
	"image-rotator/internal/render"
	"image-rotator/internal/spin"
)

// Rotator owns the rotation state and wires the spin, speed and rotate
// controls to it. All handlers, ticks included, run on the UI event thread.
type Rotator struct {
	state  model.RotationState
	spin   model.SpinConfig
	driver *spin.Driver

	spinCheck   *widget.Check
	speedSlider *widget.Slider
	degreeEntry *widget.Entry
	rotateBtn   *widget.Button
	errorLabel  *widget.Label
	picture     *RotatableImage

	container *fyne.Container
}

// NewRotator builds the controls around an image rendered by frames. post
// must run a function on the UI event thread and return once it has run;
// it carries spin ticks from the timer goroutine.
func NewRotator(frames *render.Renderer, post func(func())) *Rotator {
	r := &Rotator{
		spin:    model.DefaultSpinConfig(),
		picture: NewRotatableImage(frames),
	}
	r.driver = spin.NewDriver(post, r.onTick)
	r.driver.SetDelay(spin.Delay(r.spin.SecondsPerRotation))

	r.spinCheck = widget.NewCheck("Start continuous spin", r.onSpinToggled)

	r.speedSlider = widget.NewSlider(model.MinSecondsPerRotation, model.MaxSecondsPerRotation)
	r.speedSlider.Step = 1
	r.speedSlider.Value = float64(r.spin.SecondsPerRotation)
	r.speedSlider.OnChanged = r.onSpeedChanged

	r.degreeEntry = widget.NewEntry()
	r.rotateBtn = widget.NewButton("rotate", r.onRotate)
	r.errorLabel = widget.NewLabel("")

	degreeField := container.NewGridWrap(
		fyne.NewSize(DegreeEntryWidth, r.degreeEntry.MinSize().Height),
		r.degreeEntry,
	)

	controls := container.NewVBox(
		container.NewHBox(r.spinCheck, widget.NewLabel("seconds per full rotation:")),
		container.NewVBox(r.speedSlider, sliderTicks()),
		container.NewHBox(
			widget.NewLabel("input number of degrees to rotate then press rotate:"),
			degreeField,
			r.rotateBtn,
		),
		r.errorLabel,
	)

	r.container = container.NewBorder(nil, nil, nil, r.picture, controls)
	return r
}

// Container returns the rotator layout.
func (r *Rotator) Container() *fyne.Container {
	return r.container
}

// Angle returns the current cumulative rotation in radians.
func (r *Rotator) Angle() float64 {
	return r.state.Angle()
}

// Close stops continuous spin.
func (r *Rotator) Close() {
	r.driver.Stop()
}

func (r *Rotator) onRotate() {
	r.errorLabel.SetText("")

	delta, err := angle.ParseDegrees(r.degreeEntry.Text)
	if err != nil {
		r.errorLabel.SetText(angle.Message)
		r.degreeEntry.SetText("")
		return
	}

	r.picture.SetAngle(r.state.Add(delta))
}

func (r *Rotator) onSpinToggled(checked bool) {
	r.errorLabel.SetText("")
	r.spin.Enabled = checked

	if !checked {
		r.driver.Stop()
		return
	}
	r.driver.SetDelay(spin.Delay(r.spin.SecondsPerRotation))
	r.driver.Start()
}

func (r *Rotator) onSpeedChanged(value float64) {
	r.spin.SecondsPerRotation = model.ClampSeconds(int(value))
	r.driver.SetDelay(spin.Delay(r.spin.SecondsPerRotation))
}

func (r *Rotator) onTick() {
	r.picture.SetAngle(r.state.Add(spin.StepRadians))
}

// sliderTicks labels the speed slider every SliderMajorTick seconds.
func sliderTicks() fyne.CanvasObject {
	row := container.NewHBox()
	for s := model.MinSecondsPerRotation; s <= model.MaxSecondsPerRotation; s += SliderMajorTick {
		if s > model.MinSecondsPerRotation {
			row.Add(layout.NewSpacer())
		}
		row.Add(widget.NewLabel(strconv.Itoa(s)))
	}
	return row
}
