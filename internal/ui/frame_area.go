package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// Minimum drawable surface
const (
	FrameAreaMinWidth  = 64
	FrameAreaMinHeight = 48
)

// frameArea is the drawable surface that hosts the letterboxed frame. It
// reports size changes so the frame can be recomposed for the new bounds
// and toggles fullscreen on double tap.
type frameArea struct {
	widget.BaseWidget

	img *canvas.Image

	onResize    func(fyne.Size)
	onDoubleTap func()
}

// newFrameArea creates the drawable surface
func newFrameArea(onResize func(fyne.Size), onDoubleTap func()) *frameArea {
	a := &frameArea{
		img:         canvas.NewImageFromImage(nil),
		onResize:    onResize,
		onDoubleTap: onDoubleTap,
	}
	// Frames are composed to the exact surface size, so no toolkit-side
	// scaling is wanted.
	a.img.FillMode = canvas.ImageFillStretch
	a.ExtendBaseWidget(a)
	return a
}

// SetFrame replaces the displayed pixels
func (a *frameArea) SetFrame(img image.Image) {
	a.img.Image = img
	a.img.Refresh()
}

// Tapped implements fyne.Tappable so double taps are delivered
func (a *frameArea) Tapped(_ *fyne.PointEvent) {}

// DoubleTapped toggles fullscreen
func (a *frameArea) DoubleTapped(_ *fyne.PointEvent) {
	if a.onDoubleTap != nil {
		a.onDoubleTap()
	}
}

// CreateRenderer creates the widget renderer
func (a *frameArea) CreateRenderer() fyne.WidgetRenderer {
	return &frameAreaRenderer{area: a}
}

type frameAreaRenderer struct {
	area *frameArea
	size fyne.Size
}

func (r *frameAreaRenderer) Layout(size fyne.Size) {
	r.area.img.Resize(size)
	if size != r.size {
		r.size = size
		if r.area.onResize != nil {
			r.area.onResize(size)
		}
	}
}

func (r *frameAreaRenderer) MinSize() fyne.Size {
	return fyne.NewSize(FrameAreaMinWidth, FrameAreaMinHeight)
}

func (r *frameAreaRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.area.img}
}

func (r *frameAreaRenderer) Refresh() {
	r.area.img.Refresh()
}

func (r *frameAreaRenderer) Destroy() {}
