package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// letterbox bars match the viewer background
var backgroundColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}

// Letterbox scales img to fit boundW x boundH preserving its aspect ratio
// and pastes it centered onto a black canvas of exactly that size. The
// leftover space along one axis becomes black bars.
func Letterbox(img image.Image, boundW, boundH int) *image.NRGBA {
	if boundW < 1 {
		boundW = 1
	}
	if boundH < 1 {
		boundH = 1
	}

	canvas := imaging.New(boundW, boundH, backgroundColor)
	if img == nil {
		return canvas
	}

	b := img.Bounds()
	w, h := FitSize(b.Dx(), b.Dy(), boundW, boundH)
	if w == 0 || h == 0 {
		return canvas
	}

	fitted := imaging.Resize(img, w, h, imaging.Linear)
	return imaging.PasteCenter(canvas, fitted)
}
