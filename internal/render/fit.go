package render

import "math"

// FitSize returns the largest dimensions with the srcW:srcH aspect ratio
// that fit within boundW x boundH. One axis always matches the bound, the
// other is rounded to the nearest pixel and never below 1.
func FitSize(srcW, srcH, boundW, boundH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || boundW <= 0 || boundH <= 0 {
		return 0, 0
	}

	srcAspect := float64(srcW) / float64(srcH)
	boundAspect := float64(boundW) / float64(boundH)

	if srcAspect > boundAspect {
		// Source is wider than the target: width is the limiting axis.
		h := int(math.Round(float64(boundW) / srcAspect))
		if h < 1 {
			h = 1
		}
		if h > boundH {
			h = boundH
		}
		return boundW, h
	}

	w := int(math.Round(srcAspect * float64(boundH)))
	if w < 1 {
		w = 1
	}
	if w > boundW {
		w = boundW
	}
	return w, boundH
}
