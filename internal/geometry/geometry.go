// Package geometry computes the encoder target resolution for a source
// image: the shorter side maps to exactly 1080 and both dimensions are
// forced even, as required by yuv420p.
package geometry

const shortSide = 1080

// Fit1080 resolves the target resolution for a source of width x height.
// Orientation is preserved: landscape sources get height 1080, portrait
// sources get width 1080, the longer side scales proportionally.
func Fit1080(width, height int) (int, int) {
	var newW, newH int
	if width >= height {
		newH = shortSide
		newW = width * shortSide / height
	} else {
		newW = shortSide
		newH = height * shortSide / width
	}
	return even(newW), even(newH)
}

func even(v int) int {
	if v%2 != 0 {
		return v + 1
	}
	return v
}
