package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit1080(t *testing.T) {
	tests := []struct {
		name  string
		w, h  int
		wantW int
		wantH int
	}{
		{"square", 1000, 1000, 1080, 1080},
		{"landscape 16:9", 1920, 1080, 1920, 1080},
		{"landscape small", 800, 600, 1440, 1080},
		{"portrait 9:16", 1080, 1920, 1080, 1920},
		{"portrait small", 600, 800, 1080, 1440},
		{"odd scale rounds up to even", 1001, 1000, 1082, 1080},
		{"tall odd result", 1000, 1003, 1080, 1084},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotW, gotH := Fit1080(tt.w, tt.h)
			assert.Equal(t, tt.wantW, gotW)
			assert.Equal(t, tt.wantH, gotH)
		})
	}
}

func TestFit1080AlwaysEven(t *testing.T) {
	for w := 33; w < 4000; w += 173 {
		for h := 41; h < 4000; h += 211 {
			gotW, gotH := Fit1080(w, h)
			assert.Zero(t, gotW%2, "width %dx%d", w, h)
			assert.Zero(t, gotH%2, "height %dx%d", w, h)
		}
	}
}

func TestFit1080PreservesOrientation(t *testing.T) {
	w, h := Fit1080(4000, 2000)
	assert.Equal(t, 1080, h)
	assert.GreaterOrEqual(t, w, h)

	w, h = Fit1080(2000, 4000)
	assert.Equal(t, 1080, w)
	assert.GreaterOrEqual(t, h, w)
}
