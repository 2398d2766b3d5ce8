// Package window provides window functions for apodizing planes ahead of
// a transform.
//
// See https://wikipedia.org/wiki/Window_function
package window

import "math"

// Function applies a window to one axis of samples in place.
type Function func(buf []float64)

// Rectangle leaves the samples alone.
func Rectangle(buf []float64) {
	// do nothing
}

// CosSum modifies the buffer to conform to a cosine sum window following a0.
func CosSum(buf []float64, a0 float64) {
	size := len(buf)
	a1 := 1.0 - a0
	coef := 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= a0 - a1*math.Cos(coef*float64(n))
	}
}

// Hamming modifies the buffer to a Hamming window.
func Hamming(buf []float64) {
	CosSum(buf, 25.0/46.0)
}

// Hann modifies the buffer to a Hann window.
func Hann(buf []float64) {
	CosSum(buf, 0.5)
}

// Bartlett modifies the buffer to a Bartlett window.
func Bartlett(buf []float64) {
	size := len(buf)
	fSize := float64(size)
	for n := 0; n < size; n++ {
		buf[n] *= 1.0 - math.Abs((2.0*float64(n)-fSize)/fSize)
	}
}

// Blackman modifies the buffer to a Blackman window.
func Blackman(buf []float64) {
	size := len(buf)
	coef := 2.0 * math.Pi / float64(size)
	for n := 0; n < size; n++ {
		theta := coef * float64(n)
		buf[n] *= 0.42 - 0.5*math.Cos(theta) + 0.08*math.Cos(2.0*theta)
	}
}

// Lookup resolves a window by name for flag parsing. Unknown names return
// nil; the empty name means Rectangle.
func Lookup(name string) Function {
	switch name {
	case "", "rectangle", "none":
		return Rectangle
	case "hann":
		return Hann
	case "hamming":
		return Hamming
	case "bartlett":
		return Bartlett
	case "blackman":
		return Blackman
	}
	return nil
}

// Plane apodizes one width*height plane in place with the separable 2-D
// extension of a 1-D window.
func Plane(fn Function, plane []float64, width, height int) {
	wx := weights(fn, width)
	wy := weights(fn, height)

	for y := 0; y < height; y++ {
		row := plane[y*width : (y+1)*width]
		for x := range row {
			row[x] *= wx[x] * wy[y]
		}
	}
}

func weights(fn Function, size int) []float64 {
	w := make([]float64, size)
	for i := range w {
		w[i] = 1
	}
	fn(w)
	return w
}
