// Package zernike evaluates Zernike polynomials over the unit disk using
// the single-index ANSI ordering, as closed-form power series in the
// Cartesian pupil coordinates.
//
// The evaluator is stateless apart from the precomputed coordinate powers
// of one point, so it is cheap to instantiate per pixel.
package zernike

import "math"

// MaxIndex is the highest supported ANSI index (radial order 5).
const MaxIndex = 20

// Series evaluates the polynomial family at one point of the pupil plane.
// Points outside the unit disk evaluate to the blank value for every index.
type Series struct {
	// x[k] and y[k] hold the k-th powers of the scaled coordinates.
	x [6]float64
	y [6]float64

	blank float64
}

// At prepares a series for the pupil point (u, v) of a disk of the given
// radius centered at (radius, radius). Points outside the disk evaluate
// to NaN.
func At(u, v, radius float64) Series {
	return AtBlank(u, v, radius, math.NaN())
}

// AtBlank is At with a chosen blank value for points outside the disk.
func AtBlank(u, v, radius, blank float64) Series {
	var s Series
	s.blank = blank

	// Scale to [-1, 1].
	s.x[0], s.y[0] = 1, 1
	s.x[1] = (u - radius) / radius
	s.y[1] = (v - radius) / radius
	for k := 2; k < len(s.x); k++ {
		s.x[k] = s.x[1] * s.x[k-1]
		s.y[k] = s.y[1] * s.y[k-1]
	}

	return s
}

// Inside reports whether the point lies on the unit disk.
func (s *Series) Inside() bool {
	return s.x[2]+s.y[2] <= 1
}

// ANSI evaluates the polynomial of one ANSI index. It panics if the index
// is not in [0, MaxIndex].
func (s *Series) ANSI(j int) float64 {
	if j < 0 || j > MaxIndex {
		panic("zernike: ANSI index out of range")
	}

	if !s.Inside() {
		return s.blank
	}

	x := &s.x
	y := &s.y

	switch j {
	case 0:
		return 1
	case 1:
		return x[1]
	case 2:
		return y[1]
	case 3:
		return 2 * x[1] * y[1]
	case 4:
		return -1 + 2*x[2] + 2*y[2]
	case 5:
		return -x[2] + y[2]
	case 6:
		return -x[3] + 3*x[1]*y[2]
	case 7:
		return -2*x[1] + 3*x[3] + 3*x[1]*y[2]
	case 8:
		return -2*y[1] + 3*y[3] + 3*x[2]*y[1]
	case 9:
		return y[3] - 3*x[2]*y[1]
	case 10:
		return -4*x[3]*y[1] + 4*x[1]*y[3]
	case 11:
		return -6*x[1]*y[1] + 8*x[3]*y[1] + 8*x[1]*y[3]
	case 12:
		return 1 - 6*x[2] - 6*y[2] + 6*x[4] + 12*x[2]*y[2] + 6*y[4]
	case 13:
		return 3*x[2] - 3*y[2] - 4*x[4] + 4*y[4]
	case 14:
		return x[4] - 6*x[2]*y[2] + y[4]
	case 15:
		return x[5] - 10*x[3]*y[2] + 5*x[1]*y[4]
	case 16:
		return 4*x[3] - 12*x[1]*y[2] - 5*x[5] + 10*x[3]*y[2] + 15*x[1]*y[4]
	case 17:
		return 3*x[1] - 12*x[3] - 12*x[1]*y[2] + 10*x[5] + 20*x[3]*y[2] + 10*x[1]*y[4]
	case 18:
		return 3*y[1] - 12*y[3] - 12*x[2]*y[1] + 10*y[5] + 20*x[2]*y[3] - 15*x[4]*y[1]
	case 19:
		return -4*y[3] + 12*x[2]*y[1] + 5*y[5] - 10*x[2]*y[3] - 15*x[4]*y[1]
	default:
		return y[5] - 10*x[2]*y[3] + 5*x[4]*y[1]
	}
}

// Seq writes the first len(dst) polynomial values in ANSI order. It panics
// if more than MaxIndex+1 values are asked for.
func (s *Series) Seq(dst []float64) {
	if len(dst) > MaxIndex+1 {
		panic("zernike: ANSI index out of range")
	}

	for j := range dst {
		dst[j] = s.ANSI(j)
	}
}
