package dft

import (
	"math/cmplx"

	"github.com/pkg/errors"
)

// ErrOddShape is returned by the shift helpers, which swap quadrants and
// need both dimensions to be even.
var ErrOddShape = errors.New("dft: shift requires even dimensions")

// ExpandHermitian recovers the full coefficient plane of a real signal's
// transform from its Hermitian-packed half. src is one packed plane of
// (w/2+1)*h coefficients, dst one full plane of w*h. The redundant
// coefficients obey full(x, y) == conj(full((w-x)%w, (h-y)%h)).
func ExpandHermitian(dst, src []complex128, logical Shape) error {
	w, h := logical.Width, logical.Height
	pw := w/2 + 1

	if len(src) < pw*h {
		return errors.Errorf("dft: packed plane too small: %d < %d", len(src), pw*h)
	}
	if len(dst) < w*h {
		return errors.Errorf("dft: full plane too small: %d < %d", len(dst), w*h)
	}

	for y := 0; y < h; y++ {
		copy(dst[y*w:y*w+pw], src[y*pw:y*pw+pw])

		sy := (h - y) % h
		for x := pw; x < w; x++ {
			dst[y*w+x] = cmplx.Conj(src[sy*pw+w-x])
		}
	}

	return nil
}

// Magnitude writes the modulus of every coefficient. dst and src must be
// the same length.
func Magnitude(dst []float64, src []complex128) {
	for i, c := range src {
		dst[i] = cmplx.Abs(c)
	}
}

// Intensity writes the squared modulus of every coefficient, i.e. the
// power spectrum.
func Intensity(dst []float64, src []complex128) {
	for i, c := range src {
		re, im := real(c), imag(c)
		dst[i] = re*re + im*im
	}
}

// ShiftReal swaps quadrants in place so the zero-frequency term lands in
// the center of the plane. Both dimensions must be even.
func ShiftReal(plane []float64, shape Shape) error {
	w, h := shape.Width, shape.Height
	if w%2 != 0 || h%2 != 0 {
		return ErrOddShape
	}

	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			j := (y+h/2)*w + (x+w/2)%w
			plane[i], plane[j] = plane[j], plane[i]
		}
	}

	return nil
}

// ShiftCplx is ShiftReal for complex planes.
func ShiftCplx(plane []complex128, shape Shape) error {
	w, h := shape.Width, shape.Height
	if w%2 != 0 || h%2 != 0 {
		return ErrOddShape
	}

	for y := 0; y < h/2; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			j := (y+h/2)*w + (x+w/2)%w
			plane[i], plane[j] = plane[j], plane[i]
		}
	}

	return nil
}
