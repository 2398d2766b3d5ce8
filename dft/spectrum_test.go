package dft

import (
	"math/cmplx"
	"testing"

	"github.com/noriah/purrier/kernel"
	"github.com/noriah/purrier/kernel/gonum"
)

func TestExpandHermitian(t *testing.T) {
	shapes := []Shape{{4, 3}, {5, 6}, {2, 2}}

	for _, shape := range shapes {
		half, err := NewWith(gonum.New(), RealForward, shape, 1, kernel.Estimate)
		if err != nil {
			t.Fatalf("%v: NewWith(real) = %v", shape, err)
		}

		full, err := NewWith(gonum.New(), ComplexForward, shape, 1, kernel.Estimate)
		if err != nil {
			half.Close()
			t.Fatalf("%v: NewWith(complex) = %v", shape, err)
		}

		rIn := half.InReal(0)
		cIn := full.InCplx(0)
		for i := range rIn {
			v := float64((i*7)%11) - 3
			rIn[i] = v
			cIn[i] = complex(v, 0)
		}

		half.Transform()
		full.Transform()

		expanded := make([]complex128, shape.Size())
		if err := ExpandHermitian(expanded, half.OutCplx(0), shape); err != nil {
			t.Fatalf("%v: ExpandHermitian() = %v", shape, err)
		}

		want := full.OutCplx(0)
		for i := range want {
			if cmplx.Abs(expanded[i]-want[i]) > 1e-9*(1+cmplx.Abs(want[i])) {
				t.Fatalf("%v: expanded[%d] = %v, want %v", shape, i, expanded[i], want[i])
			}
		}

		half.Close()
		full.Close()
	}
}

func TestExpandHermitianShort(t *testing.T) {
	shape := Shape{Width: 4, Height: 3}
	if err := ExpandHermitian(make([]complex128, 11), make([]complex128, 9), shape); err == nil {
		t.Fatal("short destination accepted")
	}
	if err := ExpandHermitian(make([]complex128, 12), make([]complex128, 8), shape); err == nil {
		t.Fatal("short source accepted")
	}
}

func TestShiftRoundTrip(t *testing.T) {
	shape := Shape{Width: 6, Height: 4}

	plane := make([]float64, shape.Size())
	for i := range plane {
		plane[i] = float64(i)
	}
	orig := append([]float64(nil), plane...)

	if err := ShiftReal(plane, shape); err != nil {
		t.Fatalf("ShiftReal() = %v", err)
	}

	// Zero frequency lands in the center.
	if plane[(shape.Height/2)*shape.Width+shape.Width/2] != orig[0] {
		t.Fatal("corner sample did not move to the center")
	}

	if err := ShiftReal(plane, shape); err != nil {
		t.Fatalf("second ShiftReal() = %v", err)
	}

	for i := range plane {
		if plane[i] != orig[i] {
			t.Fatalf("plane[%d] = %v after double shift, want %v", i, plane[i], orig[i])
		}
	}

	if err := ShiftReal(plane, Shape{Width: 5, Height: 4}); err != ErrOddShape {
		t.Fatalf("odd width: %v, want %v", err, ErrOddShape)
	}

	cPlane := make([]complex128, shape.Size())
	if err := ShiftCplx(cPlane, Shape{Width: 6, Height: 3}); err != ErrOddShape {
		t.Fatalf("odd height: %v, want %v", err, ErrOddShape)
	}
	if err := ShiftCplx(cPlane, shape); err != nil {
		t.Fatalf("ShiftCplx() = %v", err)
	}
}

func TestMagnitudeIntensity(t *testing.T) {
	src := []complex128{3 + 4i, -5, 2i}

	mag := make([]float64, len(src))
	Magnitude(mag, src)
	for i, want := range []float64{5, 5, 2} {
		if mag[i] != want {
			t.Errorf("Magnitude[%d] = %v, want %v", i, mag[i], want)
		}
	}

	pow := make([]float64, len(src))
	Intensity(pow, src)
	for i, want := range []float64{25, 25, 4} {
		if pow[i] != want {
			t.Errorf("Intensity[%d] = %v, want %v", i, pow[i], want)
		}
	}
}
