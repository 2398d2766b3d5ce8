package gonum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/noriah/purrier/kernel"
)

const tolerance = 1e-9

// naiveDFT2 is the textbook O(n^2) rank-2 transform, used as the oracle.
func naiveDFT2(in []complex128, w, h int, sign float64) []complex128 {
	out := make([]complex128, w*h)

	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			var sum complex128
			for y := 0; y < h; y++ {
				for x := 0; x < w; x++ {
					angle := sign * 2 * math.Pi *
						(float64(u*x)/float64(w) + float64(v*y)/float64(h))
					sum += in[y*w+x] * cmplx.Exp(complex(0, angle))
				}
			}
			out[v*w+u] = sum
		}
	}

	return out
}

func closeEnough(t *testing.T, got, want complex128, what string, i int) {
	t.Helper()
	if cmplx.Abs(got-want) > tolerance*(1+cmplx.Abs(want)) {
		t.Fatalf("%s[%d] = %v, want %v", what, i, got, want)
	}
}

func testSignal(w, h int) []complex128 {
	sig := make([]complex128, w*h)
	c := 3.1
	for i := range sig {
		c += 0.3
		sig[i] = complex(2*c-c*c, math.Sin(c))
	}
	return sig
}

func TestComplexForwardMatchesNaive(t *testing.T) {
	const w, h = 4, 3

	in := testSignal(w, h)
	out := make([]complex128, w*h)

	plan, err := New().Plan(kernel.Request{
		Dims:    [2]int{h, w},
		Planes:  1,
		CplxIn:  append([]complex128(nil), in...),
		CplxOut: out,
		InDist:  w * h,
		OutDist: w * h,
		Sign:    kernel.Forward,
	})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}
	defer plan.Destroy()

	plan.Execute()

	want := naiveDFT2(in, w, h, -1)
	for i := range want {
		closeEnough(t, out[i], want[i], "forward", i)
	}
}

func TestComplexRoundTrip(t *testing.T) {
	const w, h, planes = 5, 4, 2

	in := make([]complex128, w*h*planes)
	copy(in, testSignal(w, h))
	copy(in[w*h:], testSignal(w, h))

	mid := make([]complex128, w*h*planes)
	out := make([]complex128, w*h*planes)

	krn := New()

	fwd, err := krn.Plan(kernel.Request{
		Dims: [2]int{h, w}, Planes: planes,
		CplxIn: in, CplxOut: mid,
		InDist: w * h, OutDist: w * h,
		Sign: kernel.Forward,
	})
	if err != nil {
		t.Fatalf("forward Plan() = %v", err)
	}
	defer fwd.Destroy()

	bwd, err := krn.Plan(kernel.Request{
		Dims: [2]int{h, w}, Planes: planes,
		CplxIn: mid, CplxOut: out,
		InDist: w * h, OutDist: w * h,
		Sign: kernel.Backward,
	})
	if err != nil {
		t.Fatalf("backward Plan() = %v", err)
	}
	defer bwd.Destroy()

	want := append([]complex128(nil), in...)

	fwd.Execute()
	bwd.Execute()

	// Unnormalized round trip scales by w*h.
	scale := complex(float64(w*h), 0)
	for i := range want {
		closeEnough(t, out[i]/scale, want[i], "roundtrip", i)
	}
}

func TestRealForwardMatchesNaive(t *testing.T) {
	const w, h = 5, 6
	pw := w/2 + 1

	in := make([]float64, w*h)
	full := make([]complex128, w*h)
	for i := range in {
		in[i] = math.Cos(float64(i)) + 0.25*float64(i%7)
		full[i] = complex(in[i], 0)
	}

	out := make([]complex128, pw*h)

	plan, err := New().Plan(kernel.Request{
		Dims: [2]int{h, w}, Planes: 1,
		RealIn: in, CplxOut: out,
		InDist: w * h, OutDist: pw * h,
	})
	if err != nil {
		t.Fatalf("Plan() = %v", err)
	}
	defer plan.Destroy()

	plan.Execute()

	want := naiveDFT2(full, w, h, -1)
	for y := 0; y < h; y++ {
		for x := 0; x < pw; x++ {
			closeEnough(t, out[y*pw+x], want[y*w+x], "packed", y*pw+x)
		}
	}
}

func TestRealRoundTripStack(t *testing.T) {
	const w, h, planes = 5, 6, 3
	pw := w/2 + 1

	in := make([]float64, w*h*planes)
	want := make([]float64, len(in))
	for p := 0; p < planes; p++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				v := float64(1 + x + y + p)
				in[p*w*h+y*w+x] = v
				want[p*w*h+y*w+x] = v
			}
		}
	}

	mid := make([]complex128, pw*h*planes)
	out := make([]float64, w*h*planes)

	krn := New()

	fwd, err := krn.Plan(kernel.Request{
		Dims: [2]int{h, w}, Planes: planes,
		RealIn: in, CplxOut: mid,
		InDist: w * h, OutDist: pw * h,
	})
	if err != nil {
		t.Fatalf("forward Plan() = %v", err)
	}
	defer fwd.Destroy()

	bwd, err := krn.Plan(kernel.Request{
		Dims: [2]int{h, w}, Planes: planes,
		CplxIn: mid, RealOut: out,
		InDist: pw * h, OutDist: w * h,
	})
	if err != nil {
		t.Fatalf("backward Plan() = %v", err)
	}
	defer bwd.Destroy()

	fwd.Execute()
	bwd.Execute()

	scale := float64(w * h)
	for i := range want {
		if got := out[i] / scale; math.Abs(got-want[i]) > 1e-9*(1+math.Abs(want[i])) {
			t.Fatalf("out[%d] = %v, want %v", i, got, want[i])
		}
	}
}

func TestPlanRejectsBadRequests(t *testing.T) {
	krn := New()

	if _, err := krn.Plan(kernel.Request{}); err == nil {
		t.Fatal("Plan accepted an empty request")
	}

	if _, err := krn.AllocReal(0); err == nil {
		t.Fatal("AllocReal(0) did not fail")
	}
	if _, err := krn.AllocCplx(-3); err == nil {
		t.Fatal("AllocCplx(-3) did not fail")
	}
}
