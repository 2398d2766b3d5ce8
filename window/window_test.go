package window

import (
	"math"
	"testing"
)

func ones(n int) []float64 {
	buf := make([]float64, n)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestHann(t *testing.T) {
	buf := ones(8)
	Hann(buf)

	if buf[0] != 0 {
		t.Fatalf("Hann[0] = %v, want 0", buf[0])
	}
	if math.Abs(buf[4]-1) > 1e-12 {
		t.Fatalf("Hann[n/2] = %v, want 1", buf[4])
	}

	// Symmetric about the center for a periodic window.
	for i := 1; i < 4; i++ {
		if math.Abs(buf[i]-buf[8-i]) > 1e-12 {
			t.Fatalf("Hann[%d] = %v, Hann[%d] = %v", i, buf[i], 8-i, buf[8-i])
		}
	}
}

func TestRectangle(t *testing.T) {
	buf := ones(5)
	Rectangle(buf)

	for i, v := range buf {
		if v != 1 {
			t.Fatalf("Rectangle[%d] = %v, want 1", i, v)
		}
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"", "rectangle", "none", "hann", "hamming", "bartlett", "blackman"} {
		if Lookup(name) == nil {
			t.Errorf("Lookup(%q) = nil", name)
		}
	}

	if Lookup("kaiser") != nil {
		t.Error("Lookup of unknown window did not return nil")
	}
}

func TestPlaneIsSeparable(t *testing.T) {
	const w, h = 6, 4

	plane := ones(w * h)
	Plane(Hamming, plane, w, h)

	wx := ones(w)
	Hamming(wx)
	wy := ones(h)
	Hamming(wy)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := wx[x] * wy[y]
			if got := plane[y*w+x]; math.Abs(got-want) > 1e-12 {
				t.Fatalf("plane(%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}
