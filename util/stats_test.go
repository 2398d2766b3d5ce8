package util

import (
	"math"
	"testing"
)

func TestMovingWindow(t *testing.T) {
	mw := NewMovingWindow(3)

	if mw.Len() != 0 || mw.Cap() != 3 {
		t.Fatalf("fresh window: Len %d Cap %d", mw.Len(), mw.Cap())
	}
	if mean, stddev := mw.Stats(); mean != 0 || stddev != 0 {
		t.Fatalf("fresh window stats: %v, %v", mean, stddev)
	}

	mw.Update(1)
	if mean, stddev := mw.Stats(); mean != 1 || stddev != 0 {
		t.Fatalf("single value stats: %v, %v", mean, stddev)
	}

	mw.Update(2)
	mw.Update(3)

	if mean := mw.Mean(); mean != 2 {
		t.Fatalf("Mean() = %v, want 2", mean)
	}

	// Pushing 4 drops the oldest value, leaving {2, 3, 4}.
	mean, stddev := mw.Update(4)
	if mean != 3 {
		t.Fatalf("Mean() = %v, want 3", mean)
	}
	if want := math.Sqrt(2.0 / 3.0); math.Abs(stddev-want) > 1e-12 {
		t.Fatalf("StdDev() = %v, want %v", stddev, want)
	}
	if mw.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", mw.Len())
	}
}

func TestMovingWindowConstant(t *testing.T) {
	mw := NewMovingWindow(4)

	for i := 0; i < 10; i++ {
		mw.Update(5)
	}

	mean, stddev := mw.Stats()
	if mean != 5 {
		t.Fatalf("Mean() = %v, want 5", mean)
	}
	if stddev > 1e-9 {
		t.Fatalf("StdDev() = %v, want ~0", stddev)
	}
}
