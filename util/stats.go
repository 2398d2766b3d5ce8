// Package util holds small helpers with no better home.
package util

import "math"

// MovingWindow keeps running statistics over the last capacity values
// pushed into it. Used to report transform timing without storing every
// sample forever.
type MovingWindow struct {
	ring []float64
	head int
	size int

	sum   float64
	sumSq float64
}

// NewMovingWindow returns a moving window over the last size values.
func NewMovingWindow(size int) *MovingWindow {
	return &MovingWindow{
		ring: make([]float64, size),
	}
}

// Update pushes a value, dropping the oldest one if the window is full,
// and returns the updated mean and standard deviation.
func (mw *MovingWindow) Update(value float64) (mean, stddev float64) {
	if mw.size == len(mw.ring) {
		old := mw.ring[mw.head]
		mw.sum -= old
		mw.sumSq -= old * old
	} else {
		mw.size++
	}

	mw.ring[mw.head] = value
	mw.head = (mw.head + 1) % len(mw.ring)

	mw.sum += value
	mw.sumSq += value * value

	return mw.Stats()
}

// Len returns how many values the window currently holds.
func (mw *MovingWindow) Len() int {
	return mw.size
}

// Cap returns the window capacity.
func (mw *MovingWindow) Cap() int {
	return len(mw.ring)
}

// Mean returns the window average.
func (mw *MovingWindow) Mean() float64 {
	if mw.size == 0 {
		return 0
	}
	return mw.sum / float64(mw.size)
}

// StdDev returns the window standard deviation.
func (mw *MovingWindow) StdDev() float64 {
	if mw.size < 2 {
		return 0
	}

	mean := mw.Mean()
	variance := mw.sumSq/float64(mw.size) - mean*mean

	return math.Sqrt(math.Abs(variance))
}

// Stats returns the mean and standard deviation together.
func (mw *MovingWindow) Stats() (mean, stddev float64) {
	return mw.Mean(), mw.StdDev()
}
