//go:build !cgo
// +build !cgo

// Package fftw is empty without cgo. Nothing registers; the gonum kernel
// takes over as the default.
package fftw

// Available is false if purrier is built without cgo.
const Available = false
