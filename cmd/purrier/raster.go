package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"

	"github.com/noriah/purrier/dft"
)

// isLE returns true if the host architecture is little-endian.
func isLE() bool {
	x := 1
	return *(*byte)(unsafe.Pointer(&x)) == 1
}

// rasterWriter streams planes as raw float64 samples in host byte order,
// behind a one-line text header naming the shape and the order.
type rasterWriter struct {
	w     io.Writer
	order binary.ByteOrder
	tag   string
}

func newRasterWriter(w io.Writer) *rasterWriter {
	rw := &rasterWriter{w: w, order: binary.BigEndian, tag: "be"}
	if isLE() {
		rw.order = binary.LittleEndian
		rw.tag = "le"
	}
	return rw
}

// WriteHeader writes the raster header: magic, width, height, plane count
// and byte order.
func (rw *rasterWriter) WriteHeader(shape dft.Shape, planes int) error {
	_, err := fmt.Fprintf(rw.w, "purrier %d %d %d f64%s\n",
		shape.Width, shape.Height, planes, rw.tag)
	return err
}

// WritePlane streams one plane of samples.
func (rw *rasterWriter) WritePlane(plane []float64) error {
	return binary.Write(rw.w, rw.order, plane)
}
