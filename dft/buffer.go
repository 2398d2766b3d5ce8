package dft

import (
	"github.com/pkg/errors"

	"github.com/noriah/purrier/kernel"
)

// ownership records who frees a buffer's memory. Exactly one plan in any
// sharing chain holds the owned tag for a given allocation.
type ownership int

const (
	owned ownership = iota
	borrowed
)

// buffer is one contiguous stack of planes of a single element class.
// Exactly one of real and cplx is non-nil.
type buffer struct {
	shape  Shape
	planes int
	own    ownership

	real []float64
	cplx []complex128
}

// allocBuffer allocates an exclusively owned buffer through the kernel.
func allocBuffer(krn kernel.Kernel, shape Shape, planes int, complexElems bool) (buffer, error) {
	b := buffer{shape: shape, planes: planes, own: owned}
	n := shape.Size() * planes

	var err error
	if complexElems {
		b.cplx, err = krn.AllocCplx(n)
	} else {
		b.real, err = krn.AllocReal(n)
	}
	if err != nil {
		return buffer{}, errors.Wrapf(err, "dft: allocating %d %s of %d elements",
			planes, plural("plane", planes), shape.Size())
	}

	return b, nil
}

// borrowBuffer adopts another plan's memory. The shape is computed from the
// kind, never re-derived from the slice: raw memory carries no shape. The
// source must supply memory of the element class this buffer expects;
// anything else is a bug in the derivation methods, not a runtime
// condition, so it fails loudly.
func borrowBuffer(src *buffer, shape Shape, planes int, complexElems bool) buffer {
	if src == nil || (src.real == nil && src.cplx == nil) {
		panic("dft: borrowed buffer without backing memory")
	}
	if complexElems != (src.cplx != nil) {
		panic("dft: borrowed buffer element class mismatch")
	}

	return buffer{
		shape:  shape,
		planes: planes,
		own:    borrowed,
		real:   src.real,
		cplx:   src.cplx,
	}
}

// free releases owned memory back to the kernel. Borrowed buffers are left
// for their owner.
func (b *buffer) free(krn kernel.Kernel) {
	if b.own != owned {
		return
	}

	if b.cplx != nil {
		krn.FreeCplx(b.cplx)
		b.cplx = nil
	}
	if b.real != nil {
		krn.FreeReal(b.real)
		b.real = nil
	}
}

// planeReal returns the view over one real plane.
func (b *buffer) planeReal(index int) []float64 {
	if b.real == nil {
		panic("dft: buffer holds complex elements, not real")
	}
	n := b.shape.Size()
	return b.real[index*n : (index+1)*n]
}

// planeCplx returns the view over one complex plane.
func (b *buffer) planeCplx(index int) []complex128 {
	if b.cplx == nil {
		panic("dft: buffer holds real elements, not complex")
	}
	n := b.shape.Size()
	return b.cplx[index*n : (index+1)*n]
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
