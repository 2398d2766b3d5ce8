//go:build cgo
// +build cgo

// Package fftw provides a transform kernel backed by FFTW3.
//
// Only the bindings purrier needs are included here: aligned allocation and
// the advanced "many" planner interface for batched rank-2 transforms.
//
// FFTW's planner mutates global tables, so kernel.Plan calls must not run
// concurrently with each other. Cleanup calls fftw_cleanup and must only
// run after every plan of this kernel has been destroyed.
package fftw

// #cgo pkg-config: fftw3
// #include <fftw3.h>
import "C"

import (
	"unsafe"

	"github.com/pkg/errors"

	"github.com/noriah/purrier/kernel"
)

// Available is true if purrier is built with cgo.
const Available = true

func init() {
	kernel.Register("fftw", New())
}

// Kernel is the FFTW kernel.
type Kernel struct{}

// New returns an FFTW kernel.
func New() *Kernel {
	return &Kernel{}
}

// Name implements kernel.Kernel.
func (*Kernel) Name() string { return "fftw" }

// AllocReal implements kernel.Kernel using fftw_malloc, so that FFTW may
// assume SIMD alignment. The returned slice is zeroed.
func (*Kernel) AllocReal(n int) ([]float64, error) {
	if n <= 0 {
		return nil, kernel.ErrBadDims
	}

	ptr := C.fftw_malloc(C.size_t(8 * n))
	if ptr == nil {
		return nil, errors.Errorf("fftw: fftw_malloc failed for %d reals", n)
	}

	buf := unsafe.Slice((*float64)(ptr), n)
	for i := range buf {
		buf[i] = 0
	}

	return buf, nil
}

// AllocCplx implements kernel.Kernel.
func (*Kernel) AllocCplx(n int) ([]complex128, error) {
	if n <= 0 {
		return nil, kernel.ErrBadDims
	}

	ptr := C.fftw_malloc(C.size_t(16 * n))
	if ptr == nil {
		return nil, errors.Errorf("fftw: fftw_malloc failed for %d complexes", n)
	}

	buf := unsafe.Slice((*complex128)(ptr), n)
	for i := range buf {
		buf[i] = 0
	}

	return buf, nil
}

// FreeReal implements kernel.Kernel.
func (*Kernel) FreeReal(buf []float64) {
	if len(buf) > 0 {
		C.fftw_free(unsafe.Pointer(&buf[0]))
	}
}

// FreeCplx implements kernel.Kernel.
func (*Kernel) FreeCplx(buf []complex128) {
	if len(buf) > 0 {
		C.fftw_free(unsafe.Pointer(&buf[0]))
	}
}

// Cleanup implements kernel.Kernel by freeing FFTW's globals.
func (*Kernel) Cleanup() {
	C.fftw_cleanup()
}

// Plan implements kernel.Kernel with fftw_plan_many_dft and friends.
// Planning with kernel.Measure overwrites the buffers; fill the input
// after construction, never before.
func (*Kernel) Plan(req kernel.Request) (kernel.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	n := [2]C.int{C.int(req.Dims[0]), C.int(req.Dims[1])}

	flag := C.uint(C.FFTW_ESTIMATE)
	if req.Flag == kernel.Measure {
		flag = C.FFTW_MEASURE
	}

	var cp C.fftw_plan

	switch {
	case req.RealIn != nil:
		cp = C.fftw_plan_many_dft_r2c(
			2, &n[0], C.int(req.Planes),
			(*C.double)(unsafe.Pointer(&req.RealIn[0])), nil, 1, C.int(req.InDist),
			(*C.fftw_complex)(unsafe.Pointer(&req.CplxOut[0])), nil, 1, C.int(req.OutDist),
			flag)

	case req.RealOut != nil:
		cp = C.fftw_plan_many_dft_c2r(
			2, &n[0], C.int(req.Planes),
			(*C.fftw_complex)(unsafe.Pointer(&req.CplxIn[0])), nil, 1, C.int(req.InDist),
			(*C.double)(unsafe.Pointer(&req.RealOut[0])), nil, 1, C.int(req.OutDist),
			flag)

	default:
		cp = C.fftw_plan_many_dft(
			2, &n[0], C.int(req.Planes),
			(*C.fftw_complex)(unsafe.Pointer(&req.CplxIn[0])), nil, 1, C.int(req.InDist),
			(*C.fftw_complex)(unsafe.Pointer(&req.CplxOut[0])), nil, 1, C.int(req.OutDist),
			C.int(req.Sign), flag)
	}

	if cp == nil {
		return nil, errors.Errorf("fftw: planner refused %dx%d x%d planes",
			req.Width(), req.Height(), req.Planes)
	}

	return &plan{cPlan: cp}, nil
}

// plan holds an FFTW C plan.
type plan struct {
	cPlan C.fftw_plan
}

// Execute runs the plan.
func (p *plan) Execute() {
	C.fftw_execute(p.cPlan)
}

// Destroy releases the plan.
func (p *plan) Destroy() {
	C.fftw_destroy_plan(p.cPlan)
}
