// Package kernel defines the narrow boundary between DFT plans and the
// numeric library that executes them.
//
// A Kernel hands out aligned buffers and builds executable Plans bound to
// those buffers. Plan construction may touch process-wide state inside the
// backing library and must be serialized by the caller; Execute on distinct
// plans is safe to run concurrently once construction is done.
package kernel

import "errors"

// Sentinel errors returned by request validation and kernels.
var (
	// ErrBadDims is returned when a requested dimension or plane count is
	// not positive.
	ErrBadDims = errors.New("kernel: non-positive dimensions")

	// ErrNilBuffer is returned when a request is missing an input or an
	// output buffer.
	ErrNilBuffer = errors.New("kernel: nil buffer")

	// ErrShortBuffer is returned when a supplied buffer cannot hold all of
	// the requested planes.
	ErrShortBuffer = errors.New("kernel: buffer too small for request")

	// ErrBadPair is returned for unsupported element pairings, such as a
	// real input with a real output.
	ErrBadPair = errors.New("kernel: unsupported in/out element pairing")

	// ErrBadSign is returned when a complex-to-complex request carries no
	// transform direction.
	ErrBadSign = errors.New("kernel: missing transform sign")
)

// Sign selects the direction of a complex-to-complex transform.
// The values match the convention of FFTW.
type Sign int

// Transform directions.
const (
	Forward  Sign = -1
	Backward Sign = 1
)

// Flag selects how much effort a kernel spends planning. Measure trades a
// one-time planning cost for faster execution; Estimate plans cheaply.
type Flag int

// Planning flags.
const (
	Estimate Flag = iota
	Measure
)

// Request describes one batched rank-2 plan.
//
// Dims is ordered slowest-varying first, i.e. {height, width}, where width
// and height are the logical transform dimensions. For real-to-complex and
// complex-to-real requests the complex side is Hermitian-packed and its
// planes are (width/2+1)*height elements. Exactly one input slice and one
// output slice must be set; the element classes select the transform family.
//
// InDist and OutDist are the element counts between consecutive planes.
// Element stride within a plane is always 1.
type Request struct {
	Dims   [2]int
	Planes int

	RealIn  []float64
	CplxIn  []complex128
	RealOut []float64
	CplxOut []complex128

	InDist  int
	OutDist int

	Sign Sign
	Flag Flag
}

// Width returns the logical width of the request.
func (r *Request) Width() int { return r.Dims[1] }

// Height returns the logical height of the request.
func (r *Request) Height() int { return r.Dims[0] }

// PlaneSizes returns the per-plane element counts of the input and output
// buffers implied by the dimensions and element classes.
func (r *Request) PlaneSizes() (in, out int) {
	w, h := r.Width(), r.Height()
	full := w * h
	packed := (w/2 + 1) * h

	in, out = full, full
	if r.RealIn != nil && r.CplxOut != nil {
		out = packed
	}
	if r.CplxIn != nil && r.RealOut != nil {
		in = packed
	}
	return in, out
}

// Validate reports whether the request is well formed. Kernels call it
// before touching any buffer.
func (r *Request) Validate() error {
	if r.Dims[0] <= 0 || r.Dims[1] <= 0 || r.Planes < 1 {
		return ErrBadDims
	}

	inReal, inCplx := r.RealIn != nil, r.CplxIn != nil
	outReal, outCplx := r.RealOut != nil, r.CplxOut != nil

	if inReal == inCplx || outReal == outCplx {
		return ErrNilBuffer
	}

	if inReal && outReal {
		return ErrBadPair
	}

	if inCplx && outCplx && r.Sign != Forward && r.Sign != Backward {
		return ErrBadSign
	}

	inPlane, outPlane := r.PlaneSizes()
	if r.InDist < inPlane || r.OutDist < outPlane {
		return ErrShortBuffer
	}

	inLen := len(r.RealIn) + len(r.CplxIn)
	outLen := len(r.RealOut) + len(r.CplxOut)
	if inLen < (r.Planes-1)*r.InDist+inPlane {
		return ErrShortBuffer
	}
	if outLen < (r.Planes-1)*r.OutDist+outPlane {
		return ErrShortBuffer
	}

	return nil
}

// Plan is an executable transform bound to the exact buffer addresses it was
// built with. A Plan is invalidated if those buffers are reallocated.
type Plan interface {
	// Execute runs the transform once, in place over the bound buffers.
	Execute()

	// Destroy releases the plan. The buffers are untouched.
	Destroy()
}

// Kernel is one numeric transform backend.
type Kernel interface {
	Name() string

	// AllocReal and AllocCplx return zeroed buffers aligned to whatever the
	// backend requires. Buffers obtained here must be released with the
	// matching Free call of the same kernel.
	AllocReal(n int) ([]float64, error)
	AllocCplx(n int) ([]complex128, error)
	FreeReal([]float64)
	FreeCplx([]complex128)

	// Plan builds an executable plan for the request. Construction is not
	// safe to run concurrently with other Plan calls on any kernel.
	Plan(Request) (Plan, error)

	// Cleanup tears down process-wide backend state. Call it once, after
	// the last Plan of this kernel has been destroyed.
	Cleanup()
}
