package dft

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/noriah/purrier/kernel"
)

// Sentinel errors for plan construction.
var (
	// ErrBadShape is returned when a logical dimension is not positive.
	ErrBadShape = errors.New("dft: non-positive logical shape")

	// ErrBadPlanes is returned when the plane count is less than one.
	ErrBadPlanes = errors.New("dft: plane count must be at least 1")

	// ErrClosed is returned when deriving from a closed plan.
	ErrClosed = errors.New("dft: plan is closed")
)

// Live-plan accounting. The kernel's process-wide state is torn down
// exactly when the count of plans using it returns to zero.
var (
	liveMu sync.Mutex
	live   = map[kernel.Kernel]int{}
)

func retain(krn kernel.Kernel) {
	liveMu.Lock()
	live[krn]++
	liveMu.Unlock()
}

func release(krn kernel.Kernel) {
	liveMu.Lock()
	live[krn]--
	if live[krn] == 0 {
		delete(live, krn)
		krn.Cleanup()
	}
	liveMu.Unlock()
}

// LivePlans returns the number of open plans on a kernel.
func LivePlans(krn kernel.Kernel) int {
	liveMu.Lock()
	n := live[krn]
	liveMu.Unlock()
	return n
}

// Plan is one transform execution context: an input buffer, an output
// buffer and a kernel plan bound to their addresses.
//
// The classical use is a convolution in the Fourier domain:
//
//	plan, _ := dft.New(dft.RealForward, shape, 1)
//	defer plan.Close()
//	inv, _ := plan.Inverse()
//	defer inv.Close()
//
//	fill(plan.InReal(0))
//	plan.Transform() // plan.InReal(0) == inv.OutReal(0) is garbage now
//	weigh(plan.OutCplx(0)) // apply the filter to the coefficients
//	inv.Transform().Normalize()
//	read(inv.OutReal(0)) // the convolved signal
//
// Transforms are unnormalized, so a forward+backward round trip scales the
// signal by Width*Height; Normalize divides that factor back out.
//
// A Plan is not safe for concurrent use, and plan construction (including
// Inverse and Compose) must be serialized process-wide because the kernel's
// planner touches global state. Executing distinct, non-sharing plans from
// multiple goroutines is fine once construction is done.
type Plan struct {
	kind   Kind
	shape  Shape
	planes int
	flag   kernel.Flag

	krn kernel.Kernel
	in  buffer
	out buffer

	kplan  kernel.Plan
	closed bool
}

// New creates a plan with two freshly allocated buffers on the default
// registered kernel, planned with kernel.Measure.
func New(kind Kind, shape Shape, planes int) (*Plan, error) {
	krn, err := kernel.Init("")
	if err != nil {
		return nil, err
	}
	return NewWith(krn, kind, shape, planes, kernel.Measure)
}

// NewWith creates a plan on a specific kernel with a specific planning
// flag. Both buffers are allocated fresh and exclusively owned: the
// returned plan frees them on Close.
func NewWith(krn kernel.Kernel, kind Kind, shape Shape, planes int, flag kernel.Flag) (*Plan, error) {
	return newShared(krn, kind, shape, planes, flag, nil, nil)
}

// newShared is the constructor behind New, Inverse and Compose. A non-nil
// shareIn or shareOut lends that buffer's memory to the new plan; a nil one
// means allocate exclusively. No partially constructed plan escapes: on any
// failure the owned buffers allocated so far are freed before returning.
func newShared(krn kernel.Kernel, kind Kind, shape Shape, planes int, flag kernel.Flag, shareIn, shareOut *buffer) (*Plan, error) {
	if shape.Width <= 0 || shape.Height <= 0 {
		return nil, ErrBadShape
	}
	if planes < 1 {
		return nil, ErrBadPlanes
	}

	p := &Plan{
		kind:   kind,
		shape:  shape,
		planes: planes,
		flag:   flag,
		krn:    krn,
	}

	inShape := kind.InShape(shape)
	outShape := kind.OutShape(shape)

	var err error

	if shareIn != nil {
		p.in = borrowBuffer(shareIn, inShape, planes, kind.ComplexIn())
	} else if p.in, err = allocBuffer(krn, inShape, planes, kind.ComplexIn()); err != nil {
		return nil, err
	}

	if shareOut != nil {
		p.out = borrowBuffer(shareOut, outShape, planes, kind.ComplexOut())
	} else if p.out, err = allocBuffer(krn, outShape, planes, kind.ComplexOut()); err != nil {
		p.in.free(krn)
		return nil, err
	}

	p.kplan, err = krn.Plan(kind.request(shape, planes, &p.in, &p.out, flag))
	if err != nil {
		p.in.free(krn)
		p.out.free(krn)
		return nil, errors.Wrapf(err, "dft: planning %s %dx%d", kind, shape.Width, shape.Height)
	}

	retain(krn)
	return p, nil
}

// Transform executes the kernel plan once. Afterwards the output buffer
// holds the transform of whatever was in the input buffer, and the input
// buffer holds garbage. Returns the plan for chaining with Normalize.
func (p *Plan) Transform() *Plan {
	p.kplan.Execute()
	return p
}

// NormalizationFactor returns the scale a forward+backward round trip
// introduces.
func (p *Plan) NormalizationFactor() float64 {
	return float64(p.shape.Width * p.shape.Height)
}

// Normalize divides the output buffer, the logical result of the most
// recent Transform on this plan, by the normalization factor.
func (p *Plan) Normalize() *Plan {
	factor := p.NormalizationFactor()

	if p.out.cplx != nil {
		cFactor := complex(factor, 0)
		for i := range p.out.cplx {
			p.out.cplx[i] /= cFactor
		}
	} else {
		for i := range p.out.real {
			p.out.real[i] /= factor
		}
	}

	return p
}

// Inverse derives the plan of the inverse kind over the same logical shape.
// Its input buffer is this plan's output buffer and its output buffer is
// this plan's input buffer; both are borrowed, so the derived plan must be
// closed before this one. Close on the derived plan frees no memory.
func (p *Plan) Inverse() (*Plan, error) {
	if p.closed {
		return nil, ErrClosed
	}
	return newShared(p.krn, p.kind.Inverse(), p.shape, p.planes, p.flag, &p.out, &p.in)
}

// Compose derives a plan of the given kind whose input buffer is this
// plan's output buffer (borrowed) and whose output buffer is freshly
// allocated (owned). This pipes two transforms without a copy.
//
// The target kind's input shape for the given logical shape must equal this
// plan's output shape; a mismatch is rejected before any buffer is touched.
func (p *Plan) Compose(kind Kind, shape Shape) (*Plan, error) {
	if p.closed {
		return nil, ErrClosed
	}

	want := kind.InShape(shape)
	if got := p.OutShape(); got != want {
		return nil, errors.Errorf(
			"dft: compose shape mismatch: %s produces %dx%d, %s over %dx%d consumes %dx%d",
			p.kind, got.Width, got.Height, kind, shape.Width, shape.Height, want.Width, want.Height)
	}
	if p.kind.ComplexOut() != kind.ComplexIn() {
		return nil, errors.Errorf("dft: compose element mismatch: %s feeds %s", p.kind, kind)
	}

	return newShared(p.krn, kind, shape, p.planes, p.flag, &p.out, nil)
}

// Close destroys the kernel plan and frees the buffers this plan
// exclusively owns. Borrowed buffers are left to their owning plan. Close
// is idempotent.
func (p *Plan) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true

	p.kplan.Destroy()
	p.in.free(p.krn)
	p.out.free(p.krn)
	release(p.krn)

	return nil
}

// Kind returns the transform kind.
func (p *Plan) Kind() Kind { return p.kind }

// LogicalShape returns the logical plane shape.
func (p *Plan) LogicalShape() Shape { return p.shape }

// Planes returns the number of planes transformed per Transform call.
func (p *Plan) Planes() int { return p.planes }

// InShape returns the input buffer plane shape.
func (p *Plan) InShape() Shape { return p.in.shape }

// OutShape returns the output buffer plane shape.
func (p *Plan) OutShape() Shape { return p.out.shape }

// InReal returns the view over one input plane of a real-input kind.
// The contents are garbage after Transform has been called.
func (p *Plan) InReal(plane int) []float64 { return p.in.planeReal(plane) }

// InCplx returns the view over one input plane of a complex-input kind.
func (p *Plan) InCplx(plane int) []complex128 { return p.in.planeCplx(plane) }

// OutReal returns the view over one output plane of a real-output kind.
func (p *Plan) OutReal(plane int) []float64 { return p.out.planeReal(plane) }

// OutCplx returns the view over one output plane of a complex-output kind.
func (p *Plan) OutCplx(plane int) []complex128 { return p.out.planeCplx(plane) }
