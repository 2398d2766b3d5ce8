// Package gonum provides a pure-Go transform kernel backed by gonum's
// fourier package. It is the kernel used when purrier is built without cgo.
//
// The rank-2 transforms are computed separably: every row first, then every
// column through a scratch buffer. All transforms are unnormalized, matching
// FFTW conventions, so a forward+backward round trip scales the signal by
// width*height.
package gonum

import (
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/noriah/purrier/kernel"
)

func init() {
	kernel.Register("gonum", New())
}

// Kernel is the pure-Go kernel. It keeps no process-wide state.
type Kernel struct{}

// New returns a gonum kernel.
func New() *Kernel {
	return &Kernel{}
}

// Name implements kernel.Kernel.
func (*Kernel) Name() string { return "gonum" }

// AllocReal implements kernel.Kernel. Go slices satisfy the alignment
// needs of this kernel, so it simply makes one.
func (*Kernel) AllocReal(n int) ([]float64, error) {
	if n <= 0 {
		return nil, kernel.ErrBadDims
	}
	return make([]float64, n), nil
}

// AllocCplx implements kernel.Kernel.
func (*Kernel) AllocCplx(n int) ([]complex128, error) {
	if n <= 0 {
		return nil, kernel.ErrBadDims
	}
	return make([]complex128, n), nil
}

// FreeReal implements kernel.Kernel. The garbage collector does the work.
func (*Kernel) FreeReal([]float64) {}

// FreeCplx implements kernel.Kernel.
func (*Kernel) FreeCplx([]complex128) {}

// Cleanup implements kernel.Kernel. Nothing to tear down.
func (*Kernel) Cleanup() {}

// Plan implements kernel.Kernel. The planning flag is ignored: gonum has a
// single strategy per size.
func (*Kernel) Plan(req kernel.Request) (kernel.Plan, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	w, h := req.Width(), req.Height()

	switch {
	case req.RealIn != nil:
		return &r2cPlan{
			req:    req,
			row:    fourier.NewFFT(w),
			col:    fourier.NewCmplxFFT(h),
			colBuf: make([]complex128, h),
		}, nil

	case req.RealOut != nil:
		return &c2rPlan{
			req:    req,
			row:    fourier.NewFFT(w),
			col:    fourier.NewCmplxFFT(h),
			colBuf: make([]complex128, h),
		}, nil

	default:
		return &c2cPlan{
			req:    req,
			row:    fourier.NewCmplxFFT(w),
			col:    fourier.NewCmplxFFT(h),
			colBuf: make([]complex128, h),
		}, nil
	}
}

// c2cPlan runs complex-to-complex transforms in the direction of the
// request sign.
type c2cPlan struct {
	req    kernel.Request
	row    *fourier.CmplxFFT
	col    *fourier.CmplxFFT
	colBuf []complex128
}

func (p *c2cPlan) Execute() {
	w, h := p.req.Width(), p.req.Height()
	forward := p.req.Sign == kernel.Forward

	for plane := 0; plane < p.req.Planes; plane++ {
		in := p.req.CplxIn[plane*p.req.InDist:]
		out := p.req.CplxOut[plane*p.req.OutDist:]

		for y := 0; y < h; y++ {
			src := in[y*w : y*w+w]
			dst := out[y*w : y*w+w]
			if forward {
				p.row.Coefficients(dst, src)
			} else {
				p.row.Sequence(dst, src)
			}
		}

		for x := 0; x < w; x++ {
			for y := 0; y < h; y++ {
				p.colBuf[y] = out[y*w+x]
			}
			if forward {
				p.col.Coefficients(p.colBuf, p.colBuf)
			} else {
				p.col.Sequence(p.colBuf, p.colBuf)
			}
			for y := 0; y < h; y++ {
				out[y*w+x] = p.colBuf[y]
			}
		}
	}
}

func (p *c2cPlan) Destroy() {}

// r2cPlan runs the real forward transform into the Hermitian-packed layout:
// only the first width/2+1 coefficients of every transformed row are kept.
type r2cPlan struct {
	req    kernel.Request
	row    *fourier.FFT
	col    *fourier.CmplxFFT
	colBuf []complex128
}

func (p *r2cPlan) Execute() {
	w, h := p.req.Width(), p.req.Height()
	pw := w/2 + 1

	for plane := 0; plane < p.req.Planes; plane++ {
		in := p.req.RealIn[plane*p.req.InDist:]
		out := p.req.CplxOut[plane*p.req.OutDist:]

		for y := 0; y < h; y++ {
			p.row.Coefficients(out[y*pw:y*pw+pw], in[y*w:y*w+w])
		}

		for x := 0; x < pw; x++ {
			for y := 0; y < h; y++ {
				p.colBuf[y] = out[y*pw+x]
			}
			p.col.Coefficients(p.colBuf, p.colBuf)
			for y := 0; y < h; y++ {
				out[y*pw+x] = p.colBuf[y]
			}
		}
	}
}

func (p *r2cPlan) Destroy() {}

// c2rPlan runs the real backward transform from the Hermitian-packed
// layout. The input buffer is used as scratch for the column passes and
// holds garbage afterwards, like FFTW's c2r plans.
type c2rPlan struct {
	req    kernel.Request
	row    *fourier.FFT
	col    *fourier.CmplxFFT
	colBuf []complex128
}

func (p *c2rPlan) Execute() {
	w, h := p.req.Width(), p.req.Height()
	pw := w/2 + 1

	for plane := 0; plane < p.req.Planes; plane++ {
		in := p.req.CplxIn[plane*p.req.InDist:]
		out := p.req.RealOut[plane*p.req.OutDist:]

		for x := 0; x < pw; x++ {
			for y := 0; y < h; y++ {
				p.colBuf[y] = in[y*pw+x]
			}
			p.col.Sequence(p.colBuf, p.colBuf)
			for y := 0; y < h; y++ {
				in[y*pw+x] = p.colBuf[y]
			}
		}

		for y := 0; y < h; y++ {
			p.row.Sequence(out[y*w:y*w+w], in[y*pw:y*pw+pw])
		}
	}
}

func (p *c2rPlan) Destroy() {}
