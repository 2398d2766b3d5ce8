// Package dft plans and executes batched 2-D discrete Fourier transforms
// without copying buffers between chained transforms.
//
// A Plan pairs an input buffer with an output buffer and one kernel plan
// bound to them. The sequence is always the same: fill the input buffer,
// call Transform, read the output buffer. After Transform the input buffer
// holds garbage. Inverse and Compose derive new plans that share buffers
// with their source, so a forward transform, some work on the coefficients
// and an inverse transform touch a single pair of allocations.
package dft

import "github.com/noriah/purrier/kernel"

// Shape is the logical width and height of one plane, independent of how
// the plane is packed in memory.
type Shape struct {
	Width  int
	Height int
}

// Size returns the element count of the shape.
func (s Shape) Size() int {
	return s.Width * s.Height
}

// packed returns the Hermitian-packed shape: only the non-redundant
// coefficients of a real signal's transform are stored, halving the width.
func (s Shape) packed() Shape {
	return Shape{Width: s.Width/2 + 1, Height: s.Height}
}

// Kind tags one direction of one transform family. A Kind is pure
// metadata: shape maps, element classes and the inverse kind. It holds no
// buffers and no state.
type Kind int

// The closed set of transform kinds.
const (
	// RealForward transforms real planes into Hermitian-packed complex
	// coefficient planes of width w/2+1.
	RealForward Kind = iota

	// RealBackward is the inverse of RealForward.
	RealBackward

	// ComplexForward transforms complex planes, shapes unchanged.
	ComplexForward

	// ComplexBackward is the inverse of ComplexForward.
	ComplexBackward

	// HermitianForward transforms complex planes that are already
	// Hermitian-packed; both buffers are w/2+1 wide.
	HermitianForward

	// HermitianBackward is the inverse of HermitianForward.
	HermitianBackward
)

func (k Kind) String() string {
	switch k {
	case RealForward:
		return "real-forward"
	case RealBackward:
		return "real-backward"
	case ComplexForward:
		return "complex-forward"
	case ComplexBackward:
		return "complex-backward"
	case HermitianForward:
		return "hermitian-forward"
	case HermitianBackward:
		return "hermitian-backward"
	}
	return "unknown"
}

// Inverse returns the kind that undoes this one. It is an involution:
// k.Inverse().Inverse() == k.
func (k Kind) Inverse() Kind {
	switch k {
	case RealForward:
		return RealBackward
	case RealBackward:
		return RealForward
	case ComplexForward:
		return ComplexBackward
	case ComplexBackward:
		return ComplexForward
	case HermitianForward:
		return HermitianBackward
	default:
		return HermitianForward
	}
}

// InShape returns the input buffer shape for a logical shape.
func (k Kind) InShape(logical Shape) Shape {
	switch k {
	case RealBackward, HermitianForward, HermitianBackward:
		return logical.packed()
	default:
		return logical
	}
}

// OutShape returns the output buffer shape for a logical shape.
func (k Kind) OutShape(logical Shape) Shape {
	switch k {
	case RealForward, HermitianForward, HermitianBackward:
		return logical.packed()
	default:
		return logical
	}
}

// ComplexIn reports whether the input element type is complex.
func (k Kind) ComplexIn() bool {
	return k != RealForward
}

// ComplexOut reports whether the output element type is complex.
func (k Kind) ComplexOut() bool {
	return k != RealBackward
}

// request builds the kernel request tying the two buffers together. The
// kernel expects the slowest-varying dimension first, so dims are always
// {height, width}.
func (k Kind) request(logical Shape, planes int, in, out *buffer, flag kernel.Flag) kernel.Request {
	req := kernel.Request{
		Planes:  planes,
		InDist:  in.shape.Size(),
		OutDist: out.shape.Size(),
		Flag:    flag,
	}

	switch k {
	case RealForward:
		req.Dims = [2]int{logical.Height, logical.Width}
		req.RealIn = in.real
		req.CplxOut = out.cplx

	case RealBackward:
		req.Dims = [2]int{logical.Height, logical.Width}
		req.CplxIn = in.cplx
		req.RealOut = out.real

	case ComplexForward, ComplexBackward:
		req.Dims = [2]int{logical.Height, logical.Width}
		req.CplxIn = in.cplx
		req.CplxOut = out.cplx
		req.Sign = kernel.Forward
		if k == ComplexBackward {
			req.Sign = kernel.Backward
		}

	case HermitianForward, HermitianBackward:
		// The transform runs over the packed buffer dimensions.
		req.Dims = [2]int{in.shape.Height, in.shape.Width}
		req.CplxIn = in.cplx
		req.CplxOut = out.cplx
		req.Sign = kernel.Forward
		if k == HermitianBackward {
			req.Sign = kernel.Backward
		}
	}

	return req
}
