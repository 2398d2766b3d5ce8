package main

import (
	"fmt"
	"math"
	"time"

	"github.com/noriah/purrier/dft"
	"github.com/noriah/purrier/kernel"
	"github.com/noriah/purrier/util"
	"github.com/noriah/purrier/window"
)

// convolve runs the classic chain: forward transform, weigh the
// coefficients, inverse transform, normalize. With sigma == 0 the filter
// is the identity and the run doubles as a round-trip accuracy check.
func convolve(cfg *config) error {
	krn, err := kernel.Init(cfg.kernelName)
	if err != nil {
		return err
	}

	flag := kernel.Measure
	if cfg.estimate {
		flag = kernel.Estimate
	}

	shape := dft.Shape{Width: cfg.width, Height: cfg.height}

	plan, err := dft.NewWith(krn, dft.RealForward, shape, cfg.planes, flag)
	if err != nil {
		return err
	}
	defer plan.Close()

	inv, err := plan.Inverse()
	if err != nil {
		return err
	}
	defer inv.Close()

	filter := gaussianFilter(plan.OutShape(), shape, cfg.sigma)
	wfn := window.Lookup(cfg.windowName)

	timing := util.NewMovingWindow(cfg.iterations)
	reference := make([]float64, shape.Size())

	worst := 0.0

	for it := 0; it < cfg.iterations; it++ {
		for p := 0; p < cfg.planes; p++ {
			in := plan.InReal(p)
			fillScene(in, shape, p)
			window.Plane(wfn, in, shape.Width, shape.Height)

			if p == 0 {
				copy(reference, in)
			}
		}

		start := time.Now()

		plan.Transform()

		for p := 0; p < cfg.planes; p++ {
			out := plan.OutCplx(p)
			for i := range out {
				out[i] *= complex(filter[i], 0)
			}
		}

		inv.Transform().Normalize()

		timing.Update(float64(time.Since(start).Microseconds()) / 1000.0)

		if cfg.sigma == 0 {
			recovered := inv.OutReal(0)
			for i, want := range reference {
				if diff := math.Abs(recovered[i] - want); diff > worst {
					worst = diff
				}
			}
		}
	}

	mean, stddev := timing.Stats()
	fmt.Printf("%s: %dx%d x%d planes, %d iterations: %.3f ms/chain (stddev %.3f)\n",
		krn.Name(), cfg.width, cfg.height, cfg.planes, cfg.iterations, mean, stddev)

	if cfg.sigma == 0 {
		fmt.Printf("round-trip worst absolute error: %.3g\n", worst)
	}

	return nil
}

// gaussianFilter builds a low-pass weight per packed coefficient. sigma is
// the cutoff in cycles; 0 means identity.
func gaussianFilter(packed, logical dft.Shape, sigma float64) []float64 {
	filter := make([]float64, packed.Size())

	if sigma <= 0 {
		for i := range filter {
			filter[i] = 1
		}
		return filter
	}

	for y := 0; y < packed.Height; y++ {
		// Vertical frequencies wrap around the unpacked height.
		fy := float64(y)
		if y > logical.Height/2 {
			fy = float64(y - logical.Height)
		}

		for x := 0; x < packed.Width; x++ {
			fx := float64(x)
			r2 := (fx*fx + fy*fy) / (2 * sigma * sigma)
			filter[y*packed.Width+x] = math.Exp(-r2)
		}
	}

	return filter
}

// fillScene writes a deterministic synthetic image: a gradient with a few
// soft blobs, different per plane.
func fillScene(plane []float64, shape dft.Shape, index int) {
	w, h := shape.Width, shape.Height

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := 1 + float64(x)/float64(w) + float64(y)/float64(h) + float64(index)

			dx := float64(x - w/3)
			dy := float64(y - h/3)
			v += 4 * math.Exp(-(dx*dx+dy*dy)/64)

			dx = float64(x - 2*w/3)
			dy = float64(y - 2*h/3)
			v += 2 * math.Exp(-(dx*dx+dy*dy)/16)

			plane[y*w+x] = v
		}
	}
}
