package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/noriah/purrier/dft"
	"github.com/noriah/purrier/kernel"
	"github.com/noriah/purrier/util"
)

// branch is one independent transform chain: a real forward transform, a
// complex transform composed over its coefficients, and the in-place
// inverse of that second transform.
type branch struct {
	real     *dft.Plan
	composed *dft.Plan
	inverse  *dft.Plan
}

func (b *branch) run() {
	b.real.Transform()
	b.composed.Transform()
	b.inverse.Transform().Normalize()
}

func (b *branch) close() {
	// Derived plans first: they borrow the owners' buffers.
	b.inverse.Close()
	b.composed.Close()
	b.real.Close()
}

// parallel demonstrates the concurrency contract: plan construction is
// serialized on this goroutine because the kernel planner touches global
// state, then the independent branches execute concurrently.
func parallel(cfg *config) error {
	krn, err := kernel.Init(cfg.kernelName)
	if err != nil {
		return err
	}

	flag := kernel.Measure
	if cfg.estimate {
		flag = kernel.Estimate
	}

	shape := dft.Shape{Width: cfg.width, Height: cfg.height}

	branches := make([]branch, 0, cfg.branches)
	defer func() {
		for i := range branches {
			branches[i].close()
		}
	}()

	for i := 0; i < cfg.branches; i++ {
		r, err := dft.NewWith(krn, dft.RealForward, shape, cfg.planes, flag)
		if err != nil {
			return err
		}

		c, err := r.Compose(dft.ComplexForward, r.OutShape())
		if err != nil {
			r.Close()
			return err
		}

		inv, err := c.Inverse()
		if err != nil {
			c.Close()
			r.Close()
			return err
		}

		branches = append(branches, branch{real: r, composed: c, inverse: inv})
	}

	timing := util.NewMovingWindow(cfg.iterations)

	for it := 0; it < cfg.iterations; it++ {
		for i := range branches {
			for p := 0; p < cfg.planes; p++ {
				fillScene(branches[i].real.InReal(p), shape, i+p)
			}
		}

		start := time.Now()

		var wg sync.WaitGroup
		wg.Add(len(branches))
		for i := range branches {
			go func(b *branch) {
				defer wg.Done()
				b.run()
			}(&branches[i])
		}
		wg.Wait()

		timing.Update(float64(time.Since(start).Microseconds()) / 1000.0)
	}

	mean, stddev := timing.Stats()
	fmt.Printf("%s: %d branches of %dx%d x%d planes, %d iterations: %.3f ms/round (stddev %.3f)\n",
		krn.Name(), cfg.branches, cfg.width, cfg.height, cfg.planes, cfg.iterations, mean, stddev)

	return nil
}
