package main

import (
	"math/cmplx"
	"os"

	"github.com/noriah/purrier/dft"
	"github.com/noriah/purrier/graphic"
	"github.com/noriah/purrier/kernel"
	"github.com/noriah/purrier/zernike"

	"github.com/pkg/errors"
)

// psf renders the point spread function of a circular pupil with Zernike
// phase aberrations: fill exp(i*phase) inside the pupil, transform, center
// the intensity.
func psf(cfg *config) error {
	if cfg.width%2 != 0 || cfg.height%2 != 0 {
		return errors.New("psf centering needs even width and height")
	}

	krn, err := kernel.Init(cfg.kernelName)
	if err != nil {
		return err
	}

	flag := kernel.Measure
	if cfg.estimate {
		flag = kernel.Estimate
	}

	shape := dft.Shape{Width: cfg.width, Height: cfg.height}

	plan, err := dft.NewWith(krn, dft.ComplexForward, shape, 1, flag)
	if err != nil {
		return err
	}
	defer plan.Close()

	fillPupil(plan.InCplx(0), shape, cfg.radius, cfg.coefs)

	plan.Transform()

	intensity := make([]float64, shape.Size())
	dft.Intensity(intensity, plan.OutCplx(0))

	if err := dft.ShiftReal(intensity, shape); err != nil {
		return err
	}

	if cfg.draw {
		return drawPlane(intensity, shape, !cfg.linDraw)
	}

	return writePlane(cfg.output, intensity, shape)
}

// fillPupil writes the pupil function: unit amplitude with Zernike phase
// inside the disk, zero outside.
func fillPupil(in []complex128, shape dft.Shape, radius float64, coefs []float64) {
	for y := 0; y < shape.Height; y++ {
		for x := 0; x < shape.Width; x++ {
			z := zernike.At(float64(x), float64(y), radius)
			if !z.Inside() {
				in[y*shape.Width+x] = 0
				continue
			}

			phase := 0.0
			for j, c := range coefs {
				if c != 0 {
					phase += c * z.ANSI(j)
				}
			}

			in[y*shape.Width+x] = cmplx.Exp(complex(0, phase))
		}
	}
}

func drawPlane(plane []float64, shape dft.Shape, logScale bool) error {
	display := &graphic.Display{}

	if err := display.Init(); err != nil {
		return err
	}
	defer display.Close()

	display.SetLogScale(logScale)

	if err := display.Draw(plane, shape.Width, shape.Height); err != nil {
		return err
	}

	display.Wait()
	return nil
}

func writePlane(path string, plane []float64, shape dft.Shape) error {
	out := os.Stdout

	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return errors.Wrap(err, "failed to create output file")
		}
		defer f.Close()
		out = f
	}

	rw := newRasterWriter(out)
	if err := rw.WriteHeader(shape, 1); err != nil {
		return err
	}

	return rw.WritePlane(plane)
}
