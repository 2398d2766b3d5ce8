package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/noriah/purrier/window"
	"github.com/noriah/purrier/zernike"
)

type config struct {
	kernelName string
	width      int
	height     int
	planes     int
	estimate   bool

	iterations int
	windowName string
	sigma      float64

	radius    float64
	coefsArg  string
	coefs     []float64
	draw      bool
	linDraw   bool
	output    string

	branches int
}

// newZeroConfig returns a zero config
// it is the "default"
func newZeroConfig() config {
	return config{
		width:      128,
		height:     128,
		planes:     1,
		iterations: 16,
		sigma:      0,
		coefsArg:   "0,0,0,0,0.5",
		branches:   4,
	}
}

func (cfg *config) Sanitize() error {
	if cfg.width < 1 || cfg.height < 1 {
		return errors.New("width and height must be at least 1")
	}

	if cfg.planes < 1 {
		return errors.New("plane count must be at least 1")
	}

	if cfg.iterations < 1 {
		return errors.New("iteration count must be at least 1")
	}

	if cfg.branches < 1 {
		return errors.New("branch count must be at least 1")
	}

	if window.Lookup(cfg.windowName) == nil {
		return errors.Errorf("unknown window %q", cfg.windowName)
	}

	if cfg.radius <= 0 {
		r := cfg.width
		if cfg.height < r {
			r = cfg.height
		}
		cfg.radius = float64(r) / 2
	}

	cfg.coefs = cfg.coefs[:0]
	for _, field := range strings.Split(cfg.coefsArg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return errors.Wrapf(err, "bad aberration coefficient %q", field)
		}

		cfg.coefs = append(cfg.coefs, v)
	}

	if len(cfg.coefs) > zernike.MaxIndex+1 {
		return errors.Errorf("at most %d aberration coefficients", zernike.MaxIndex+1)
	}

	return nil
}
