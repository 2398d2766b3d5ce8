// Package graphic draws real-valued planes on the terminal.
package graphic

import (
	"math"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// shadeRunes is the brightness ramp, darkest first.
var shadeRunes = []rune{' ', '.', ':', '-', '=', '+', '*', '#', '%', '@'}

// Display renders planes as a character-ramp heatmap. Each plane sample
// spans two terminal columns so the picture keeps a roughly square aspect.
type Display struct {
	logScale bool
	restore  func()
}

// Init sets up the terminal.
// Should be called before any other display method.
func (d *Display) Init() error {
	restore, err := normalizeTerminal()
	if err != nil {
		return errors.Wrap(err, "failed to normalize terminal")
	}
	d.restore = restore

	if err := termbox.Init(); err != nil {
		return err
	}

	termbox.HideCursor()

	return nil
}

// Close stops the display and restores the terminal.
func (d *Display) Close() error {
	termbox.Close()

	if d.restore != nil {
		d.restore()
	}

	return nil
}

// SetLogScale switches the brightness mapping between linear and
// logarithmic. Log is the one to use for power spectra, where the dynamic
// range swallows everything but the peak otherwise.
func (d *Display) SetLogScale(log bool) {
	d.logScale = log
}

// Draw renders one width*height plane, scaled to fit the screen with
// nearest-neighbor sampling. NaN samples render as blanks.
func (d *Display) Draw(plane []float64, width, height int) error {
	if len(plane) < width*height {
		return errors.Errorf("plane too small: %d < %d", len(plane), width*height)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range plane[:width*height] {
		if math.IsNaN(v) {
			continue
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if min > max {
		return errors.New("nothing to draw: all samples are NaN")
	}

	span := max - min
	if span == 0 {
		span = 1
	}

	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}

	screenWidth, screenHeight := termbox.Size()

	cols := screenWidth / 2
	if cols > width {
		cols = width
	}
	rows := screenHeight
	if rows > height {
		rows = height
	}
	if cols < 1 || rows < 1 {
		return errors.New("screen too small")
	}

	for cy := 0; cy < rows; cy++ {
		py := cy * height / rows
		for cx := 0; cx < cols; cx++ {
			px := cx * width / cols

			v := plane[py*width+px]
			if math.IsNaN(v) {
				continue
			}

			f := (v - min) / span
			if d.logScale {
				f = math.Log1p(f*255) / math.Log(256)
			}

			idx := int(f * float64(len(shadeRunes)-1))
			if idx < 0 {
				idx = 0
			}
			if idx >= len(shadeRunes) {
				idx = len(shadeRunes) - 1
			}

			r := shadeRunes[idx]
			termbox.SetCell(2*cx, cy, r, termbox.ColorDefault, termbox.ColorDefault)
			termbox.SetCell(2*cx+1, cy, r, termbox.ColorDefault, termbox.ColorDefault)
		}
	}

	return termbox.Flush()
}

// Wait blocks until the user dismisses the picture with q, escape or
// control-c.
func (d *Display) Wait() {
	for {
		ev := termbox.PollEvent()
		if ev.Type != termbox.EventKey {
			continue
		}

		switch ev.Key {
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return
		}

		if ev.Ch == 'q' {
			return
		}
	}
}
