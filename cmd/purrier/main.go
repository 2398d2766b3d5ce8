package main

import (
	"fmt"
	"log"

	"github.com/noriah/purrier/kernel"

	_ "github.com/noriah/purrier/kernel/fftw"
	_ "github.com/noriah/purrier/kernel/gonum"

	"github.com/integrii/flaggy"
)

// AppName is the app name
const AppName = "purrier"

// AppDesc is the app description
const AppDesc = "Purring Under Rasters: Riffs In the Elegant Realm of Fourier"

// AppSite is the app website
const AppSite = "https://github.com/noriah/purrier"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	cmd := doFlags(&cfg)
	if cmd == "" {
		return
	}

	chk(cfg.Sanitize(), "invalid config")

	switch cmd {
	case "convolve":
		chk(convolve(&cfg), "failed to convolve")
	case "psf":
		chk(psf(&cfg), "failed to render psf")
	case "parallel":
		chk(parallel(&cfg), "failed to run parallel branches")
	}
}

// doFlags parses the command line and returns the selected subcommand, or
// "" when there is nothing left to do.
func doFlags(cfg *config) string {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listKernelsCmd := flaggy.Subcommand{
		Name:        "list-kernels",
		ShortName:   "lk",
		Description: "list all registered transform kernels",
	}

	parser.AttachSubcommand(&listKernelsCmd, 1)

	convolveCmd := flaggy.Subcommand{
		Name:        "convolve",
		ShortName:   "cv",
		Description: "convolve a synthetic image in the Fourier domain and time it",
	}

	convolveCmd.Int(&cfg.iterations, "it", "iterations", "how many times to run the transform chain")
	convolveCmd.String(&cfg.windowName, "wd", "window", "apodization window (hann, hamming, bartlett, blackman)")
	convolveCmd.Float64(&cfg.sigma, "s", "sigma", "gaussian filter width in cycles (0 for a pure round trip)")

	parser.AttachSubcommand(&convolveCmd, 1)

	psfCmd := flaggy.Subcommand{
		Name:        "psf",
		ShortName:   "p",
		Description: "render the point spread function of an aberrated pupil",
	}

	psfCmd.Float64(&cfg.radius, "rd", "radius", "pupil radius in samples (0 for half the smaller dimension)")
	psfCmd.String(&cfg.coefsArg, "z", "zernike", "comma-separated aberration coefficients in ANSI order")
	psfCmd.Bool(&cfg.draw, "d", "draw", "draw the result on the terminal instead of writing it")
	psfCmd.Bool(&cfg.linDraw, "l", "linear", "draw with a linear brightness scale")
	psfCmd.String(&cfg.output, "o", "output", "raw raster output path ('-' for stdout)")

	parser.AttachSubcommand(&psfCmd, 1)

	parallelCmd := flaggy.Subcommand{
		Name:        "parallel",
		ShortName:   "pl",
		Description: "build plan branches serially, execute them across goroutines",
	}

	parallelCmd.Int(&cfg.branches, "b", "branches", "number of independent plan branches")
	parallelCmd.Int(&cfg.iterations, "it", "iterations", "how many times to run every branch")

	parser.AttachSubcommand(&parallelCmd, 1)

	parser.String(&cfg.kernelName, "k", "kernel", "transform kernel name (empty for the default)")
	parser.Int(&cfg.width, "W", "width", "logical plane width")
	parser.Int(&cfg.height, "H", "height", "logical plane height")
	parser.Int(&cfg.planes, "n", "planes", "number of stacked planes per transform")
	parser.Bool(&cfg.estimate, "e", "estimate", "plan cheaply instead of measuring")

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case listKernelsCmd.Used:
		def := kernel.DefaultKernel()
		for _, name := range kernel.GetAllNames() {
			star := ' '
			if name == def {
				star = '*'
			}
			fmt.Printf("- %s %c\n", name, star)
		}
		return ""

	case convolveCmd.Used:
		return "convolve"

	case psfCmd.Used:
		return "psf"

	case parallelCmd.Used:
		return "parallel"
	}

	fmt.Println("specify a subcommand; run with --help for the list")
	return ""
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", err)
	}
}
