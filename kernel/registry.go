package kernel

import "fmt"

// NamedKernel pairs a kernel with the name it registered under.
type NamedKernel struct {
	Name string
	Kernel
}

// Kernels holds all registered kernels, in registration order.
var Kernels []NamedKernel

// Register registers a kernel globally. This function is not thread-safe,
// and most packages should call it on init().
func Register(name string, k Kernel) {
	Kernels = append(Kernels, NamedKernel{
		Name:   name,
		Kernel: k,
	})
}

// GetAllNames returns the names of all registered kernels.
func GetAllNames() []string {
	out := make([]string, len(Kernels))
	for i, k := range Kernels {
		out[i] = k.Name
	}
	return out
}

// Find returns the named kernel, or nil if it is not registered.
func Find(name string) Kernel {
	for _, k := range Kernels {
		if k.Name == name {
			return k.Kernel
		}
	}
	return nil
}

// Has reports whether a kernel is registered under the name.
func Has(name string) bool {
	return Find(name) != nil
}

// DefaultKernel returns the preferred registered kernel name. FFTW wins
// when it was compiled in.
func DefaultKernel() string {
	if Has("fftw") {
		return "fftw"
	}

	if Has("gonum") {
		return "gonum"
	}

	if len(Kernels) > 0 {
		return Kernels[0].Name
	}

	return ""
}

// Init resolves a kernel by name. An empty name selects the default.
func Init(name string) (Kernel, error) {
	if name == "" {
		name = DefaultKernel()
	}

	k := Find(name)
	if k == nil {
		return nil, fmt.Errorf("kernel not found: %q; check list-kernels", name)
	}

	return k, nil
}
