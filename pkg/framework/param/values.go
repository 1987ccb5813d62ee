package param

import (
	"math"
	"sync/atomic"
)

// Values is a fixed-size table of normalized parameter values indexed by
// parameter index. Get and Set are lock-free and safe to call from the
// audio thread while another goroutine writes.
type Values struct {
	params []Descriptor
	bits   []atomic.Uint64
}

// NewValues creates a value table seeded with each parameter's default
func NewValues(params []Descriptor) *Values {
	v := &Values{
		params: make([]Descriptor, len(params)),
		bits:   make([]atomic.Uint64, len(params)),
	}
	copy(v.params, params)
	v.Reset()
	return v
}

// Len returns the number of parameters
func (v *Values) Len() int {
	return len(v.bits)
}

// Descriptor returns the descriptor at index
func (v *Values) Descriptor(index int) (Descriptor, bool) {
	if index < 0 || index >= len(v.params) {
		return Descriptor{}, false
	}
	return v.params[index], true
}

// Get returns the current normalized value
func (v *Values) Get(index int) (float64, bool) {
	if index < 0 || index >= len(v.bits) {
		return 0, false
	}
	return math.Float64frombits(v.bits[index].Load()), true
}

// Set stores a normalized value, clamped and quantized for the parameter
func (v *Values) Set(index int, value float64) bool {
	if index < 0 || index >= len(v.bits) {
		return false
	}
	v.bits[index].Store(math.Float64bits(v.params[index].Clamp(value)))
	return true
}

// Reset restores every parameter to its declared default. Defaults are
// stored as declared, off the step grid or not; only Set quantizes.
func (v *Values) Reset() {
	for i, p := range v.params {
		def := p.DefaultValue
		if math.IsNaN(def) || def < 0 {
			def = 0
		} else if def > 1 {
			def = 1
		}
		v.bits[i].Store(math.Float64bits(def))
	}
}

// Snapshot copies all current values in index order
func (v *Values) Snapshot() []float64 {
	out := make([]float64, len(v.bits))
	for i := range v.bits {
		out[i] = math.Float64frombits(v.bits[i].Load())
	}
	return out
}
