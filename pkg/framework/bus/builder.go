package bus

// Builder provides a fluent API for declaring bus lists
type Builder struct {
	buses []Descriptor
}

// NewBuilder creates a new bus list builder
func NewBuilder() *Builder {
	return &Builder{buses: []Descriptor{}}
}

// WithMonoInput adds a mono input bus
func (b *Builder) WithMonoInput() *Builder {
	b.buses = append(b.buses, Descriptor{Stereo: false, Output: false})
	return b
}

// WithMonoOutput adds a mono output bus
func (b *Builder) WithMonoOutput() *Builder {
	b.buses = append(b.buses, Descriptor{Stereo: false, Output: true})
	return b
}

// WithStereoInput adds a stereo input bus
func (b *Builder) WithStereoInput() *Builder {
	b.buses = append(b.buses, Descriptor{Stereo: true, Output: false})
	return b
}

// WithStereoOutput adds a stereo output bus
func (b *Builder) WithStereoOutput() *Builder {
	b.buses = append(b.buses, Descriptor{Stereo: true, Output: true})
	return b
}

// Named sets the name of the most recently added bus
func (b *Builder) Named(name string) *Builder {
	if n := len(b.buses); n > 0 {
		b.buses[n-1].Name = name
	}
	return b
}

// Build returns a copy of the declared buses
func (b *Builder) Build() []Descriptor {
	out := make([]Descriptor, len(b.buses))
	copy(out, b.buses)
	return out
}
