package param

// Builder provides a fluent API for declaring parameters
type Builder struct {
	param Descriptor
}

// New creates a new parameter builder
func New(name string) *Builder {
	return &Builder{
		param: Descriptor{
			Name:      name,
			ShortName: name,
		},
	}
}

// ShortName sets the short name
func (b *Builder) ShortName(name string) *Builder {
	b.param.ShortName = name
	return b
}

// Units sets the unit label
func (b *Builder) Units(units string) *Builder {
	b.param.Units = units
	return b
}

// Default sets the normalized default value
func (b *Builder) Default(value float64) *Builder {
	b.param.DefaultValue = value
	return b
}

// Steps sets the number of discrete steps
func (b *Builder) Steps(count int) *Builder {
	b.param.Steps = count
	return b
}

// Toggle creates a two-state parameter
func (b *Builder) Toggle() *Builder {
	b.param.Steps = 1
	return b
}

// Output marks the parameter as plugin-written
func (b *Builder) Output() *Builder {
	b.param.Output = true
	return b
}

// Bypass marks this as the bypass parameter
func (b *Builder) Bypass() *Builder {
	b.param.Bypass = true
	b.param.Steps = 1
	return b
}

// Build returns the configured descriptor
func (b *Builder) Build() Descriptor {
	return b.param
}
