package bus

// Common bus layouts for different plugin types

// EffectMono is 1 mono in, 1 mono out
func EffectMono() []Descriptor {
	return NewBuilder().WithMonoInput().WithMonoOutput().Build()
}

// EffectStereo is 1 stereo in, 1 stereo out
func EffectStereo() []Descriptor {
	return NewBuilder().WithStereoInput().WithStereoOutput().Build()
}

// MonoToStereo is 1 mono in, 1 stereo out
func MonoToStereo() []Descriptor {
	return NewBuilder().WithMonoInput().WithStereoOutput().Build()
}

// StereoToMono is 1 stereo in, 1 mono out
func StereoToMono() []Descriptor {
	return NewBuilder().WithStereoInput().WithMonoOutput().Build()
}

// DualMono is 2 mono in, 2 mono out
func DualMono() []Descriptor {
	return NewBuilder().
		WithMonoInput().
		WithMonoInput().
		WithMonoOutput().
		WithMonoOutput().
		Build()
}

// Instrument has no inputs and a single mono output
func Instrument() []Descriptor {
	return NewBuilder().WithMonoOutput().Build()
}

// InstrumentStereo has no inputs and a single stereo output
func InstrumentStereo() []Descriptor {
	return NewBuilder().WithStereoOutput().Build()
}
