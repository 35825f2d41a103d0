package nhuff

// Train builds the code table for data: it counts byte frequencies, builds
// the radix-ary merge tree and assigns codewords.
func Train(data []byte, radix int, opts ...Option) (*Table, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	f, err := Count(data)
	if err != nil {
		return nil, err
	}
	return TrainFrequencies(f, radix, opts...)
}

// TrainFrequencies builds the code table for a frequency profile.
func TrainFrequencies(f *Frequencies, radix int, opts ...Option) (*Table, error) {
	if f == nil || f.Len() == 0 {
		return nil, ErrEmptyInput
	}
	root, err := BuildTree(f.Weights(), radix, opts...)
	if err != nil {
		return nil, err
	}
	return Generate(root, radix)
}
