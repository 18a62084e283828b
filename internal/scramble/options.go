package scramble

// Options configures permutation drawing.
type Options struct {
	Seed      int64 // Seed for reproducible scrambles (0 = time-based)
	Symmetric bool  // Symmetric restricts draws to mirror-preserving permutations
}

// DefaultOptions returns standard scramble options: time-seeded,
// unconstrained permutations.
func DefaultOptions() *Options {
	return &Options{
		Seed:      0,
		Symmetric: false,
	}
}
