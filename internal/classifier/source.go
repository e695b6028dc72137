package classifier

import "math/rand/v2"

// Source draws the canned values used for verdicts that no keyword decides.
type Source interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns a Source backed by the runtime's random generator.
// It is safe for concurrent use.
func DefaultSource() Source { return globalSource{} }

// FixedSource always returns the same index, clamped to n-1.
type FixedSource int

func (f FixedSource) IntN(n int) int {
	if int(f) >= n {
		return n - 1
	}
	if f < 0 {
		return 0
	}
	return int(f)
}

func pick[T any](src Source, options []T) T {
	return options[src.IntN(len(options))]
}
