package ports

// Source of uniform randomness for itinerary sampling.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0.0, 1.0).
	Float64() float64
	// IntN returns a value in [0, n).
	IntN(n int) int
}
