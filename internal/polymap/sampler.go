package polymap

// SamplePoints draws n seed coordinates uniformly from [0,width) x [0,height).
// Duplicates are allowed.
func SamplePoints(rng *RNG, width, height, n int) []SeedPoint {
	seeds := make([]SeedPoint, n)
	for i := range seeds {
		seeds[i] = SeedPoint{X: rng.IntN(width), Y: rng.IntN(height)}
	}
	return seeds
}
