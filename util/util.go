package util

// GenerateLut builds a symmetric look-up table that rises from 0 to the
// curve's peak and falls back again, for cyclic gain effects. The curve is
// sampled over its first half; the second half mirrors it.
func GenerateLut(curve func(float64) float64, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := curve(float64(i) * increment)
		lut[i] = value
		lut[j] = value
	}
	return lut
}
