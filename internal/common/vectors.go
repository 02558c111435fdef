package common

import "math"

// Normalize returns a unit-length copy of v and false when v is empty or has zero norm.
func Normalize(v []float64) ([]float64, bool) {
	if len(v) == 0 {
		return nil, false
	}
	var norm float64
	for _, x := range v {
		norm += x * x
	}
	if norm == 0 || math.IsNaN(norm) || math.IsInf(norm, 0) {
		return nil, false
	}
	norm = math.Sqrt(norm)

	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = x / norm
	}
	return out, true
}

// Dot returns the dot product of two vectors of equal length.
// For unit-length vectors it equals their cosine similarity.
func Dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
