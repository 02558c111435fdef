package vectorindex

import (
	"encoding/binary"
	"fmt"
	"math"
)

// encodeVector encodes a vector as little-endian IEEE 754 float64 values.
func encodeVector(vec []float64) []byte {
	b := make([]byte, len(vec)*8)
	for i, v := range vec {
		binary.LittleEndian.PutUint64(b[i*8:], math.Float64bits(v))
	}
	return b
}

// decodeVector decodes a blob produced by encodeVector. The blob must hold exactly
// dimension values.
func decodeVector(b []byte, dimension int) ([]float64, error) {
	if len(b) != dimension*8 {
		return nil, fmt.Errorf("invalid vector blob length %d for dimension %d", len(b), dimension)
	}
	vec := make([]float64, dimension)
	for i := range vec {
		vec[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return vec, nil
}
