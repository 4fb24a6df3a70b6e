package glyph

import "unicode/utf16"

// fnvOffset and fnvPrime are the 32-bit FNV-1a parameters.
const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// HashSeed computes a 32-bit FNV-1a hash over the UTF-16 code units of text.
// The hash is the sole source of randomness for a date's glyph, so it must
// stay bit-stable across releases.
func HashSeed(text string) uint32 {
	h := fnvOffset
	for _, u := range utf16.Encode([]rune(text)) {
		h ^= uint32(u)
		h *= fnvPrime
	}
	return h
}

// NewGenerator returns a mulberry32 stream seeded with seed. Each call
// advances the internal 32-bit state and yields a value in [0,1). The same
// seed always produces the identical infinite sequence.
func NewGenerator(seed uint32) func() float64 {
	state := seed
	return func() float64 {
		state += 0x6D2B79F5
		z := state
		z = (z ^ (z >> 15)) * (z | 1)
		z ^= z + (z^(z>>7))*(z|61)
		return float64(z^(z>>14)) / 4294967296.0
	}
}

// Mixing constants for the stateless per-cell noise hash.
const (
	noiseMulX  uint32 = 374761393
	noiseMulY  uint32 = 668265263
	noiseMulS  uint32 = 1597334677
	noiseFinal uint32 = 1274126177
)

// CellNoise hashes (seed, x, y, salt) to a value in [0,1). Unlike the stream
// generator it is order-independent: the result for a cell does not depend on
// how many other cells were evaluated first.
func CellNoise(seed uint32, x, y, salt int) float64 {
	h := seed + uint32(x)*noiseMulX + uint32(y)*noiseMulY + uint32(salt)*noiseMulS
	h = (h ^ (h >> 13)) * noiseFinal
	h ^= h >> 16
	return float64(h) / 4294967296.0
}
