package util

import "math/rand"

const hexDigits = "0123456789abcdefABCDEF"

// RNG struct encapsulates the random number generator and seed.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Seed returns the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// GenerateRandomBytes generates num byte slices with lengths in [0, maxLen].
func (r *RNG) GenerateRandomBytes(num int, maxLen int) [][]byte {
	out := make([][]byte, num)
	for i := range out {
		out[i] = make([]byte, r.rand.Intn(maxLen+1))
		_, _ = r.rand.Read(out[i])
	}

	return out
}

// GenerateRandomHex generates num hexadecimal strings of mixed letter case
// with byte lengths in [0, maxLen].
func (r *RNG) GenerateRandomHex(num int, maxLen int) []string {
	out := make([]string, num)
	for i := range out {
		buf := make([]byte, 2*r.rand.Intn(maxLen+1))
		for j := range buf {
			buf[j] = hexDigits[r.rand.Intn(len(hexDigits))]
		}
		out[i] = string(buf)
	}

	return out
}
