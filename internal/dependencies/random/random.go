package random

import (
	"math/rand/v2"
	"sync"
)

// Random is the source of chance: generated game IDs and bot column picks.
// Tests substitute mocks.MockRandom.
type Random interface {
	// Intn returns a random int in [0, n), or 0 when n <= 0
	Intn(n int) int

	// String generates a random string of the given length from the given alphabet
	String(length int, alphabet string) string
}

// Source implements Random on math/rand/v2
type Source struct {
	mu  sync.Mutex
	rng *rand.Rand // nil draws from the runtime-seeded global generator
}

// New returns an unseeded Source
func New() *Source {
	return &Source{}
}

// NewSeeded returns a Source that replays the same sequence for the same seed
func NewSeeded(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Intn returns a random int in [0, n)
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// String generates a random string of the given length from the given alphabet
func (s *Source) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = alphabet[s.Intn(len(alphabet))]
	}
	return string(result)
}
