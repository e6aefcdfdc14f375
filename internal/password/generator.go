package password

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
)

var (
	ErrInvalidLength            = errors.New("password length must be at least 1")
	ErrNoCharacterClassSelected = errors.New("please select at least one character type for generation")
)

// Options configures a single generation call.
type Options struct {
	Length int
	Classes
}

// DefaultOptions returns 16 characters with every class enabled.
func DefaultOptions() Options {
	return Options{Length: 16, Classes: AllClasses()}
}

// Generator draws passwords uniformly from a character pool.
//
// It uses math/rand/v2, not crypto/rand: output is uniform but predictable to
// anyone who knows the seed. Do not use it to issue credentials.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand // nil means the auto-seeded top-level source
}

// NewGenerator returns a Generator backed by the runtime's auto-seeded source.
func NewGenerator() *Generator {
	return &Generator{}
}

// NewSeededGenerator returns a Generator whose output is reproducible for a
// given seed.
func NewSeededGenerator(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed))}
}

// Generate returns exactly opts.Length characters, each drawn independently
// with replacement from opts.Classes.Pool(). No class is guaranteed to appear.
func (g *Generator) Generate(opts Options) (string, error) {
	if opts.Length < 1 {
		return "", ErrInvalidLength
	}

	pool := opts.Classes.Pool()
	if pool == "" {
		return "", ErrNoCharacterClassSelected
	}

	var sb strings.Builder
	sb.Grow(opts.Length)

	if g.rng == nil {
		for i := 0; i < opts.Length; i++ {
			sb.WriteByte(pool[rand.IntN(len(pool))])
		}
		return sb.String(), nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	for i := 0; i < opts.Length; i++ {
		sb.WriteByte(pool[g.rng.IntN(len(pool))])
	}
	return sb.String(), nil
}
