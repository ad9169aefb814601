package splitmix

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mathrand "math/rand/v2"
)

var _ mathrand.Source = (*Source)(nil)

// Increment is the golden-ratio step added to the state on every draw.
const Increment = uint64(0x9e3779b97f4a7c15)

const (
	mix1 = uint64(0xbf58476d1ce4e5b9)
	mix2 = uint64(0x94d049bb133111eb)
)

// ErrEntropy is returned when the platform entropy source cannot be read.
var ErrEntropy = errors.New("splitmix: entropy source unavailable")

// Source is a SplitMix64 generator. The zero value is a valid generator
// seeded with 0.
//
// A Source is not safe for concurrent use; give each goroutine its own.
type Source struct {
	state uint64
}

// New returns a generator seeded with seed. It never fails.
func New(seed uint64) *Source {
	return &Source{state: seed}
}

// NewNonDeterministic returns a generator seeded from [crypto/rand].
//
// Unlike [New], the resulting sequence is not reproducible, and construction
// fails with an error wrapping [ErrEntropy] if the entropy source cannot be
// read.
func NewNonDeterministic() (*Source, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}

	return &Source{state: binary.LittleEndian.Uint64(buf[:])}, nil
}

// Seed resets the generator to seed.
func (s *Source) Seed(seed uint64) {
	s.state = seed
}

// Uint64 advances the generator and returns the next value.
func (s *Source) Uint64() uint64 {
	s.state += Increment

	return Mix(s.state)
}

// Discard advances the generator by n draws without producing output. It is
// equivalent to calling [Source.Uint64] n times and ignoring the results, and
// returns s so calls can be chained.
func (s *Source) Discard(n uint64) *Source {
	s.state += Increment * n

	return s
}

// Mix is the SplitMix64 output finalizer applied to an already advanced
// state.
func Mix(z uint64) uint64 {
	z = (z ^ (z >> 30)) * mix1
	z = (z ^ (z >> 27)) * mix2

	return z ^ (z >> 31)
}
