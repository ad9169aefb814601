package compacthash

import (
	"context"
	"encoding/binary"
	"hash"
	"runtime"

	"golang.org/x/sync/errgroup"

	"go.dw1.io/compacthash/splitmix"
)

var _ hash.Hash = (*Extended)(nil)

// SumMany returns n digest words for data. Each word is hashed independently
// with its own seed drawn from a SplitMix64 stream seeded with seed, and with
// its index appended to the input, so the words are uncorrelated and the
// result is fully determined by (data, n, seed).
//
// SumMany returns an empty slice when n <= 0.
func SumMany(data []byte, n int, seed uint64) []uint64 {
	if n <= 0 {
		return []uint64{}
	}

	out := make([]uint64, n)
	src := splitmix.New(seed)
	for i := range out {
		out[i] = sumWord(data, src.Uint64(), uint64(i))
	}

	return out
}

// SumManyParallel computes the same words as [SumMany], spreading them over
// up to GOMAXPROCS goroutines. It returns ctx.Err() if ctx is cancelled
// before every word has been computed.
func SumManyParallel(ctx context.Context, data []byte, n int, seed uint64) ([]uint64, error) {
	if n <= 0 {
		return []uint64{}, nil
	}

	seeds := make([]uint64, n)
	src := splitmix.New(seed)
	for i := range seeds {
		seeds[i] = src.Uint64()
	}

	out := make([]uint64, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range out {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = sumWord(data, seeds[i], uint64(i))

			return nil
		})
	}

	// Wait cancels gctx, so the caller's ctx decides whether work was cut
	// short.
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func sumWord(data []byte, seed, index uint64) uint64 {
	var h Hasher
	h.init(seed)
	h.write(data)

	return h.sumIndexed(index)
}

// sumIndexed returns the digest of the stream followed by index, without
// modifying h.
func (h *Hasher) sumIndexed(index uint64) uint64 {
	var idx [8]byte
	binary.LittleEndian.PutUint64(idx[:], index)

	fork := *h
	fork.write(idx[:])

	return fork.Sum64()
}

// Extended is the streaming form of [SumMany]: a [hash.Hash] whose digest is
// n 64-bit words.
type Extended struct {
	seed  uint64
	words []Hasher
}

// NewExtended returns a streaming extended-output hasher producing n words.
// n values below 1 are treated as 1.
func NewExtended(n int, seed uint64) *Extended {
	if n < 1 {
		n = 1
	}

	e := &Extended{seed: seed, words: make([]Hasher, n)}
	e.Reset()

	return e
}

// Write absorbs p into every word's state. It never returns an error.
func (e *Extended) Write(p []byte) (int, error) {
	for i := range e.words {
		e.words[i].write(p)
	}

	return len(p), nil
}

// Words returns the digest words of everything written so far. The result
// equals SumMany(data, n, seed) for the concatenated input.
func (e *Extended) Words() []uint64 {
	out := make([]uint64, len(e.words))
	for i := range e.words {
		out[i] = e.words[i].sumIndexed(uint64(i))
	}

	return out
}

// Sum appends the digest words to b, each in big-endian order.
func (e *Extended) Sum(b []byte) []byte {
	for i := range e.words {
		b = binary.BigEndian.AppendUint64(b, e.words[i].sumIndexed(uint64(i)))
	}

	return b
}

// Reset restores every word's state to its freshly seeded value.
func (e *Extended) Reset() {
	src := splitmix.New(e.seed)
	for i := range e.words {
		e.words[i].init(src.Uint64())
	}
}

// Size returns the digest size in bytes, 8 per word.
func (e *Extended) Size() int { return Size * len(e.words) }

// BlockSize returns the compression block size.
func (e *Extended) BlockSize() int { return BlockSize }
