package compacthash

import (
	"encoding/binary"
	"hash"
	"math/bits"
	"unsafe"

	"go.dw1.io/compacthash/internal/mul"
)

// Compile-time interface assertions.
var _ hash.Hash = (*Hasher)(nil)
var _ hash.Hash64 = (*Hasher)(nil)

const (
	// Size is the digest size in bytes.
	Size = 8

	// BlockSize is the number of bytes absorbed per compression round.
	BlockSize = 16
)

const (
	golden = uint64(0x9e3779b97f4a7c15)

	// lane1 seed multiplier, also the first avalanche multiplier (xxh64 prime 2).
	prime2 = uint64(0xc2b2ae3d27d4eb4f)
	prime3 = uint64(0x165667b19e3779f9)

	mulKey = uint64(0x2d358dccaa6c78a5)
	xorKey = uint64(0x8bb84b93962eacc9)
)

// Hasher is a streaming compacthash state. The zero value is not usable; use
// [New] or [NewWithSeed].
//
// A Hasher must not be used from multiple goroutines at once. Copying a
// Hasher by value forks the stream.
type Hasher struct {
	seed  uint64
	lanes [2]uint64
	total uint64
	buf   [BlockSize]byte
	n     int
}

// New returns a hasher with seed 0.
func New() *Hasher { return NewWithSeed(0) }

// NewWithSeed returns a hasher seeded with seed.
func NewWithSeed(seed uint64) *Hasher {
	h := &Hasher{}
	h.init(seed)

	return h
}

// Sum64 returns the digest of data with seed 0.
func Sum64(data []byte) uint64 { return Sum64WithSeed(data, 0) }

// Sum64WithSeed returns the digest of data with the provided seed.
func Sum64WithSeed(data []byte, seed uint64) uint64 {
	var h Hasher
	h.init(seed)
	h.write(data)

	return h.Sum64()
}

func (h *Hasher) init(seed uint64) {
	*h = Hasher{
		seed: seed,
		lanes: [2]uint64{
			seed ^ golden,
			bits.RotateLeft64(seed, -9) * prime2,
		},
	}
}

// Write absorbs p into the hash state. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.write(p)

	return len(p), nil
}

// WriteString absorbs s into the hash state. It never returns an error.
func (h *Hasher) WriteString(s string) (int, error) {
	h.write(unsafe.Slice(unsafe.StringData(s), len(s)))

	return len(s), nil
}

func (h *Hasher) write(p []byte) {
	h.total += uint64(len(p))

	if h.n > 0 {
		c := copy(h.buf[h.n:], p)
		h.n += c
		p = p[c:]
		if h.n < BlockSize {
			return
		}
		h.block(h.buf[:])
		h.n = 0
	}

	for ; len(p) >= BlockSize; p = p[BlockSize:] {
		h.block(p)
	}

	h.n = copy(h.buf[:], p)
}

func (h *Hasher) block(b []byte) {
	h.lanes[0] = compress(h.lanes[0], binary.LittleEndian.Uint64(b))
	h.lanes[1] = compress(h.lanes[1], binary.LittleEndian.Uint64(b[8:]))
}

// Sum64 returns the digest of everything written so far. It does not change
// the hasher: calling it twice returns the same value, and writing more data
// afterwards continues the same stream.
func (h *Hasher) Sum64() uint64 {
	l0, l1 := h.lanes[0], h.lanes[1]

	if h.n > 0 {
		var tail [BlockSize]byte
		copy(tail[:], h.buf[:h.n])
		l0 = compress(l0, binary.LittleEndian.Uint64(tail[:]))
		l1 = compress(l1, binary.LittleEndian.Uint64(tail[8:]))
	}

	x := compress(l0, l1)
	x ^= h.total * golden

	return avalanche(x)
}

// Sum appends the current digest to b in big-endian order.
func (h *Hasher) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint64(b, h.Sum64())
}

// Reset restores the hasher to its freshly seeded state.
func (h *Hasher) Reset() { h.init(h.seed) }

// Seed returns the seed the hasher was created with.
func (h *Hasher) Seed() uint64 { return h.seed }

// Len returns the number of bytes written since construction or the last
// Reset.
func (h *Hasher) Len() uint64 { return h.total }

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return Size }

// BlockSize returns the compression block size.
func (h *Hasher) BlockSize() int { return BlockSize }

// compress folds y into the accumulator x: a multiply, then the xor of both
// halves of a full 128-bit product.
func compress(x, y uint64) uint64 {
	x = (x + y) * mulKey
	hi, lo := mul.Mul128(x, x^xorKey)

	return x ^ xorKey ^ lo ^ hi
}

// avalanche is the xxh64 finalizer.
func avalanche(x uint64) uint64 {
	x = (x ^ (x >> 33)) * prime2
	x = (x ^ (x >> 29)) * prime3

	return x ^ (x >> 32)
}
