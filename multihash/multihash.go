package multihash

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	mh "github.com/multiformats/go-multihash"
	mhreg "github.com/multiformats/go-multihash/core"

	"go.dw1.io/compacthash"
)

const (
	// Code is the multihash function code for compacthash.
	Code uint64 = 0x300c48

	// MaxWords is the largest number of 64-bit words a single digest may
	// carry.
	MaxWords = 64

	// DefaultLength is the digest length used when -1 is requested.
	DefaultLength = compacthash.Size
)

// ErrLength indicates a digest length outside 1..8*MaxWords bytes.
var ErrLength = errors.New("multihash: unsupported compacthash digest length")

func init() {
	mhreg.Register(Code, func() hash.Hash { return compacthash.NewExtended(1, 0) })
	mhreg.RegisterVariableSize(Code, func(sizeHint int) (hash.Hash, bool) {
		words, err := Words(sizeHint)
		if err != nil {
			return nil, false
		}
		return compacthash.NewExtended(words, 0), true
	})
}

// Words returns the number of 64-bit words needed for a digest of length
// bytes. -1 selects DefaultLength.
func Words(length int) (int, error) {
	length, err := checkLength(length)
	if err != nil {
		return 0, err
	}

	return (length + compacthash.Size - 1) / compacthash.Size, nil
}

func checkLength(length int) (int, error) {
	if length == -1 {
		length = DefaultLength
	}
	if length <= 0 || length > MaxWords*compacthash.Size {
		return 0, fmt.Errorf("%w: %d", ErrLength, length)
	}

	return length, nil
}

// Sum returns the compacthash multihash of data with seed 0. length is the
// digest length in bytes; -1 selects DefaultLength.
func Sum(data []byte, length int) (mh.Multihash, error) {
	return SumSeeded(data, 0, length)
}

// SumSeeded is like [Sum] with an explicit seed. The seed is not part of the
// multihash prefix, so callers must agree on it out of band.
func SumSeeded(data []byte, seed uint64, length int) (mh.Multihash, error) {
	words, err := Words(length)
	if err != nil {
		return nil, err
	}

	return FromWords(compacthash.SumMany(data, words, seed), length)
}

// FromWords encodes precomputed extended-output words as a multihash of
// length bytes. words must cover at least length bytes.
func FromWords(words []uint64, length int) (mh.Multihash, error) {
	length, err := checkLength(length)
	if err != nil {
		return nil, err
	}
	if len(words)*compacthash.Size < length {
		return nil, fmt.Errorf("%w: %d bytes from %d words", ErrLength, length, len(words))
	}

	buf := make([]byte, 0, len(words)*compacthash.Size)
	for _, w := range words {
		buf = binary.BigEndian.AppendUint64(buf, w)
	}

	return mh.Encode(buf[:length], Code)
}

// Prefix returns the CIDv1 prefix for raw blocks hashed with compacthash.
func Prefix(length int) cid.Prefix {
	return cid.Prefix{
		Version:  1,
		Codec:    cid.Raw,
		MhType:   Code,
		MhLength: length,
	}
}

// CID returns the CIDv1 (raw codec) of data using the default digest length.
func CID(data []byte) (cid.Cid, error) {
	return Prefix(-1).Sum(data)
}

// Encode renders m as a multibase string in the given base.
func Encode(m mh.Multihash, base multibase.Encoding) (string, error) {
	return multibase.Encode(base, m)
}

// Digest decodes m and returns the raw digest bytes, verifying that m was
// produced by compacthash.
func Digest(m mh.Multihash) ([]byte, error) {
	dec, err := mh.Decode(m)
	if err != nil {
		return nil, err
	}
	if dec.Code != Code {
		return nil, fmt.Errorf("multihash: code %#x is not compacthash", dec.Code)
	}

	return dec.Digest, nil
}
